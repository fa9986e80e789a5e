package repositories

import (
	"context"
	"time"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerLine is a journal line joined with its entry header, as needed by
// the general-ledger aggregator.
type LedgerLine struct {
	AccountCode   string
	EntryID       string
	JournalNumber string
	EntryDate     time.Time
	Description   string
	Debit         decimal.Decimal
	Credit        decimal.Decimal
}

// ReportingRepository defines read operations for financial report data.
// All queries exclude reversed entries together with their reversals.
type ReportingRepository interface {
	// GetTrialBalanceData sums debits and credits per account over an
	// entry-date range.
	GetTrialBalanceData(ctx context.Context, from, to time.Time) ([]domain.TrialBalanceRow, error)

	// GetCategoryBalances sums debits and credits per account over a range,
	// tagged with each account's stored reporting category.
	GetCategoryBalances(ctx context.Context, from, to time.Time) ([]domain.CategoryBalance, error)

	// GetLedgerLines retrieves journal lines joined with entry headers for
	// the given range, ordered by entry date then journal number. An empty
	// accountCodes slice means all accounts.
	GetLedgerLines(ctx context.Context, from, to time.Time, accountCodes []string) ([]LedgerLine, error)

	// GetOpeningBalances computes the per-account signed balance brought
	// forward from all entries strictly before the given date.
	GetOpeningBalances(ctx context.Context, before time.Time, accountCodes []string) (map[string]decimal.Decimal, error)
}
