package services

import (
	"context"
	"time"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
)

// ReportPeriod is a date range for report generation.
type ReportPeriod struct {
	From time.Time
	To   time.Time
}

// LedgerSvcFacade defines general-ledger aggregation operations.
type LedgerSvcFacade interface {
	// GeneralLedger computes per-account transaction sequences with running
	// balances for a range. An empty accountCodes slice means all accounts
	// with activity or a brought-forward balance.
	GeneralLedger(ctx context.Context, period ReportPeriod, accountCodes []string) ([]domain.LedgerAccount, error)
}

// ReportingSvcFacade defines trial balance and statement generation.
type ReportingSvcFacade interface {
	// TrialBalance lists per-account debit/credit totals for a range. A
	// range with no entries yields empty rows and zero totals, not an error.
	TrialBalance(ctx context.Context, period ReportPeriod) ([]domain.TrialBalanceRow, error)

	// IncomeStatement derives the comparative income statement for the
	// current period against the previous one.
	IncomeStatement(ctx context.Context, current, previous ReportPeriod) (*domain.IncomeStatement, error)

	// BalanceSheet derives the comparative financial position as of two
	// dates, folding computed net income into equity.
	BalanceSheet(ctx context.Context, asOf, previousAsOf time.Time) (*domain.BalanceSheet, error)
}
