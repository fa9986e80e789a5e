package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
	portsrepo "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for financial report data.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// postedOnly excludes reversed entries and their reversing counterparts, so
// reports see only economically effective postings.
const postedOnly = `e.status = 'POSTED' AND e.journal_type <> 'REVERSING'`

func (r *PgxReportingRepository) GetTrialBalanceData(ctx context.Context, from, to time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT a.account_code, a.name, a.account_type, a.normal_balance,
			COALESCE(SUM(l.debit), 0) AS total_debit,
			COALESCE(SUM(l.credit), 0) AS total_credit
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_code = l.account_code
		WHERE ` + postedOnly + `
			AND e.entry_date >= $1 AND e.entry_date <= $2
		GROUP BY a.account_code, a.name, a.account_type, a.normal_balance
		ORDER BY a.account_code;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query trial balance data: %w", err)
	}
	defer rows.Close()

	var result []domain.TrialBalanceRow
	for rows.Next() {
		var row domain.TrialBalanceRow
		if err := rows.Scan(&row.AccountCode, &row.AccountName, &row.AccountType, &row.NormalBalance, &row.Debit, &row.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan trial balance row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}
	return result, nil
}

func (r *PgxReportingRepository) GetCategoryBalances(ctx context.Context, from, to time.Time) ([]domain.CategoryBalance, error) {
	query := `
		SELECT a.account_code, a.name, a.reporting_category,
			COALESCE(SUM(l.debit), 0) AS total_debit,
			COALESCE(SUM(l.credit), 0) AS total_credit
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_code = l.account_code
		WHERE ` + postedOnly + `
			AND e.entry_date >= $1 AND e.entry_date <= $2
		GROUP BY a.account_code, a.name, a.reporting_category
		ORDER BY a.account_code;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query category balances: %w", err)
	}
	defer rows.Close()

	var result []domain.CategoryBalance
	for rows.Next() {
		var cb domain.CategoryBalance
		if err := rows.Scan(&cb.AccountCode, &cb.AccountName, &cb.Category, &cb.Debit, &cb.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan category balance row: %w", err)
		}
		result = append(result, cb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category balance rows: %w", err)
	}
	return result, nil
}

func (r *PgxReportingRepository) GetLedgerLines(ctx context.Context, from, to time.Time, accountCodes []string) ([]portsrepo.LedgerLine, error) {
	query := `
		SELECT l.account_code, e.entry_id, e.journal_number, e.entry_date, l.description, l.debit, l.credit
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE ` + postedOnly + `
			AND e.entry_date >= $1 AND e.entry_date <= $2
	`
	args := []any{from, to}
	if len(accountCodes) > 0 {
		query += ` AND l.account_code = ANY($3)`
		args = append(args, accountCodes)
	}
	query += ` ORDER BY e.entry_date, e.journal_number, l.line_number;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger lines: %w", err)
	}
	defer rows.Close()

	var result []portsrepo.LedgerLine
	for rows.Next() {
		var ll portsrepo.LedgerLine
		if err := rows.Scan(&ll.AccountCode, &ll.EntryID, &ll.JournalNumber, &ll.EntryDate, &ll.Description, &ll.Debit, &ll.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan ledger line: %w", err)
		}
		result = append(result, ll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger lines: %w", err)
	}
	return result, nil
}

// GetOpeningBalances computes per-account brought-forward balances in the
// account's natural sign from all effective entries strictly before the date.
func (r *PgxReportingRepository) GetOpeningBalances(ctx context.Context, before time.Time, accountCodes []string) (map[string]decimal.Decimal, error) {
	query := `
		SELECT l.account_code, a.normal_balance,
			COALESCE(SUM(l.debit), 0) AS total_debit,
			COALESCE(SUM(l.credit), 0) AS total_credit
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_code = l.account_code
		WHERE ` + postedOnly + `
			AND e.entry_date < $1
	`
	args := []any{before}
	if len(accountCodes) > 0 {
		query += ` AND l.account_code = ANY($2)`
		args = append(args, accountCodes)
	}
	query += ` GROUP BY l.account_code, a.normal_balance;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query opening balances: %w", err)
	}
	defer rows.Close()

	balances := make(map[string]decimal.Decimal)
	for rows.Next() {
		var code string
		var normalBalance domain.NormalBalance
		var debit, credit decimal.Decimal
		if err := rows.Scan(&code, &normalBalance, &debit, &credit); err != nil {
			return nil, fmt.Errorf("failed to scan opening balance row: %w", err)
		}
		if normalBalance == domain.CreditNormal {
			balances[code] = credit.Sub(debit)
		} else {
			balances[code] = debit.Sub(credit)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating opening balance rows: %w", err)
	}
	return balances, nil
}
