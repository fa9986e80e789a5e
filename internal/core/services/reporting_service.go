package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
	portsrepo "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/repositories"
	portssvc "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/services"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/utils/accounting"
)

// ratioPlaces is the rounding applied to statement ratios.
const ratioPlaces = 4

// reportingService derives financial statements from category balances.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: repo}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TrialBalance lists per-account debit/credit totals over the range. A range
// with no postings yields an empty list, never an error.
func (s *reportingService) TrialBalance(ctx context.Context, period portssvc.ReportPeriod) ([]domain.TrialBalanceRow, error) {
	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, period.From, period.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to load trial balance data")
		return nil, err
	}
	if rows == nil {
		rows = []domain.TrialBalanceRow{}
	}
	return rows, nil
}

// IncomeStatement builds the comparative profit/loss view. Accounts present
// in only one of the two ranges keep a zero on the absent side.
func (s *reportingService) IncomeStatement(ctx context.Context, current, previous portssvc.ReportPeriod) (*domain.IncomeStatement, error) {
	currentBalances, err := s.reportingRepo.GetCategoryBalances(ctx, current.From, current.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to load current period balances")
		return nil, err
	}
	previousBalances, err := s.reportingRepo.GetCategoryBalances(ctx, previous.From, previous.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to load previous period balances")
		return nil, err
	}

	stmt := &domain.IncomeStatement{
		OperatingRevenue:     buildStatementLines(currentBalances, previousBalances, domain.CategoryOperatingRevenue),
		NonOperatingIncome:   buildStatementLines(currentBalances, previousBalances, domain.CategoryNonOperatingIncome),
		OperatingExpenses:    buildStatementLines(currentBalances, previousBalances, domain.CategoryOperatingExpense),
		NonOperatingExpenses: buildStatementLines(currentBalances, previousBalances, domain.CategoryNonOperatingExpense),
	}

	stmt.TotalRevenue = sumCurrent(stmt.OperatingRevenue)
	stmt.TotalOperatingExpenses = sumCurrent(stmt.OperatingExpenses)
	stmt.TotalNonOperatingIncome = sumCurrent(stmt.NonOperatingIncome)
	stmt.TotalNonOperatingExpenses = sumCurrent(stmt.NonOperatingExpenses)
	stmt.OperatingIncome = stmt.TotalRevenue.Sub(stmt.TotalOperatingExpenses)
	stmt.NetIncome = stmt.OperatingIncome.Add(stmt.TotalNonOperatingIncome).Sub(stmt.TotalNonOperatingExpenses)

	if stmt.TotalRevenue.IsPositive() {
		stmt.GrossMarginRatio = stmt.OperatingIncome.Div(stmt.TotalRevenue).Round(ratioPlaces)
		stmt.NetMarginRatio = stmt.NetIncome.Div(stmt.TotalRevenue).Round(ratioPlaces)
		stmt.OpexRatio = stmt.TotalOperatingExpenses.Div(stmt.TotalRevenue).Round(ratioPlaces)
	}

	return stmt, nil
}

// BalanceSheet builds the comparative financial position as of two dates.
// The period's computed net income is folded into equity as the synthetic
// "SHU Tahun Berjalan" line, and the accounting identity is checked but never
// silently corrected.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf, previousAsOf time.Time) (*domain.BalanceSheet, error) {
	currentBalances, err := s.reportingRepo.GetCategoryBalances(ctx, time.Time{}, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to load balances as of date")
		return nil, err
	}

	var previousBalances []domain.CategoryBalance
	if !previousAsOf.IsZero() {
		previousBalances, err = s.reportingRepo.GetCategoryBalances(ctx, time.Time{}, previousAsOf)
		if err != nil {
			s.LogError(ctx, err, "Failed to load balances as of previous date")
			return nil, err
		}
	}

	sheet := &domain.BalanceSheet{
		Assets:      buildStatementLines(currentBalances, previousBalances, domain.CategoryAsset),
		Liabilities: buildStatementLines(currentBalances, previousBalances, domain.CategoryLiability),
		Equity:      buildStatementLines(currentBalances, previousBalances, domain.CategoryEquity),
	}

	currentEarnings := netIncomeOf(currentBalances)
	previousEarnings := netIncomeOf(previousBalances)
	if !currentEarnings.IsZero() || !previousEarnings.IsZero() {
		sheet.Equity = append(sheet.Equity, domain.StatementLine{
			AccountCode: domain.CurrentYearEarningsCode,
			AccountName: domain.CurrentYearEarningsName,
			Current:     currentEarnings,
			Previous:    previousEarnings,
		})
	}

	sheet.TotalAssets = sumCurrent(sheet.Assets)
	sheet.TotalLiabilities = sumCurrent(sheet.Liabilities)
	sheet.TotalEquity = sumCurrent(sheet.Equity)
	sheet.Difference = sheet.TotalAssets.Sub(sheet.TotalLiabilities.Add(sheet.TotalEquity))
	sheet.IsBalanced = accounting.WithinTolerance(sheet.Difference)

	if !sheet.IsBalanced {
		s.LogWarn(ctx, "Balance sheet does not balance",
			slog.String("as_of", asOf.Format(dateLayout)),
			slog.String("total_assets", sheet.TotalAssets.String()),
			slog.String("total_liabilities", sheet.TotalLiabilities.String()),
			slog.String("total_equity", sheet.TotalEquity.String()),
			slog.String("difference", sheet.Difference.String()))
	}

	return sheet, nil
}

// categoryAmount converts a debit/credit aggregate into the category's
// natural sign: assets and expenses are debit-natural, everything else
// credit-natural.
func categoryAmount(cb domain.CategoryBalance) decimal.Decimal {
	switch cb.Category {
	case domain.CategoryAsset, domain.CategoryOperatingExpense, domain.CategoryNonOperatingExpense:
		return cb.Debit.Sub(cb.Credit)
	default:
		return cb.Credit.Sub(cb.Debit)
	}
}

// buildStatementLines pairs current and previous balances per account code
// for one reporting category, zero-filling the absent side, sorted by code.
func buildStatementLines(current, previous []domain.CategoryBalance, category domain.ReportingCategory) []domain.StatementLine {
	byCode := make(map[string]*domain.StatementLine)
	for _, cb := range current {
		if cb.Category != category {
			continue
		}
		byCode[cb.AccountCode] = &domain.StatementLine{
			AccountCode: cb.AccountCode,
			AccountName: cb.AccountName,
			Current:     categoryAmount(cb),
			Previous:    decimal.Zero,
		}
	}
	for _, cb := range previous {
		if cb.Category != category {
			continue
		}
		if line, ok := byCode[cb.AccountCode]; ok {
			line.Previous = categoryAmount(cb)
			continue
		}
		byCode[cb.AccountCode] = &domain.StatementLine{
			AccountCode: cb.AccountCode,
			AccountName: cb.AccountName,
			Current:     decimal.Zero,
			Previous:    categoryAmount(cb),
		}
	}

	lines := make([]domain.StatementLine, 0, len(byCode))
	for _, line := range byCode {
		lines = append(lines, *line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].AccountCode < lines[j].AccountCode })
	return lines
}

// netIncomeOf computes revenue minus expenses over the given balances, i.e.
// the earnings not yet moved to equity by a closing entry.
func netIncomeOf(balances []domain.CategoryBalance) decimal.Decimal {
	total := decimal.Zero
	for _, cb := range balances {
		switch cb.Category {
		case domain.CategoryOperatingRevenue, domain.CategoryNonOperatingIncome:
			total = total.Add(cb.Credit.Sub(cb.Debit))
		case domain.CategoryOperatingExpense, domain.CategoryNonOperatingExpense:
			total = total.Sub(cb.Debit.Sub(cb.Credit))
		}
	}
	return total
}

// sumCurrent totals the current column of a section.
func sumCurrent(lines []domain.StatementLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Current)
	}
	return total
}
