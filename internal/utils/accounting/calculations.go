package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
)

// Tolerance is the monetary tolerance used when comparing debit and credit
// totals at posting time, absorbing rounding introduced upstream.
var Tolerance = decimal.NewFromFloat(0.01)

// BalanceCheck is the result of summing a set of journal lines.
type BalanceCheck struct {
	IsBalanced  bool
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Difference  decimal.Decimal // TotalDebit - TotalCredit
}

// ValidateJournalBalance sums the debit and credit columns of the given
// lines. IsBalanced requires an exact match: this operates on already-summed
// values, so no tolerance applies here.
func ValidateJournalBalance(lines []domain.JournalLine) BalanceCheck {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	difference := totalDebit.Sub(totalCredit)
	return BalanceCheck{
		IsBalanced:  difference.IsZero(),
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Difference:  difference,
	}
}

// WithinTolerance reports whether a debit/credit difference is small enough
// to accept at posting time.
func WithinTolerance(difference decimal.Decimal) bool {
	return difference.Abs().LessThanOrEqual(Tolerance)
}

// SignedAmount converts a line's debit/credit pair into the account's
// natural sign: debit-credit for debit-normal accounts, credit-debit for
// credit-normal accounts.
func SignedAmount(line domain.JournalLine, normalBalance domain.NormalBalance) decimal.Decimal {
	if normalBalance == domain.CreditNormal {
		return line.Credit.Sub(line.Debit)
	}
	return line.Debit.Sub(line.Credit)
}
