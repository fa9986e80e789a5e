package domain

import "strings"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// NormalBalance is the side on which an account type naturally increases.
type NormalBalance string

const (
	DebitNormal  NormalBalance = "DEBIT"
	CreditNormal NormalBalance = "CREDIT"
)

// NormalBalanceFor returns the normal balance implied by an account type.
// Asset and expense accounts increase on the debit side; liability, equity
// and revenue accounts increase on the credit side.
func NormalBalanceFor(accountType AccountType) (NormalBalance, bool) {
	switch accountType {
	case Asset, Expense:
		return DebitNormal, true
	case Liability, Equity, Revenue:
		return CreditNormal, true
	default:
		return "", false
	}
}

// ReportingCategory classifies an account for statement rendering. It is
// derived once at account creation from the account type and code prefix,
// so reports never re-parse code strings.
type ReportingCategory string

const (
	CategoryAsset               ReportingCategory = "ASSET"
	CategoryLiability           ReportingCategory = "LIABILITY"
	CategoryEquity              ReportingCategory = "EQUITY"
	CategoryOperatingRevenue    ReportingCategory = "OPERATING_REVENUE"
	CategoryNonOperatingIncome  ReportingCategory = "NON_OPERATING_INCOME"
	CategoryOperatingExpense    ReportingCategory = "OPERATING_EXPENSE"
	CategoryNonOperatingExpense ReportingCategory = "NON_OPERATING_EXPENSE"
)

// DeriveReportingCategory maps an account type plus its code to a reporting
// category. Revenue and expense accounts split on the second code segment:
// "4-1xxx" is operating revenue, "4-2xxx" non-operating income, and the same
// split applies to "5-" expense codes.
func DeriveReportingCategory(accountType AccountType, accountCode string) ReportingCategory {
	nonOperating := strings.HasPrefix(secondSegment(accountCode), "2")
	switch accountType {
	case Asset:
		return CategoryAsset
	case Liability:
		return CategoryLiability
	case Equity:
		return CategoryEquity
	case Revenue:
		if nonOperating {
			return CategoryNonOperatingIncome
		}
		return CategoryOperatingRevenue
	case Expense:
		if nonOperating {
			return CategoryNonOperatingExpense
		}
		return CategoryOperatingExpense
	}
	return ""
}

func secondSegment(code string) string {
	parts := strings.SplitN(code, "-", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// Account represents a node in the chart of accounts.
// Accounts referenced by journal lines are deactivated, never deleted.
type Account struct {
	AccountCode       string            `json:"accountCode"` // Primary key, e.g. "1-1100"
	Name              string            `json:"name"`
	AccountType       AccountType       `json:"accountType"`
	NormalBalance     NormalBalance     `json:"normalBalance"`     // Always consistent with AccountType
	ReportingCategory ReportingCategory `json:"reportingCategory"` // Derived at creation
	ParentCode        string            `json:"parentCode"`        // Nullable self reference
	Description       string            `json:"description"`
	IsActive          bool              `json:"isActive"`
	AuditFields
}
