package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single account row in a trial balance report.
type TrialBalanceRow struct {
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	AccountType   AccountType     `json:"accountType"`
	NormalBalance NormalBalance   `json:"normalBalance"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
}

// LedgerTransaction is one journal line projected into an account's ledger,
// carrying the balance after the line is applied.
type LedgerTransaction struct {
	EntryID       string          `json:"entryID"`
	JournalNumber string          `json:"journalNumber"`
	EntryDate     time.Time       `json:"entryDate"`
	Description   string          `json:"description"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"` // Running balance after this line
}

// LedgerAccount is the general-ledger view of a single account over a range.
type LedgerAccount struct {
	Account        Account             `json:"account"`
	OpeningBalance decimal.Decimal     `json:"openingBalance"` // Brought forward before the range
	Transactions   []LedgerTransaction `json:"transactions"`
	TotalDebit     decimal.Decimal     `json:"totalDebit"`
	TotalCredit    decimal.Decimal     `json:"totalCredit"`
	ClosingBalance decimal.Decimal     `json:"closingBalance"`
}

// CategoryBalance is the raw per-account aggregate the statement transformers
// consume: debit/credit sums tagged with the account's stored category.
type CategoryBalance struct {
	AccountCode string            `json:"accountCode"`
	AccountName string            `json:"accountName"`
	Category    ReportingCategory `json:"category"`
	Debit       decimal.Decimal   `json:"debit"`
	Credit      decimal.Decimal   `json:"credit"`
}

// StatementLine is one account row in an income statement or balance sheet,
// paired current vs previous period. An account active in only one period
// keeps a zero on the other side.
type StatementLine struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Current     decimal.Decimal `json:"current"`
	Previous    decimal.Decimal `json:"previous"`
}

// IncomeStatement is the derived profit/loss view over two comparative ranges.
type IncomeStatement struct {
	OperatingRevenue     []StatementLine `json:"operatingRevenue"`
	NonOperatingIncome   []StatementLine `json:"nonOperatingIncome"`
	OperatingExpenses    []StatementLine `json:"operatingExpenses"`
	NonOperatingExpenses []StatementLine `json:"nonOperatingExpenses"`

	TotalRevenue              decimal.Decimal `json:"totalRevenue"`
	TotalOperatingExpenses    decimal.Decimal `json:"totalOperatingExpenses"`
	TotalNonOperatingIncome   decimal.Decimal `json:"totalNonOperatingIncome"`
	TotalNonOperatingExpenses decimal.Decimal `json:"totalNonOperatingExpenses"`
	OperatingIncome           decimal.Decimal `json:"operatingIncome"`
	NetIncome                 decimal.Decimal `json:"netIncome"`

	// Ratios are zero when the denominator is zero.
	GrossMarginRatio decimal.Decimal `json:"grossMarginRatio"`
	NetMarginRatio   decimal.Decimal `json:"netMarginRatio"`
	OpexRatio        decimal.Decimal `json:"opexRatio"`
}

// BalanceSheet is the derived financial-position view as of a date.
// CurrentYearEarningsCode is the synthetic equity line that carries the
// computed net income so the sheet balances.
type BalanceSheet struct {
	Assets      []StatementLine `json:"assets"`
	Liabilities []StatementLine `json:"liabilities"`
	Equity      []StatementLine `json:"equity"`

	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`

	// IsBalanced is false when assets != liabilities + equity beyond the
	// monetary tolerance. Callers must surface it, never hide it.
	IsBalanced bool            `json:"isBalanced"`
	Difference decimal.Decimal `json:"difference"`
}

// CurrentYearEarningsCode is the synthetic equity account code used to fold
// the period's net income into the balance sheet.
const CurrentYearEarningsCode = "3-9999"

// CurrentYearEarningsName labels the synthetic equity line (SHU = sisa hasil
// usaha, the cooperative's net surplus).
const CurrentYearEarningsName = "SHU Tahun Berjalan"
