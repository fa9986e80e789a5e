package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
)

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	AccountType   string          `json:"accountType"`
	NormalBalance string          `json:"normalBalance"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	FromDate string                    `json:"fromDate"`
	ToDate   string                    `json:"toDate"`
	Rows     []TrialBalanceRowResponse `json:"rows"`
	Totals   struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// ToTrialBalanceResponse converts domain trial balance rows to a DTO response
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow, from, to time.Time) TrialBalanceResponse {
	response := TrialBalanceResponse{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
		Rows:     make([]TrialBalanceRowResponse, len(rows)),
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for i, row := range rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountCode:   row.AccountCode,
			AccountName:   row.AccountName,
			AccountType:   string(row.AccountType),
			NormalBalance: string(row.NormalBalance),
			Debit:         row.Debit,
			Credit:        row.Credit,
		}
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}

	response.Totals.Debit = totalDebit
	response.Totals.Credit = totalCredit
	return response
}

// StatementLineResponse is a comparative account line in a statement response.
type StatementLineResponse struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Current     decimal.Decimal `json:"current"`
	Previous    decimal.Decimal `json:"previous"`
}

// IncomeStatementResponse represents the income statement report response
type IncomeStatementResponse struct {
	FromDate             string                  `json:"fromDate"`
	ToDate               string                  `json:"toDate"`
	OperatingRevenue     []StatementLineResponse `json:"operatingRevenue"`
	NonOperatingIncome   []StatementLineResponse `json:"nonOperatingIncome"`
	OperatingExpenses    []StatementLineResponse `json:"operatingExpenses"`
	NonOperatingExpenses []StatementLineResponse `json:"nonOperatingExpenses"`
	Summary              struct {
		TotalRevenue              decimal.Decimal `json:"totalRevenue"`
		TotalOperatingExpenses    decimal.Decimal `json:"totalOperatingExpenses"`
		TotalNonOperatingIncome   decimal.Decimal `json:"totalNonOperatingIncome"`
		TotalNonOperatingExpenses decimal.Decimal `json:"totalNonOperatingExpenses"`
		OperatingIncome           decimal.Decimal `json:"operatingIncome"`
		NetIncome                 decimal.Decimal `json:"netIncome"`
		GrossMarginRatio          decimal.Decimal `json:"grossMarginRatio"`
		NetMarginRatio            decimal.Decimal `json:"netMarginRatio"`
		OpexRatio                 decimal.Decimal `json:"opexRatio"`
	} `json:"summary"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf        string                  `json:"asOf"`
	Assets      []StatementLineResponse `json:"assets"`
	Liabilities []StatementLineResponse `json:"liabilities"`
	Equity      []StatementLineResponse `json:"equity"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
		IsBalanced       bool            `json:"isBalanced"`
		Difference       decimal.Decimal `json:"difference"`
	} `json:"summary"`
}

func toStatementLineResponses(lines []domain.StatementLine) []StatementLineResponse {
	res := make([]StatementLineResponse, len(lines))
	for i, line := range lines {
		res[i] = StatementLineResponse{
			AccountCode: line.AccountCode,
			AccountName: line.AccountName,
			Current:     line.Current,
			Previous:    line.Previous,
		}
	}
	return res
}

// ToIncomeStatementResponse converts a domain income statement to a DTO response
func ToIncomeStatementResponse(report *domain.IncomeStatement, from, to time.Time) IncomeStatementResponse {
	response := IncomeStatementResponse{
		FromDate:             from.Format("2006-01-02"),
		ToDate:               to.Format("2006-01-02"),
		OperatingRevenue:     toStatementLineResponses(report.OperatingRevenue),
		NonOperatingIncome:   toStatementLineResponses(report.NonOperatingIncome),
		OperatingExpenses:    toStatementLineResponses(report.OperatingExpenses),
		NonOperatingExpenses: toStatementLineResponses(report.NonOperatingExpenses),
	}
	response.Summary.TotalRevenue = report.TotalRevenue
	response.Summary.TotalOperatingExpenses = report.TotalOperatingExpenses
	response.Summary.TotalNonOperatingIncome = report.TotalNonOperatingIncome
	response.Summary.TotalNonOperatingExpenses = report.TotalNonOperatingExpenses
	response.Summary.OperatingIncome = report.OperatingIncome
	response.Summary.NetIncome = report.NetIncome
	response.Summary.GrossMarginRatio = report.GrossMarginRatio
	response.Summary.NetMarginRatio = report.NetMarginRatio
	response.Summary.OpexRatio = report.OpexRatio
	return response
}

// ToBalanceSheetResponse converts a domain balance sheet to a DTO response
func ToBalanceSheetResponse(report *domain.BalanceSheet, asOf time.Time) BalanceSheetResponse {
	response := BalanceSheetResponse{
		AsOf:        asOf.Format("2006-01-02"),
		Assets:      toStatementLineResponses(report.Assets),
		Liabilities: toStatementLineResponses(report.Liabilities),
		Equity:      toStatementLineResponses(report.Equity),
	}
	response.Summary.TotalAssets = report.TotalAssets
	response.Summary.TotalLiabilities = report.TotalLiabilities
	response.Summary.TotalEquity = report.TotalEquity
	response.Summary.IsBalanced = report.IsBalanced
	response.Summary.Difference = report.Difference
	return response
}

// LedgerTransactionResponse is one ledger row with its running balance.
type LedgerTransactionResponse struct {
	EntryID       string          `json:"entryID"`
	JournalNumber string          `json:"journalNumber"`
	EntryDate     time.Time       `json:"entryDate"`
	Description   string          `json:"description"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"`
}

// LedgerAccountResponse is the general-ledger view of one account.
type LedgerAccountResponse struct {
	Account        AccountResponse             `json:"account"`
	OpeningBalance decimal.Decimal             `json:"openingBalance"`
	Transactions   []LedgerTransactionResponse `json:"transactions"`
	TotalDebit     decimal.Decimal             `json:"totalDebit"`
	TotalCredit    decimal.Decimal             `json:"totalCredit"`
	Balance        decimal.Decimal             `json:"balance"`
}

// GeneralLedgerResponse is the full general-ledger report response.
type GeneralLedgerResponse struct {
	FromDate string                  `json:"fromDate"`
	ToDate   string                  `json:"toDate"`
	Accounts []LedgerAccountResponse `json:"accounts"`
}

// ToGeneralLedgerResponse converts domain ledger accounts to a DTO response
func ToGeneralLedgerResponse(accounts []domain.LedgerAccount, from, to time.Time) GeneralLedgerResponse {
	response := GeneralLedgerResponse{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
		Accounts: make([]LedgerAccountResponse, len(accounts)),
	}
	for i, acc := range accounts {
		txns := make([]LedgerTransactionResponse, len(acc.Transactions))
		for j, txn := range acc.Transactions {
			txns[j] = LedgerTransactionResponse{
				EntryID:       txn.EntryID,
				JournalNumber: txn.JournalNumber,
				EntryDate:     txn.EntryDate,
				Description:   txn.Description,
				Debit:         txn.Debit,
				Credit:        txn.Credit,
				Balance:       txn.Balance,
			}
		}
		response.Accounts[i] = LedgerAccountResponse{
			Account:        ToAccountResponse(&acc.Account),
			OpeningBalance: acc.OpeningBalance,
			Transactions:   txns,
			TotalDebit:     acc.TotalDebit,
			TotalCredit:    acc.TotalCredit,
			Balance:        acc.ClosingBalance,
		}
	}
	return response
}
