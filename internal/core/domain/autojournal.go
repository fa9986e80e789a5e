package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType identifies a business event that the auto-journal
// generator knows how to translate into a balanced journal entry.
type TransactionType string

const (
	LoanDisbursement  TransactionType = "LOAN_DISBURSEMENT"
	LoanPayment       TransactionType = "LOAN_PAYMENT"
	SavingsDeposit    TransactionType = "SAVINGS_DEPOSIT"
	SavingsWithdrawal TransactionType = "SAVINGS_WITHDRAWAL"
	MemberResignation TransactionType = "MEMBER_RESIGNATION"
)

// SavingsType distinguishes the three cooperative savings products.
type SavingsType string

const (
	SavingsPokok    SavingsType = "pokok"
	SavingsWajib    SavingsType = "wajib"
	SavingsSukarela SavingsType = "sukarela"
)

// BusinessTransaction describes a business event to be journaled. The core
// does not validate member existence; member/loan/savings services own that.
type BusinessTransaction struct {
	TransactionType TransactionType
	Amount          decimal.Decimal
	MemberID        string
	ReferenceType   string
	ReferenceID     string
	Description     string
	EntryDate       time.Time
	CreatedBy       string

	// Loan payment split.
	PrincipalAmount decimal.Decimal
	InterestAmount  decimal.Decimal

	// Savings deposit/withdrawal product.
	SavingsType SavingsType

	// Resignation payout per savings component.
	PokokAmount    decimal.Decimal
	WajibAmount    decimal.Decimal
	SukarelaAmount decimal.Decimal
}
