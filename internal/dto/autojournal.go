package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
)

// AutoJournalRequest describes a business transaction to be journaled
// automatically. Type-specific fields are validated by the generator.
type AutoJournalRequest struct {
	TransactionType string          `json:"transactionType" binding:"required,oneof=LOAN_DISBURSEMENT LOAN_PAYMENT SAVINGS_DEPOSIT SAVINGS_WITHDRAWAL MEMBER_RESIGNATION"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	MemberID        string          `json:"memberID" binding:"required"`
	ReferenceType   string          `json:"referenceType"`
	ReferenceID     string          `json:"referenceID" binding:"required"`
	Description     string          `json:"description"`
	EntryDate       time.Time       `json:"entryDate" binding:"required"`

	PrincipalAmount decimal.Decimal `json:"principalAmount"`
	InterestAmount  decimal.Decimal `json:"interestAmount"`
	SavingsType     string          `json:"savingsType" binding:"omitempty,oneof=pokok wajib sukarela"`
	PokokAmount     decimal.Decimal `json:"pokokAmount"`
	WajibAmount     decimal.Decimal `json:"wajibAmount"`
	SukarelaAmount  decimal.Decimal `json:"sukarelaAmount"`
}

// ToBusinessTransaction converts the request into the domain descriptor.
func (r AutoJournalRequest) ToBusinessTransaction(creatorUserID string) domain.BusinessTransaction {
	return domain.BusinessTransaction{
		TransactionType: domain.TransactionType(r.TransactionType),
		Amount:          r.Amount,
		MemberID:        r.MemberID,
		ReferenceType:   r.ReferenceType,
		ReferenceID:     r.ReferenceID,
		Description:     r.Description,
		EntryDate:       r.EntryDate,
		CreatedBy:       creatorUserID,
		PrincipalAmount: r.PrincipalAmount,
		InterestAmount:  r.InterestAmount,
		SavingsType:     domain.SavingsType(r.SavingsType),
		PokokAmount:     r.PokokAmount,
		WajibAmount:     r.WajibAmount,
		SukarelaAmount:  r.SukarelaAmount,
	}
}
