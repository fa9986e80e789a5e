package dto

import (
	"time"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
// NormalBalance is optional; when provided it must match the balance implied
// by the account type.
type CreateAccountRequest struct {
	AccountCode   string  `json:"accountCode" binding:"required,accountcode"`
	Name          string  `json:"name" binding:"required"`
	AccountType   string  `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	NormalBalance *string `json:"normalBalance" binding:"omitempty,oneof=DEBIT CREDIT"`
	ParentCode    *string `json:"parentCode"` // Optional, use pointer for nullability
	Description   string  `json:"description"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ParentCode  *string `json:"parentCode"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountCode       string    `json:"accountCode"`
	Name              string    `json:"name"`
	AccountType       string    `json:"accountType"`
	NormalBalance     string    `json:"normalBalance"`
	ReportingCategory string    `json:"reportingCategory"`
	ParentCode        string    `json:"parentCode"` // Empty string if null in DB
	Description       string    `json:"description"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	CreatedBy         string    `json:"createdBy"`
	LastUpdatedAt     time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy     string    `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountCode:       acc.AccountCode,
		Name:              acc.Name,
		AccountType:       string(acc.AccountType),
		NormalBalance:     string(acc.NormalBalance),
		ReportingCategory: string(acc.ReportingCategory),
		ParentCode:        acc.ParentCode,
		Description:       acc.Description,
		IsActive:          acc.IsActive,
		CreatedAt:         acc.CreatedAt,
		CreatedBy:         acc.CreatedBy,
		LastUpdatedAt:     acc.LastUpdatedAt,
		LastUpdatedBy:     acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
