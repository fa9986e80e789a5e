package services

import (
	"context"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/dto"
)

// AccountSvcFacade defines chart-of-accounts operations.
type AccountSvcFacade interface {
	// CreateAccount creates a new COA node. The normal balance is derived
	// from the account type and must match the request when provided; the
	// reporting category is derived once here.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)

	// GetAccountByCode retrieves one account.
	GetAccountByCode(ctx context.Context, accountCode string) (*domain.Account, error)

	// GetAccountsByCodes retrieves multiple accounts keyed by code.
	GetAccountsByCodes(ctx context.Context, accountCodes []string) (map[string]domain.Account, error)

	// ListAccounts lists the chart of accounts ordered by code.
	ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error)

	// UpdateAccount updates name/description/parent of an account.
	UpdateAccount(ctx context.Context, accountCode string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeactivateAccount marks an account inactive. Accounts referenced by
	// journal lines are never hard-deleted.
	DeactivateAccount(ctx context.Context, accountCode string, userID string) error
}
