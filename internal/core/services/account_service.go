package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/apperrors"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
	portsrepo "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/repositories"
	portssvc "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/services"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/dto"
)

// ErrNormalBalanceMismatch indicates the requested normal balance does
// not match the one implied by the account type.
var ErrNormalBalanceMismatch = errors.New("normal balance does not match account type")

// accountService implements chart-of-accounts operations.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	accountType := domain.AccountType(req.AccountType)
	normalBalance, ok := domain.NormalBalanceFor(accountType)
	if !ok {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	// The normal balance is determined by the account type; an explicit
	// request may only confirm it.
	if req.NormalBalance != nil && domain.NormalBalance(*req.NormalBalance) != normalBalance {
		s.LogWarn(ctx, "Rejected account with inconsistent normal balance",
			slog.String("account_code", req.AccountCode),
			slog.String("account_type", req.AccountType),
			slog.String("requested_normal_balance", *req.NormalBalance))
		return nil, fmt.Errorf("%w: %s accounts are %s-normal", ErrNormalBalanceMismatch, accountType, normalBalance)
	}

	if existing, err := s.accountRepo.FindAccountByCode(ctx, req.AccountCode); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, req.AccountCode)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}

	parentCode := ""
	if req.ParentCode != nil && *req.ParentCode != "" {
		parentCode = *req.ParentCode
		parent, err := s.accountRepo.FindAccountByCode(ctx, parentCode)
		if err != nil {
			s.LogError(ctx, err, "Failed to find parent account", slog.String("parent_code", parentCode))
			return nil, fmt.Errorf("invalid parent account: %w", err)
		}
		if parent.AccountType != accountType {
			return nil, fmt.Errorf("%w: parent account %s has type %s, child has %s",
				apperrors.ErrValidation, parentCode, parent.AccountType, accountType)
		}
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountCode:       req.AccountCode,
		Name:              req.Name,
		AccountType:       accountType,
		NormalBalance:     normalBalance,
		ReportingCategory: domain.DeriveReportingCategory(accountType, req.AccountCode),
		ParentCode:        parentCode,
		Description:       req.Description,
		IsActive:          true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_code", account.AccountCode))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_code", account.AccountCode),
		slog.String("reporting_category", string(account.ReportingCategory)))
	return &account, nil
}

func (s *accountService) GetAccountByCode(ctx context.Context, accountCode string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, accountCode)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_code", accountCode))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccountsByCodes(ctx context.Context, accountCodes []string) (map[string]domain.Account, error) {
	return s.accountRepo.FindAccountsByCodes(ctx, accountCodes)
}

func (s *accountService) ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, includeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountCode string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, accountCode)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		account.Description = *req.Description
		updated = true
	}
	if req.ParentCode != nil {
		account.ParentCode = *req.ParentCode
		updated = true
	}
	if !updated {
		return account, nil
	}

	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_code", accountCode))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.LogInfo(ctx, "Account updated successfully", slog.String("account_code", accountCode))
	return account, nil
}

// DeactivateAccount soft-deletes an account. Accounts referenced by journal
// lines must survive for historical reporting, so the chart never hard-deletes.
func (s *accountService) DeactivateAccount(ctx context.Context, accountCode string, userID string) error {
	if _, err := s.accountRepo.FindAccountByCode(ctx, accountCode); err != nil {
		return err
	}

	hasLines, err := s.accountRepo.HasJournalLines(ctx, accountCode)
	if err != nil {
		return fmt.Errorf("failed to check journal references: %w", err)
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountCode, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_code", accountCode))
		return fmt.Errorf("failed to deactivate account: %w", err)
	}

	s.LogInfo(ctx, "Account deactivated",
		slog.String("account_code", accountCode),
		slog.Bool("has_journal_lines", hasLines))
	return nil
}
