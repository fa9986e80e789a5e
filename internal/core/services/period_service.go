package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/apperrors"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
	portsrepo "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/repositories"
	portssvc "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/services"
)

// periodService implements accounting-period lifecycle operations.
type periodService struct {
	BaseService
	periodRepo portsrepo.PeriodRepository
}

// NewPeriodService creates a new period service.
func NewPeriodService(repo portsrepo.PeriodRepository) portssvc.PeriodSvcFacade {
	return &periodService{periodRepo: repo}
}

// Ensure periodService implements the PeriodSvcFacade interface
var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

func (s *periodService) GetActivePeriod(ctx context.Context) (*domain.AccountingPeriod, error) {
	return s.periodRepo.FindActivePeriod(ctx)
}

func (s *periodService) GetPeriodForDate(ctx context.Context, date time.Time) (*domain.AccountingPeriod, error) {
	return s.periodRepo.FindPeriodForDate(ctx, date)
}

func (s *periodService) ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error) {
	return s.periodRepo.ListPeriods(ctx)
}

func (s *periodService) OpenPeriod(ctx context.Context, year int, month time.Month, userID string) (*domain.AccountingPeriod, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month must be between 1 and 12, got %d", apperrors.ErrValidation, month)
	}

	existing, err := s.periodRepo.FindPeriodForDate(ctx, time.Date(year, month, 15, 0, 0, 0, 0, time.UTC))
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing period: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: period %s already exists", apperrors.ErrDuplicate, existing.Label())
	}

	now := time.Now().UTC()
	period := domain.AccountingPeriod{
		PeriodID: uuid.NewString(),
		Year:     year,
		Month:    month,
		Status:   domain.PeriodOpen,
		IsActive: false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		s.LogError(ctx, err, "Failed to save period", slog.String("period", period.Label()))
		return nil, err
	}

	s.LogInfo(ctx, "Accounting period opened", slog.String("period", period.Label()))
	return &period, nil
}

func (s *periodService) ClosePeriod(ctx context.Context, periodID string, userID string) error {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return err
	}
	if period.Status != domain.PeriodOpen {
		return fmt.Errorf("%w: period %s is already closed", apperrors.ErrConflict, period.Label())
	}

	if err := s.periodRepo.UpdatePeriodStatus(ctx, periodID, domain.PeriodClosed, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to close period", slog.String("period", period.Label()))
		return err
	}

	s.LogInfo(ctx, "Accounting period closed", slog.String("period", period.Label()))
	return nil
}

func (s *periodService) ReopenPeriod(ctx context.Context, periodID string, userID string) error {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return err
	}
	if period.Status != domain.PeriodClosed {
		return fmt.Errorf("%w: period %s is not closed", apperrors.ErrConflict, period.Label())
	}

	if err := s.periodRepo.UpdatePeriodStatus(ctx, periodID, domain.PeriodOpen, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to reopen period", slog.String("period", period.Label()))
		return err
	}

	s.LogInfo(ctx, "Accounting period reopened", slog.String("period", period.Label()))
	return nil
}

func (s *periodService) ActivatePeriod(ctx context.Context, periodID string, userID string) error {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return err
	}
	if period.Status != domain.PeriodOpen {
		return fmt.Errorf("%w: cannot activate closed period %s", apperrors.ErrConflict, period.Label())
	}
	if period.IsActive {
		return nil
	}

	// The repository swaps the active flag in one transaction; there is never
	// a moment with zero or two active periods.
	if err := s.periodRepo.ActivatePeriod(ctx, periodID, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to activate period", slog.String("period", period.Label()))
		return err
	}

	s.LogInfo(ctx, "Accounting period activated", slog.String("period", period.Label()))
	return nil
}
