package services

import (
	"context"
	"time"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
)

// PeriodSvcFacade defines accounting-period lifecycle operations.
type PeriodSvcFacade interface {
	// GetActivePeriod retrieves the single active period.
	GetActivePeriod(ctx context.Context) (*domain.AccountingPeriod, error)

	// GetPeriodForDate retrieves the period covering the given date.
	GetPeriodForDate(ctx context.Context, date time.Time) (*domain.AccountingPeriod, error)

	// ListPeriods lists all periods, newest first.
	ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error)

	// OpenPeriod creates a new open period for the given year and month.
	OpenPeriod(ctx context.Context, year int, month time.Month, userID string) (*domain.AccountingPeriod, error)

	// ClosePeriod transitions an open period to closed.
	ClosePeriod(ctx context.Context, periodID string, userID string) error

	// ReopenPeriod transitions a closed period back to open, for prior
	// period adjustments.
	ReopenPeriod(ctx context.Context, periodID string, userID string) error

	// ActivatePeriod atomically switches the active period flag to the
	// given open period.
	ActivatePeriod(ctx context.Context, periodID string, userID string) error
}
