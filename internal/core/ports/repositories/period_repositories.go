package repositories

import (
	"context"
	"time"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
)

// PeriodRepository defines operations for accounting-period data.
type PeriodRepository interface {
	// FindActivePeriod retrieves the single active period.
	FindActivePeriod(ctx context.Context) (*domain.AccountingPeriod, error)

	// FindPeriodByID retrieves a period by its identifier.
	FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error)

	// FindPeriodForDate retrieves the period covering the given date, if any.
	FindPeriodForDate(ctx context.Context, date time.Time) (*domain.AccountingPeriod, error)

	// ListPeriods retrieves all periods ordered by year and month descending.
	ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error)

	// SavePeriod persists a new period.
	SavePeriod(ctx context.Context, period domain.AccountingPeriod) error

	// UpdatePeriodStatus sets the open/closed status of a period.
	UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, userID string, now time.Time) error

	// ActivatePeriod deactivates the currently active period and activates
	// the given one in a single database transaction, so there is never a
	// window with zero or two active periods.
	ActivatePeriod(ctx context.Context, periodID string, userID string, now time.Time) error
}
