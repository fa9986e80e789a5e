package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/apperrors"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
	portsrepo "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/repositories"
)

const periodColumns = `period_id, year, month, status, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPeriodRepository struct {
	BaseRepository
}

// newPgxPeriodRepository creates a new repository for accounting-period data.
func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepository {
	return &PgxPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPeriodRepository implements portsrepo.PeriodRepository
var _ portsrepo.PeriodRepository = (*PgxPeriodRepository)(nil)

func scanPeriod(row pgx.Row) (*domain.AccountingPeriod, error) {
	var p domain.AccountingPeriod
	var month int
	err := row.Scan(
		&p.PeriodID, &p.Year, &month, &p.Status, &p.IsActive,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	p.Month = time.Month(month)
	return &p, nil
}

func (r *PgxPeriodRepository) FindActivePeriod(ctx context.Context) (*domain.AccountingPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods WHERE is_active = TRUE;`
	period, err := scanPeriod(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("active period: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find active period: %w", err)
	}
	return period, nil
}

func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods WHERE period_id = $1;`
	period, err := scanPeriod(r.Pool.QueryRow(ctx, query, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("period %s: %w", periodID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find period %s: %w", periodID, err)
	}
	return period, nil
}

func (r *PgxPeriodRepository) FindPeriodForDate(ctx context.Context, date time.Time) (*domain.AccountingPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods WHERE year = $1 AND month = $2;`
	period, err := scanPeriod(r.Pool.QueryRow(ctx, query, date.Year(), int(date.Month())))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("period for %s: %w", date.Format("2006-01"), apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find period for date %s: %w", date.Format("2006-01-02"), err)
	}
	return period, nil
}

func (r *PgxPeriodRepository) ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods ORDER BY year DESC, month DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	defer rows.Close()

	var periods []domain.AccountingPeriod
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan period row: %w", err)
		}
		periods = append(periods, *period)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating period rows: %w", err)
	}
	return periods, nil
}

func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	query := `
		INSERT INTO accounting_periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		period.PeriodID, period.Year, int(period.Month), period.Status, period.IsActive,
		period.CreatedAt, period.CreatedBy, period.LastUpdatedAt, period.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: period %s", apperrors.ErrDuplicate, period.Label())
		}
		return fmt.Errorf("failed to insert period %s: %w", period.Label(), err)
	}
	return nil
}

func (r *PgxPeriodRepository) UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, userID string, now time.Time) error {
	query := `
		UPDATE accounting_periods
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE period_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, periodID, status, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update status of period %s: %w", periodID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("period %s: %w", periodID, apperrors.ErrNotFound)
	}
	return nil
}

// ActivatePeriod swaps the active flag to the given period in a single
// transaction, deactivating whichever period held it before. The partial
// unique index on is_active backs this up at the schema level.
func (r *PgxPeriodRepository) ActivatePeriod(ctx context.Context, periodID string, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	deactivate := `
		UPDATE accounting_periods
		SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE is_active = TRUE;
	`
	if _, err := tx.Exec(ctx, deactivate, now, userID); err != nil {
		return fmt.Errorf("failed to deactivate current period: %w", err)
	}

	activate := `
		UPDATE accounting_periods
		SET is_active = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE period_id = $1 AND status = $4;
	`
	tag, err := tx.Exec(ctx, activate, periodID, now, userID, domain.PeriodOpen)
	if err != nil {
		return fmt.Errorf("failed to activate period %s: %w", periodID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: period %s is missing or not open", apperrors.ErrConflict, periodID)
	}

	return r.Commit(ctx, tx)
}
