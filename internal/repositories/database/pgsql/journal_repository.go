package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/apperrors"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
	portsrepo "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/repositories"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/utils/pagination"
)

const entryColumns = `entry_id, journal_number, entry_date, journal_type, description,
	reference_type, reference_id, is_auto_generated, status, original_entry_id, reversing_entry_id,
	created_at, created_by, last_updated_at, last_updated_by`

const periodKeyFormat = "200601"

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// nextJournalNumber claims the next value of the per-prefix, per-period
// sequence inside tx. The upsert serializes concurrent claimants on the
// sequence row, so numbers are gapless per (prefix, period) under commit.
func nextJournalNumber(ctx context.Context, tx pgx.Tx, journalType domain.JournalType, entryDate time.Time) (string, error) {
	prefix := journalType.NumberPrefix()
	periodKey := entryDate.Format(periodKeyFormat)

	query := `
		INSERT INTO journal_sequences (prefix, period_key, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (prefix, period_key)
		DO UPDATE SET last_value = journal_sequences.last_value + 1
		RETURNING last_value;
	`
	var n int64
	if err := tx.QueryRow(ctx, query, prefix, periodKey).Scan(&n); err != nil {
		return "", fmt.Errorf("failed to advance journal sequence %s-%s: %w", prefix, periodKey, err)
	}
	return fmt.Sprintf("%s-%s-%04d", prefix, periodKey, n), nil
}

func insertEntry(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, query,
		entry.EntryID, entry.JournalNumber, entry.EntryDate, entry.JournalType, entry.Description,
		entry.ReferenceType, entry.ReferenceID, entry.IsAutoGenerated, entry.Status,
		entry.OriginalEntryID, entry.ReversingEntryID,
		entry.CreatedAt, entry.CreatedBy, entry.LastUpdatedAt, entry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry %s: %w", entry.EntryID, err)
	}
	return nil
}

func insertLines(ctx context.Context, tx pgx.Tx, lines []domain.JournalLine) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO journal_lines (line_id, entry_id, line_number, account_code, debit, credit, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, line := range lines {
		batch.Queue(query, line.LineID, line.EntryID, line.LineNumber, line.AccountCode, line.Debit, line.Credit, line.Description)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range lines {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert journal line: %w", err)
		}
	}
	return nil
}

// SaveEntry assigns the journal number and persists the entry header together
// with its lines in one database transaction.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	entry.JournalNumber, err = nextJournalNumber(ctx, tx, entry.JournalType, entry.EntryDate)
	if err != nil {
		return nil, err
	}
	if err := insertEntry(ctx, tx, entry); err != nil {
		return nil, err
	}
	if err := insertLines(ctx, tx, entry.Lines); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &entry, nil
}

// SaveReversal persists the reversing entry and flips the original's status
// and reversal link in the same transaction.
func (r *PgxJournalRepository) SaveReversal(ctx context.Context, reversing domain.JournalEntry, originalEntryID string, userID string, now time.Time) (*domain.JournalEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	reversing.JournalNumber, err = nextJournalNumber(ctx, tx, reversing.JournalType, reversing.EntryDate)
	if err != nil {
		return nil, err
	}
	if err := insertEntry(ctx, tx, reversing); err != nil {
		return nil, err
	}
	if err := insertLines(ctx, tx, reversing.Lines); err != nil {
		return nil, err
	}

	// The status guard makes concurrent double reversal lose the race here
	// instead of producing two reversing entries.
	updateQuery := `
		UPDATE journal_entries
		SET status = $2, reversing_entry_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE entry_id = $1 AND status = $6;
	`
	tag, err := tx.Exec(ctx, updateQuery, originalEntryID, domain.Reversed, reversing.EntryID, now, userID, domain.Posted)
	if err != nil {
		return nil, fmt.Errorf("failed to mark entry %s reversed: %w", originalEntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: entry %s is no longer in POSTED status", apperrors.ErrConflict, originalEntryID)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &reversing, nil
}

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	err := row.Scan(
		&e.EntryID, &e.JournalNumber, &e.EntryDate, &e.JournalType, &e.Description,
		&e.ReferenceType, &e.ReferenceID, &e.IsAutoGenerated, &e.Status,
		&e.OriginalEntryID, &e.ReversingEntryID,
		&e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`
	entry, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("journal entry %s: %w", entryID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}
	return entry, nil
}

func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, line_number, account_code, debit, credit, description
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY line_number;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	var lines []domain.JournalLine
	for rows.Next() {
		var l domain.JournalLine
		if err := rows.Scan(&l.LineID, &l.EntryID, &l.LineNumber, &l.AccountCode, &l.Debit, &l.Credit, &l.Description); err != nil {
			return nil, fmt.Errorf("failed to scan journal line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal lines: %w", err)
	}
	return lines, nil
}

// ListEntries retrieves a filtered page of entries using keyset pagination on
// (entry_date, journal_number).
func (r *PgxJournalRepository) ListEntries(ctx context.Context, filter portsrepo.ListEntriesFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE 1=1`
	args := []any{}
	argPos := 1

	addArg := func(condition string, value any) {
		query += fmt.Sprintf(" AND "+condition, argPos)
		args = append(args, value)
		argPos++
	}

	if filter.JournalType != nil {
		addArg("journal_type = $%d", *filter.JournalType)
	}
	if filter.ReferenceType != nil {
		addArg("reference_type = $%d", *filter.ReferenceType)
	}
	if filter.ReferenceID != nil {
		addArg("reference_id = $%d", *filter.ReferenceID)
	}
	if filter.FromDate != nil {
		addArg("entry_date >= $%d", *filter.FromDate)
	}
	if filter.ToDate != nil {
		addArg("entry_date <= $%d", *filter.ToDate)
	}

	if nextToken != nil && *nextToken != "" {
		tokenDate, tokenNumber, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += fmt.Sprintf(" AND (entry_date, journal_number) > ($%d, $%d)", argPos, argPos+1)
		args = append(args, tokenDate, tokenNumber)
		argPos += 2
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(" ORDER BY entry_date, journal_number LIMIT $%d;", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating journal entries: %w", err)
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[limit-1]
		t := pagination.EncodeToken(last.EntryDate, last.JournalNumber)
		token = &t
	}
	return entries, token, nil
}
