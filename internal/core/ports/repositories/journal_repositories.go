package repositories

import (
	"context"
	"time"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
)

// ListEntriesFilter narrows a journal listing.
type ListEntriesFilter struct {
	JournalType   *domain.JournalType
	ReferenceType *string
	ReferenceID   *string
	FromDate      *time.Time
	ToDate        *time.Time
}

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindEntryByID retrieves a journal entry header by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a filtered, token-paginated list of entries.
	// It returns the entries, a token for the next page, and an error.
	ListEntries(ctx context.Context, filter ListEntriesFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveEntry assigns the journal number from the per-period sequence and
	// persists the entry header together with its lines in one database
	// transaction. It returns the persisted entry.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error)

	// SaveReversal persists the reversing entry and marks the original as
	// reversed, linking the two, atomically. It returns the persisted
	// reversing entry.
	SaveReversal(ctx context.Context, reversing domain.JournalEntry, originalEntryID string, userID string, now time.Time) (*domain.JournalEntry, error)
}

// LineReader defines read operations for journal line data
type LineReader interface {
	// FindLinesByEntryID retrieves all lines of one entry ordered by line number.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
	LineReader
}
