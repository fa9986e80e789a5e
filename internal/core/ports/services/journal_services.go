package services

import (
	"context"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/dto"
)

// JournalSvcFacade defines journal posting and retrieval operations.
type JournalSvcFacade interface {
	// PostEntry validates a journal draft (balance within tolerance, line
	// shape, open period) and persists it atomically, assigning the journal
	// number. The returned entry is the persisted, immutable record.
	PostEntry(ctx context.Context, draft domain.JournalEntry, creatorUserID string) (*domain.JournalEntry, error)

	// PostFromRequest builds a manual journal draft from a request DTO and
	// posts it.
	PostFromRequest(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error)

	// ReverseEntry creates a reversing entry with debit and credit swapped
	// on every line, referencing the original. The original is never
	// mutated in place.
	ReverseEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error)

	// GetEntryByID retrieves an entry with its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a filtered, token-paginated list of entries.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// AutoJournalSvcFacade generates balanced journal drafts from business events.
type AutoJournalSvcFacade interface {
	// Generate maps a business transaction onto a balanced journal-entry
	// draft with IsAutoGenerated set. It performs no persistence.
	Generate(ctx context.Context, txn domain.BusinessTransaction) (*domain.JournalEntry, error)

	// GenerateAndPost generates the draft and posts it through the journal
	// service in one call, for callers that want the financial posting and
	// the journal to succeed or fail together.
	GenerateAndPost(ctx context.Context, txn domain.BusinessTransaction) (*domain.JournalEntry, error)
}
