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
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/dto"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/utils/accounting"
)

const dateLayout = "2006-01-02"

// journalService implements posting, reversal and retrieval of journal entries.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	periodRepo  portsrepo.PeriodRepository
}

// NewJournalService creates a new journal service.
func NewJournalService(
	journalRepo portsrepo.JournalRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	periodRepo portsrepo.PeriodRepository,
) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		periodRepo:  periodRepo,
	}
}

// Ensure journalService implements the JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// PostEntry validates the draft and persists it atomically. The journal
// number is assigned inside the repository transaction so two concurrent
// posts in the same period can never collide.
func (s *journalService) PostEntry(ctx context.Context, draft domain.JournalEntry, creatorUserID string) (*domain.JournalEntry, error) {
	if err := s.validateDraft(ctx, &draft); err != nil {
		return nil, err
	}

	if err := s.requireOpenPeriod(ctx, draft.EntryDate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	draft.EntryID = uuid.NewString()
	draft.Status = domain.Posted
	draft.CreatedAt = now
	draft.CreatedBy = creatorUserID
	draft.LastUpdatedAt = now
	draft.LastUpdatedBy = creatorUserID
	if draft.JournalType == "" {
		draft.JournalType = domain.GeneralJournal
	}
	for i := range draft.Lines {
		draft.Lines[i].LineID = uuid.NewString()
		draft.Lines[i].EntryID = draft.EntryID
		draft.Lines[i].LineNumber = i + 1
	}

	saved, err := s.journalRepo.SaveEntry(ctx, draft)
	if err != nil {
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("entry_id", draft.EntryID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry posted",
		slog.String("entry_id", saved.EntryID),
		slog.String("journal_number", saved.JournalNumber),
		slog.String("journal_type", string(saved.JournalType)),
		slog.Bool("auto_generated", saved.IsAutoGenerated))
	return saved, nil
}

// PostFromRequest builds a manual journal draft from the request DTO and posts it.
func (s *journalService) PostFromRequest(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	journalType := domain.GeneralJournal
	if req.JournalType != "" {
		journalType = domain.JournalType(req.JournalType)
	}

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, lr := range req.Lines {
		lines[i] = domain.JournalLine{
			LineNumber:  i + 1,
			AccountCode: lr.AccountCode,
			Debit:       lr.Debit,
			Credit:      lr.Credit,
			Description: lr.Description,
		}
	}

	draft := domain.JournalEntry{
		EntryDate:     req.EntryDate,
		JournalType:   journalType,
		Description:   req.Description,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		Lines:         lines,
	}
	return s.PostEntry(ctx, draft, creatorUserID)
}

// ReverseEntry creates a reversing entry with debit and credit swapped on
// every line and links it to the original. The original keeps its lines and
// amounts untouched; only its status and reversal link change, atomically
// with the insert of the reversing entry.
func (s *journalService) ReverseEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	original, err := s.GetEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if original.JournalType == domain.ReversingType {
		return nil, fmt.Errorf("%w: entry %s is itself a reversing entry", apperrors.ErrConflict, original.JournalNumber)
	}
	if original.Status != domain.Posted {
		return nil, fmt.Errorf("%w: entry %s has status %s and cannot be reversed", apperrors.ErrConflict, original.JournalNumber, original.Status)
	}

	// A reversal is booked on the original entry date. If that period has
	// since been closed it must be reopened first.
	if err := s.requireOpenPeriod(ctx, original.EntryDate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reversing := domain.JournalEntry{
		EntryID:         uuid.NewString(),
		EntryDate:       original.EntryDate,
		JournalType:     domain.ReversingType,
		Description:     fmt.Sprintf("Pembalikan %s: %s", original.JournalNumber, original.Description),
		ReferenceType:   original.ReferenceType,
		ReferenceID:     original.ReferenceID,
		IsAutoGenerated: original.IsAutoGenerated,
		Status:          domain.Posted,
		OriginalEntryID: &original.EntryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	reversing.Lines = make([]domain.JournalLine, len(original.Lines))
	for i, line := range original.Lines {
		reversing.Lines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     reversing.EntryID,
			LineNumber:  line.LineNumber,
			AccountCode: line.AccountCode,
			Debit:       line.Credit,
			Credit:      line.Debit,
			Description: line.Description,
		}
	}

	saved, err := s.journalRepo.SaveReversal(ctx, reversing, original.EntryID, userID, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to save reversal",
			slog.String("original_entry_id", original.EntryID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry reversed",
		slog.String("original_journal_number", original.JournalNumber),
		slog.String("reversing_journal_number", saved.JournalNumber))
	return saved, nil
}

func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load lines for entry", slog.String("entry_id", entryID))
		return nil, err
	}
	entry.Lines = lines
	return entry, nil
}

func (s *journalService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	filter := portsrepo.ListEntriesFilter{
		ReferenceType: params.ReferenceType,
		ReferenceID:   params.ReferenceID,
	}
	if params.JournalType != nil {
		jt := domain.JournalType(*params.JournalType)
		filter.JournalType = &jt
	}
	if params.FromDate != nil {
		from, err := time.Parse(dateLayout, *params.FromDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid fromDate %q, expected YYYY-MM-DD", apperrors.ErrValidation, *params.FromDate)
		}
		filter.FromDate = &from
	}
	if params.ToDate != nil {
		to, err := time.Parse(dateLayout, *params.ToDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid toDate %q, expected YYYY-MM-DD", apperrors.ErrValidation, *params.ToDate)
		}
		filter.ToDate = &to
	}

	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	entries, nextToken, err := s.journalRepo.ListEntries(ctx, filter, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, err
	}

	res := &dto.ListEntriesResponse{
		Entries:   make([]dto.JournalEntryResponse, len(entries)),
		NextToken: nextToken,
	}
	for i := range entries {
		res.Entries[i] = dto.ToJournalEntryResponse(&entries[i])
	}
	return res, nil
}

// validateDraft enforces the line-shape and balance invariants before any
// database work happens.
func (s *journalService) validateDraft(ctx context.Context, draft *domain.JournalEntry) error {
	if len(draft.Lines) < 2 {
		return fmt.Errorf("%w: a journal entry requires at least 2 lines, got %d", apperrors.ErrValidation, len(draft.Lines))
	}
	if draft.Description == "" {
		return fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if draft.EntryDate.IsZero() {
		return fmt.Errorf("%w: entry date is required", apperrors.ErrValidation)
	}

	codes := make([]string, 0, len(draft.Lines))
	for i, line := range draft.Lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w: line %d has a negative amount", apperrors.ErrValidation, i+1)
		}
		hasDebit := line.Debit.IsPositive()
		hasCredit := line.Credit.IsPositive()
		if hasDebit && hasCredit {
			return fmt.Errorf("%w: line %d has both debit and credit set", apperrors.ErrValidation, i+1)
		}
		if !hasDebit && !hasCredit {
			return fmt.Errorf("%w: line %d has neither debit nor credit set", apperrors.ErrValidation, i+1)
		}
		codes = append(codes, line.AccountCode)
	}

	check := accounting.ValidateJournalBalance(draft.Lines)
	if !check.IsBalanced && !accounting.WithinTolerance(check.Difference) {
		return fmt.Errorf("%w: entry is not balanced: total debit %s, total credit %s",
			apperrors.ErrValidation, check.TotalDebit.String(), check.TotalCredit.String())
	}

	accounts, err := s.accountRepo.FindAccountsByCodes(ctx, codes)
	if err != nil {
		return fmt.Errorf("failed to resolve line accounts: %w", err)
	}
	for i, code := range codes {
		account, ok := accounts[code]
		if !ok {
			return fmt.Errorf("%w: line %d references unknown account %s", apperrors.ErrValidation, i+1, code)
		}
		if !account.IsActive {
			return fmt.Errorf("%w: line %d references inactive account %s", apperrors.ErrValidation, i+1, code)
		}
	}
	return nil
}

// requireOpenPeriod rejects postings whose entry date does not fall inside an
// open accounting period.
func (s *journalService) requireOpenPeriod(ctx context.Context, entryDate time.Time) error {
	period, err := s.periodRepo.FindPeriodForDate(ctx, entryDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: no accounting period covers %s; open the period first",
				apperrors.ErrValidation, entryDate.Format(dateLayout))
		}
		return fmt.Errorf("failed to resolve accounting period: %w", err)
	}
	if period.Status != domain.PeriodOpen {
		return fmt.Errorf("%w: period %s is closed; reopen it or change the entry date",
			apperrors.ErrClosedPeriod, period.Label())
	}
	return nil
}
