package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/apperrors"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
	portssvc "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/services"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/services"
)

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountRepo *MockAccountRepository
	mockPeriodRepo  *MockPeriodRepository
	service         portssvc.JournalSvcFacade
	openPeriod      domain.AccountingPeriod
	entryDate       time.Time
	userID          string
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockPeriodRepo = new(MockPeriodRepository)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountRepo, suite.mockPeriodRepo)

	suite.entryDate = time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
	suite.openPeriod = domain.AccountingPeriod{
		PeriodID: uuid.NewString(),
		Year:     2026,
		Month:    time.September,
		Status:   domain.PeriodOpen,
		IsActive: true,
	}
	suite.userID = "teller-1"
}

func (suite *JournalServiceTestSuite) knownAccounts(codes ...string) map[string]domain.Account {
	accounts := make(map[string]domain.Account, len(codes))
	for _, code := range codes {
		accounts[code] = domain.Account{AccountCode: code, AccountType: domain.Asset, NormalBalance: domain.DebitNormal, IsActive: true}
	}
	return accounts
}

func (suite *JournalServiceTestSuite) balancedDraft() domain.JournalEntry {
	return domain.JournalEntry{
		EntryDate:   suite.entryDate,
		Description: "Setoran kas",
		Lines: []domain.JournalLine{
			{AccountCode: "1-1100", Debit: decimal.NewFromInt(100000), Credit: decimal.Zero},
			{AccountCode: "1-1200", Debit: decimal.Zero, Credit: decimal.NewFromInt(100000)},
		},
	}
}

func (suite *JournalServiceTestSuite) TestPostEntry_Success() {
	ctx := context.Background()
	draft := suite.balancedDraft()

	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, []string{"1-1100", "1-1200"}).
		Return(suite.knownAccounts("1-1100", "1-1200"), nil).Once()
	suite.mockPeriodRepo.On("FindPeriodForDate", ctx, suite.entryDate).Return(&suite.openPeriod, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).
		Run(func(args mock.Arguments) {
			saved := args.Get(1).(domain.JournalEntry)
			assert.NotEmpty(suite.T(), saved.EntryID)
			assert.Equal(suite.T(), domain.Posted, saved.Status)
			assert.Equal(suite.T(), domain.GeneralJournal, saved.JournalType)
			assert.Equal(suite.T(), suite.userID, saved.CreatedBy)
			for i, line := range saved.Lines {
				assert.Equal(suite.T(), i+1, line.LineNumber)
				assert.Equal(suite.T(), saved.EntryID, line.EntryID)
				assert.NotEmpty(suite.T(), line.LineID)
			}
		}).
		Return(&domain.JournalEntry{EntryID: "e1", JournalNumber: "JU-202609-0001"}, nil).Once()

	entry, err := suite.service.PostEntry(ctx, draft, suite.userID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "JU-202609-0001", entry.JournalNumber)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostEntry_UnbalancedRejectedBeforeAnyWrite() {
	ctx := context.Background()
	draft := suite.balancedDraft()
	draft.Lines[1].Credit = decimal.NewFromInt(90000)

	entry, err := suite.service.PostEntry(ctx, draft, suite.userID)

	assert.Nil(suite.T(), entry)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Contains(suite.T(), err.Error(), "100000")
	assert.Contains(suite.T(), err.Error(), "90000")
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_WithinToleranceAccepted() {
	ctx := context.Background()
	draft := suite.balancedDraft()
	draft.Lines[1].Credit = decimal.NewFromFloat(99999.99)

	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, mock.Anything).
		Return(suite.knownAccounts("1-1100", "1-1200"), nil).Once()
	suite.mockPeriodRepo.On("FindPeriodForDate", ctx, suite.entryDate).Return(&suite.openPeriod, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.Anything).
		Return(&domain.JournalEntry{EntryID: "e1", JournalNumber: "JU-202609-0002"}, nil).Once()

	_, err := suite.service.PostEntry(ctx, draft, suite.userID)

	assert.NoError(suite.T(), err)
}

func (suite *JournalServiceTestSuite) TestPostEntry_TooFewLines() {
	ctx := context.Background()
	draft := suite.balancedDraft()
	draft.Lines = draft.Lines[:1]

	_, err := suite.service.PostEntry(ctx, draft, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestPostEntry_LineWithBothSidesRejected() {
	ctx := context.Background()
	draft := suite.balancedDraft()
	draft.Lines[0].Credit = decimal.NewFromInt(1)
	draft.Lines[1].Credit = decimal.NewFromInt(100001)

	_, err := suite.service.PostEntry(ctx, draft, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Contains(suite.T(), err.Error(), "both debit and credit")
}

func (suite *JournalServiceTestSuite) TestPostEntry_ClosedPeriodRejected() {
	ctx := context.Background()
	draft := suite.balancedDraft()
	closed := suite.openPeriod
	closed.Status = domain.PeriodClosed

	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, mock.Anything).
		Return(suite.knownAccounts("1-1100", "1-1200"), nil).Once()
	suite.mockPeriodRepo.On("FindPeriodForDate", ctx, suite.entryDate).Return(&closed, nil).Once()

	entry, err := suite.service.PostEntry(ctx, draft, suite.userID)

	assert.Nil(suite.T(), entry)
	assert.ErrorIs(suite.T(), err, apperrors.ErrClosedPeriod)
	assert.Contains(suite.T(), err.Error(), "2026-09")
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostEntry_MissingPeriodRejected() {
	ctx := context.Background()
	draft := suite.balancedDraft()

	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, mock.Anything).
		Return(suite.knownAccounts("1-1100", "1-1200"), nil).Once()
	suite.mockPeriodRepo.On("FindPeriodForDate", ctx, suite.entryDate).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.PostEntry(ctx, draft, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestPostEntry_UnknownAccountRejected() {
	ctx := context.Background()
	draft := suite.balancedDraft()

	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, mock.Anything).
		Return(suite.knownAccounts("1-1100"), nil).Once()

	_, err := suite.service.PostEntry(ctx, draft, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Contains(suite.T(), err.Error(), "1-1200")
}

func (suite *JournalServiceTestSuite) TestReverseEntry_SwapsEveryLineAndLinksOriginal() {
	ctx := context.Background()
	originalID := uuid.NewString()
	original := &domain.JournalEntry{
		EntryID:       originalID,
		JournalNumber: "JU-202609-0007",
		EntryDate:     suite.entryDate,
		JournalType:   domain.GeneralJournal,
		Description:   "Setoran kas",
		Status:        domain.Posted,
	}
	lines := []domain.JournalLine{
		{LineID: "l1", EntryID: originalID, LineNumber: 1, AccountCode: "1-1100", Debit: decimal.NewFromInt(100000), Credit: decimal.Zero},
		{LineID: "l2", EntryID: originalID, LineNumber: 2, AccountCode: "3-1200", Debit: decimal.Zero, Credit: decimal.NewFromInt(100000)},
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, originalID).Return(original, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, originalID).Return(lines, nil).Once()
	suite.mockPeriodRepo.On("FindPeriodForDate", ctx, suite.entryDate).Return(&suite.openPeriod, nil).Once()
	suite.mockJournalRepo.On("SaveReversal", ctx, mock.AnythingOfType("domain.JournalEntry"), originalID, suite.userID, mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			reversing := args.Get(1).(domain.JournalEntry)
			assert.Equal(suite.T(), domain.ReversingType, reversing.JournalType)
			suite.Require().NotNil(reversing.OriginalEntryID)
			assert.Equal(suite.T(), originalID, *reversing.OriginalEntryID)
			suite.Require().Len(reversing.Lines, 2)
			assert.True(suite.T(), reversing.Lines[0].Credit.Equal(decimal.NewFromInt(100000)))
			assert.True(suite.T(), reversing.Lines[0].Debit.IsZero())
			assert.True(suite.T(), reversing.Lines[1].Debit.Equal(decimal.NewFromInt(100000)))
			assert.Contains(suite.T(), reversing.Description, "JU-202609-0007")
		}).
		Return(&domain.JournalEntry{EntryID: "r1", JournalNumber: "JB-202609-0001"}, nil).Once()

	reversing, err := suite.service.ReverseEntry(ctx, originalID, suite.userID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "JB-202609-0001", reversing.JournalNumber)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestReverseEntry_ReversingAReversalConflicts() {
	ctx := context.Background()
	entryID := uuid.NewString()
	reversal := &domain.JournalEntry{
		EntryID:     entryID,
		JournalType: domain.ReversingType,
		Status:      domain.Posted,
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(reversal, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return([]domain.JournalLine{}, nil).Once()

	_, err := suite.service.ReverseEntry(ctx, entryID, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveReversal", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestReverseEntry_AlreadyReversedConflicts() {
	ctx := context.Background()
	entryID := uuid.NewString()
	reversed := &domain.JournalEntry{
		EntryID:     entryID,
		JournalType: domain.GeneralJournal,
		Status:      domain.Reversed,
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(reversed, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return([]domain.JournalLine{}, nil).Once()

	_, err := suite.service.ReverseEntry(ctx, entryID, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
}

func (suite *JournalServiceTestSuite) TestGetEntryByID_LoadsLines() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entry := &domain.JournalEntry{EntryID: entryID, Status: domain.Posted}
	lines := []domain.JournalLine{{LineID: "l1", EntryID: entryID, LineNumber: 1, AccountCode: "1-1100", Debit: decimal.NewFromInt(5000)}}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return(lines, nil).Once()

	got, err := suite.service.GetEntryByID(ctx, entryID)

	suite.Require().NoError(err)
	suite.Require().Len(got.Lines, 1)
	assert.Equal(suite.T(), "1-1100", got.Lines[0].AccountCode)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
