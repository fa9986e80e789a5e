package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/apperrors"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
	portssvc "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/services"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/services"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DerivesNormalBalanceAndCategory() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		AccountCode: "4-2100",
		Name:        "Pendapatan Lain-lain",
		AccountType: "REVENUE",
	}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "4-2100").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(domain.Account)
			assert.Equal(suite.T(), domain.CreditNormal, account.NormalBalance)
			assert.Equal(suite.T(), domain.CategoryNonOperatingIncome, account.ReportingCategory)
			assert.True(suite.T(), account.IsActive)
			assert.Equal(suite.T(), "admin-1", account.CreatedBy)
		}).
		Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, "admin-1")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "4-2100", account.AccountCode)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NormalBalanceMismatchRejected() {
	debit := "DEBIT"
	req := dto.CreateAccountRequest{
		AccountCode:   "4-1200",
		Name:          "Pendapatan Administrasi",
		AccountType:   "REVENUE",
		NormalBalance: &debit,
	}

	account, err := suite.service.CreateAccount(context.Background(), req, "admin-1")

	assert.Nil(suite.T(), account)
	assert.ErrorIs(suite.T(), err, services.ErrNormalBalanceMismatch)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownTypeRejected() {
	req := dto.CreateAccountRequest{
		AccountCode: "6-1000",
		Name:        "Misterius",
		AccountType: "CONTRA_ASSET",
	}

	account, err := suite.service.CreateAccount(context.Background(), req, "admin-1")

	assert.Nil(suite.T(), account)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCodeRejected() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		AccountCode: "1-1100",
		Name:        "Kas",
		AccountType: "ASSET",
	}
	existing := &domain.Account{AccountCode: "1-1100", Name: "Kas", AccountType: domain.Asset}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "1-1100").Return(existing, nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, "admin-1")

	assert.Nil(suite.T(), account)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicate)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentTypeMismatchRejected() {
	ctx := context.Background()
	parentCode := "1-1000"
	req := dto.CreateAccountRequest{
		AccountCode: "5-1300",
		Name:        "Beban Listrik",
		AccountType: "EXPENSE",
		ParentCode:  &parentCode,
	}
	parent := &domain.Account{AccountCode: "1-1000", Name: "Aset Lancar", AccountType: domain.Asset}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "5-1300").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, "1-1000").Return(parent, nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, "admin-1")

	assert.Nil(suite.T(), account)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialFields() {
	ctx := context.Background()
	existing := &domain.Account{
		AccountCode: "1-1200",
		Name:        "Bank",
		AccountType: domain.Asset,
		Description: "Rekening giro",
	}
	newName := "Bank BRI"

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "1-1200").Return(existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(domain.Account)
			assert.Equal(suite.T(), "Bank BRI", account.Name)
			assert.Equal(suite.T(), "Rekening giro", account.Description)
			assert.Equal(suite.T(), "admin-1", account.LastUpdatedBy)
		}).
		Return(nil).Once()

	account, err := suite.service.UpdateAccount(ctx, "1-1200", dto.UpdateAccountRequest{Name: &newName}, "admin-1")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Bank BRI", account.Name)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NoFieldsIsNoOp() {
	ctx := context.Background()
	existing := &domain.Account{AccountCode: "1-1200", Name: "Bank", AccountType: domain.Asset}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "1-1200").Return(existing, nil).Once()

	account, err := suite.service.UpdateAccount(ctx, "1-1200", dto.UpdateAccountRequest{}, "admin-1")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Bank", account.Name)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_SoftDeletesReferencedAccount() {
	ctx := context.Background()
	existing := &domain.Account{AccountCode: "1-1100", Name: "Kas", AccountType: domain.Asset, IsActive: true}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "1-1100").Return(existing, nil).Once()
	suite.mockAccountRepo.On("HasJournalLines", ctx, "1-1100").Return(true, nil).Once()
	suite.mockAccountRepo.On("DeactivateAccount", ctx, "1-1100", "admin-1", mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, "1-1100", "admin-1")

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_MissingAccount() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, "9-9999").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateAccount(ctx, "9-9999", "admin-1")

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeactivateAccount",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
