package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
	portsrepo "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/repositories"
	portssvc "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/services"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/services"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockAccountRepo   *MockAccountRepository
	service           portssvc.LedgerSvcFacade
	period            portssvc.ReportPeriod
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewLedgerService(suite.mockReportingRepo, suite.mockAccountRepo)
	suite.period = portssvc.ReportPeriod{
		From: time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *LedgerServiceTestSuite) kasAccount() domain.Account {
	return domain.Account{
		AccountCode:   "1-1100",
		Name:          "Kas",
		AccountType:   domain.Asset,
		NormalBalance: domain.DebitNormal,
		IsActive:      true,
	}
}

func (suite *LedgerServiceTestSuite) TestGeneralLedger_RunningBalanceFromOpening() {
	ctx := context.Background()
	codes := []string{"1-1100"}
	kas := suite.kasAccount()

	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, codes).
		Return(map[string]domain.Account{"1-1100": kas}, nil).Once()
	suite.mockReportingRepo.On("GetOpeningBalances", ctx, suite.period.From, codes).
		Return(map[string]decimal.Decimal{"1-1100": decimal.NewFromInt(1000000)}, nil).Once()
	suite.mockReportingRepo.On("GetLedgerLines", ctx, suite.period.From, suite.period.To, codes).
		Return([]portsrepo.LedgerLine{
			{AccountCode: "1-1100", EntryID: "e1", JournalNumber: "JU-202609-0001",
				EntryDate:   time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC),
				Description: "Setoran Simpanan Wajib anggota AGT-0042",
				Debit:       decimal.NewFromInt(500000), Credit: decimal.Zero},
			{AccountCode: "1-1100", EntryID: "e2", JournalNumber: "JU-202609-0002",
				EntryDate:   time.Date(2026, time.September, 20, 0, 0, 0, 0, time.UTC),
				Description: "Penarikan Simpanan Sukarela anggota AGT-0042",
				Debit:       decimal.Zero, Credit: decimal.NewFromInt(200000)},
		}, nil).Once()

	ledgers, err := suite.service.GeneralLedger(ctx, suite.period, codes)

	suite.Require().NoError(err)
	suite.Require().Len(ledgers, 1)

	ledger := ledgers[0]
	assert.Equal(suite.T(), "1-1100", ledger.Account.AccountCode)
	assert.True(suite.T(), ledger.OpeningBalance.Equal(decimal.NewFromInt(1000000)))
	suite.Require().Len(ledger.Transactions, 2)

	// Debit-normal account: a debit raises the balance, a credit lowers it.
	assert.True(suite.T(), ledger.Transactions[0].Balance.Equal(decimal.NewFromInt(1500000)))
	assert.True(suite.T(), ledger.Transactions[1].Balance.Equal(decimal.NewFromInt(1300000)))
	assert.True(suite.T(), ledger.ClosingBalance.Equal(decimal.NewFromInt(1300000)))
	assert.True(suite.T(), ledger.TotalDebit.Equal(decimal.NewFromInt(500000)))
	assert.True(suite.T(), ledger.TotalCredit.Equal(decimal.NewFromInt(200000)))
}

func (suite *LedgerServiceTestSuite) TestGeneralLedger_CreditNormalAccountSign() {
	ctx := context.Background()
	codes := []string{"2-1100"}
	simpanan := domain.Account{
		AccountCode:   "2-1100",
		Name:          "Simpanan Sukarela",
		AccountType:   domain.Liability,
		NormalBalance: domain.CreditNormal,
		IsActive:      true,
	}

	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, codes).
		Return(map[string]domain.Account{"2-1100": simpanan}, nil).Once()
	suite.mockReportingRepo.On("GetOpeningBalances", ctx, suite.period.From, codes).
		Return(map[string]decimal.Decimal{}, nil).Once()
	suite.mockReportingRepo.On("GetLedgerLines", ctx, suite.period.From, suite.period.To, codes).
		Return([]portsrepo.LedgerLine{
			{AccountCode: "2-1100", EntryID: "e1", JournalNumber: "JU-202609-0001",
				EntryDate: time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC),
				Debit:     decimal.Zero, Credit: decimal.NewFromInt(300000)},
			{AccountCode: "2-1100", EntryID: "e2", JournalNumber: "JU-202609-0002",
				EntryDate: time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC),
				Debit:     decimal.NewFromInt(100000), Credit: decimal.Zero},
		}, nil).Once()

	ledgers, err := suite.service.GeneralLedger(ctx, suite.period, codes)

	suite.Require().NoError(err)
	suite.Require().Len(ledgers, 1)
	ledger := ledgers[0]
	assert.True(suite.T(), ledger.OpeningBalance.IsZero())
	assert.True(suite.T(), ledger.Transactions[0].Balance.Equal(decimal.NewFromInt(300000)))
	assert.True(suite.T(), ledger.Transactions[1].Balance.Equal(decimal.NewFromInt(200000)))
	assert.True(suite.T(), ledger.ClosingBalance.Equal(decimal.NewFromInt(200000)))
}

func (suite *LedgerServiceTestSuite) TestGeneralLedger_OmitsIdleAccountsKeepsCarriedBalances() {
	ctx := context.Background()

	kas := suite.kasAccount()
	bank := domain.Account{AccountCode: "1-1200", Name: "Bank",
		AccountType: domain.Asset, NormalBalance: domain.DebitNormal, IsActive: true}
	piutang := domain.Account{AccountCode: "1-1300", Name: "Piutang Pinjaman",
		AccountType: domain.Asset, NormalBalance: domain.DebitNormal, IsActive: true}

	// No explicit filter: every account is resolved, then idle zero-balance
	// ones are dropped from the report.
	suite.mockAccountRepo.On("ListAccounts", ctx, true).
		Return([]domain.Account{kas, bank, piutang}, nil).Once()
	suite.mockReportingRepo.On("GetOpeningBalances", ctx, suite.period.From, []string(nil)).
		Return(map[string]decimal.Decimal{"1-1200": decimal.NewFromInt(750000)}, nil).Once()
	suite.mockReportingRepo.On("GetLedgerLines", ctx, suite.period.From, suite.period.To, []string(nil)).
		Return([]portsrepo.LedgerLine{
			{AccountCode: "1-1100", EntryID: "e1", JournalNumber: "JU-202609-0001",
				EntryDate: time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC),
				Debit:     decimal.NewFromInt(500000), Credit: decimal.Zero},
		}, nil).Once()

	ledgers, err := suite.service.GeneralLedger(ctx, suite.period, nil)

	suite.Require().NoError(err)
	suite.Require().Len(ledgers, 2)

	// Sorted by account code: active Kas first, then idle Bank with its
	// brought-forward balance. Piutang has neither and is omitted.
	assert.Equal(suite.T(), "1-1100", ledgers[0].Account.AccountCode)
	assert.Equal(suite.T(), "1-1200", ledgers[1].Account.AccountCode)
	assert.True(suite.T(), ledgers[1].OpeningBalance.Equal(decimal.NewFromInt(750000)))
	assert.True(suite.T(), ledgers[1].ClosingBalance.Equal(decimal.NewFromInt(750000)))
	assert.Empty(suite.T(), ledgers[1].Transactions)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
