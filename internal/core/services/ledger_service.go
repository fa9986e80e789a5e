package services

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
	portsrepo "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/repositories"
	portssvc "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/services"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/utils/accounting"
)

// ledgerService aggregates journal lines into per-account ledgers.
type ledgerService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountRepositoryFacade
}

// NewLedgerService creates a new general-ledger service.
func NewLedgerService(reportingRepo portsrepo.ReportingRepository, accountRepo portsrepo.AccountRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{reportingRepo: reportingRepo, accountRepo: accountRepo}
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// GeneralLedger computes, per account, the brought-forward opening balance and
// the chronological transaction sequence with a running balance in the
// account's natural sign. Accounts with no in-range activity and a zero
// opening balance are omitted.
func (s *ledgerService) GeneralLedger(ctx context.Context, period portssvc.ReportPeriod, accountCodes []string) ([]domain.LedgerAccount, error) {
	accounts, err := s.resolveAccounts(ctx, accountCodes)
	if err != nil {
		return nil, err
	}

	openings, err := s.reportingRepo.GetOpeningBalances(ctx, period.From, accountCodes)
	if err != nil {
		s.LogError(ctx, err, "Failed to load opening balances")
		return nil, err
	}

	// Lines arrive ordered by entry date, then journal number, so the running
	// balance is deterministic for same-day entries.
	lines, err := s.reportingRepo.GetLedgerLines(ctx, period.From, period.To, accountCodes)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger lines")
		return nil, err
	}

	linesByAccount := make(map[string][]portsrepo.LedgerLine)
	for _, line := range lines {
		linesByAccount[line.AccountCode] = append(linesByAccount[line.AccountCode], line)
	}

	result := make([]domain.LedgerAccount, 0, len(linesByAccount))
	for code, account := range accounts {
		opening := openings[code]
		accountLines := linesByAccount[code]
		if len(accountLines) == 0 && opening.IsZero() {
			continue
		}

		ledger := domain.LedgerAccount{
			Account:        account,
			OpeningBalance: opening,
			Transactions:   make([]domain.LedgerTransaction, 0, len(accountLines)),
			TotalDebit:     decimal.Zero,
			TotalCredit:    decimal.Zero,
		}
		running := opening
		for _, line := range accountLines {
			running = running.Add(accounting.SignedAmount(domain.JournalLine{Debit: line.Debit, Credit: line.Credit}, account.NormalBalance))
			ledger.Transactions = append(ledger.Transactions, domain.LedgerTransaction{
				EntryID:       line.EntryID,
				JournalNumber: line.JournalNumber,
				EntryDate:     line.EntryDate,
				Description:   line.Description,
				Debit:         line.Debit,
				Credit:        line.Credit,
				Balance:       running,
			})
			ledger.TotalDebit = ledger.TotalDebit.Add(line.Debit)
			ledger.TotalCredit = ledger.TotalCredit.Add(line.Credit)
		}
		ledger.ClosingBalance = running
		result = append(result, ledger)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Account.AccountCode < result[j].Account.AccountCode
	})
	return result, nil
}

func (s *ledgerService) resolveAccounts(ctx context.Context, accountCodes []string) (map[string]domain.Account, error) {
	if len(accountCodes) > 0 {
		return s.accountRepo.FindAccountsByCodes(ctx, accountCodes)
	}

	all, err := s.accountRepo.ListAccounts(ctx, true)
	if err != nil {
		return nil, err
	}
	accounts := make(map[string]domain.Account, len(all))
	for _, a := range all {
		accounts[a.AccountCode] = a
	}
	return accounts, nil
}
