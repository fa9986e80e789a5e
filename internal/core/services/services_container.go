package services

import (
	portsrepo "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/repositories"
	portssvc "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	journalSvc := NewJournalService(repos.JournalRepo, repos.AccountRepo, repos.PeriodRepo)
	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo),
		Journal:     journalSvc,
		AutoJournal: NewAutoJournalService(DefaultAccountMapping(), journalSvc),
		Period:      NewPeriodService(repos.PeriodRepo),
		Ledger:      NewLedgerService(repos.ReportingRepo, repos.AccountRepo),
		Reporting:   NewReportingService(repos.ReportingRepo),
	}
}
