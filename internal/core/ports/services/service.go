package services

// ServiceContainer bundles all service implementations for injection into
// the transport layer.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Journal     JournalSvcFacade
	AutoJournal AutoJournalSvcFacade
	Period      PeriodSvcFacade
	Ledger      LedgerSvcFacade
	Reporting   ReportingSvcFacade
}
