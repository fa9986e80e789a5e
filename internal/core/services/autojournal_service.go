package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/apperrors"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
	portssvc "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/services"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/utils/accounting"
)

// ErrUnsupportedTransactionType indicates a transaction type with no
// registered generator. This is a programming error, not user input.
var ErrUnsupportedTransactionType = errors.New("unsupported transaction type")

// AccountMapping binds business transaction legs to chart-of-accounts codes.
// It is configuration data: swapping the chart means swapping this value,
// not the generator logic.
type AccountMapping struct {
	Cash                string
	LoansReceivable     string
	LoanInterestRevenue string
	Savings             map[domain.SavingsType]string
}

// DefaultAccountMapping returns the mapping for the seeded cooperative chart.
func DefaultAccountMapping() AccountMapping {
	return AccountMapping{
		Cash:                "1-1100", // Kas
		LoansReceivable:     "1-1300", // Piutang Pinjaman
		LoanInterestRevenue: "4-1100", // Pendapatan Jasa Pinjaman
		Savings: map[domain.SavingsType]string{
			domain.SavingsPokok:    "3-1100", // Simpanan Pokok
			domain.SavingsWajib:    "3-1200", // Simpanan Wajib
			domain.SavingsSukarela: "2-1100", // Simpanan Sukarela
		},
	}
}

// generatorFunc builds the lines for one transaction type. Line numbers are
// assigned afterwards, dense from 1.
type generatorFunc func(m AccountMapping, txn domain.BusinessTransaction) ([]domain.JournalLine, error)

// autoJournalService translates business events into balanced journal drafts.
type autoJournalService struct {
	BaseService
	mapping    AccountMapping
	generators map[domain.TransactionType]generatorFunc
	journalSvc portssvc.JournalSvcFacade
}

// NewAutoJournalService creates the auto-journal generator bound to the given
// account mapping and journal service.
func NewAutoJournalService(mapping AccountMapping, journalSvc portssvc.JournalSvcFacade) portssvc.AutoJournalSvcFacade {
	return &autoJournalService{
		mapping: mapping,
		generators: map[domain.TransactionType]generatorFunc{
			domain.LoanDisbursement:  generateLoanDisbursement,
			domain.LoanPayment:       generateLoanPayment,
			domain.SavingsDeposit:    generateSavingsDeposit,
			domain.SavingsWithdrawal: generateSavingsWithdrawal,
			domain.MemberResignation: generateMemberResignation,
		},
		journalSvc: journalSvc,
	}
}

// Ensure autoJournalService implements the AutoJournalSvcFacade interface
var _ portssvc.AutoJournalSvcFacade = (*autoJournalService)(nil)

// Generate maps a business transaction onto a balanced journal draft. It
// performs no persistence and never returns an unbalanced draft.
func (s *autoJournalService) Generate(ctx context.Context, txn domain.BusinessTransaction) (*domain.JournalEntry, error) {
	if !txn.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, txn.Amount.String())
	}

	generator, ok := s.generators[txn.TransactionType]
	if !ok {
		s.LogError(ctx, ErrUnsupportedTransactionType, "No generator registered",
			slog.String("transaction_type", string(txn.TransactionType)))
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTransactionType, txn.TransactionType)
	}

	lines, err := generator(s.mapping, txn)
	if err != nil {
		return nil, err
	}
	for i := range lines {
		lines[i].LineNumber = i + 1
	}

	// A generator that produces an unbalanced set of lines is defective;
	// surface it as an internal error rather than posting bad data.
	if check := accounting.ValidateJournalBalance(lines); !check.IsBalanced {
		s.LogError(ctx, apperrors.ErrInternal, "Generator produced unbalanced lines",
			slog.String("transaction_type", string(txn.TransactionType)),
			slog.String("total_debit", check.TotalDebit.String()),
			slog.String("total_credit", check.TotalCredit.String()))
		return nil, fmt.Errorf("%w: generated entry for %s is unbalanced", apperrors.ErrInternal, txn.TransactionType)
	}

	description := txn.Description
	if description == "" {
		description = defaultDescription(txn)
	}

	draft := &domain.JournalEntry{
		EntryDate:       txn.EntryDate,
		JournalType:     domain.GeneralJournal,
		Description:     description,
		ReferenceType:   txn.ReferenceType,
		ReferenceID:     txn.ReferenceID,
		IsAutoGenerated: true,
		Lines:           lines,
	}
	return draft, nil
}

// GenerateAndPost generates the draft and posts it in one call, so the
// caller's business transaction and the journal either both land or neither
// does.
func (s *autoJournalService) GenerateAndPost(ctx context.Context, txn domain.BusinessTransaction) (*domain.JournalEntry, error) {
	draft, err := s.Generate(ctx, txn)
	if err != nil {
		return nil, err
	}
	return s.journalSvc.PostEntry(ctx, *draft, txn.CreatedBy)
}

func generateLoanDisbursement(m AccountMapping, txn domain.BusinessTransaction) ([]domain.JournalLine, error) {
	desc := fmt.Sprintf("Pencairan pinjaman anggota %s", txn.MemberID)
	return []domain.JournalLine{
		debitLine(m.LoansReceivable, txn.Amount, desc),
		creditLine(m.Cash, txn.Amount, desc),
	}, nil
}

func generateLoanPayment(m AccountMapping, txn domain.BusinessTransaction) ([]domain.JournalLine, error) {
	if txn.PrincipalAmount.IsNegative() || txn.InterestAmount.IsNegative() {
		return nil, fmt.Errorf("%w: principal and interest must not be negative", apperrors.ErrValidation)
	}
	if !txn.PrincipalAmount.Add(txn.InterestAmount).Equal(txn.Amount) {
		return nil, fmt.Errorf("%w: principal %s + interest %s does not equal amount %s",
			apperrors.ErrValidation, txn.PrincipalAmount.String(), txn.InterestAmount.String(), txn.Amount.String())
	}

	desc := fmt.Sprintf("Angsuran pinjaman anggota %s", txn.MemberID)
	lines := []domain.JournalLine{debitLine(m.Cash, txn.Amount, desc)}
	if txn.PrincipalAmount.IsPositive() {
		lines = append(lines, creditLine(m.LoansReceivable, txn.PrincipalAmount, "Pokok angsuran"))
	}
	if txn.InterestAmount.IsPositive() {
		lines = append(lines, creditLine(m.LoanInterestRevenue, txn.InterestAmount, "Jasa pinjaman"))
	}
	return lines, nil
}

func generateSavingsDeposit(m AccountMapping, txn domain.BusinessTransaction) ([]domain.JournalLine, error) {
	savingsAccount, ok := m.Savings[txn.SavingsType]
	if !ok {
		return nil, fmt.Errorf("%w: unrecognized savings type %q", apperrors.ErrValidation, txn.SavingsType)
	}
	desc := fmt.Sprintf("Setoran Simpanan %s anggota %s", savingsLabel(txn.SavingsType), txn.MemberID)
	return []domain.JournalLine{
		debitLine(m.Cash, txn.Amount, desc),
		creditLine(savingsAccount, txn.Amount, desc),
	}, nil
}

func generateSavingsWithdrawal(m AccountMapping, txn domain.BusinessTransaction) ([]domain.JournalLine, error) {
	savingsAccount, ok := m.Savings[txn.SavingsType]
	if !ok {
		return nil, fmt.Errorf("%w: unrecognized savings type %q", apperrors.ErrValidation, txn.SavingsType)
	}
	desc := fmt.Sprintf("Penarikan Simpanan %s anggota %s", savingsLabel(txn.SavingsType), txn.MemberID)
	return []domain.JournalLine{
		debitLine(savingsAccount, txn.Amount, desc),
		creditLine(m.Cash, txn.Amount, desc),
	}, nil
}

func generateMemberResignation(m AccountMapping, txn domain.BusinessTransaction) ([]domain.JournalLine, error) {
	if txn.PokokAmount.IsNegative() || txn.WajibAmount.IsNegative() || txn.SukarelaAmount.IsNegative() {
		return nil, fmt.Errorf("%w: savings components must not be negative", apperrors.ErrValidation)
	}
	total := txn.PokokAmount.Add(txn.WajibAmount).Add(txn.SukarelaAmount)
	if !total.Equal(txn.Amount) {
		return nil, fmt.Errorf("%w: savings components sum to %s, amount is %s",
			apperrors.ErrValidation, total.String(), txn.Amount.String())
	}

	var lines []domain.JournalLine
	components := []struct {
		savingsType domain.SavingsType
		amount      decimal.Decimal
	}{
		{domain.SavingsPokok, txn.PokokAmount},
		{domain.SavingsWajib, txn.WajibAmount},
		{domain.SavingsSukarela, txn.SukarelaAmount},
	}
	for _, c := range components {
		if !c.amount.IsPositive() {
			continue
		}
		desc := fmt.Sprintf("Pengembalian Simpanan %s anggota %s", savingsLabel(c.savingsType), txn.MemberID)
		lines = append(lines, debitLine(m.Savings[c.savingsType], c.amount, desc))
	}
	lines = append(lines, creditLine(m.Cash, txn.Amount, fmt.Sprintf("Pembayaran pengunduran diri anggota %s", txn.MemberID)))
	return lines, nil
}

func debitLine(accountCode string, amount decimal.Decimal, description string) domain.JournalLine {
	return domain.JournalLine{
		AccountCode: accountCode,
		Debit:       amount,
		Credit:      decimal.Zero,
		Description: description,
	}
}

func creditLine(accountCode string, amount decimal.Decimal, description string) domain.JournalLine {
	return domain.JournalLine{
		AccountCode: accountCode,
		Credit:      amount,
		Debit:       decimal.Zero,
		Description: description,
	}
}

func savingsLabel(t domain.SavingsType) string {
	switch t {
	case domain.SavingsPokok:
		return "Pokok"
	case domain.SavingsWajib:
		return "Wajib"
	case domain.SavingsSukarela:
		return "Sukarela"
	default:
		return string(t)
	}
}

func defaultDescription(txn domain.BusinessTransaction) string {
	switch txn.TransactionType {
	case domain.LoanDisbursement:
		return fmt.Sprintf("Pencairan pinjaman anggota %s", txn.MemberID)
	case domain.LoanPayment:
		return fmt.Sprintf("Angsuran pinjaman anggota %s", txn.MemberID)
	case domain.SavingsDeposit:
		return fmt.Sprintf("Setoran Simpanan %s anggota %s", savingsLabel(txn.SavingsType), txn.MemberID)
	case domain.SavingsWithdrawal:
		return fmt.Sprintf("Penarikan Simpanan %s anggota %s", savingsLabel(txn.SavingsType), txn.MemberID)
	case domain.MemberResignation:
		return fmt.Sprintf("Pengunduran diri anggota %s", txn.MemberID)
	default:
		return string(txn.TransactionType)
	}
}
