package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/domain"
)

func TestNormalBalanceFor(t *testing.T) {
	tests := []struct {
		accountType domain.AccountType
		want        domain.NormalBalance
		ok          bool
	}{
		{domain.Asset, domain.DebitNormal, true},
		{domain.Expense, domain.DebitNormal, true},
		{domain.Liability, domain.CreditNormal, true},
		{domain.Equity, domain.CreditNormal, true},
		{domain.Revenue, domain.CreditNormal, true},
		{domain.AccountType("CONTRA_ASSET"), "", false},
	}

	for _, tt := range tests {
		got, ok := domain.NormalBalanceFor(tt.accountType)
		assert.Equal(t, tt.ok, ok, "type %s", tt.accountType)
		assert.Equal(t, tt.want, got, "type %s", tt.accountType)
	}
}

func TestDeriveReportingCategory(t *testing.T) {
	tests := []struct {
		accountType domain.AccountType
		accountCode string
		want        domain.ReportingCategory
	}{
		{domain.Asset, "1-1100", domain.CategoryAsset},
		{domain.Liability, "2-1100", domain.CategoryLiability},
		{domain.Equity, "3-1100", domain.CategoryEquity},
		{domain.Revenue, "4-1100", domain.CategoryOperatingRevenue},
		{domain.Revenue, "4-2100", domain.CategoryNonOperatingIncome},
		{domain.Expense, "5-1100", domain.CategoryOperatingExpense},
		{domain.Expense, "5-2100", domain.CategoryNonOperatingExpense},
	}

	for _, tt := range tests {
		got := domain.DeriveReportingCategory(tt.accountType, tt.accountCode)
		assert.Equal(t, tt.want, got, "code %s", tt.accountCode)
	}
}
