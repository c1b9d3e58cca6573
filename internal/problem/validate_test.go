package problem

import (
	"testing"

	"github.com/drdebit/aalp-sub001/internal/catalog"
	"github.com/drdebit/aalp-sub001/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func creditSaleFixture() ([]model.JournalLeg, model.AssertionSet) {
	legs := []model.JournalLeg{{
		Debit:  catalog.AccountReceivable + " $500",
		Credit: catalog.AccountSalesRevenue + " $500",
	}}
	assertions := model.AssertionSet{
		catalog.AssertProvides:     {"unit": catalog.UnitPhysical, "physical-item": catalog.ItemPrintedTshirts},
		catalog.AssertExpects:      {"unit": catalog.UnitMonetary, "quantity": 500},
		catalog.AssertCounterparty: {},
		catalog.AssertReports:      {"what": catalog.ReportsRevenue},
	}
	return legs, assertions
}

func TestValidateJournalEntryCorrect(t *testing.T) {
	c := catalog.MustDefault()
	legs, assertions := creditSaleFixture()

	verdict, err := ValidateJournalEntry(c, JournalEntryInput{
		DebitAccount:  "accounts receivable",
		CreditAccount: "Sales Revenue",
		Amount:        "500",
	}, legs, assertions)

	require.NoError(t, err)
	assert.True(t, verdict.Correct)
	assert.Empty(t, verdict.Field)
}

func TestValidateJournalEntryShortCircuits(t *testing.T) {
	c := catalog.MustDefault()
	legs, assertions := creditSaleFixture()

	tests := []struct {
		name      string
		input     JournalEntryInput
		wantField string
	}{
		{
			name: "wrong debit reported first",
			input: JournalEntryInput{
				DebitAccount:  catalog.AccountCash,
				CreditAccount: "also wrong",
				Amount:        "999",
			},
			wantField: "debit-account",
		},
		{
			name: "wrong credit after correct debit",
			input: JournalEntryInput{
				DebitAccount:  catalog.AccountReceivable,
				CreditAccount: catalog.AccountCash,
				Amount:        "999",
			},
			wantField: "credit-account",
		},
		{
			name: "wrong amount last",
			input: JournalEntryInput{
				DebitAccount:  catalog.AccountReceivable,
				CreditAccount: catalog.AccountSalesRevenue,
				Amount:        "250",
			},
			wantField: "amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, err := ValidateJournalEntry(c, tt.input, legs, assertions)
			require.NoError(t, err)
			assert.False(t, verdict.Correct)
			assert.Equal(t, tt.wantField, verdict.Field)
			assert.NotEmpty(t, verdict.Hint)
		})
	}
}

func TestValidateJournalEntryCreditSaleCashHint(t *testing.T) {
	c := catalog.MustDefault()
	legs, assertions := creditSaleFixture()

	// Crediting Cash on a credit sale gets the future-inflow hint, not a
	// generic one. (The expects assertion is the tell.)
	verdict, err := ValidateJournalEntry(c, JournalEntryInput{
		DebitAccount:  catalog.AccountReceivable,
		CreditAccount: catalog.AccountCash,
		Amount:        "500",
	}, legs, assertions)

	require.NoError(t, err)
	assert.False(t, verdict.Correct)
	assert.Contains(t, verdict.Hint, "future inflow")
}

func TestValidateJournalEntryRejectsNonNumericAmount(t *testing.T) {
	c := catalog.MustDefault()
	legs, assertions := creditSaleFixture()

	_, err := ValidateJournalEntry(c, JournalEntryInput{
		DebitAccount:  catalog.AccountReceivable,
		CreditAccount: catalog.AccountSalesRevenue,
		Amount:        "five hundred",
	}, legs, assertions)

	assert.ErrorIs(t, err, ErrInvalidJournalEntryInput)
}

func TestValidateJournalEntryAcceptsCommaAmount(t *testing.T) {
	c := catalog.MustDefault()
	legs := []model.JournalLeg{{
		Debit:  catalog.AccountEquipment + " $2,500",
		Credit: catalog.AccountCash + " $2,500",
	}}

	verdict, err := ValidateJournalEntry(c, JournalEntryInput{
		DebitAccount:  catalog.AccountEquipment,
		CreditAccount: catalog.AccountCash,
		Amount:        "2,500",
	}, legs, nil)

	require.NoError(t, err)
	assert.True(t, verdict.Correct)
}
