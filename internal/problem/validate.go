package problem

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/drdebit/aalp-sub001/internal/catalog"
	"github.com/drdebit/aalp-sub001/internal/common"
	"github.com/drdebit/aalp-sub001/internal/model"
)

// ErrInvalidJournalEntryInput reports a journal-entry submission whose
// amount is not numeric.
var ErrInvalidJournalEntryInput = errors.New("invalid journal entry input")

// JournalEntryInput is a learner's free-form journal entry in construct
// mode.
type JournalEntryInput struct {
	DebitAccount  string `json:"debit_account"`
	CreditAccount string `json:"credit_account"`
	Amount        string `json:"amount"`
}

// Verdict is the result of validating one journal-entry submission. Field
// names the first mismatched component; it is empty when the entry is
// correct.
type Verdict struct {
	Correct bool   `json:"correct"`
	Field   string `json:"field,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

// ValidateJournalEntry checks a learner's entry against the correct legs:
// debit account, credit account, and amount are checked independently and
// validation short-circuits on the first mismatch with a targeted hint.
// Multi-leg entries validate against the primary (first) leg.
func ValidateJournalEntry(c *catalog.Catalog, entry JournalEntryInput, correctLegs []model.JournalLeg, correctAssertions model.AssertionSet) (Verdict, error) {
	if len(correctLegs) == 0 {
		return Verdict{}, fmt.Errorf("%w: no journal entry to validate against", common.ErrInvalidCatalog)
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(entry.Amount), ",", ""), 64)
	if err != nil {
		return Verdict{}, fmt.Errorf("%w: amount %q is not a number", ErrInvalidJournalEntryInput, entry.Amount)
	}

	wantDebit, wantAmount := splitLegSide(correctLegs[0].Debit)
	wantCredit, _ := splitLegSide(correctLegs[0].Credit)

	if !strings.EqualFold(strings.TrimSpace(entry.DebitAccount), wantDebit) {
		return Verdict{
			Field: "debit-account",
			Hint:  debitHint(c, entry.DebitAccount, correctAssertions),
		}, nil
	}

	if !strings.EqualFold(strings.TrimSpace(entry.CreditAccount), wantCredit) {
		return Verdict{
			Field: "credit-account",
			Hint:  creditHint(c, entry.CreditAccount, correctAssertions),
		}, nil
	}

	if wantAmount != 0 && amount != wantAmount {
		return Verdict{
			Field: "amount",
			Hint:  "Check the amount — the transaction's dollar value is stated in the narrative.",
		}, nil
	}

	return Verdict{Correct: true}, nil
}

// splitLegSide separates a rendered leg side into its account name and
// embedded amount.
func splitLegSide(side string) (string, float64) {
	account := side
	if i := strings.LastIndex(side, " $"); i >= 0 {
		account = side[:i]
	}
	amount, _ := common.ParseAmount(side)
	return account, amount
}

// debitHint contrasts the learner's chosen debit account with what the
// assertions imply the business is receiving.
func debitHint(c *catalog.Catalog, chosen string, assertions model.AssertionSet) string {
	if info, ok := c.Account(strings.TrimSpace(chosen)); ok && info.Normal == catalog.NormalCredit {
		return fmt.Sprintf("%s normally carries a credit balance — debiting it records a decrease, not an increase.", info.Name)
	}
	if params, ok := assertions[catalog.AssertReceives]; ok {
		return fmt.Sprintf("Think about what the business receives here (%s) and which account grows when it comes in.",
			c.ValueLabel(params["unit"]))
	}
	if _, ok := assertions[catalog.AssertProduces]; ok {
		return "Something new is created inside the business — which inventory account grows?"
	}
	return "The debit side records what the business gets or what cost it recognizes."
}

// creditHint contrasts the learner's chosen credit account with what the
// assertions imply is given up, or points at an obligation the entry
// ignored.
func creditHint(c *catalog.Catalog, chosen string, assertions model.AssertionSet) string {
	chosen = strings.TrimSpace(chosen)

	if _, ok := assertions[catalog.AssertRequires]; ok && strings.EqualFold(chosen, catalog.AccountCash) {
		return "No cash has moved yet — the assertions point to a future obligation to pay."
	}
	if _, ok := assertions[catalog.AssertExpects]; ok && strings.EqualFold(chosen, catalog.AccountCash) {
		return "No cash has arrived yet — the assertions promise a future inflow, not money today."
	}
	if info, ok := c.Account(chosen); ok && info.Normal == catalog.NormalDebit {
		return fmt.Sprintf("%s normally carries a debit balance — crediting it records a decrease. Is that what happens here?", info.Name)
	}
	if params, ok := assertions[catalog.AssertProvides]; ok {
		return fmt.Sprintf("Think about what the business gives up here (%s) and which account shrinks or which claim grows.",
			c.ValueLabel(params["unit"]))
	}
	return "The credit side records what the business gives up or the claim created against it."
}
