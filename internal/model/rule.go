package model

// CategoryRef marks a required-parameter value that matches any physical
// item belonging to the referenced category, rather than one literal item
// key. A rule like cash-equipment-purchase constrains the received item to
// CategoryRef(CategoryEquipment) instead of naming each printer model.
type CategoryRef ItemCategory

// JournalLeg is one debit/credit pair of a journal entry. Both sides are
// rendered strings of the form "<Account> $<amount,formatted>"; the
// financial-statement derivation parses amounts back out of this text, so
// the convention is load-bearing.
type JournalLeg struct {
	Debit  string `json:"debit"`
	Credit string `json:"credit"`
}

// LegTemplate is the unrendered form of a journal leg held by a
// classification rule: account names only, amounts bound at render time.
type LegTemplate struct {
	Debit  string
	Credit string
}

// ClassificationRule is one canonical transaction pattern: the assertions a
// matching submission must include, must not include, and may include, plus
// the journal entry the pattern maps to.
type ClassificationRule struct {
	Key            string
	Required       []string
	Prohibited     []string
	Optional       []string
	RequiredParams map[string]Params // assertion code -> required parameter values
	Legs           []LegTemplate     // canonical legs; empty when DerivedLegs is set
	DerivedLegs    bool              // legs computed from assertion parameters (item accounts)
	Level          int
	Description    string
	Notes          string
	Example        string
}

// ParamConstraintCount returns the total number of required-parameter
// constraints on the rule, used to prefer the most specific rule when
// several match exactly.
func (r *ClassificationRule) ParamConstraintCount() int {
	total := 0
	for _, params := range r.RequiredParams {
		total += len(params)
	}
	return total
}

// RequiresAssertion reports whether code appears in the rule's required set.
func (r *ClassificationRule) RequiresAssertion(code string) bool {
	for _, c := range r.Required {
		if c == code {
			return true
		}
	}
	return false
}

// AllowsAssertion reports whether code appears in the required or optional
// sets.
func (r *ClassificationRule) AllowsAssertion(code string) bool {
	if r.RequiresAssertion(code) {
		return true
	}
	for _, c := range r.Optional {
		if c == code {
			return true
		}
	}
	return false
}

// ProhibitsAssertion reports whether code appears in the prohibited set.
func (r *ClassificationRule) ProhibitsAssertion(code string) bool {
	for _, c := range r.Prohibited {
		if c == code {
			return true
		}
	}
	return false
}
