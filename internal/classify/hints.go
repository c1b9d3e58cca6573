package classify

import (
	"fmt"

	"github.com/drdebit/aalp-sub001/internal/model"
)

// hints renders the field-level feedback for a scored rule: missing
// assertions, wrongly included ones, and wrong parameter values, each
// passed through the catalog's label tables.
func (e *Engine) hints(rule *model.ClassificationRule, score ruleScore) []string {
	var hints []string

	for _, code := range score.missingRequired {
		hints = append(hints, fmt.Sprintf("You're missing the %q assertion.", e.catalog.AssertionLabel(code)))
	}
	for _, code := range score.prohibitedPresent {
		hints = append(hints, fmt.Sprintf("The %q assertion contradicts this transaction — remove it.", e.catalog.AssertionLabel(code)))
	}
	for _, code := range score.unrequired {
		hints = append(hints, fmt.Sprintf("The %q assertion isn't part of this transaction.", e.catalog.AssertionLabel(code)))
	}
	for _, m := range score.paramMismatches {
		label := e.catalog.AssertionLabel(m.assertion)
		want := e.catalog.ValueLabel(m.want)
		if ref, isRef := m.want.(model.CategoryRef); isRef {
			if items := e.catalog.ItemsByCategory(model.ItemCategory(ref)); len(items) > 0 {
				want = fmt.Sprintf("%s such as %s", want, items[0].Label)
			}
		}
		if m.missing {
			hints = append(hints, fmt.Sprintf("%q needs its %s parameter: this transaction involves %s.", label, m.param, want))
			continue
		}
		got := e.catalog.ValueLabel(m.got)
		hints = append(hints, fmt.Sprintf("%q has the wrong %s: you said %s, but this transaction involves %s.", label, m.param, got, want))
	}

	if len(hints) == 0 {
		hints = append(hints, fmt.Sprintf("Compare your assertions against the pattern: %s.", rule.Description))
	}
	return hints
}
