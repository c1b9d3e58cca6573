// Package classify implements the assertion-matching engine: exact matching
// of a learner's assertion set against the rule catalog, nearest-match
// scoring when nothing matches exactly, and the hint and account-linkage
// feedback built from either outcome. The engine is pure: results are a
// function of the submission and the static catalog.
package classify

import (
	"fmt"
	"sort"

	"github.com/drdebit/aalp-sub001/internal/catalog"
	"github.com/drdebit/aalp-sub001/internal/common"
	"github.com/drdebit/aalp-sub001/internal/model"
)

// Distance weights for the nearest-match pass.
const (
	weightMissingRequired   = 1.0
	weightProhibitedPresent = 2.0
	weightUnrequired        = 0.5
	weightParamMismatch     = 1.5
)

// Engine matches learner assertion sets against the classification catalog.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates a classification engine over the given catalog.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Classify scores a learner's assertion set against the rule catalog. When
// correctClassification is non-empty the verdict compares the match against
// it and hints steer toward that rule; otherwise the engine reports
// whatever the submission describes. It returns an error only for an
// unknown correctClassification key.
func (e *Engine) Classify(assertions model.AssertionSet, correctClassification string) (model.ClassificationResult, error) {
	set := model.NormalizeAssertions(assertions)

	var correctRule *model.ClassificationRule
	if correctClassification != "" {
		rule, ok := e.catalog.Rule(correctClassification)
		if !ok {
			return model.ClassificationResult{}, fmt.Errorf("%w: %q", common.ErrUnknownClassification, correctClassification)
		}
		correctRule = rule
	}

	if len(e.catalog.Rules()) == 0 {
		// Unreachable with a validated catalog; surfaced as indeterminate
		// rather than a crash if it ever happens.
		return model.ClassificationResult{
			Feedback: model.Feedback{
				Status:  model.StatusIndeterminate,
				Message: "No classification rules are configured.",
			},
		}, nil
	}

	matched := e.exactMatches(set)
	if len(matched) > 0 {
		best := mostSpecific(matched)
		return e.exactResult(set, matched, best, correctRule), nil
	}

	return e.nearestResult(set, correctRule), nil
}

// exactMatches returns every rule the submission satisfies exactly.
func (e *Engine) exactMatches(set model.AssertionSet) []*model.ClassificationRule {
	var matched []*model.ClassificationRule
	rules := e.catalog.Rules()
	for i := range rules {
		if e.matchesExactly(&rules[i], set) {
			matched = append(matched, &rules[i])
		}
	}
	return matched
}

func (e *Engine) matchesExactly(rule *model.ClassificationRule, set model.AssertionSet) bool {
	for _, code := range rule.Required {
		if _, ok := set[code]; !ok {
			return false
		}
	}
	for _, code := range rule.Prohibited {
		if _, ok := set[code]; ok {
			return false
		}
	}
	for code := range set {
		if !rule.AllowsAssertion(code) {
			return false
		}
	}
	for code, required := range rule.RequiredParams {
		present := set[code]
		for name, want := range required {
			got, ok := present[name]
			if !ok || !e.paramMatches(want, got) {
				return false
			}
		}
	}
	return true
}

// paramMatches compares a rule's required parameter value against a
// submitted one. A CategoryRef matches any item key of that category.
func (e *Engine) paramMatches(want, got any) bool {
	if ref, ok := want.(model.CategoryRef); ok {
		key, isKey := got.(string)
		if !isKey {
			return false
		}
		item, found := e.catalog.Item(key)
		return found && item.Category == model.ItemCategory(ref)
	}
	return model.ValueEqual(want, got)
}

// mostSpecific prefers the rule with the most required-parameter
// constraints when several match exactly.
func mostSpecific(matched []*model.ClassificationRule) *model.ClassificationRule {
	best := matched[0]
	for _, rule := range matched[1:] {
		if rule.ParamConstraintCount() > best.ParamConstraintCount() {
			best = rule
		}
	}
	return best
}

func (e *Engine) exactResult(set model.AssertionSet, matched []*model.ClassificationRule, best, correctRule *model.ClassificationRule) model.ClassificationResult {
	keys := make([]string, 0, len(matched))
	for _, rule := range matched {
		keys = append(keys, rule.Key)
	}

	result := model.ClassificationResult{
		ExactMatches: keys,
		Feedback: model.Feedback{
			Classification: best.Key,
			Linkages:       e.linkages(set),
		},
	}

	if correctRule == nil || correctRule.Key == best.Key {
		result.Feedback.Status = model.StatusCorrect
		result.Feedback.Message = fmt.Sprintf("Correct — this is a %s: %s", best.Key, best.Description)
		result.JournalEntry = e.RenderLegs(best, set, 0)
		return result
	}

	result.Feedback.Status = model.StatusIncorrect
	result.Feedback.Message = fmt.Sprintf(
		"Your assertions describe a %s (%s), but this transaction is actually a %s.",
		best.Key, best.Description, correctRule.Key)
	breakdown := e.scoreAgainst(correctRule, set)
	result.Nearest = &model.NearestMatch{
		Key:       correctRule.Key,
		Distance:  breakdown.distance,
		Breakdown: breakdown.toModel(),
	}
	result.Feedback.Hints = e.hints(correctRule, breakdown)
	return result
}

func (e *Engine) nearestResult(set model.AssertionSet, correctRule *model.ClassificationRule) model.ClassificationResult {
	var target *model.ClassificationRule
	var score ruleScore

	if correctRule != nil {
		target = correctRule
		score = e.scoreAgainst(correctRule, set)
	} else {
		target, score = e.nearestRule(set)
	}

	result := model.ClassificationResult{
		Nearest: &model.NearestMatch{
			Key:       target.Key,
			Distance:  score.distance,
			Breakdown: score.toModel(),
		},
		Feedback: model.Feedback{
			Status:   model.StatusIncorrect,
			Message:  fmt.Sprintf("No pattern matches exactly. Closest: %s — %s", target.Key, target.Description),
			Hints:    e.hints(target, score),
			Linkages: e.linkages(set),
		},
	}
	return result
}

// nearestRule scans every rule and picks the minimum weighted distance.
// Ties break toward rules with more required assertions already present,
// then lower level (simpler concept), then more prohibitions (stricter,
// more specific rule).
func (e *Engine) nearestRule(set model.AssertionSet) (*model.ClassificationRule, ruleScore) {
	rules := e.catalog.Rules()
	best := &rules[0]
	bestScore := e.scoreAgainst(best, set)

	for i := 1; i < len(rules); i++ {
		rule := &rules[i]
		score := e.scoreAgainst(rule, set)
		if better(rule, score, best, bestScore) {
			best, bestScore = rule, score
		}
	}
	return best, bestScore
}

func better(candidate *model.ClassificationRule, candidateScore ruleScore, incumbent *model.ClassificationRule, incumbentScore ruleScore) bool {
	if candidateScore.distance != incumbentScore.distance {
		return candidateScore.distance < incumbentScore.distance
	}
	if candidateScore.requiredPresent != incumbentScore.requiredPresent {
		return candidateScore.requiredPresent > incumbentScore.requiredPresent
	}
	if candidate.Level != incumbent.Level {
		return candidate.Level < incumbent.Level
	}
	return len(candidate.Prohibited) > len(incumbent.Prohibited)
}

// ruleScore is the weighted distance between a submission and one rule,
// with the raw components kept for hint generation.
type ruleScore struct {
	distance          float64
	requiredPresent   int
	missingRequired   []string
	prohibitedPresent []string
	unrequired        []string
	paramMismatches   []paramMismatch
}

type paramMismatch struct {
	assertion string
	param     string
	want      any
	got       any
	missing   bool
}

func (s ruleScore) toModel() model.DistanceBreakdown {
	breakdown := model.DistanceBreakdown{
		MissingRequired:   s.missingRequired,
		ProhibitedPresent: s.prohibitedPresent,
		Unrequired:        s.unrequired,
	}
	for _, m := range s.paramMismatches {
		breakdown.ParamMismatches = append(breakdown.ParamMismatches, m.assertion+"."+m.param)
	}
	return breakdown
}

func (e *Engine) scoreAgainst(rule *model.ClassificationRule, set model.AssertionSet) ruleScore {
	var score ruleScore

	for _, code := range rule.Required {
		if _, ok := set[code]; ok {
			score.requiredPresent++
		} else {
			score.missingRequired = append(score.missingRequired, code)
		}
	}
	for _, code := range rule.Prohibited {
		if _, ok := set[code]; ok {
			score.prohibitedPresent = append(score.prohibitedPresent, code)
		}
	}
	for code := range set {
		if !rule.AllowsAssertion(code) && !rule.ProhibitsAssertion(code) {
			score.unrequired = append(score.unrequired, code)
		}
	}

	// A required assertion that is present but carries a wrong or missing
	// required parameter counts once, however many parameters are off.
	for code, required := range rule.RequiredParams {
		present, ok := set[code]
		if !ok {
			continue
		}
		for name, want := range required {
			got, has := present[name]
			if has && e.paramMatches(want, got) {
				continue
			}
			score.paramMismatches = append(score.paramMismatches, paramMismatch{
				assertion: code,
				param:     name,
				want:      want,
				got:       got,
				missing:   !has,
			})
		}
	}

	sort.Strings(score.unrequired)
	sort.Slice(score.paramMismatches, func(i, j int) bool {
		a, b := score.paramMismatches[i], score.paramMismatches[j]
		if a.assertion != b.assertion {
			return a.assertion < b.assertion
		}
		return a.param < b.param
	})

	mismatchedAssertions := make(map[string]bool)
	for _, m := range score.paramMismatches {
		mismatchedAssertions[m.assertion] = true
	}

	score.distance = weightMissingRequired*float64(len(score.missingRequired)) +
		weightProhibitedPresent*float64(len(score.prohibitedPresent)) +
		weightUnrequired*float64(len(score.unrequired)) +
		weightParamMismatch*float64(len(mismatchedAssertions))

	return score
}
