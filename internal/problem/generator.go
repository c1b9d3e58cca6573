// Package problem generates practice problems from transaction templates
// and validates free-form journal entries against them.
package problem

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/drdebit/aalp-sub001/internal/catalog"
	"github.com/drdebit/aalp-sub001/internal/classify"
	"github.com/drdebit/aalp-sub001/internal/common"
	"github.com/drdebit/aalp-sub001/internal/model"
)

// Mode selects what a generated problem asks of the learner.
type Mode string

// Problem mode constants.
const (
	// ModeForward presents a narrative; the learner supplies assertions.
	ModeForward Mode = "forward"
	// ModeReverse presents a narrative and the journal entry; the learner
	// supplies the classification.
	ModeReverse Mode = "reverse"
	// ModeConstruct presents a narrative and the account list; the learner
	// builds the journal entry.
	ModeConstruct Mode = "construct"
)

// Problem is one generated exercise.
type Problem struct {
	ID             string             `json:"id"`
	Mode           Mode               `json:"mode"`
	Level          int                `json:"level"`
	TemplateKey    string             `json:"template_key"`
	Classification string             `json:"classification"`
	Narrative      string             `json:"narrative"`
	Variables      map[string]any     `json:"variables"`
	Assertions     model.AssertionSet `json:"assertions,omitempty"`
	JournalEntry   []model.JournalLeg `json:"journal_entry,omitempty"`
	Accounts       []string           `json:"accounts,omitempty"`
}

// Generator instantiates problems from the template catalog. It is
// stateless apart from its random source; distinct generators draw
// independently.
type Generator struct {
	catalog *catalog.Catalog
	engine  *classify.Engine
	rng     *rand.Rand
}

// NewGenerator creates a generator over the catalog. A nil rng gets a
// time-seeded source; tests pass a fixed seed.
func NewGenerator(c *catalog.Catalog, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		catalog: c,
		engine:  classify.NewEngine(c),
		rng:     rng,
	}
}

// Generate picks a template uniformly at random among those at or below
// level, binds its variables, and instantiates a problem for the requested
// mode. showAssertions controls whether the correct assertion set rides
// along (it always does for reverse and construct modes, which need it for
// validation).
func (g *Generator) Generate(level int, mode Mode, showAssertions bool) (Problem, error) {
	eligible := g.catalog.TemplatesForLevel(level)
	if len(eligible) == 0 {
		return Problem{}, fmt.Errorf("%w: no templates at level %d", common.ErrInvalidCatalog, level)
	}
	tmpl := eligible[g.rng.Intn(len(eligible))]

	date := g.randomDate()
	narrative, vars := g.BindTemplate(tmpl, date)
	assertions := ResolveAssertions(tmpl.RequiredAssertions, vars)

	p := Problem{
		ID:             fmt.Sprintf("%s-%d", tmpl.Key, g.rng.Int63()),
		Mode:           mode,
		Level:          level,
		TemplateKey:    tmpl.Key,
		Classification: tmpl.Classification,
		Narrative:      narrative,
		Variables:      vars,
	}

	if showAssertions || mode != ModeForward {
		p.Assertions = assertions
	}

	switch mode {
	case ModeReverse, ModeConstruct:
		rule, ok := g.catalog.Rule(tmpl.Classification)
		if !ok {
			return Problem{}, fmt.Errorf("%w: %q", common.ErrUnknownClassification, tmpl.Classification)
		}
		amount, _ := model.NumericValue(vars["amount"])
		p.JournalEntry = g.engine.RenderLegs(rule, assertions, amount)
		if mode == ModeConstruct {
			p.Accounts = g.catalog.AccountsForLevel(level)
		}
	case ModeForward:
		// Narrative and (optionally) assertions are the whole problem.
	}

	return p, nil
}

// BindTemplate draws the template's variables and renders its narrative.
// One random index is drawn per distinct array length and shared by every
// variable array of that length, keeping correlated values (quantity,
// amount) consistent; arrays with a unique length draw independently.
func (g *Generator) BindTemplate(tmpl *model.TransactionTemplate, date model.SimDate) (string, map[string]any) {
	indexByLength := make(map[int]int)
	names := make([]string, 0, len(tmpl.Variables))
	for name := range tmpl.Variables {
		names = append(names, name)
	}
	sort.Strings(names)

	vars := make(map[string]any, len(tmpl.Variables)+1)
	for _, name := range names {
		values := tmpl.Variables[name]
		idx, ok := indexByLength[len(values)]
		if !ok {
			idx = g.rng.Intn(len(values))
			indexByLength[len(values)] = idx
		}
		vars[name] = values[idx]
	}
	vars["date"] = date

	return RenderNarrative(tmpl.Narrative, vars), vars
}

// RenderNarrative substitutes {placeholder} tokens with display-formatted
// variable values: dates in long form, numbers with thousands separators.
func RenderNarrative(narrative string, vars map[string]any) string {
	out := narrative
	for name, value := range vars {
		out = strings.ReplaceAll(out, "{"+name+"}", displayValue(value))
	}
	return out
}

func displayValue(value any) string {
	if d, ok := value.(model.SimDate); ok {
		return d.Long()
	}
	if f, ok := model.NumericValue(value); ok {
		return common.FormatAmount(f)
	}
	return fmt.Sprint(value)
}

// ResolveAssertions substitutes variable references in a template's
// required assertions, recursing into nested parameter maps.
func ResolveAssertions(required map[string]model.Params, vars map[string]any) model.AssertionSet {
	set := make(model.AssertionSet, len(required))
	for code, params := range required {
		set[code] = resolveParams(params, vars)
	}
	return set
}

func resolveParams(params model.Params, vars map[string]any) model.Params {
	resolved := make(model.Params, len(params))
	for name, value := range params {
		resolved[name] = resolveValue(value, vars)
	}
	return resolved
}

func resolveValue(value any, vars map[string]any) any {
	switch v := value.(type) {
	case model.VarRef:
		return vars[string(v)]
	case model.Params:
		return resolveParams(v, vars)
	case map[string]any:
		return resolveParams(model.Params(v), vars)
	default:
		return v
	}
}

func (g *Generator) randomDate() model.SimDate {
	return model.SimDate{
		Year:  1,
		Month: 1 + g.rng.Intn(12),
		Day:   1 + g.rng.Intn(28),
	}
}
