package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/drdebit/aalp-sub001/internal/catalog"
	"github.com/drdebit/aalp-sub001/internal/classify"
	"github.com/drdebit/aalp-sub001/internal/common"
	"github.com/drdebit/aalp-sub001/internal/model"
	"github.com/drdebit/aalp-sub001/internal/problem"
	"github.com/schollz/progressbar/v3"
)

// maxAttempts is how many tries a learner gets per problem before the
// answer is revealed.
const maxAttempts = 3

// DrillPrompter runs an interactive practice session: it generates
// problems, collects learner submissions, and renders the engine's
// feedback.
type DrillPrompter struct {
	startTime   time.Time
	catalog     *catalog.Catalog
	engine      *classify.Engine
	generator   *problem.Generator
	reader      *NonBlockingReader
	writer      io.Writer
	progressBar *progressbar.ProgressBar
	correct     int
	attempted   int
}

// NewDrillPrompter creates a drill prompter. A nil reader or writer
// defaults to stdin/stdout; a nil rng gets a time-seeded source.
func NewDrillPrompter(c *catalog.Catalog, reader io.Reader, writer io.Writer, rng *rand.Rand) *DrillPrompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &DrillPrompter{
		startTime: time.Now(),
		catalog:   c,
		engine:    classify.NewEngine(c),
		generator: problem.NewGenerator(c, rng),
		reader:    NewNonBlockingReader(reader),
		writer:    writer,
	}
}

// Run presents count problems at the given level and mode, then prints a
// session summary.
func (p *DrillPrompter) Run(ctx context.Context, level, count int, mode problem.Mode) error {
	p.initProgressBar(count)

	for i := 0; i < count; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		prob, err := p.generator.Generate(level, mode, false)
		if err != nil {
			return err
		}

		if err := p.presentProblem(ctx, prob); err != nil {
			if err == ErrInputCancelled || err == io.EOF {
				break
			}
			return err
		}
		p.updateProgress()
	}

	p.showCompletion()
	return nil
}

func (p *DrillPrompter) presentProblem(ctx context.Context, prob problem.Problem) error {
	p.attempted++

	switch prob.Mode {
	case problem.ModeForward:
		return p.runForward(ctx, prob)
	case problem.ModeReverse:
		return p.runReverse(ctx, prob)
	case problem.ModeConstruct:
		return p.runConstruct(ctx, prob)
	default:
		return fmt.Errorf("%w: problem mode %q", common.ErrInvalidCatalog, prob.Mode)
	}
}

// runForward shows a narrative and asks for the assertion set that
// describes it.
func (p *DrillPrompter) runForward(ctx context.Context, prob problem.Problem) error {
	p.println(RenderBox("Transaction", prob.Narrative))
	p.println(SubtleStyle.Render(`Enter assertions as "code key=value ...", comma separated, e.g.`))
	p.println(SubtleStyle.Render(`  provides unit=monetary-unit, receives unit=physical-unit`))

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		line, err := p.promptLine(ctx, "Assertions")
		if err != nil {
			return err
		}

		set, parseErr := ParseAssertions(line)
		if parseErr != nil {
			p.println(FormatError(parseErr.Error()))
			attempt--
			continue
		}

		result, err := p.engine.Classify(set, prob.Classification)
		if err != nil {
			return err
		}

		if result.Correct() {
			p.correct++
			p.println(FormatSuccess(result.Feedback.Message))
			p.printJournalEntry(result.JournalEntry)
			return nil
		}

		p.println(FormatError(result.Feedback.Message))
		for _, hint := range result.Feedback.Hints {
			p.println("  " + WarningStyle.Render(hint))
		}
	}

	p.revealClassification(prob)
	return nil
}

// runReverse shows a narrative plus its journal entry and asks which
// transaction pattern produced it.
func (p *DrillPrompter) runReverse(ctx context.Context, prob problem.Problem) error {
	content := prob.Narrative + "\n\n" + formatLegs(prob.JournalEntry)
	p.println(RenderBox("Transaction", content))

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		line, err := p.promptLine(ctx, "Classification")
		if err != nil {
			return err
		}

		if strings.EqualFold(strings.TrimSpace(line), prob.Classification) {
			p.correct++
			p.println(FormatSuccess("Correct!"))
			return nil
		}

		p.println(FormatError("Not this one."))
		if rule, ok := p.catalog.Rule(strings.TrimSpace(line)); ok {
			p.println("  " + WarningStyle.Render(fmt.Sprintf("%s: %s", rule.Key, rule.Description)))
		}
	}

	p.revealClassification(prob)
	return nil
}

// runConstruct shows a narrative plus the assertion set and asks the
// learner to build the journal entry.
func (p *DrillPrompter) runConstruct(ctx context.Context, prob problem.Problem) error {
	content := prob.Narrative + "\n\nAssertions: " + strings.Join(prob.Assertions.Codes(), ", ")
	p.println(RenderBox("Transaction", content))
	p.println(SubtleStyle.Render("Accounts: " + strings.Join(prob.Accounts, " | ")))

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		debit, err := p.promptLine(ctx, "Debit account")
		if err != nil {
			return err
		}
		credit, err := p.promptLine(ctx, "Credit account")
		if err != nil {
			return err
		}
		amount, err := p.promptLine(ctx, "Amount")
		if err != nil {
			return err
		}

		verdict, err := problem.ValidateJournalEntry(p.catalog, problem.JournalEntryInput{
			DebitAccount:  debit,
			CreditAccount: credit,
			Amount:        amount,
		}, prob.JournalEntry, prob.Assertions)
		if err != nil {
			p.println(FormatError(err.Error()))
			attempt--
			continue
		}

		if verdict.Correct {
			p.correct++
			p.println(FormatSuccess("Correct!"))
			return nil
		}

		p.println(FormatError("Not quite."))
		p.println("  " + WarningStyle.Render(verdict.Hint))
	}

	p.println(FormatInfo("The correct entry was:"))
	p.printJournalEntry(prob.JournalEntry)
	return nil
}

func (p *DrillPrompter) revealClassification(prob problem.Problem) {
	rule, ok := p.catalog.Rule(prob.Classification)
	if !ok {
		return
	}
	p.println(FormatInfo(fmt.Sprintf("This was %q: %s", rule.Key, rule.Description)))
	p.println("  " + SubtleStyle.Render("Assertions: "+strings.Join(prob.Assertions.Codes(), ", ")))
}

func (p *DrillPrompter) printJournalEntry(legs []model.JournalLeg) {
	if len(legs) == 0 {
		return
	}
	p.println(RenderBox("Journal Entry", formatLegs(legs)))
}

func formatLegs(legs []model.JournalLeg) string {
	lines := make([]string, 0, len(legs)*2)
	for _, leg := range legs {
		lines = append(lines, "Dr  "+leg.Debit)
		lines = append(lines, "    Cr  "+leg.Credit)
	}
	return strings.Join(lines, "\n")
}

func (p *DrillPrompter) promptLine(ctx context.Context, prompt string) (string, error) {
	if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	return p.reader.ReadLine(ctx)
}

func (p *DrillPrompter) println(s string) {
	if _, err := fmt.Fprintln(p.writer, s); err != nil {
		slog.Warn("Failed to write output", "error", err)
	}
}

func (p *DrillPrompter) initProgressBar(total int) {
	p.progressBar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Working through problems...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(p.writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

func (p *DrillPrompter) updateProgress() {
	if p.progressBar != nil {
		if err := p.progressBar.Add(1); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	}
}

func (p *DrillPrompter) showCompletion() {
	elapsed := time.Since(p.startTime).Round(time.Second)
	summary := fmt.Sprintf("Solved %d of %d problems in %s", p.correct, p.attempted, elapsed)
	p.println("")
	p.println(RenderBox("Session Complete", summary))
}

// ParseAssertions parses the drill input grammar: comma-separated
// assertions, each a code optionally followed by space-separated
// key=value parameters. Numeric values become float64.
func ParseAssertions(input string) (model.AssertionSet, error) {
	set := make(model.AssertionSet)
	for _, part := range strings.Split(input, ",") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}

		code := strings.ToLower(fields[0])
		params := make(model.Params)
		for _, field := range fields[1:] {
			key, value, found := strings.Cut(field, "=")
			if !found {
				return nil, fmt.Errorf("expected key=value, got %q", field)
			}
			if n, err := strconv.ParseFloat(value, 64); err == nil {
				params[key] = n
			} else {
				params[key] = value
			}
		}
		set[code] = params
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("no assertions entered")
	}
	return set, nil
}
