package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/drdebit/aalp-sub001/internal/catalog"
	"github.com/drdebit/aalp-sub001/internal/common"
	"github.com/drdebit/aalp-sub001/internal/ledger"
	"github.com/drdebit/aalp-sub001/internal/model"
	"github.com/drdebit/aalp-sub001/internal/sim"
)

// Session runs the interactive business simulation loop for one learner.
type Session struct {
	catalog   *catalog.Catalog
	simulator *sim.Simulator
	reader    *NonBlockingReader
	writer    io.Writer
	learnerID string
	level     int
}

// NewSession creates an interactive simulation session.
func NewSession(c *catalog.Catalog, simulator *sim.Simulator, learnerID string, level int, reader io.Reader, writer io.Writer) *Session {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Session{
		catalog:   c,
		simulator: simulator,
		reader:    NewNonBlockingReader(reader),
		writer:    writer,
		learnerID: learnerID,
		level:     level,
	}
}

// Run drives the session until the learner quits or the context is
// canceled. Each iteration shows the business snapshot and the available
// actions, starts the chosen one, and collects the classification.
func (s *Session) Run(ctx context.Context) error {
	s.println(FormatTitle("Print Shop Simulation"))
	s.println(SubtleStyle.Render(`Type an action key to take it, or "status", "statements", "ledger", "quit".`))

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		state, err := s.simulator.State(ctx, s.learnerID)
		if err != nil {
			return err
		}
		s.println("")
		s.println(RenderState(state))

		available := sim.AvailableActions(s.catalog, s.level, state)
		s.println(RenderActions(available))

		input, err := s.promptLine(ctx, "Action")
		if err != nil {
			if errors.Is(err, ErrInputCancelled) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch strings.ToLower(input) {
		case "", "help":
			continue
		case "quit", "exit", "q":
			return nil
		case "status":
			continue
		case "statements":
			statements, stErr := s.simulator.Statements(ctx, s.learnerID)
			if stErr != nil {
				return stErr
			}
			s.println(RenderStatements(statements))
			continue
		case "ledger":
			entries, lErr := s.simulator.Ledger(ctx, s.learnerID)
			if lErr != nil {
				return lErr
			}
			s.println(RenderLedger(entries))
			continue
		}

		if err := s.playAction(ctx, input); err != nil {
			var prereqErr *sim.PrerequisiteError
			switch {
			case errors.As(err, &prereqErr):
				s.println(FormatWarning(prereqErr.Reason))
			case errors.Is(err, common.ErrUnknownAction):
				s.println(FormatError(fmt.Sprintf("No such action: %q", input)))
			case errors.Is(err, ErrInputCancelled), errors.Is(err, io.EOF):
				return nil
			default:
				return err
			}
		}
	}
}

// playAction starts one action and loops on classification attempts until
// the learner gets it right or gives up.
func (s *Session) playAction(ctx context.Context, actionKey string) error {
	start, err := s.simulator.StartAction(ctx, s.learnerID, actionKey, s.level, nil)
	if err != nil {
		return err
	}

	s.println(RenderBox("Transaction", start.Pending.Narrative))
	s.println(SubtleStyle.Render(`Classify it: enter assertions as "code key=value ...", comma separated.`))
	s.println(SubtleStyle.Render(`Or "cancel" to abandon this transaction.`))

	for {
		line, err := s.promptLine(ctx, "Assertions")
		if err != nil {
			return err
		}

		if strings.EqualFold(strings.TrimSpace(line), "cancel") {
			if err := s.simulator.CancelPending(ctx, s.learnerID); err != nil {
				return err
			}
			s.println(FormatInfo("Transaction canceled."))
			return nil
		}

		set, parseErr := ParseAssertions(line)
		if parseErr != nil {
			s.println(FormatError(parseErr.Error()))
			continue
		}

		outcome, err := s.simulator.ClassifyPending(ctx, s.learnerID, set)
		if err != nil {
			return err
		}

		if outcome.Result.Correct() {
			s.println(FormatSuccess(outcome.Result.Feedback.Message))
			if outcome.LedgerEntry != nil {
				s.println(RenderBox("Journal Entry", formatLegs(outcome.LedgerEntry.Legs)))
			}
			return nil
		}

		s.println(FormatError(outcome.Result.Feedback.Message))
		for _, hint := range outcome.Result.Feedback.Hints {
			s.println("  " + WarningStyle.Render(hint))
		}
	}
}

func (s *Session) promptLine(ctx context.Context, prompt string) (string, error) {
	if _, err := fmt.Fprint(s.writer, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	return s.reader.ReadLine(ctx)
}

func (s *Session) println(text string) {
	_, _ = fmt.Fprintln(s.writer, text)
}

// RenderState formats a business snapshot for the terminal.
func RenderState(state *model.BusinessState) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", CashIcon, BoldStyle.Render("$"+common.FormatAmount(state.Cash)))
	fmt.Fprintf(&b, "Date: %s   Period %d, %d moves left\n", state.Date.Long(), state.Period, state.MovesLeft)

	if len(state.Inventory) > 0 {
		items := make([]string, 0, len(state.Inventory))
		for key, qty := range state.Inventory {
			items = append(items, fmt.Sprintf("%s ×%d", key, qty))
		}
		sort.Strings(items)
		fmt.Fprintf(&b, "Inventory: %s\n", strings.Join(items, ", "))
	}
	if state.FinishedGoods > 0 {
		fmt.Fprintf(&b, "Finished goods: %d\n", state.FinishedGoods)
	}
	if len(state.Equipment) > 0 {
		items := make([]string, 0, len(state.Equipment))
		for key := range state.Equipment {
			items = append(items, key)
		}
		sort.Strings(items)
		fmt.Fprintf(&b, "Equipment: %s\n", strings.Join(items, ", "))
	}
	for _, line := range balanceLines("Owed to", state.Payables) {
		fmt.Fprintln(&b, line)
	}
	for _, line := range balanceLines("Due from", state.Receivables) {
		fmt.Fprintln(&b, line)
	}

	return strings.TrimRight(b.String(), "\n")
}

func balanceLines(prefix string, balances map[string]float64) []string {
	parties := make([]string, 0, len(balances))
	for party := range balances {
		parties = append(parties, party)
	}
	sort.Strings(parties)

	lines := make([]string, 0, len(parties))
	for _, party := range parties {
		lines = append(lines, fmt.Sprintf("%s %s: $%s", prefix, party, common.FormatAmount(balances[party])))
	}
	return lines
}

// RenderActions formats the action menu, marking unavailable actions with
// the reason they are locked.
func RenderActions(actions []model.ActionAvailability) string {
	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render("Actions"))
	b.WriteString("\n")

	for _, action := range actions {
		if action.Available {
			fmt.Fprintf(&b, "  %s %s  %s\n", SuccessIcon, BoldStyle.Render(action.Key), action.Label)
		} else {
			fmt.Fprintf(&b, "  %s %s  %s\n", ErrorIcon, SubtleStyle.Render(action.Key),
				SubtleStyle.Render(fmt.Sprintf("%s (%s)", action.Label, action.Reason)))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderLedger formats the full ledger as a dated list of journal entries.
func RenderLedger(entries []model.LedgerEntry) string {
	if len(entries) == 0 {
		return FormatInfo("The ledger is empty.")
	}

	var b strings.Builder
	b.WriteString(FormatTitle("General Ledger"))
	b.WriteString("\n")

	for _, entry := range entries {
		fmt.Fprintf(&b, "%s  %s\n", SubtleStyle.Render(entry.Date.String()), entry.Narrative)
		for _, leg := range entry.Legs {
			fmt.Fprintf(&b, "    Dr  %s\n", leg.Debit)
			fmt.Fprintf(&b, "        Cr  %s\n", leg.Credit)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderStatements formats the balance sheet and income statement.
func RenderStatements(statements ledger.FinancialStatements) string {
	var b strings.Builder

	b.WriteString(FormatTitle(fmt.Sprintf("%s Financial Statements (as of %s)", ChartIcon, statements.AsOfDate.Long())))
	b.WriteString("\n\n")

	b.WriteString(TableHeaderStyle.Render("Balance Sheet"))
	b.WriteString("\n")
	bs := statements.BalanceSheet
	writeBalances(&b, "Assets", bs.Assets)
	writeBalances(&b, "Less accumulated depreciation", bs.ContraAssets)
	fmt.Fprintf(&b, "  %s\n", BoldStyle.Render("Total assets: $"+common.FormatAmount(bs.TotalAssets)))
	writeBalances(&b, "Liabilities", bs.Liabilities)
	writeBalances(&b, "Equity", bs.Equity)
	fmt.Fprintf(&b, "  %s\n", BoldStyle.Render("Liabilities + equity: $"+common.FormatAmount(bs.LiabilitiesPlusEquity)))

	b.WriteString("\n")
	b.WriteString(TableHeaderStyle.Render("Income Statement"))
	b.WriteString("\n")
	is := statements.IncomeStatement
	writeBalances(&b, "Revenues", is.Revenues)
	writeBalances(&b, "Expenses", is.Expenses)
	fmt.Fprintf(&b, "  %s\n", BoldStyle.Render("Net income: $"+common.FormatAmount(is.NetIncome)))

	return strings.TrimRight(b.String(), "\n")
}

func writeBalances(b *strings.Builder, heading string, balances []ledger.AccountBalance) {
	if len(balances) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s\n", SubtleStyle.Render(heading))
	for _, balance := range balances {
		fmt.Fprintf(b, "    %-34s $%s\n", balance.Account, common.FormatAmount(balance.Balance))
	}
}
