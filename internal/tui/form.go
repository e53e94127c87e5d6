// Package tui provides the interactive projection form.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lifecount/countdown-calculator/internal/calculation"
	"github.com/lifecount/countdown-calculator/internal/cli"
	"github.com/lifecount/countdown-calculator/internal/domain"
	"github.com/lifecount/countdown-calculator/internal/store"
	moneyutil "github.com/lifecount/countdown-calculator/pkg/decimal"
)

const (
	fieldAge = iota
	fieldLifeExpectancy
	fieldRetireAge
	fieldAssets
	fieldIncome
	fieldExpenses
	fieldGrowth
	fieldCount // sentinel
)

var fieldLabels = [fieldCount]string{
	"Current age",
	"Life expectancy",
	"Retirement age",
	"Starting assets",
	"Monthly income",
	"Monthly expenses",
	"Annual growth %",
}

const labelWidth = 18

// Saver persists a projection snapshot. *store.History satisfies it.
type Saver interface {
	SaveRun(name string, in domain.ProjectionInput, result domain.ProjectionResult) (store.Run, error)
}

// Form is the bubbletea model behind `lifecount tui`. Each key press re-reads
// every field and runs a fresh projection.
type Form struct {
	inputs []textinput.Model
	focus  int

	input  domain.ProjectionInput
	result domain.ProjectionResult

	saver     Saver
	symbol    string
	status    string
	statusErr bool
}

// NewForm builds a form prefilled from initial. saver may be nil, in which
// case ctrl+s reports that history is disabled.
func NewForm(initial domain.ProjectionInput, symbol string, saver Saver) Form {
	values := [fieldCount]string{
		strconv.Itoa(initial.CurrentAge),
		strconv.Itoa(initial.LifeExpectancy),
		strconv.Itoa(initial.RetireAge),
		initial.StartingAssets.String(),
		initial.MonthlyIncome.String(),
		initial.MonthlyExpenses.String(),
		initial.AnnualGrowthPercent.String(),
	}

	f := Form{
		inputs: make([]textinput.Model, fieldCount),
		saver:  saver,
		symbol: symbol,
	}
	if f.symbol == "" {
		f.symbol = cli.DefaultCurrencySymbol
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.CharLimit = 20
		ti.Width = 20
		ti.Prompt = ""
		ti.Placeholder = "0"
		ti.SetValue(values[i])
		f.inputs[i] = ti
	}
	f.inputs[fieldAge].Focus()
	return f.recompute()
}

// Input returns the coerced values currently in the form.
func (f Form) Input() domain.ProjectionInput { return f.input }

// Result returns the projection for Input.
func (f Form) Result() domain.ProjectionResult { return f.result }

// Status returns the last status line (save confirmation or error).
func (f Form) Status() string { return f.status }

// Focused returns the index of the focused field.
func (f Form) Focused() int { return f.focus }

func (f Form) Init() tea.Cmd {
	return textinput.Blink
}

func (f Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return f, cmd
	}

	switch key.String() {
	case "ctrl+c", "esc":
		return f, tea.Quit
	case "tab", "down", "enter":
		return f.moveFocus(1), nil
	case "shift+tab", "up":
		return f.moveFocus(-1), nil
	case "ctrl+s":
		return f.save(), nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	f.status = ""
	return f.recompute(), cmd
}

func (f Form) moveFocus(delta int) Form {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
	return f.recompute()
}

// recompute coerces every field and projects from scratch.
func (f Form) recompute() Form {
	f.input = domain.ProjectionInput{
		CurrentAge:          moneyutil.ParseIntOrZero(f.inputs[fieldAge].Value()),
		LifeExpectancy:      moneyutil.ParseIntOrZero(f.inputs[fieldLifeExpectancy].Value()),
		RetireAge:           moneyutil.ParseIntOrZero(f.inputs[fieldRetireAge].Value()),
		StartingAssets:      moneyutil.ParseOrZero(f.inputs[fieldAssets].Value()),
		MonthlyIncome:       moneyutil.ParseOrZero(f.inputs[fieldIncome].Value()),
		MonthlyExpenses:     moneyutil.ParseOrZero(f.inputs[fieldExpenses].Value()),
		AnnualGrowthPercent: moneyutil.ParseOrZero(f.inputs[fieldGrowth].Value()),
	}
	f.result = calculation.Project(f.input)
	return f
}

func (f Form) save() Form {
	if f.saver == nil {
		f.status, f.statusErr = "history disabled", true
		return f
	}
	run, err := f.saver.SaveRun("tui", f.input, f.result)
	if err != nil {
		f.status, f.statusErr = fmt.Sprintf("save failed: %s", err), true
		return f
	}
	f.status, f.statusErr = "saved run "+run.ShortID(), false
	return f
}

func (f Form) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(cli.ColorTextMuted).Width(labelWidth)
	focusStyle := lipgloss.NewStyle().Foreground(cli.ColorAccent).Bold(true).Width(labelWidth)
	okStyle := lipgloss.NewStyle().Foreground(cli.ColorGreen)
	errStyle := lipgloss.NewStyle().Foreground(cli.ColorOrange)

	var b strings.Builder
	b.WriteString(cli.RenderTitle("lifecount"))
	b.WriteString("\n\n")

	for i, in := range f.inputs {
		label := labelStyle
		marker := "  "
		if i == f.focus {
			label = focusStyle
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	res := f.result
	rows := [][2]string{
		{"Days remaining", cli.FormatDays(res.DaysRemaining)},
		{"Daily budget", cli.Money(cli.FormatDailyBudget(res.DailyBudget, f.symbol))},
		{"At retirement", cli.FormatMoney(res.RetirementAssets, f.symbol)},
		{"Final assets", cli.FormatMoney(res.FinalAssets(), f.symbol)},
	}
	for _, r := range rows {
		b.WriteString(cli.RenderKeyValue(r[0], r[1], labelWidth))
		b.WriteString("\n")
	}
	if _, assets := res.Series(); len(assets) > 0 {
		b.WriteString(cli.RenderKeyValue("Assets by age", cli.RenderSparkline(assets), labelWidth))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if f.status != "" {
		style := okStyle
		if f.statusErr {
			style = errStyle
		}
		b.WriteString("  " + style.Render(f.status) + "\n")
	}
	b.WriteString(cli.Muted("  tab/shift+tab move  ctrl+s save  esc quit"))
	b.WriteString("\n")
	return b.String()
}
