package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"compoundlab/internal/config"
	"compoundlab/internal/growth"
	"compoundlab/internal/storage"
)

const (
	stateForm = iota
	stateResult
)

var fieldHelp = map[string]string{
	"principal": "initial amount invested",
	"rate":      "yearly interest percentage",
	"interval":  "deposit cadence",
	"deposit":   "amount added each interval",
	"years":     "investment horizon",
}

type model struct {
	state  int
	cursor int

	fields    []string
	params    map[string]float64
	intervals []growth.Interval
	ivCursor  int

	editing bool
	editBuf string
	errMsg  string

	result  *growth.Result
	savedID string
	saveErr string

	store *storage.Store
	width int
}

func newModel(store *storage.Store) model {
	return model{
		state:  stateForm,
		fields: []string{"principal", "rate", "interval", "deposit", "years"},
		params: map[string]float64{
			"principal": config.DefaultPrincipal,
			"rate":      config.DefaultRate,
			"deposit":   config.DefaultDeposit,
			"years":     float64(config.DefaultYears),
		},
		intervals: growth.Intervals(),
		ivCursor:  2, // monthly
		store:     store,
		width:     80,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == stateResult {
		return m.resultKey(msg)
	}
	if m.editing {
		return m.editKey(msg)
	}
	return m.formKey(msg)
}

func (m model) formKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "enter", " ":
		if m.fields[m.cursor] == "interval" {
			m.ivCursor = (m.ivCursor + 1) % len(m.intervals)
		} else {
			m.editing = true
			m.editBuf = ""
		}
	case "r":
		return m.run()
	}
	return m, nil
}

func (m *model) adjust(dir int) {
	switch field := m.fields[m.cursor]; field {
	case "interval":
		m.ivCursor = (m.ivCursor + dir + len(m.intervals)) % len(m.intervals)
	case "years":
		m.params[field] += float64(dir)
		if m.params[field] < 1 {
			m.params[field] = 1
		}
	case "rate":
		m.params[field] += float64(dir) * 0.5
	default:
		m.params[field] += float64(dir) * 100
		if m.params[field] < 0 {
			m.params[field] = 0
		}
	}
}

func (m model) editKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		var val float64
		if _, err := fmt.Sscanf(m.editBuf, "%f", &val); err == nil {
			m.params[m.fields[m.cursor]] = val
		}
		m.editing, m.editBuf = false, ""
	case "esc":
		m.editing, m.editBuf = false, ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' {
				m.editBuf += string(c)
			}
		}
	}
	return m, nil
}

func (m model) resultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "n":
		m.state = stateForm
		m.result, m.savedID, m.saveErr = nil, "", ""
	case "s":
		if m.store != nil && m.result != nil && m.savedID == "" {
			if err := m.store.Init(); err != nil {
				m.saveErr = err.Error()
				break
			}
			id, err := m.store.Save(m.result)
			if err != nil {
				m.saveErr = err.Error()
			} else {
				m.savedID = id
			}
		}
	}
	return m, nil
}

func (m model) run() (tea.Model, tea.Cmd) {
	years := int(m.params["years"])
	if years > config.MaxYears {
		m.errMsg = fmt.Sprintf("years must be at most %d", config.MaxYears)
		return m, nil
	}

	result, err := growth.Simulate(growth.Params{
		Principal:         m.params["principal"],
		AnnualRatePercent: m.params["rate"],
		Interval:          m.intervals[m.ivCursor],
		Deposit:           m.params["deposit"],
		Years:             years,
	})
	if err != nil {
		// Always recoverable: show the message and keep the form.
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.result = result
	m.state = stateResult
	return m, nil
}

func (m model) View() string {
	if m.state == stateResult {
		return m.viewResult()
	}
	return m.viewForm()
}

func (m model) viewForm() string {
	var b strings.Builder

	b.WriteString("\n  " + headerStyle.Render("COMPOUNDLAB") + "\n")
	b.WriteString("  " + subtleStyle.Render("compound interest calculator") + "\n")
	b.WriteString("  " + subtleStyle.Render("────────────────────────────") + "\n\n")

	for i, field := range m.fields {
		var valStr string
		switch {
		case field == "interval":
			valStr = m.intervals[m.ivCursor].String()
		case m.editing && i == m.cursor:
			valStr = m.editBuf + "_"
		case field == "years":
			valStr = fmt.Sprintf("%d", int(m.params[field]))
		default:
			valStr = fmt.Sprintf("%.2f", m.params[field])
		}

		if i == m.cursor {
			style := valueStyle
			if m.editing {
				style = editStyle
			}
			b.WriteString(fmt.Sprintf("  %s %s %s  %s\n",
				cursorStyle.Render("▸"),
				activeStyle.Render(fmt.Sprintf("%-10s", field)),
				style.Render(fmt.Sprintf("%10s", valStr)),
				subtleStyle.Render(fieldHelp[field])))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n",
				labelStyle.Render(fmt.Sprintf("%-10s", field)),
				subtleStyle.Render(fmt.Sprintf("%10s", valStr))))
		}
	}

	if rate := m.params["rate"]; rate < 0 || rate > 100 {
		b.WriteString("\n  " + subtleStyle.Render("note: rate outside 0-100%") + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n  " + errorStyle.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n  " + keyHint("j/k", "select", "h/l", "adjust", "enter", "edit", "r", "run", "q", "quit") + "\n")
	return b.String()
}

func (m model) viewResult() string {
	var b strings.Builder

	p := m.result.Params
	b.WriteString("\n  " + headerStyle.Render("COMPOUNDLAB") + "\n")
	b.WriteString("  " + subtleStyle.Render(p.String()) + "\n\n")

	for _, line := range strings.Split(SummaryPanel(m.result.Summary), "\n") {
		b.WriteString("  " + line + "\n")
	}

	yearly := m.result.Yearly()
	balances := make([]float64, len(yearly))
	for i, rec := range yearly {
		balances[i] = rec.Balance
	}
	width := m.width - 8
	if width > 60 {
		width = 60
	}
	if width > 0 {
		b.WriteString("\n  " + labelStyle.Render("growth") + " " + Sparkline(balances, width) + "\n")
	}

	switch {
	case m.savedID != "":
		b.WriteString("\n  " + okStyle.Render("saved: "+m.savedID) + "\n")
	case m.saveErr != "":
		b.WriteString("\n  " + errorStyle.Render("save failed: "+m.saveErr) + "\n")
	}

	b.WriteString("\n  " + keyHint("s", "save", "n", "new calculation", "q", "quit") + "\n")
	return b.String()
}

// RunInteractive starts the terminal front-end. The store may be nil to
// disable saving.
func RunInteractive(store *storage.Store) error {
	_, err := tea.NewProgram(newModel(store), tea.WithAltScreen()).Run()
	return err
}
