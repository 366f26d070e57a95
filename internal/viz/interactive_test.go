package viz

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"compoundlab/internal/growth"
)

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestEditEscCancels(t *testing.T) {
	m := newModel(nil)
	before := m.params["principal"]

	m.editing = true
	m.editBuf = "42"

	next, _ := m.handleKey(keyMsg(tea.KeyEscape))
	m = next.(model)

	if m.editing {
		t.Errorf("expected esc to leave edit mode, buf=%q", m.editBuf)
	}
	if m.editBuf != "" {
		t.Errorf("expected empty edit buffer, got %q", m.editBuf)
	}
	if m.params["principal"] != before {
		t.Errorf("esc should discard the buffer, principal changed to %f", m.params["principal"])
	}
}

func TestEditEnterCommits(t *testing.T) {
	m := newModel(nil)

	next, _ := m.handleKey(keyMsg(tea.KeyEnter))
	m = next.(model)
	if !m.editing {
		t.Fatal("expected enter to start editing")
	}

	for _, r := range "42" {
		next, _ = m.handleKey(runeMsg(r))
		m = next.(model)
	}
	next, _ = m.handleKey(keyMsg(tea.KeyEnter))
	m = next.(model)

	if m.editing {
		t.Error("expected enter to commit the buffer")
	}
	if m.params["principal"] != 42 {
		t.Errorf("expected principal 42, got %f", m.params["principal"])
	}
}

func TestResultEscReturnsToForm(t *testing.T) {
	m := newModel(nil)

	result, err := growth.Simulate(growth.Params{
		Principal:         1000,
		AnnualRatePercent: 5,
		Interval:          growth.Monthly,
		Deposit:           100,
		Years:             1,
	})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	m.state = stateResult
	m.result = result

	next, _ := m.handleKey(keyMsg(tea.KeyEscape))
	m = next.(model)

	if m.state != stateForm {
		t.Errorf("expected esc to return to the form, state=%d", m.state)
	}
	if m.result != nil {
		t.Error("expected result to be cleared")
	}
}

func TestRunTransitionsToResult(t *testing.T) {
	m := newModel(nil)

	next, _ := m.handleKey(runeMsg('r'))
	m = next.(model)

	if m.state != stateResult {
		t.Fatalf("expected result state after run, state=%d", m.state)
	}
	if m.result == nil {
		t.Fatal("expected a result")
	}
	if m.errMsg != "" {
		t.Errorf("unexpected error: %s", m.errMsg)
	}
}
