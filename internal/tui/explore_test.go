package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/ljeopp/internal/pair"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m explorer, keys ...string) explorer {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(explorer)
	}
	return m
}

func newTestExplorer() explorer {
	return *NewExplorer(pair.Coeff{C1: 1000, N1: 12, C2: -50, N2: 6, KStar: 0.5}, pair.Settings{Cutoff: 10, Shift: true})
}

func TestExplorer_Initial(t *testing.T) {
	m := newTestExplorer()
	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
	if len(m.points) != 120 {
		t.Errorf("expected 120 points, got %d", len(m.points))
	}
	if m.derived.ForceCoeffA != 12000 {
		t.Errorf("A = %g, want 12000", m.derived.ForceCoeffA)
	}
	if !strings.Contains(m.View(), "kstar") {
		t.Error("view should list kstar")
	}
}

func TestExplorer_Adjust(t *testing.T) {
	m := newTestExplorer()
	m = send(m, "down", "down", "down", "down", "right", "right")

	if params[m.cursor].name != "kstar" {
		t.Fatalf("cursor on %s, want kstar", params[m.cursor].name)
	}
	if got := m.values["kstar"]; got < 0.599 || got > 0.601 {
		t.Errorf("kstar = %g, want 0.6", got)
	}
	if m.derived.KStar != m.values["kstar"] {
		t.Errorf("derived kstar %g not rebuilt", m.derived.KStar)
	}

	m = send(m, "up", "up", "up", "up", "up", "up")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestExplorer_EditAndToggleShift(t *testing.T) {
	m := newTestExplorer()
	m = send(m, "enter")
	if !m.editing {
		t.Fatal("expected edit mode")
	}
	for range m.editBuf {
		m = send(m, "backspace")
	}
	m = send(m, "2", "0", "0", "enter")
	if m.values["c1"] != 200 {
		t.Errorf("c1 = %g, want 200", m.values["c1"])
	}
	if m.derived.EnergyCoeffA != 200 {
		t.Errorf("derived c1 = %g, want 200", m.derived.EnergyCoeffA)
	}

	if m.derived.EnergyOffset == 0 {
		t.Fatal("shifted start should have an offset")
	}
	m = send(m, "s")
	if m.shift || m.derived.EnergyOffset != 0 {
		t.Errorf("shift toggle: shift=%v offset=%g", m.shift, m.derived.EnergyOffset)
	}
}

func TestExplorer_InvalidCutoffShowsError(t *testing.T) {
	m := newTestExplorer()
	m = send(m, "down", "down", "down", "down", "down", "down", "enter")
	for range m.editBuf {
		m = send(m, "backspace")
	}
	m = send(m, "-", "1", "enter")

	if m.err == nil {
		t.Fatal("expected error for negative cutoff")
	}
	if !strings.Contains(m.View(), "cutoff") {
		t.Error("view should show the error")
	}
}

func TestExplorer_Quit(t *testing.T) {
	m := newTestExplorer()
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
