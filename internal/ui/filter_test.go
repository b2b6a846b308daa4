package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestBestMatchIndexPrefersExactThenPrefix(t *testing.T) {
	labels := []string{"display", "sound", "network", "net"}
	if got := BestMatchIndex(labels, "net"); got != 3 {
		t.Fatalf("expected exact match at 3, got %d", got)
	}
	if got := BestMatchIndex(labels, "so"); got != 1 {
		t.Fatalf("expected prefix match at 1, got %d", got)
	}
	if got := BestMatchIndex(labels, "work"); got != 2 {
		t.Fatalf("expected substring match at 2, got %d", got)
	}
}

func TestBestMatchIndexFuzzyFallback(t *testing.T) {
	labels := []string{"brightness", "contrast"}
	if got := BestMatchIndex(labels, "brgt"); got != 0 {
		t.Fatalf("expected fuzzy match at 0, got %d", got)
	}
}

func TestBestMatchIndexNoMatch(t *testing.T) {
	labels := []string{"alpha", "beta"}
	if got := BestMatchIndex(labels, "zzz"); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
	if got := BestMatchIndex(labels, "   "); got != -1 {
		t.Fatalf("expected -1 for blank query, got %d", got)
	}
}

func TestFilterJumpsCursorLive(t *testing.T) {
	m := newTestModel(t, Config{})
	m.handleKeyMsg(runeKey('/'))
	if !m.filtering {
		t.Fatalf("expected filter mode")
	}
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("be")})
	if got := m.session.CurrentMenu().CurrentIndex(); got != 2 {
		t.Fatalf("expected cursor jumped to beta, got %d", got)
	}
	m.handleKeyMsg(key(tea.KeyEnter))
	if m.filtering {
		t.Fatalf("expected filter mode closed")
	}
	if got := m.session.CurrentMenu().CurrentIndex(); got != 2 {
		t.Fatalf("expected cursor kept after closing, got %d", got)
	}
}

func TestFilterEscCancels(t *testing.T) {
	m := newTestModel(t, Config{})
	m.handleKeyMsg(runeKey('/'))
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("se")})
	m.handleKeyMsg(key(tea.KeyEsc))
	if m.filtering {
		t.Fatalf("expected filter mode closed")
	}
	if m.filter.Value() != "" {
		t.Fatalf("expected query cleared, got %q", m.filter.Value())
	}
	// Esc afterwards quits from the root as usual.
	if cmd := m.handleKeyMsg(key(tea.KeyEsc)); cmd == nil {
		t.Fatalf("expected quit command after filter closed")
	}
}

func TestFilterCursorKeysFallThrough(t *testing.T) {
	m := newTestModel(t, Config{})
	m.handleKeyMsg(runeKey('/'))
	m.handleKeyMsg(key(tea.KeyDown))
	if m.filtering {
		t.Fatalf("expected filter mode closed by cursor key")
	}
	if got := m.session.CurrentMenu().CurrentIndex(); got != 1 {
		t.Fatalf("expected cursor moved by fall-through key, got %d", got)
	}
}
