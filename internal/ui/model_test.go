package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/menu-control/internal/menu"
	"github.com/atomicstack/menu-control/internal/render"
	"github.com/atomicstack/menu-control/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

// newTestModel wires a model over a small tree:
//
//	root: alpha, settings(level, back), beta
func newTestModel(t *testing.T, cfg Config) *Model {
	t.Helper()
	renderer := render.NewText(theme.Default(), cfg.Width, "main menu")
	session := menu.NewSession(renderer)
	root := session.RootMenu()
	root.AddItem(menu.NewItem("alpha", "", nil))
	settings := menu.NewMenu("settings", "", nil)
	level, err := menu.NewNumericItem("level", "", nil, 5, 0, 10, 1, menu.FormatFixed(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	settings.AddItem(level)
	settings.AddItem(menu.NewBackItem("back", "", nil, session))
	root.AddMenu(settings)
	root.AddItem(menu.NewItem("beta", "", nil))
	session.Reset()
	return NewModel(cfg, session, renderer)
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestCursorKeysMoveSession(t *testing.T) {
	m := newTestModel(t, Config{})
	m.handleKeyMsg(key(tea.KeyDown))
	if got := m.session.CurrentMenu().CurrentIndex(); got != 1 {
		t.Fatalf("expected cursor 1 after down, got %d", got)
	}
	m.handleKeyMsg(key(tea.KeyUp))
	if got := m.session.CurrentMenu().CurrentIndex(); got != 0 {
		t.Fatalf("expected cursor 0 after up, got %d", got)
	}
	// Without loop the cursor stays at the boundary.
	m.handleKeyMsg(key(tea.KeyUp))
	if got := m.session.CurrentMenu().CurrentIndex(); got != 0 {
		t.Fatalf("expected cursor clamped at 0, got %d", got)
	}
}

func TestLoopConfigWrapsCursor(t *testing.T) {
	m := newTestModel(t, Config{Loop: true})
	m.handleKeyMsg(key(tea.KeyUp))
	if got := m.session.CurrentMenu().CurrentIndex(); got != 2 {
		t.Fatalf("expected wrap to last index, got %d", got)
	}
}

func TestEnterEntersSubmenuAndEscReturns(t *testing.T) {
	m := newTestModel(t, Config{})
	m.handleKeyMsg(key(tea.KeyDown))
	m.handleKeyMsg(key(tea.KeyEnter))
	if got := m.session.CurrentMenu().Name(); got != "settings" {
		t.Fatalf("expected settings menu active, got %q", got)
	}
	cmd := m.handleKeyMsg(key(tea.KeyEsc))
	if cmd != nil {
		t.Fatalf("expected no command when leaving a submenu")
	}
	if m.session.CurrentMenu() != m.session.RootMenu() {
		t.Fatalf("expected root menu active after esc")
	}
}

func TestEscAtRootQuits(t *testing.T) {
	m := newTestModel(t, Config{})
	cmd := m.handleKeyMsg(key(tea.KeyEsc))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestAdjustKeysChangeNumericValue(t *testing.T) {
	m := newTestModel(t, Config{})
	m.handleKeyMsg(key(tea.KeyDown))
	m.handleKeyMsg(key(tea.KeyEnter)) // settings, cursor on level
	m.handleKeyMsg(runeKey('+'))
	m.handleKeyMsg(runeKey('+'))
	m.handleKeyMsg(runeKey('-'))
	num, ok := m.session.CurrentMenu().CurrentComponent().(*menu.NumericItem)
	if !ok {
		t.Fatalf("expected numeric item under cursor")
	}
	if num.Value() != 6 {
		t.Fatalf("expected value 6, got %v", num.Value())
	}
}

func TestAdjustKeysIgnoredOnPlainItems(t *testing.T) {
	m := newTestModel(t, Config{})
	m.handleKeyMsg(runeKey('+'))
	if got := m.session.CurrentMenu().CurrentIndex(); got != 0 {
		t.Fatalf("expected cursor untouched, got %d", got)
	}
}

func TestHomeEndAlignCursor(t *testing.T) {
	m := newTestModel(t, Config{})
	m.handleKeyMsg(key(tea.KeyEnd))
	if got := m.session.CurrentMenu().CurrentIndex(); got != 2 {
		t.Fatalf("expected cursor at last entry, got %d", got)
	}
	m.handleKeyMsg(key(tea.KeyHome))
	if got := m.session.CurrentMenu().CurrentIndex(); got != 0 {
		t.Fatalf("expected cursor at first entry, got %d", got)
	}
}

func TestCtrlRResetsSession(t *testing.T) {
	m := newTestModel(t, Config{})
	m.handleKeyMsg(key(tea.KeyDown))
	m.handleKeyMsg(key(tea.KeyEnter))
	m.handleKeyMsg(key(tea.KeyCtrlR))
	if m.session.CurrentMenu() != m.session.RootMenu() {
		t.Fatalf("expected reset to return to root")
	}
	if got := m.session.RootMenu().CurrentIndex(); got != 0 {
		t.Fatalf("expected cursor homed, got %d", got)
	}
}

func TestViewShowsActiveMenu(t *testing.T) {
	m := newTestModel(t, Config{})
	out := m.View()
	for _, want := range []string{"main menu", "alpha", "settings", "beta"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}
}

func TestViewWindowsLongMenus(t *testing.T) {
	renderer := render.NewText(theme.Default(), 0, "main menu")
	session := menu.NewSession(renderer)
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		session.RootMenu().AddItem(menu.NewItem(name, "", nil))
	}
	session.Reset()
	m := NewModel(Config{Height: 5}, session, renderer)
	out := m.View()
	lines := strings.Split(out, "\n")
	// Header plus at most three visible rows.
	if len(lines) > 4 {
		t.Fatalf("expected windowed output, got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "a") {
		t.Fatalf("expected cursor row visible:\n%s", out)
	}
}

func TestNotifyRespectsVerbose(t *testing.T) {
	m := newTestModel(t, Config{})
	m.Notify("hello")
	if m.currentInfo() != "" {
		t.Fatalf("expected notifications suppressed without verbose")
	}
	mv := newTestModel(t, Config{Verbose: true})
	mv.Notify("hello")
	if mv.currentInfo() != "hello" {
		t.Fatalf("expected notification stored, got %q", mv.currentInfo())
	}
}

func TestWindowSizeMsgUpdatesDimensions(t *testing.T) {
	m := newTestModel(t, Config{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.width != 100 || m.height != 40 {
		t.Fatalf("expected 100x40, got %dx%d", m.width, m.height)
	}
	fixed := newTestModel(t, Config{Width: 50, Height: 10})
	fixed.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if fixed.width != 50 || fixed.height != 10 {
		t.Fatalf("expected fixed dimensions preserved, got %dx%d", fixed.width, fixed.height)
	}
}
