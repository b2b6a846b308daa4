package ui

import (
	"github.com/atomicstack/menu-control/internal/logging/events"
	"github.com/atomicstack/menu-control/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.filtering {
		return m.handleFilterKey(keyMsg)
	}
	events.UI.Key(keyMsg.String())
	switch keyMsg.String() {
	case "ctrl+c", "q":
		events.App.Exit("key")
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "left", "backspace":
		m.goBack()
	case "enter", "right":
		m.handleEnterKey()
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "+", "=":
		m.adjustValue(1)
	case "-", "_":
		m.adjustValue(-1)
	case "home":
		m.alignCursor(0)
	case "end":
		m.alignCursor(m.session.CurrentMenu().NumComponents() - 1)
	case "ctrl+r":
		m.session.Reset()
		events.Nav.Reset()
		m.errMsg = ""
		m.forceClearInfo()
	case "/":
		return m.startFilter()
	}
	return nil
}

// handleEscapeKey leaves the active menu; on the root it quits instead.
func (m *Model) handleEscapeKey() tea.Cmd {
	if m.session.CurrentMenu().Parent() == nil {
		events.App.Exit("esc")
		return tea.Quit
	}
	m.goBack()
	return nil
}

func (m *Model) goBack() {
	from := m.session.CurrentMenu().Name()
	ok := m.session.Back()
	events.Nav.Back(from, ok)
	if ok {
		m.errMsg = ""
		m.forceClearInfo()
	}
}

func (m *Model) handleEnterKey() {
	active := m.session.CurrentMenu()
	cur := active.CurrentComponent()
	if cur == nil {
		return
	}
	events.Nav.Select(active.Name(), cur.Name())
	if m.session.Select(m.resetOnEnter) {
		events.Nav.Enter(active.Name(), cur.Name())
		m.errMsg = ""
	}
}

func (m *Model) moveCursor(delta int) {
	active := m.session.CurrentMenu()
	var moved bool
	if delta > 0 {
		moved = m.session.Next(m.loop)
	} else {
		moved = m.session.Prev(m.loop)
	}
	if moved {
		events.Nav.Cursor(active.Name(), active.CurrentIndex())
	}
}

// alignCursor steps the active menu's cursor to the target index using plain
// next/prev moves, so focus bookkeeping stays with the session.
func (m *Model) alignCursor(target int) {
	active := m.session.CurrentMenu()
	if target < 0 || target >= active.NumComponents() {
		return
	}
	for active.CurrentIndex() < target {
		if !m.session.Next(false) {
			return
		}
	}
	for active.CurrentIndex() > target {
		if !m.session.Prev(false) {
			return
		}
	}
	events.Nav.Cursor(active.Name(), active.CurrentIndex())
}

// adjustValue steps the focused numeric entry. Other entry kinds ignore the
// key.
func (m *Model) adjustValue(delta int) {
	num, ok := m.session.CurrentMenu().CurrentComponent().(*menu.NumericItem)
	if !ok {
		return
	}
	var changed bool
	if delta > 0 {
		changed = num.Next(m.loop)
	} else {
		changed = num.Prev(m.loop)
	}
	if changed {
		events.Nav.Value(num.Name(), num.Value())
	}
}
