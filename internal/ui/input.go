package ui

import (
	"github.com/atomicstack/menu-control/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// startFilter opens the jump filter over the active menu's entries.
func (m *Model) startFilter() tea.Cmd {
	m.filtering = true
	m.filter.SetValue("")
	m.errMsg = ""
	m.forceClearInfo()
	return m.filter.Focus()
}

func (m *Model) stopFilter() {
	m.filtering = false
	m.filter.Blur()
	m.filter.SetValue("")
}

// handleFilterKey edits the filter query; every change realigns the cursor
// onto the best match so the highlight jumps live.
func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.stopFilter()
		events.Filter.Cleared()
		return nil
	case "enter":
		m.stopFilter()
		return nil
	case "up", "down":
		// Leave filter mode and let the cursor keys act normally.
		m.stopFilter()
		return m.handleKeyMsg(msg)
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	query := m.filter.Value()
	if query == "" {
		return cmd
	}
	idx := BestMatchIndex(m.entryLabels(), query)
	if idx >= 0 {
		m.alignCursor(idx)
	}
	events.Filter.Query(query, idx)
	return cmd
}

func (m *Model) entryLabels() []string {
	active := m.session.CurrentMenu()
	labels := make([]string, 0, active.NumComponents())
	for i := 0; i < active.NumComponents(); i++ {
		labels = append(labels, active.ComponentAt(i).Name())
	}
	return labels
}
