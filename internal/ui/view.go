package ui

import "strings"

const footerHint = "↑/↓ move · enter select · esc back · +/- adjust · / jump · q quit"

// View implements tea.Model: the session renders the active menu and the
// model frames it with filter, status, and footer rows.
func (m *Model) View() string {
	if m.width > 0 {
		m.renderer.SetWidth(m.width)
	}
	m.session.Display()
	lines := m.renderer.Lines()
	if len(lines) == 0 {
		return ""
	}
	out := make([]string, 0, len(lines)+3)
	out = append(out, lines[0])

	body := lines[1:]
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(body) > maxItems {
		start := viewportStart(len(body), maxItems, m.session.CurrentMenu().CurrentIndex())
		body = body[start : start+maxItems]
	}
	out = append(out, body...)

	if m.filtering {
		out = append(out, m.filter.View())
	}
	if m.errMsg != "" {
		out = append(out, styles.Error.Render(m.errMsg))
	} else if info := m.currentInfo(); info != "" {
		out = append(out, styles.Info.Render(info))
	}
	if m.showFooter {
		out = append(out, styles.Footer.Render(footerHint))
	}
	return strings.Join(out, "\n")
}

// maxVisibleItems returns how many child rows fit the viewport, or -1 when
// the height is unknown.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // breadcrumb header + status row
	if m.filtering {
		used++
	}
	if m.showFooter {
		used++
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

// viewportStart picks the first visible row so the cursor stays in view,
// roughly centred.
func viewportStart(total, visible, cursor int) int {
	start := cursor - visible/2
	if start > total-visible {
		start = total - visible
	}
	if start < 0 {
		start = 0
	}
	return start
}
