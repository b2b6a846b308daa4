// Package render provides a terminal implementation of the menu.Renderer
// contract: components become styled text lines the UI can print.
package render

import (
	"strings"

	"github.com/atomicstack/menu-control/internal/menu"
	"github.com/atomicstack/menu-control/internal/theme"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	itemIndicator   = "▌"
	submenuMarker   = "▸"
	backMarker      = "↩"
	breadcrumbJoint = " → "
	emptyMessage    = "(no entries)"
	truncationTail  = "…"
)

// Text renders menu components as styled terminal lines. Each RenderMenu call
// rebuilds the line buffer; navigation state is never touched.
type Text struct {
	styles *theme.Styles
	width  int
	title  string
	lines  []string
}

// NewText constructs a renderer. width <= 0 disables truncation and padding;
// title is the breadcrumb label used for the unnamed root menu.
func NewText(styles *theme.Styles, width int, title string) *Text {
	return &Text{styles: styles, width: width, title: title}
}

// SetWidth adjusts the target column width.
func (t *Text) SetWidth(width int) { t.width = width }

// Lines returns the rows produced by the most recent RenderMenu call.
func (t *Text) Lines() []string {
	return append([]string(nil), t.lines...)
}

// String joins the rendered rows.
func (t *Text) String() string { return strings.Join(t.lines, "\n") }

// RenderMenu draws the active menu: a breadcrumb header followed by one row
// per child, each child dispatching back through its own Render.
func (t *Text) RenderMenu(m *menu.Menu) {
	t.lines = t.lines[:0]
	t.lines = append(t.lines, t.styles.Header.Render(t.breadcrumb(m)))
	if m.NumComponents() == 0 {
		t.lines = append(t.lines, t.styles.Info.Render(emptyMessage))
		return
	}
	for i := 0; i < m.NumComponents(); i++ {
		m.ComponentAt(i).Render(t)
	}
}

// RenderMenuEntry draws a submenu as a row of its parent.
func (t *Text) RenderMenuEntry(m *menu.Menu) {
	t.appendRow(m, m.Name()+" "+submenuMarker)
}

func (t *Text) RenderItem(item *menu.Item) {
	t.appendRow(item, item.Name())
}

func (t *Text) RenderBackItem(item *menu.BackItem) {
	t.appendRow(item, item.Name()+" "+backMarker)
}

func (t *Text) RenderNumericItem(item *menu.NumericItem) {
	t.appendRow(item, item.Name()+"  "+item.FormattedValue())
}

// appendRow builds one child row: indicator, optional icon, label. The
// focused row gets the highlighted style pair and, when a width is known, a
// background that spans the full column.
func (t *Text) appendRow(c menu.Component, label string) {
	lineStyle := t.styles.Item
	indicatorStyle := t.styles.ItemIndicator
	if c.HasFocus() {
		lineStyle = t.styles.FocusedItem
		indicatorStyle = t.styles.FocusedItemIndicator
	}
	text := label
	if icon := c.Icon(); icon != "" {
		text = icon + " " + text
	}
	if t.width > 2 {
		avail := t.width - 2 // indicator and its trailing space
		text = truncate.StringWithTail(text, uint(avail), truncationTail)
		// Pad by display width, not rune count: wide icons cover two cells.
		if pad := avail - ansi.PrintableRuneWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	t.lines = append(t.lines, indicatorStyle.Render(itemIndicator)+" "+lineStyle.Render(text))
}

// breadcrumb walks the parent chain and joins the menu names root-first.
func (t *Text) breadcrumb(m *menu.Menu) string {
	segments := []string{}
	for cur := m; cur != nil; cur = cur.Parent() {
		name := strings.TrimSpace(cur.Name())
		if name == "" && cur.Parent() == nil {
			name = t.title
		}
		if name == "" {
			continue
		}
		segments = append([]string{name}, segments...)
	}
	if len(segments) == 0 {
		return t.title
	}
	return strings.Join(segments, breadcrumbJoint)
}
