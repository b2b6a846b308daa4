package menu

// Renderer paints components onto a concrete display. RenderMenu draws the
// active menu together with its children; RenderMenuEntry draws a submenu as
// a single row of its parent. The remaining calls cover the leaf variants.
//
// Rendering is read-only: implementations must not mutate focus, current
// flags, or cursors.
type Renderer interface {
	RenderMenu(m *Menu)
	RenderMenuEntry(m *Menu)
	RenderItem(item *Item)
	RenderBackItem(item *BackItem)
	RenderNumericItem(item *NumericItem)
}
