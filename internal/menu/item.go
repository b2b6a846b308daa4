package menu

// Item is a terminal menu entry. Selecting it runs the callback and stays at
// the current level; it carries no internal cursor, so Next and Prev never
// move anything.
type Item struct {
	base
}

// NewItem constructs a leaf entry. fn may be nil.
func NewItem(name, icon string, fn SelectFunc) *Item {
	return &Item{base: base{name: name, icon: icon, selectFn: fn}}
}

func (it *Item) Next(bool) bool { return false }
func (it *Item) Prev(bool) bool { return false }
func (it *Item) Reset()         {}

// Select invokes the callback. A leaf never opens a submenu.
func (it *Item) Select() *Menu {
	it.invoke(it)
	return nil
}

func (it *Item) Render(r Renderer) { r.RenderItem(it) }

// Navigator is the narrow capability a BackItem needs: ask the session to
// leave the active menu for its parent. Session satisfies it.
type Navigator interface {
	Back() bool
}

// BackItem returns navigation to the parent menu when selected. The item only
// requests the move; the transition itself is performed by the injected
// Navigator.
type BackItem struct {
	Item
	nav Navigator
}

// NewBackItem constructs a back entry bound to the given Navigator.
func NewBackItem(name, icon string, fn SelectFunc, nav Navigator) *BackItem {
	return &BackItem{
		Item: Item{base: base{name: name, icon: icon, selectFn: fn}},
		nav:  nav,
	}
}

// Select runs the callback first, then requests the back transition.
func (it *BackItem) Select() *Menu {
	it.invoke(it)
	if it.nav != nil {
		it.nav.Back()
	}
	return nil
}

func (it *BackItem) Render(r Renderer) { r.RenderBackItem(it) }
