package menu

// Menu is a component holding an ordered list of children and a cursor over
// them. A menu owns its children for its whole lifetime; children are
// appended, never removed. The parent pointer exists purely for upward
// traversal and is nil only on the root.
type Menu struct {
	base
	children      []Component
	parent        *Menu
	currentIndex  int
	previousIndex int
}

// NewMenu constructs an empty menu. fn may be nil; it runs when the menu is
// selected as an entry of its parent.
func NewMenu(name, icon string, fn SelectFunc) *Menu {
	return &Menu{base: base{name: name, icon: icon, selectFn: fn}}
}

// AddItem appends a leaf entry. The first child added becomes the current
// one. Submenus go through AddMenu so the parent link is set.
func (m *Menu) AddItem(item Component) {
	m.addChild(item)
}

// AddMenu appends a submenu and links it back to this menu.
func (m *Menu) AddMenu(sub *Menu) {
	sub.parent = m
	m.addChild(sub)
}

func (m *Menu) addChild(child Component) {
	m.children = append(m.children, child)
	if len(m.children) == 1 {
		m.currentIndex = 0
		m.previousIndex = 0
		child.SetCurrent(true)
	}
}

// Next advances the cursor. Past the last entry it stays put, or wraps to the
// first when loop is set. Reports whether the index changed.
func (m *Menu) Next(loop bool) bool {
	if len(m.children) == 0 {
		return false
	}
	next := m.currentIndex + 1
	if next >= len(m.children) {
		if !loop {
			return false
		}
		next = 0
	}
	return m.moveTo(next)
}

// Prev moves the cursor backwards, the mirror of Next.
func (m *Menu) Prev(loop bool) bool {
	if len(m.children) == 0 {
		return false
	}
	next := m.currentIndex - 1
	if next < 0 {
		if !loop {
			return false
		}
		next = len(m.children) - 1
	}
	return m.moveTo(next)
}

// moveTo repositions the cursor, maintaining the current flags on the two
// affected children and carrying focus along when the outgoing child held it.
func (m *Menu) moveTo(index int) bool {
	if index == m.currentIndex {
		return false
	}
	old := m.children[m.currentIndex]
	hadFocus := old.HasFocus()
	old.SetCurrent(false)
	old.SetFocus(false)
	m.previousIndex = m.currentIndex
	m.currentIndex = index
	cur := m.children[index]
	cur.SetCurrent(true)
	if hadFocus {
		cur.SetFocus(true)
	}
	return true
}

// Select reports the menu itself as the submenu to enter, running its
// callback first. The session performs the actual switch.
func (m *Menu) Select() *Menu {
	m.invoke(m)
	return m
}

// selectCurrent applies selection to the current child: a leaf runs its
// callback, a submenu child is returned so the session can enter it. An empty
// menu yields nil.
func (m *Menu) selectCurrent() *Menu {
	if len(m.children) == 0 {
		return nil
	}
	return m.children[m.currentIndex].Select()
}

// Activate makes this menu the focused container: its remembered child takes
// focus. Returns the menu for chaining.
func (m *Menu) Activate() *Menu {
	if cur := m.CurrentComponent(); cur != nil {
		cur.SetCurrent(true)
		cur.SetFocus(true)
	}
	return m
}

// Reset recursively resets every child and homes the cursor on the first
// entry. Focus and current flags below this menu are cleared; data values of
// numeric entries are untouched.
func (m *Menu) Reset() {
	for _, child := range m.children {
		child.SetFocus(false)
		child.SetCurrent(false)
		child.Reset()
	}
	m.previousIndex = 0
	m.currentIndex = 0
	if len(m.children) > 0 {
		m.children[0].SetCurrent(true)
	}
}

// CurrentComponent returns the child under the cursor, or nil for an empty
// menu.
func (m *Menu) CurrentComponent() Component {
	if len(m.children) == 0 {
		return nil
	}
	return m.children[m.currentIndex]
}

// ComponentAt returns the child at index, or nil when out of range.
func (m *Menu) ComponentAt(index int) Component {
	if index < 0 || index >= len(m.children) {
		return nil
	}
	return m.children[index]
}

// NumComponents returns the number of children.
func (m *Menu) NumComponents() int { return len(m.children) }

// CurrentIndex returns the cursor position.
func (m *Menu) CurrentIndex() int { return m.currentIndex }

// PreviousIndex returns the cursor position before the most recent move.
func (m *Menu) PreviousIndex() int { return m.previousIndex }

// Parent returns the enclosing menu, nil for the root.
func (m *Menu) Parent() *Menu { return m.parent }

func (m *Menu) Render(r Renderer) { r.RenderMenuEntry(m) }
