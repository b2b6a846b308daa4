package menu

// Session drives navigation over a single menu tree. It owns the root menu,
// tracks which menu currently receives commands, and hands rendering off to
// the borrowed renderer, which must outlive the session. All methods run
// synchronously on the caller's stack; the session expects exactly one
// caller polling it.
type Session struct {
	renderer Renderer
	root     *Menu
	active   *Menu
}

// NewSession constructs a session with an empty root menu.
func NewSession(renderer Renderer) *Session {
	root := NewMenu("", "", nil)
	return &Session{renderer: renderer, root: root, active: root}
}

// RootMenu returns the root menu for tree assembly.
func (s *Session) RootMenu() *Menu { return s.root }

// CurrentMenu returns the menu currently receiving navigation commands.
func (s *Session) CurrentMenu() *Menu { return s.active }

// Display renders the active menu through the session's renderer. It mutates
// nothing.
func (s *Session) Display() {
	if s.renderer != nil {
		s.renderer.RenderMenu(s.active)
	}
}

// Next moves the active menu's cursor forward, reporting whether it moved.
func (s *Session) Next(loop bool) bool {
	moved := s.active.Next(loop)
	s.ensureFocus()
	return moved
}

// Prev moves the active menu's cursor backwards, reporting whether it moved.
func (s *Session) Prev(loop bool) bool {
	moved := s.active.Prev(loop)
	s.ensureFocus()
	return moved
}

// Select applies the active menu's current selection. When the selection
// opens a submenu the session switches into it, resetting the submenu's
// cursor first when reset is set. Reports whether a submenu was entered; a
// leaf selection (including a back entry, whose transition runs through Back)
// reports false.
func (s *Session) Select(reset bool) bool {
	next := s.active.selectCurrent()
	if next == nil {
		s.ensureFocus()
		return false
	}
	// An empty submenu has no child to hand focus to; the parent's current
	// child (the submenu entry) keeps it so exactly one component stays
	// focused.
	if next.NumComponents() > 0 {
		if cur := s.active.CurrentComponent(); cur != nil {
			cur.SetFocus(false)
		}
	}
	if reset {
		next.Reset()
	}
	s.active = next
	s.active.Activate()
	return true
}

// Back leaves the active menu for its parent. At the root there is nowhere to
// go: the session stays put and reports false.
func (s *Session) Back() bool {
	parent := s.active.Parent()
	if parent == nil {
		return false
	}
	if cur := s.active.CurrentComponent(); cur != nil {
		cur.SetFocus(false)
	}
	s.active = parent
	s.active.Activate()
	return true
}

// Reset homes every cursor in the tree and makes the root active again.
func (s *Session) Reset() {
	if cur := s.active.CurrentComponent(); cur != nil {
		cur.SetFocus(false)
	}
	s.root.Reset()
	s.active = s.root
	s.active.Activate()
}

// ensureFocus hands focus to the active menu's current child when nothing
// holds it yet, so the single-focus invariant also holds for trees populated
// after the session was constructed.
func (s *Session) ensureFocus() {
	if cur := s.active.CurrentComponent(); cur != nil && !cur.HasFocus() {
		cur.SetFocus(true)
	}
}
