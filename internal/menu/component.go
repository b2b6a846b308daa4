package menu

// SelectFunc is invoked when a component is selected. It receives the
// component that triggered it and runs synchronously inside Select.
type SelectFunc func(c Component)

// Component is a navigable node in the menu tree: a leaf entry or a nested
// Menu. The set of implementations is closed; renderers get a dedicated
// visit call per concrete type.
type Component interface {
	// Name returns the display label.
	Name() string
	// SetName replaces the display label.
	SetName(name string)
	// Icon returns the display icon, possibly empty.
	Icon() string
	// HasFocus reports whether this component is the globally highlighted one.
	HasFocus() bool
	// SetFocus stores the focus flag. It does not clear focus anywhere else
	// in the tree; keeping a single focused component is the caller's job.
	SetFocus(focused bool)
	// IsCurrent reports whether this component is its parent menu's
	// remembered active child.
	IsCurrent() bool
	// SetCurrent stores the current flag.
	SetCurrent(current bool)
	// SetSelectFunc replaces the selection callback.
	SetSelectFunc(fn SelectFunc)

	// Next advances the component's internal state, reporting whether
	// anything changed. Leaf entries without internal state report false.
	Next(loop bool) bool
	// Prev is the counterpart of Next.
	Prev(loop bool) bool
	// Reset returns the component's internal cursor to its initial state.
	Reset()
	// Select applies the component's selection behaviour and returns the
	// submenu to enter, or nil when the selection stays at the current level.
	Select() *Menu
	// Render dispatches to the renderer call matching the concrete type.
	Render(r Renderer)
}

type base struct {
	name     string
	icon     string
	selectFn SelectFunc
	focused  bool
	current  bool
}

func (b *base) Name() string                { return b.name }
func (b *base) SetName(name string)         { b.name = name }
func (b *base) Icon() string                { return b.icon }
func (b *base) HasFocus() bool              { return b.focused }
func (b *base) SetFocus(focused bool)       { b.focused = focused }
func (b *base) IsCurrent() bool             { return b.current }
func (b *base) SetCurrent(current bool)     { b.current = current }
func (b *base) SetSelectFunc(fn SelectFunc) { b.selectFn = fn }

// invoke runs the selection callback, passing the concrete component rather
// than the embedded base.
func (b *base) invoke(c Component) {
	if b.selectFn != nil {
		b.selectFn(c)
	}
}
