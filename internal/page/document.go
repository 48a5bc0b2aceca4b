package page

// Document tracks the page's focusable elements and which one holds input
// focus. Element ids are lookup keys only: the document never owns the
// component behind an id, and stale ids are simply absent.
type Document struct {
	order    []string
	elements map[string]*element
	active   string
	trap     []string
	OnChange func(from, to string)
}

type element struct {
	tabIndex int
	disabled bool
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{elements: make(map[string]*element)}
}

// Register adds id in document order, or updates its tab index when it is
// already present. Elements with tabIndex < 0 take programmatic focus only.
func (d *Document) Register(id string, tabIndex int) {
	if e, ok := d.elements[id]; ok {
		e.tabIndex = tabIndex
		return
	}
	d.elements[id] = &element{tabIndex: tabIndex}
	d.order = append(d.order, id)
}

// Remove deletes id. If it held focus, focus moves to nothing.
func (d *Document) Remove(id string) {
	if _, ok := d.elements[id]; !ok {
		return
	}
	delete(d.elements, id)
	for i, o := range d.order {
		if o == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	if d.active == id {
		d.setActive("")
	}
}

// Contains reports whether id is in the document.
func (d *Document) Contains(id string) bool {
	_, ok := d.elements[id]
	return ok
}

// SetTabIndex updates the sequential-navigation index for id.
// Returns false if id is not in the document.
func (d *Document) SetTabIndex(id string, tabIndex int) bool {
	e, ok := d.elements[id]
	if !ok {
		return false
	}
	e.tabIndex = tabIndex
	return true
}

// TabIndex returns the tab index of id and whether it exists.
func (d *Document) TabIndex(id string) (int, bool) {
	e, ok := d.elements[id]
	if !ok {
		return 0, false
	}
	return e.tabIndex, true
}

// SetDisabled marks id as unable to take focus. A focused element that
// becomes disabled loses focus.
func (d *Document) SetDisabled(id string, disabled bool) {
	e, ok := d.elements[id]
	if !ok {
		return
	}
	e.disabled = disabled
	if disabled && d.active == id {
		d.setActive("")
	}
}

// CanFocus reports whether id exists and can accept focus.
func (d *Document) CanFocus(id string) bool {
	e, ok := d.elements[id]
	return ok && !e.disabled
}

// Active returns the id holding focus, or "" when nothing does.
func (d *Document) Active() string {
	return d.active
}

// Focus moves focus to id. Returns false and leaves focus untouched when id
// cannot accept focus.
func (d *Document) Focus(id string) bool {
	if !d.CanFocus(id) {
		return false
	}
	d.setActive(id)
	return true
}

// Blur clears focus.
func (d *Document) Blur() {
	d.setActive("")
}

// Next advances focus to the next tabbable element, wrapping at the end.
// Returns the new active id.
func (d *Document) Next() string {
	return d.step(1)
}

// Prev moves focus to the previous tabbable element, wrapping at the start.
func (d *Document) Prev() string {
	return d.step(-1)
}

// Trap restricts sequential navigation to scope until release is called.
// Release restores whatever trap was in place before.
func (d *Document) Trap(scope []string) (release func()) {
	prev := d.trap
	d.trap = append([]string{}, scope...)
	released := false
	return func() {
		if released {
			return
		}
		released = true
		d.trap = prev
	}
}

// Trapped reports whether a focus trap is installed.
func (d *Document) Trapped() bool {
	return d.trap != nil
}

func (d *Document) step(delta int) string {
	source := d.source()
	pos := -1
	for i, id := range source {
		if id == d.active {
			pos = i
			break
		}
	}
	if pos < 0 {
		// Nothing focused inside the order: enter at the near end.
		pos = len(source)
		if delta > 0 {
			pos = -1
		}
	}
	n := len(source)
	for i := 1; i <= n; i++ {
		id := source[((pos+delta*i)%n+n)%n]
		if d.tabbableID(id) {
			d.setActive(id)
			break
		}
	}
	return d.active
}

func (d *Document) source() []string {
	if d.trap != nil {
		return d.trap
	}
	return d.order
}

func (d *Document) tabbableID(id string) bool {
	e, ok := d.elements[id]
	return ok && !e.disabled && e.tabIndex >= 0
}

func (d *Document) setActive(id string) {
	from := d.active
	d.active = id
	if d.OnChange != nil && from != id {
		d.OnChange(from, id)
	}
}
