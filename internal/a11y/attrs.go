// Package a11y holds the accessibility attribute vocabulary shared by the
// interaction primitives. Attributes are treated as a wire format toward
// assistive technology: every primitive exposes its current state as Attrs,
// and the presentation layer forwards them untouched.
package a11y

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Role values assigned by the primitives.
const (
	RoleDialog   = "dialog"
	RoleTablist  = "tablist"
	RoleTab      = "tab"
	RoleTabpanel = "tabpanel"
	RoleTooltip  = "tooltip"
	RoleRegion   = "region"
)

// Attribute names used across primitives.
const (
	ID              = "id"
	Role            = "role"
	Hidden          = "hidden"
	TabIndex        = "tabindex"
	AriaExpanded    = "aria-expanded"
	AriaSelected    = "aria-selected"
	AriaHidden      = "aria-hidden"
	AriaModal       = "aria-modal"
	AriaControls    = "aria-controls"
	AriaLabel       = "aria-label"
	AriaLabelledBy  = "aria-labelledby"
	AriaDescribedBy = "aria-describedby"
	AriaOrientation = "aria-orientation"
	DataOpen        = "data-open"
	DataPlacement   = "data-placement"
)

// Attrs is a set of attribute name/value pairs. A missing key means the
// attribute is absent, which is distinct from an empty value.
type Attrs map[string]string

// Set stores value under name and returns a for chaining.
func (a Attrs) Set(name, value string) Attrs {
	a[name] = value
	return a
}

// SetBool stores "true" or "false".
func (a Attrs) SetBool(name string, v bool) Attrs {
	a[name] = strconv.FormatBool(v)
	return a
}

// SetInt stores the decimal form of v.
func (a Attrs) SetInt(name string, v int) Attrs {
	a[name] = strconv.Itoa(v)
	return a
}

// SetIf stores value only when cond holds, and removes name otherwise.
func (a Attrs) SetIf(cond bool, name, value string) Attrs {
	if cond {
		a[name] = value
	} else {
		delete(a, name)
	}
	return a
}

// Has reports whether name is present.
func (a Attrs) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Bool parses a boolean attribute. Absent or malformed values read as false.
func (a Attrs) Bool(name string) bool {
	v, err := strconv.ParseBool(a[name])
	return err == nil && v
}

// String renders the attributes as name="value" pairs sorted by name.
func (a Attrs) String() string {
	names := make([]string, 0, len(a))
	for k := range a {
		names = append(names, k)
	}
	sort.Strings(names)
	var b strings.Builder
	for i, k := range names {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(a[k])
		b.WriteByte('"')
	}
	return b.String()
}

// Scope builds element ids that are unique per primitive instance, so that
// two instances rendering the same item id never collide on linkage
// attributes.
type Scope struct {
	suffix string
}

// NewScope returns a scope with the given suffix, or a random one when
// suffix is empty.
func NewScope(suffix string) Scope {
	if suffix == "" {
		suffix = strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	}
	return Scope{suffix: suffix}
}

// Suffix returns the instance suffix.
func (s Scope) Suffix() string { return s.suffix }

// ID joins parts with "-" and appends the instance suffix.
func (s Scope) ID(parts ...string) string {
	return strings.Join(append(parts, s.suffix), "-")
}
