package dom

import (
	"maps"
	"slices"
	"strings"

	"github.com/npillmayer/markup/maybe"
)

// AttributeSet holds the presentation attributes of an element: a list of
// classes, an optional identifier and data attributes.
//
// Attribute sets are immutable; they are created by a Builder.
type AttributeSet struct {
	class []string            // may contain duplicates
	id    maybe.Maybe[string] // nil means Nothing
	data  map[string]string   // rendered as data-<key>
}

// Classes returns a copy of the class list, in the order the classes have
// been added.
func (as AttributeSet) Classes() []string {
	return slices.Clone(as.class)
}

// ID returns the identifier of the element, if any.
func (as AttributeSet) ID() maybe.Maybe[string] {
	if as.id == nil {
		return maybe.Nothing[string]()
	}
	return as.id
}

// Data returns the value of data attribute key.
func (as AttributeSet) Data(key string) (string, bool) {
	v, ok := as.data[key]
	return v, ok
}

// DataKeys returns the keys of all data attributes in sorted order.
func (as AttributeSet) DataKeys() []string {
	return slices.Sorted(maps.Keys(as.data))
}

// IsEmpty is true if the set neither holds classes, an identifier nor
// data attributes.
func (as AttributeSet) IsEmpty() bool {
	return len(as.class) == 0 && !as.ID().IsJust() && len(as.data) == 0
}

// Render returns the attribute set in markup form, starting with a blank.
// Classes come first (each followed by a blank), then the identifier, then
// data attributes sorted by key. Empty parts are omitted. Values are not
// escaped.
func (as AttributeSet) Render() string {
	var sb strings.Builder
	as.render(&sb)
	return sb.String()
}

func (as AttributeSet) render(sb *strings.Builder) {
	if len(as.class) > 0 {
		sb.WriteString(` class="`)
		for _, c := range as.class {
			sb.WriteString(c)
			sb.WriteByte(' ')
		}
		sb.WriteByte('"')
	}
	var id string
	switch m := as.ID().Match(); m {
	case m.Just(&id):
		writeAttr(sb, "id", id)
	case m.Nothing():
	}
	for _, k := range as.DataKeys() {
		writeAttr(sb, "data-"+k, as.data[k])
	}
}

// attributes returns the attributes as key/value pairs, in rendering order.
func (as AttributeSet) attributes() []attr {
	var attrs []attr
	if len(as.class) > 0 {
		attrs = append(attrs, attr{key: "class", value: strings.Join(as.class, " ")})
	}
	if id, ok := as.ID().Get(); ok {
		attrs = append(attrs, attr{key: "id", value: id})
	}
	for _, k := range as.DataKeys() {
		attrs = append(attrs, attr{key: "data-" + k, value: as.data[k]})
	}
	return attrs
}

func writeAttr(sb *strings.Builder, key, value string) {
	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteString(`="`)
	sb.WriteString(value)
	sb.WriteByte('"')
}
