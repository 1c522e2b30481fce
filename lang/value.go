package lang

import (
	"slices"
	"strconv"
	"strings"
)

// Kind identifies which case of the [Value] sum type a value holds.
type Kind int

const (
	// KindInt is an integer scalar.
	KindInt Kind = iota

	// KindSeq is an ordered sequence of scalars.
	KindSeq

	// KindStr is a string scalar, possibly a constant reference.
	KindStr

	// KindMap is an ordered mapping of identifiers to values.
	KindMap
)

// String returns a string representation of the value kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindSeq:
		return "Seq"
	case KindStr:
		return "Str"
	case KindMap:
		return "Map"
	default:
		return "Unknown"
	}
}

// Value is a node of a parsed document.
//
// The set of implementations is closed: [Int], [Seq], [Str], and [*Map].
// Code that switches on a Value should handle all four and treat anything
// else as [ErrUnsupportedType].
type Value interface {
	// Kind reports which case of the sum type the value holds.
	Kind() Kind

	// Native returns the value as plain Go data: int64, string, []any, or
	// map[string]any.
	Native() any

	value()
}

// Int is an integer scalar.
type Int int64

// Seq is an ordered sequence of scalars ([Int] or [Str]).
type Seq []Value

// Str is a string scalar.
// A Str beginning with [RefMarker] is a constant reference.
type Str string

// Entry is a single named value of a [Map].
type Entry struct {
	Name  string
	Value Value
}

// Map is an ordered mapping of identifiers to values.
// Declaration order of the source document is preserved.
type Map struct {
	Entries []Entry
}

func (Int) Kind() Kind  { return KindInt }
func (Seq) Kind() Kind  { return KindSeq }
func (Str) Kind() Kind  { return KindStr }
func (*Map) Kind() Kind { return KindMap }

func (Int) value()  {}
func (Seq) value()  {}
func (Str) value()  {}
func (*Map) value() {}

// String returns the decimal representation of i.
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// String returns the array literal representation of s.
func (s Seq) String() string {
	var sb strings.Builder

	sb.WriteString("array(")

	for i, v := range s {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(scalarText(v))
	}

	sb.WriteString(")")

	return sb.String()
}

// IsRef reports whether s is a constant reference.
func (s Str) IsRef() bool { return strings.HasPrefix(string(s), RefMarker) }

// NewMap returns a mapping holding the given entries in order.
func NewMap(entries ...Entry) *Map {
	return &Map{Entries: entries}
}

// Len returns the number of entries in m.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.Entries)
}

// Get returns the value of the entry with the given name.
func (m *Map) Get(name string) (Value, bool) {
	if m == nil {
		return nil, false
	}

	idx := slices.IndexFunc(m.Entries, func(e Entry) bool {
		return e.Name == name
	})
	if idx < 0 {
		return nil, false
	}

	return m.Entries[idx].Value, true
}

// Set assigns v to the entry with the given name. An existing entry keeps its
// position; otherwise a new entry is appended.
func (m *Map) Set(name string, v Value) {
	idx := slices.IndexFunc(m.Entries, func(e Entry) bool {
		return e.Name == name
	})
	if idx < 0 {
		m.Entries = append(m.Entries, Entry{Name: name, Value: v})

		return
	}

	m.Entries[idx].Value = v
}

// Names returns the entry names of m in declaration order.
func (m *Map) Names() []string {
	names := make([]string, 0, m.Len())
	for _, e := range m.entries() {
		names = append(names, e.Name)
	}

	return names
}

func (m *Map) entries() []Entry {
	if m == nil {
		return nil
	}

	return m.Entries
}

// check reports an [ErrUnsupportedType] for the first element of s that is
// not an [Int] or a [Str].
func (s Seq) check() error {
	for _, v := range s {
		switch v.(type) {
		case Int, Str:
		default:
			return unsupportedType(typeName(v))
		}
	}

	return nil
}

// scalarText returns the plain textual form of a sequence element.
func scalarText(v Value) string {
	switch v := v.(type) {
	case Int:
		return v.String()
	case Str:
		return string(v)
	case nil:
		return "<nil>"
	default:
		return v.Kind().String()
	}
}
