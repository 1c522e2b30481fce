package lang

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/goccy/go-yaml"
)

// FromNative converts the output of a structured-document parser into a
// document mapping.
//
// Ordered mappings ([yaml.MapSlice]) keep their declaration order; a plain
// map[string]any has its keys sorted. Duplicate keys keep the position of
// their first occurrence and the value of their last.
//
// The keys of a mapping are validated as identifiers before any of its values
// is converted, so an invalid name is reported ahead of an unsupported value
// beside or beneath it.
// Unsupported shapes (floats, booleans, nulls, nested sequences, and so on)
// fail with [ErrUnsupportedType] naming the offending Go type.
func FromNative(root any) (*Map, error) {
	v, err := fromNative(root)
	if err != nil {
		return nil, err
	}

	m, ok := v.(*Map)
	if !ok {
		return nil, unsupportedType(typeName(root)).
			Wrap(fmt.Errorf("document root must be a mapping"))
	}

	return m, nil
}

func fromNative(v any) (Value, error) {
	switch v := v.(type) {
	case yaml.MapSlice:
		names := make([]string, len(v))

		for i, item := range v {
			name, ok := item.Key.(string)
			if !ok {
				return nil, invalidName(fmt.Sprint(item.Key))
			}

			if err := ValidateName(name); err != nil {
				return nil, err
			}

			names[i] = name
		}

		m := NewMap()

		for i, item := range v {
			val, err := fromNative(item.Value)
			if err != nil {
				return nil, err
			}

			m.Set(names[i], val)
		}

		return m, nil

	case map[string]any:
		names := sortedKeys(v)

		for _, name := range names {
			if err := ValidateName(name); err != nil {
				return nil, err
			}
		}

		m := NewMap()

		for _, name := range names {
			val, err := fromNative(v[name])
			if err != nil {
				return nil, err
			}

			m.Set(name, val)
		}

		return m, nil

	case []any:
		seq := make(Seq, 0, len(v))

		for _, elem := range v {
			s, err := scalarFromNative(elem)
			if err != nil {
				return nil, err
			}

			seq = append(seq, s)
		}

		return seq, nil

	case string:
		return Str(v), nil

	case Seq:
		if err := v.check(); err != nil {
			return nil, err
		}

		return v, nil

	case Value:
		return v, nil

	default:
		if i, ok := intFromNative(v); ok {
			return i, nil
		}

		return nil, unsupportedType(typeName(v))
	}
}

// scalarFromNative converts a sequence element. Only integers and strings are
// allowed; nested sequences and mappings have no rendering.
func scalarFromNative(v any) (Value, error) {
	switch v := v.(type) {
	case string:
		return Str(v), nil

	case Int:
		return v, nil

	case Str:
		return v, nil

	default:
		if i, ok := intFromNative(v); ok {
			return i, nil
		}

		return nil, unsupportedType(typeName(v))
	}
}

func intFromNative(v any) (Int, bool) {
	switch v := v.(type) {
	case int:
		return Int(v), true
	case int8:
		return Int(v), true
	case int16:
		return Int(v), true
	case int32:
		return Int(v), true
	case int64:
		return Int(v), true
	case uint:
		return uintFromNative(uint64(v))
	case uint8:
		return Int(v), true
	case uint16:
		return Int(v), true
	case uint32:
		return Int(v), true
	case uint64:
		return uintFromNative(v)
	default:
		return 0, false
	}
}

func uintFromNative(u uint64) (Int, bool) {
	if u > math.MaxInt64 {
		return 0, false
	}

	return Int(u), true
}

// Native returns i as an int64.
func (i Int) Native() any { return int64(i) }

// Native returns s as a string.
func (s Str) Native() any { return string(s) }

// Native returns s as a []any of int64 and string elements.
func (s Seq) Native() any {
	result := make([]any, 0, len(s))
	for _, v := range s {
		result = append(result, v.Native())
	}

	return result
}

// Native returns m as a map[string]any. Declaration order is lost; use
// [Map.MapSlice] to keep it.
func (m *Map) Native() any {
	result := make(map[string]any, m.Len())
	for _, e := range m.entries() {
		result[e.Name] = e.Value.Native()
	}

	return result
}

// MapSlice returns m as an ordered [yaml.MapSlice], recursively.
func (m *Map) MapSlice() yaml.MapSlice {
	result := make(yaml.MapSlice, 0, m.Len())

	for _, e := range m.entries() {
		var val any

		if sub, ok := e.Value.(*Map); ok {
			val = sub.MapSlice()
		} else {
			val = e.Value.Native()
		}

		result = append(result, yaml.MapItem{Key: e.Name, Value: val})
	}

	return result
}

func sortedKeys[T any](m map[string]T) []string {
	if len(m) == 0 {
		return nil
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// typeName returns the Go type name of value, or "nil".
func typeName(value any) string {
	if value == nil {
		return "nil"
	}

	return reflect.TypeOf(value).String()
}
