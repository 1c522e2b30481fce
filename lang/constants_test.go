package lang

import (
	"errors"
	"slices"
	"testing"

	"github.com/ardnew/aconf/log"
)

func TestBuildConstants(t *testing.T) {
	doc := NewMap(
		Entry{"NUM", Int(10)},
		Entry{"STR", Str("text")},
		Entry{"ARR", Seq{Int(1), Int(2)}},
		Entry{"REF", Str("@NUM")},
		Entry{"SUB", NewMap(Entry{"INNER", Int(3)})},
	)

	consts, err := BuildConstants(doc)
	if err != nil {
		t.Fatalf("BuildConstants() error = %v", err)
	}

	if got, want := consts.Names(), []string{"NUM", "ARR"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	if v, ok := consts.Lookup("NUM"); !ok || v != Int(10) {
		t.Errorf("Lookup(NUM) = %v, %v; want 10, true", v, ok)
	}

	for _, name := range []string{"STR", "REF", "SUB", "INNER"} {
		if _, ok := consts.Lookup(name); ok {
			t.Errorf("Lookup(%s) found a constant, want none", name)
		}
	}
}

func TestBuildConstants_InvalidName(t *testing.T) {
	tests := []struct {
		name    string
		doc     *Map
		wantErr bool
	}{
		{"int_entry", NewMap(Entry{"num", Int(1)}), true},
		{"seq_entry", NewMap(Entry{"Arr", Seq{}}), true},
		// Strings and mappings are only checked during emission.
		{"string_entry_skipped", NewMap(Entry{"str", Str("x")}), false},
		{"map_entry_skipped", NewMap(Entry{"sub", NewMap()}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildConstants(tt.doc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BuildConstants() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr && !errors.Is(err, ErrInvalidName) {
				t.Errorf("BuildConstants() error = %v, want ErrInvalidName", err)
			}
		})
	}
}

func TestConstants_ZeroValue(t *testing.T) {
	var c *Constants

	if c.Len() != 0 {
		t.Errorf("nil table Len() = %d", c.Len())
	}

	if _, ok := c.Lookup("A"); ok {
		t.Error("nil table Lookup() succeeded")
	}

	for name := range c.All() {
		t.Errorf("nil table yielded %q", name)
	}
}

func TestConstants_All(t *testing.T) {
	consts, err := BuildConstants(NewMap(
		Entry{"B", Int(2)},
		Entry{"A", Int(1)},
	))
	if err != nil {
		t.Fatalf("BuildConstants() error = %v", err)
	}

	var names []string
	for name, v := range consts.All() {
		names = append(names, name+"="+Render(v))
	}

	if want := []string{"B=2", "A=1"}; !slices.Equal(names, want) {
		t.Errorf("All() = %v, want %v", names, want)
	}
}

func TestBuildConstants_ExtendsBase(t *testing.T) {
	base, err := BuildConstants(NewMap(Entry{"A", Int(1)}, Entry{"B", Int(2)}))
	if err != nil {
		t.Fatal(err)
	}

	next, err := buildConstants(t.Context(), base, NewMap(Entry{"A", Int(9)}), log.Logger{})
	if err != nil {
		t.Fatal(err)
	}

	if v, _ := next.Lookup("A"); v != Int(9) {
		t.Errorf("A = %v, want 9", v)
	}

	if v, _ := base.Lookup("A"); v != Int(1) {
		t.Errorf("base A = %v, want 1 (base must not change)", v)
	}

	if got, want := next.Names(), []string{"A", "B"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
