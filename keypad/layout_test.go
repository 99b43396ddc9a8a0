package keypad

import (
	"errors"
	"testing"
)

func TestLayoutCoords(t *testing.T) {
	for _, tt := range []struct {
		l    *Layout
		key  byte
		want Coord
	}{
		{Numeric, '7', Coord{0, 0}},
		{Numeric, '8', Coord{0, 1}},
		{Numeric, '9', Coord{0, 2}},
		{Numeric, '4', Coord{1, 0}},
		{Numeric, '5', Coord{1, 1}},
		{Numeric, '6', Coord{1, 2}},
		{Numeric, '1', Coord{2, 0}},
		{Numeric, '2', Coord{2, 1}},
		{Numeric, '3', Coord{2, 2}},
		{Numeric, '0', Coord{3, 1}},
		{Numeric, 'A', Coord{3, 2}},
		{Directional, '^', Coord{0, 1}},
		{Directional, 'A', Coord{0, 2}},
		{Directional, '<', Coord{1, 0}},
		{Directional, 'v', Coord{1, 1}},
		{Directional, '>', Coord{1, 2}},
	} {
		got, err := tt.l.Coord(tt.key)
		if err != nil {
			t.Errorf("%s.Coord(%q): %s", tt.l.Name(), tt.key, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s.Coord(%q): got %v; want %v", tt.l.Name(), tt.key, got, tt.want)
		}
	}
}

func TestLayoutGap(t *testing.T) {
	if !Numeric.IsGap(Coord{3, 0}) {
		t.Error("numeric gap is not at (3, 0)")
	}
	if !Directional.IsGap(Coord{0, 0}) {
		t.Error("directional gap is not at (0, 0)")
	}
	if Numeric.IsGap(Coord{0, 0}) {
		t.Error("numeric (0, 0) reported as gap")
	}
	if _, ok := Numeric.KeyAt(Coord{3, 0}); ok {
		t.Error("numeric gap has a key")
	}
}

func TestLayoutKeys(t *testing.T) {
	if got, want := string(Numeric.Keys()), "0123456789A"; got != want {
		t.Errorf("numeric keys: got %q; want %q", got, want)
	}
	if got, want := string(Directional.Keys()), "<>A^v"; got != want {
		t.Errorf("directional keys: got %q; want %q", got, want)
	}
}

func TestLayoutUnknownKey(t *testing.T) {
	for _, tt := range []struct {
		l   *Layout
		key byte
	}{
		{Numeric, 'B'},
		{Numeric, '<'},
		{Directional, '5'},
		{Directional, ' '},
	} {
		_, err := tt.l.Coord(tt.key)
		if !errors.Is(err, ErrUnknownKey) {
			t.Errorf("%s.Coord(%q): got err %v; want ErrUnknownKey", tt.l.Name(), tt.key, err)
		}
	}
}
