// Package keypad computes how many button presses an operator needs to type
// a code on a numeric keypad through a chain of robots, each driving the
// directional keypad of the next.
package keypad

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownKey is returned when a key is not part of a layout.
var ErrUnknownKey = errors.New("unknown key")

// A Coord is a (row, column) position on a keypad. Row 0 is the top row.
type Coord struct {
	Row, Col int
}

func (c Coord) add(d Coord) Coord {
	return Coord{c.Row + d.Row, c.Col + d.Col}
}

// A Layout is the fixed geometry of a keypad: where each key sits and which
// cell of the bounding grid is empty. A Layout is never modified after it
// is constructed.
type Layout struct {
	name string
	keys map[byte]Coord
	at   map[Coord]byte
	gap  Coord
}

var (
	// Numeric is the door keypad:
	//
	//	7 8 9
	//	4 5 6
	//	1 2 3
	//	  0 A
	Numeric = newLayout("numeric",
		"789",
		"456",
		"123",
		" 0A",
	)
	// Directional is the keypad a robot arm is driven with:
	//
	//	  ^ A
	//	< v >
	Directional = newLayout("directional",
		" ^A",
		"<v>",
	)
)

// newLayout builds a layout from its rows. A space marks the gap; there must
// be exactly one.
func newLayout(name string, rows ...string) *Layout {
	l := &Layout{
		name: name,
		keys: make(map[byte]Coord),
		at:   make(map[Coord]byte),
	}
	gaps := 0
	for r, row := range rows {
		for c := 0; c < len(row); c++ {
			pos := Coord{r, c}
			if row[c] == ' ' {
				l.gap = pos
				gaps++
				continue
			}
			if _, ok := l.keys[row[c]]; ok {
				panic(fmt.Sprintf("duplicate key %q in %s layout", row[c], name))
			}
			l.keys[row[c]] = pos
			l.at[pos] = row[c]
		}
	}
	if gaps != 1 {
		panic(fmt.Sprintf("%s layout has %d gaps; want 1", name, gaps))
	}
	return l
}

// Name returns the name of the layout ("numeric" or "directional").
func (l *Layout) Name() string { return l.name }

// Coord returns the position of key.
func (l *Layout) Coord(key byte) (Coord, error) {
	pos, ok := l.keys[key]
	if !ok {
		return Coord{}, fmt.Errorf("%w %q on %s keypad", ErrUnknownKey, key, l.name)
	}
	return pos, nil
}

// IsGap reports whether pos is the empty cell of the layout.
func (l *Layout) IsGap(pos Coord) bool { return pos == l.gap }

// KeyAt returns the key at pos, if any.
func (l *Layout) KeyAt(pos Coord) (byte, bool) {
	key, ok := l.at[pos]
	return key, ok
}

// Keys returns the keys of the layout in ascending byte order.
func (l *Layout) Keys() []byte {
	keys := make([]byte, 0, len(l.keys))
	for key := range l.keys {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
