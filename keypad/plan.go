package keypad

import (
	"fmt"
	"strings"
)

// Activate is the press that confirms the key under the pointer. Every
// keypad has it, and every chunk of presses ends with it.
const Activate = 'A'

var directions = map[byte]Coord{
	'<': {0, -1},
	'>': {0, 1},
	'^': {-1, 0},
	'v': {1, 0},
}

// Plan returns the presses on a directional keypad that move the pointer of
// l from the key from to the key to and press it.
//
// The moves are ordered left, then down or up, then right. If that path
// crosses the gap, the reverse order is used instead; for an L-shaped path
// around a single missing cell at least one of the two is clear. The result
// always has length |dx|+|dy|+1.
func Plan(l *Layout, from, to byte) (string, error) {
	p0, err := l.Coord(from)
	if err != nil {
		return "", err
	}
	p1, err := l.Coord(to)
	if err != nil {
		return "", err
	}
	dy, dx := p1.Row-p0.Row, p1.Col-p0.Col

	var b strings.Builder
	b.Grow(abs(dx) + abs(dy) + 1)
	b.WriteString(strings.Repeat("<", max(-dx, 0)))
	b.WriteString(strings.Repeat("v", max(dy, 0)))
	b.WriteString(strings.Repeat("^", max(-dy, 0)))
	b.WriteString(strings.Repeat(">", max(dx, 0)))
	moves := b.String()

	if !avoidsGap(l, p0, moves) {
		moves = reverse(moves)
		if !avoidsGap(l, p0, moves) {
			return "", fmt.Errorf("no path from %q to %q on %s keypad avoids the gap", from, to, l.name)
		}
	}
	return moves + string(Activate), nil
}

// Sequence returns the presses that type keys on l, starting with the
// pointer resting on A.
func Sequence(l *Layout, keys string) (string, error) {
	var b strings.Builder
	cur := byte(Activate)
	for i := 0; i < len(keys); i++ {
		moves, err := Plan(l, cur, keys[i])
		if err != nil {
			return "", err
		}
		b.WriteString(moves)
		cur = keys[i]
	}
	return b.String(), nil
}

// avoidsGap reports whether following moves from start keeps the pointer on
// keys of l the whole way.
func avoidsGap(l *Layout, start Coord, moves string) bool {
	pos := start
	for i := 0; i < len(moves); i++ {
		pos = pos.add(directions[moves[i]])
		if l.IsGap(pos) {
			return false
		}
		if _, ok := l.KeyAt(pos); !ok {
			return false
		}
	}
	return true
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
