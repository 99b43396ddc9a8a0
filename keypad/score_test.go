package keypad

import (
	"errors"
	"testing"
)

func TestNumericValue(t *testing.T) {
	for _, tt := range []struct {
		code string
		want int64
	}{
		{"029A", 29},
		{"980A", 980},
		{"0A", 0},
		{"A", 0},
		{"123", 123},
	} {
		got, err := NumericValue(tt.code)
		if err != nil {
			t.Errorf("NumericValue(%q): %s", tt.code, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NumericValue(%q): got %d; want %d", tt.code, got, tt.want)
		}
	}
	for _, code := range []string{"1x3A", "-5A", "+5A"} {
		if _, err := NumericValue(code); err == nil {
			t.Errorf("NumericValue(%q): got nil error", code)
		}
	}
}

func TestComplexity(t *testing.T) {
	for _, tt := range []struct {
		code string
		want int64
	}{
		{"029A", 68 * 29},
		{"379A", 64 * 379},
	} {
		got, err := Complexity(tt.code, 2)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Complexity(%q, 2): got %d; want %d", tt.code, got, tt.want)
		}
	}
}

func TestTotalScore(t *testing.T) {
	for _, tt := range []struct {
		depth int
		want  int64
	}{
		{2, 126384},
		{25, 154115708116294},
	} {
		got, err := TotalScore(exampleCodes, tt.depth)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("TotalScore(depth %d): got %d; want %d", tt.depth, got, tt.want)
		}
	}
	got, err := TotalScore(nil, 25)
	if err != nil || got != 0 {
		t.Errorf("TotalScore(nil): got (%d, %v); want (0, nil)", got, err)
	}
}

func TestTotalScoreStopsOnError(t *testing.T) {
	_, err := TotalScore([]string{"029A", "9?9A", "379A"}, 2)
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("got err %v; want ErrUnknownKey", err)
	}
}

func TestTotalScoreOverflow(t *testing.T) {
	got, err := TotalScore([]string{"980A"}, 60)
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("got (%d, %v); want ErrOverflow", got, err)
	}
}
