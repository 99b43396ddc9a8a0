package keypad

import (
	"fmt"
	"strconv"
	"strings"
)

// NumericValue returns the number formed by the digits of code before its
// first A, ignoring leading zeros. "029A" is 29.
func NumericValue(code string) (int64, error) {
	digits := code
	if i := strings.IndexByte(code, Activate); i >= 0 {
		digits = code[:i]
	}
	if digits == "" {
		return 0, nil
	}
	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c < '0' || c > '9' {
			return 0, fmt.Errorf("code %q has non-digit %q before %c", code, c, Activate)
		}
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("code %q: %s", code, err)
	}
	return n, nil
}

// Complexity returns the minimal length of code at the given depth times its
// numeric value.
func Complexity(code string, depth int) (int64, error) {
	n, err := MinimalLength(code, depth)
	if err != nil {
		return 0, err
	}
	v, err := NumericValue(code)
	if err != nil {
		return 0, err
	}
	c, ok := mulInt64(n, v)
	if !ok {
		return 0, fmt.Errorf("%w: %d presses x %d", ErrOverflow, n, v)
	}
	return c, nil
}

// TotalScore sums the complexities of codes. It stops at the first code that
// fails, since skipping one would make the sum meaningless.
func TotalScore(codes []string, depth int) (int64, error) {
	var total int64
	for _, code := range codes {
		c, err := Complexity(code, depth)
		if err != nil {
			return 0, fmt.Errorf("code %q: %w", code, err)
		}
		var ok bool
		if total, ok = addInt64(total, c); !ok {
			return 0, fmt.Errorf("%w: total score", ErrOverflow)
		}
	}
	return total, nil
}
