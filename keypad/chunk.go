package keypad

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var (
	// ErrMalformedSequence is returned for a press sequence that does not
	// end with an activate press.
	ErrMalformedSequence = errors.New("malformed sequence")
	// ErrOverflow is returned when a press count does not fit in an int64.
	// Press counts pass that limit in the high forties of chain depth.
	ErrOverflow = errors.New("press count overflows int64")
)

// ChunkCounts is a press sequence with its order thrown away: each chunk
// (run of presses ending in one A) maps to the number of times it occurs.
//
// Each chunk starts and ends with every pointer in the chain resting on A, so
// chunks can be expanded independently and their order does not affect the
// total length.
type ChunkCounts map[string]int64

// Chunks splits seq after every A. Concatenating the result gives back seq.
func Chunks(seq string) ([]string, error) {
	if !strings.HasSuffix(seq, string(Activate)) {
		return nil, fmt.Errorf("%w: %q does not end in %c", ErrMalformedSequence, seq, Activate)
	}
	var chunks []string
	start := 0
	for i := 0; i < len(seq); i++ {
		if seq[i] == Activate {
			chunks = append(chunks, seq[start:i+1])
			start = i + 1
		}
	}
	return chunks, nil
}

// CountChunks returns the chunk counts of seq.
func CountChunks(seq string) (ChunkCounts, error) {
	chunks, err := Chunks(seq)
	if err != nil {
		return nil, err
	}
	counts := make(ChunkCounts)
	for _, chunk := range chunks {
		counts[chunk]++
	}
	return counts, nil
}

// Len returns the length of the sequence c represents. It does not check
// for overflow; chunk counts returned by Transform are guaranteed to have a
// Len that fits.
func (c ChunkCounts) Len() int64 {
	var n int64
	for chunk, count := range c {
		n += int64(len(chunk)) * count
	}
	return n
}

// Presses returns the number of activate presses in the sequence c
// represents.
func (c ChunkCounts) Presses() int64 {
	var n int64
	for _, count := range c {
		n += count
	}
	return n
}

// Sorted returns the chunks of c, shortest first and then lexically.
func (c ChunkCounts) Sorted() []string {
	chunks := make([]string, 0, len(c))
	for chunk := range c {
		chunks = append(chunks, chunk)
	}
	sort.Slice(chunks, func(i, j int) bool {
		if len(chunks[i]) != len(chunks[j]) {
			return len(chunks[i]) < len(chunks[j])
		}
		return chunks[i] < chunks[j]
	})
	return chunks
}

// mulInt64 returns a*b for non-negative a and b, and whether it fit.
func mulInt64(a, b int64) (int64, bool) {
	if a != 0 && b > math.MaxInt64/a {
		return 0, false
	}
	return a * b, true
}

// addInt64 returns a+b for non-negative a and b, and whether it fit.
func addInt64(a, b int64) (int64, bool) {
	if b > math.MaxInt64-a {
		return 0, false
	}
	return a + b, true
}
