package keypad

import "fmt"

// MaxExpandDepth is the deepest chain Expand will materialize. Sequence
// length grows roughly 2.5x per robot, so anything much deeper has to be
// computed on chunk counts.
const MaxExpandDepth = 6

// Transform goes one robot deeper: given the chunk counts of what must be
// typed on l, it returns the chunk counts of what must be typed on the
// directional keypad driving l.
//
// The cost is one Plan call per press of each distinct chunk, independent of
// how often the chunk occurs. If the length of the resulting sequence does
// not fit in an int64, Transform returns an error wrapping ErrOverflow.
func Transform(counts ChunkCounts, l *Layout) (ChunkCounts, error) {
	next := make(ChunkCounts)
	var total int64
	for chunk, n := range counts {
		seq, err := Sequence(l, chunk)
		if err != nil {
			return nil, err
		}
		sub, err := CountChunks(seq)
		if err != nil {
			return nil, err
		}
		for subChunk, m := range sub {
			c, ok := mulInt64(m, n)
			if !ok {
				return nil, fmt.Errorf("%w: %d x %q", ErrOverflow, n, subChunk)
			}
			if next[subChunk], ok = addInt64(next[subChunk], c); !ok {
				return nil, fmt.Errorf("%w: count of %q", ErrOverflow, subChunk)
			}
			presses, ok := mulInt64(int64(len(subChunk)), c)
			if !ok {
				return nil, fmt.Errorf("%w: sequence length", ErrOverflow)
			}
			if total, ok = addInt64(total, presses); !ok {
				return nil, fmt.Errorf("%w: sequence length", ErrOverflow)
			}
		}
	}
	return next, nil
}

// Counts returns the chunk counts of the presses the operator makes to type
// code with depth robots on directional keypads between them and the robot
// at the numeric keypad. Depth 0 is the sequence typed directly on the
// numeric keypad's robot.
func Counts(code string, depth int) (ChunkCounts, error) {
	if depth < 0 {
		return nil, fmt.Errorf("negative chain depth %d", depth)
	}
	seq, err := Sequence(Numeric, code)
	if err != nil {
		return nil, err
	}
	counts, err := CountChunks(seq)
	if err != nil {
		return nil, err
	}
	for i := 0; i < depth; i++ {
		counts, err = Transform(counts, Directional)
		if err != nil {
			return nil, err
		}
	}
	return counts, nil
}

// MinimalLength returns the fewest presses that type code through a chain of
// depth directional-keypad robots.
func MinimalLength(code string, depth int) (int64, error) {
	counts, err := Counts(code, depth)
	if err != nil {
		return 0, err
	}
	return counts.Len(), nil
}

// Expand returns the literal press sequence that MinimalLength measures.
// It is only meant for shallow chains and fails for depths above
// MaxExpandDepth.
func Expand(code string, depth int) (string, error) {
	if depth < 0 {
		return "", fmt.Errorf("negative chain depth %d", depth)
	}
	if depth > MaxExpandDepth {
		return "", fmt.Errorf("chain depth %d too deep to expand (max %d)", depth, MaxExpandDepth)
	}
	seq, err := Sequence(Numeric, code)
	if err != nil {
		return "", err
	}
	for i := 0; i < depth; i++ {
		seq, err = Sequence(Directional, seq)
		if err != nil {
			return "", err
		}
	}
	return seq, nil
}
