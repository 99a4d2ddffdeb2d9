package scoring

// Chooser deterministically selects an index in [0, n) from identity seed
// parts. It exists as an interface so the hash behind advice selection can
// be swapped without touching the resolver.
type Chooser interface {
	Pick(seedParts []string, n int) int
}

// djb2Chooser is the default Chooser: a DJB2-style rolling hash
// (h = h*33 + byte, seeded at 5381, 32-bit) over the concatenated seed
// parts, reduced modulo n. The same identity always lands on the same index
// across processes, so no selection ever needs to be stored.
type djb2Chooser struct{}

func NewDJB2Chooser() Chooser {
	return djb2Chooser{}
}

func (djb2Chooser) Pick(seedParts []string, n int) int {
	if n <= 1 {
		return 0
	}
	h := uint32(5381)
	for _, part := range seedParts {
		for i := 0; i < len(part); i++ {
			h = h*33 + uint32(part[i])
		}
	}
	// Absolute value in 64 bits so the minimum int32 (reachable, e.g. seed
	// "0CPBMO=" + "Go to Market") stays positive on every platform.
	v := int64(int32(h))
	if v < 0 {
		v = -v
	}
	return int(v % int64(n))
}
