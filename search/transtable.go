package search

import "github.com/zhoujunwen/xiangqi-engine/board"

// transEntry is one transposition table slot. Unlike the teacher's
// transEntry, there is no atomic gate: spec.md §5 makes the search
// strictly single-threaded and serializes queries at the caller, so the
// CAS-based locking the teacher needs for its Lazy SMP threads (a
// Non-goal here) would be dead weight.
type transEntry struct {
	key   uint32
	move  board.Move
	score int16
	depth int8
	bound Bound
	used  bool
}

// transTable is a fixed-size, power-of-two, always-replace hash table,
// grounded on the teacher's alwaysReplaceTransTable — chosen over its
// deep-replace and tiered variants because spec.md §3 mandates
// "collision policy: replace always."
type transTable struct {
	entries []transEntry
	mask    uint32
}

// defaultTransTableSize is a modest table sized for a single-threaded,
// per-query search rather than a long-running UCI process; it comfortably
// covers a Grandmaster-depth search without the megabyte-sizing knob the
// teacher exposes as a UCI option (this engine has no config surface,
// see the ambient-stack design).
const defaultTransTableSize = 1 << 20

func newTransTable() *transTable {
	size := roundPowerOfTwo(defaultTransTableSize)
	return &transTable{
		entries: make([]transEntry, size),
		mask:    uint32(size - 1),
	}
}

func roundPowerOfTwo(size int) int {
	x := 1
	for (x << 1) <= size {
		x <<= 1
	}
	return x
}

func (tt *transTable) clear() {
	for i := range tt.entries {
		tt.entries[i] = transEntry{}
	}
}

func (tt *transTable) probe(hash uint32) (transEntry, bool) {
	e := &tt.entries[hash&tt.mask]
	if e.used && e.key == hash {
		return *e, true
	}
	return transEntry{}, false
}

func (tt *transTable) store(hash uint32, depth int, score int, bound Bound, move board.Move) {
	e := &tt.entries[hash&tt.mask]
	e.key = hash
	e.move = move
	e.score = int16(score)
	e.depth = int8(depth)
	e.bound = bound
	e.used = true
}
