package search

import "github.com/zhoujunwen/xiangqi-engine/board"

// historyTable scores quiet moves by how often they have caused a beta
// cutoff, indexed directly by the packed 16-bit move value — the same
// "just index by the move" simplicity as the teacher's ButterflyHistory,
// minus its follow-up/counter-move refinements, which spec.md's ordering
// table does not call for.
type historyTable struct {
	scores [1 << 16]int32
}

func newHistoryTable() *historyTable {
	return &historyTable{}
}

func (h *historyTable) clear() {
	for i := range h.scores {
		h.scores[i] = 0
	}
}

func (h *historyTable) score(m board.Move) int32 {
	return h.scores[m]
}

// bump rewards m for causing a beta cutoff at depth; the depth-squared
// weighting is spec.md's own formula, matching the teacher's own
// preference for depth² over a linear bump.
func (h *historyTable) bump(m board.Move, depth int) {
	h.scores[m] += int32(depth * depth)
}
