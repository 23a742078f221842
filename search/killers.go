package search

import "github.com/zhoujunwen/xiangqi-engine/board"

// maxPly bounds the killer table and the search stack; deep check
// extensions can in principle push ply past maxDepth, so this leaves
// generous headroom above Grandmaster's 24-ply cap.
const maxPly = 128

// killerTable holds two quiet-move "killers" per ply: moves that have
// caused a beta cutoff at that ply before and are worth trying early
// again, the way the teacher's clearKillers()/tree structure does per
// search height.
type killerTable struct {
	moves [maxPly][2]board.Move
}

func newKillerTable() *killerTable {
	return &killerTable{}
}

func (k *killerTable) clear() {
	for i := range k.moves {
		k.moves[i] = [2]board.Move{}
	}
}

func (k *killerTable) at(ply int) (slot0, slot1 board.Move) {
	if ply < 0 || ply >= maxPly {
		return board.NoMove, board.NoMove
	}
	return k.moves[ply][0], k.moves[ply][1]
}

// push records m as a new killer at ply, demoting the previous slot-0
// killer to slot 1. A move already sitting in slot 0 is left alone.
func (k *killerTable) push(ply int, m board.Move) {
	if ply < 0 || ply >= maxPly {
		return
	}
	if k.moves[ply][0] == m {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}
