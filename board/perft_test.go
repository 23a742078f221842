package board

import "testing"

// perft counts the pseudo-legal move tree to depth, filtering illegal
// moves (those leaving the mover's own king in check) exactly the way
// the search loop does — the standard cross-check that move generation,
// make and undo agree with each other at every ply.
func perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	sideToMove := b.Turn
	moves := b.GenerateMoves(make([]Move, 0, MaxMoves), false)
	var nodes uint64
	for _, m := range moves {
		captured := b.MakeMove(m)
		if !b.InCheck(sideToMove) {
			nodes += perft(b, depth-1)
		}
		b.UndoMove(m, captured)
	}
	return nodes
}

func TestPerftInitialPosition(t *testing.T) {
	b := &Board{}
	b.LoadBoard(InitialSnapshot(), Red)

	if got, want := perft(b, 1), uint64(44); got != want {
		t.Errorf("perft(1) = %d, want %d", got, want)
	}

	// 1920 is the standard Xiangqi perft(2) count. The unfiltered reply
	// sum is 1926: after a red cannon takes the horse on (0,1) or (0,7),
	// the three black elephant/advisor moves that leave only one screen
	// between that cannon and the king are illegal.
	if got, want := perft(b, 2), uint64(1920); got != want {
		t.Errorf("perft(2) = %d, want %d", got, want)
	}
}

func TestPerftLeavesBoardUnchanged(t *testing.T) {
	b := &Board{}
	b.LoadBoard(InitialSnapshot(), Red)
	before := *b

	perft(b, 3)

	if *b != before {
		t.Fatal("perft mutated the board it was called with")
	}
}
