package board

import "testing"

func TestFlyingGeneralIsCheck(t *testing.T) {
	var snap Snapshot
	snap[9][4] = SquareState{Occupied: true, Kind: KindKing, Side: Red}
	snap[0][4] = SquareState{Occupied: true, Kind: KindKing, Side: Black}

	b := &Board{}
	b.LoadBoard(snap, Red)
	if !b.InCheck(Red) {
		t.Error("kings facing on an open file should be check for both sides")
	}
	if !b.InCheck(Black) {
		t.Error("kings facing on an open file should be check for both sides")
	}
}

func TestFlyingGeneralBlockedByScreen(t *testing.T) {
	var snap Snapshot
	snap[9][4] = SquareState{Occupied: true, Kind: KindKing, Side: Red}
	snap[0][4] = SquareState{Occupied: true, Kind: KindKing, Side: Black}
	snap[5][4] = SquareState{Occupied: true, Kind: KindPawn, Side: Red}

	b := &Board{}
	b.LoadBoard(snap, Red)
	if b.InCheck(Red) {
		t.Error("a screen piece on the shared file should prevent flying-general check")
	}
}

func TestRookGivesCheck(t *testing.T) {
	var snap Snapshot
	snap[9][4] = SquareState{Occupied: true, Kind: KindKing, Side: Red}
	snap[0][0] = SquareState{Occupied: true, Kind: KindKing, Side: Black}
	snap[9][0] = SquareState{Occupied: true, Kind: KindRook, Side: Black}

	b := &Board{}
	b.LoadBoard(snap, Red)
	if !b.InCheck(Red) {
		t.Error("rook on the same rank with a clear path should give check")
	}
}

func TestCannonNeedsExactlyOneScreenToCheck(t *testing.T) {
	var snap Snapshot
	snap[9][4] = SquareState{Occupied: true, Kind: KindKing, Side: Red}
	snap[0][0] = SquareState{Occupied: true, Kind: KindKing, Side: Black}
	snap[9][0] = SquareState{Occupied: true, Kind: KindCannon, Side: Black}

	b := &Board{}
	b.LoadBoard(snap, Red)
	if b.InCheck(Red) {
		t.Error("cannon with no screen should not give check")
	}

	snap[9][2] = SquareState{Occupied: true, Kind: KindPawn, Side: Red}
	b.LoadBoard(snap, Red)
	if !b.InCheck(Red) {
		t.Error("cannon with exactly one screen should give check")
	}

	snap[9][3] = SquareState{Occupied: true, Kind: KindPawn, Side: Red}
	b.LoadBoard(snap, Red)
	if b.InCheck(Red) {
		t.Error("cannon with two screens should not give check")
	}
}

func TestHorseGivesCheckUnlessLegBlocked(t *testing.T) {
	var snap Snapshot
	snap[9][4] = SquareState{Occupied: true, Kind: KindKing, Side: Red}
	snap[0][0] = SquareState{Occupied: true, Kind: KindKing, Side: Black}
	snap[7][3] = SquareState{Occupied: true, Kind: KindHorse, Side: Black}

	b := &Board{}
	b.LoadBoard(snap, Red)
	if !b.InCheck(Red) {
		t.Error("horse a knight's-move from the king with a clear leg should give check")
	}

	snap[8][3] = SquareState{Occupied: true, Kind: KindPawn, Side: Red}
	b.LoadBoard(snap, Red)
	if b.InCheck(Red) {
		t.Error("blocking the horse's leg should remove the check")
	}
}

func TestPawnGivesCheckOnlyByLegalPawnMove(t *testing.T) {
	var snap Snapshot
	snap[9][4] = SquareState{Occupied: true, Kind: KindKing, Side: Red}
	snap[0][0] = SquareState{Occupied: true, Kind: KindKing, Side: Black}
	snap[8][4] = SquareState{Occupied: true, Kind: KindPawn, Side: Black}

	b := &Board{}
	b.LoadBoard(snap, Red)
	if !b.InCheck(Red) {
		t.Error("a pawn directly in front of the king should give check")
	}

	// Move the king onto black's side of the river and place an uncrossed
	// black pawn beside it on the same row: sideways is not a legal pawn
	// move before crossing, so this must not be check.
	snap[8][4] = SquareState{}
	snap[9][4] = SquareState{}
	snap[4][4] = SquareState{Occupied: true, Kind: KindKing, Side: Red}
	snap[4][3] = SquareState{Occupied: true, Kind: KindPawn, Side: Black}
	b.LoadBoard(snap, Red)
	if b.InCheck(Red) {
		t.Error("a pawn that has not crossed the river cannot check sideways")
	}

	// One row further south the pawn has crossed, and beside the king on
	// that row it does check sideways.
	snap[4][4] = SquareState{}
	snap[4][3] = SquareState{}
	snap[5][4] = SquareState{Occupied: true, Kind: KindKing, Side: Red}
	snap[5][3] = SquareState{Occupied: true, Kind: KindPawn, Side: Black}
	b.LoadBoard(snap, Red)
	if !b.InCheck(Red) {
		t.Error("a pawn that has crossed the river should check sideways")
	}
}

func TestNoCheckInQuietPosition(t *testing.T) {
	b := &Board{}
	b.LoadBoard(InitialSnapshot(), Red)
	if b.InCheck(Red) || b.InCheck(Black) {
		t.Error("the starting position should not be check for either side")
	}
}
