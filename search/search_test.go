package search

import (
	"context"
	"testing"
	"time"

	"github.com/zhoujunwen/xiangqi-engine/board"
)

func snapshot(pieces map[[2]int]board.SquareState) board.Snapshot {
	var snap board.Snapshot
	for pos, state := range pieces {
		snap[pos[0]][pos[1]] = state
	}
	return snap
}

func TestGetBestMoveReturnsLegalMoveFromInitialPosition(t *testing.T) {
	e := NewEngine()
	result := e.GetBestMove(context.Background(), board.InitialSnapshot(), board.Red, Beginner, English)
	if result == nil {
		t.Fatal("GetBestMove returned nil from the initial position")
	}
	if result.Reasoning == "" {
		t.Error("expected a non-empty reasoning string")
	}
}

func TestGetBestMoveFindsMateInOne(t *testing.T) {
	// A ladder mate: Black king alone at the palace corner (0,3), whose
	// only steps are (0,4) and (1,3). Red rook1 sits on row 1 with a clear
	// path to (1,3), denying that square without itself giving check.
	// Red rook2 slides up file 0 to (0,0), checking along rank 0; (0,4)
	// stays inside that same check, and neither rook is adjacent enough
	// to capture. No other red move mates.
	snap := snapshot(map[[2]int]board.SquareState{
		{0, 3}: {Occupied: true, Kind: board.KindKing, Side: board.Black},
		{9, 8}: {Occupied: true, Kind: board.KindKing, Side: board.Red},
		{1, 8}: {Occupied: true, Kind: board.KindRook, Side: board.Red},
		{5, 0}: {Occupied: true, Kind: board.KindRook, Side: board.Red},
	})

	e := NewEngine()
	result := e.GetBestMove(context.Background(), snap, board.Red, Intermediate, English)
	if result == nil {
		t.Fatal("expected a mating move, got nil")
	}
	if result.Score <= MateThreshold {
		t.Errorf("score = %d, want > %d for a mate-in-1", result.Score, MateThreshold)
	}
	want := RMove{From: RSquare{Row: 5, Col: 0}, To: RSquare{Row: 0, Col: 0}}
	if result.Move != want {
		t.Errorf("Move = %+v, want %+v (the rook completing the ladder mate)", result.Move, want)
	}
}

func TestGetBestMoveReturnsNilOnStalemate(t *testing.T) {
	// Black king alone at the corner of its palace, (0,3); its only two
	// candidate moves, (0,4) and (1,3), are each covered by a red rook
	// that does not itself check the king.
	snap := snapshot(map[[2]int]board.SquareState{
		{0, 3}: {Occupied: true, Kind: board.KindKing, Side: board.Black},
		{9, 8}: {Occupied: true, Kind: board.KindKing, Side: board.Red},
		{2, 4}: {Occupied: true, Kind: board.KindRook, Side: board.Red},
		{1, 5}: {Occupied: true, Kind: board.KindRook, Side: board.Red},
	})

	b := &board.Board{}
	b.LoadBoard(snap, board.Black)
	if b.InCheck(board.Black) {
		t.Fatal("test setup is check, not stalemate")
	}

	e := NewEngine()
	result := e.GetBestMove(context.Background(), snap, board.Black, Beginner, English)
	if result != nil {
		t.Fatalf("expected nil (stalemate) result, got %+v", result)
	}
}

func TestGetBestMoveRespectsShortDeadline(t *testing.T) {
	e := NewEngine()
	start := time.Now()
	result := e.GetBestMove(context.Background(), board.InitialSnapshot(), board.Red, Grandmaster, English)
	elapsed := time.Since(start)

	if result == nil {
		t.Fatal("expected a move even under a tight deadline")
	}
	// Grandmaster's own budget is 6s; this just guards against runaway
	// search ignoring the deadline entirely.
	if elapsed > 10500*time.Millisecond {
		t.Errorf("search took %v, want well under its own budget plus slack", elapsed)
	}
}

func TestGetBestMoveHonorsContextCancellation(t *testing.T) {
	e := NewEngine()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	result := e.GetBestMove(ctx, board.InitialSnapshot(), board.Red, Grandmaster, English)
	elapsed := time.Since(start)

	if result == nil {
		t.Fatal("expected a fallback move even when cancelled almost immediately")
	}
	if elapsed > 2*time.Second {
		t.Errorf("search ignored context cancellation: took %v", elapsed)
	}
}

func TestResetClearsTables(t *testing.T) {
	e := NewEngine()
	e.GetBestMove(context.Background(), board.InitialSnapshot(), board.Red, Beginner, English)

	hasEntry := false
	for _, entry := range e.tt.entries {
		if entry.used {
			hasEntry = true
			break
		}
	}
	if !hasEntry {
		t.Fatal("expected the transposition table to hold at least one entry after a search")
	}

	e.Reset()
	for _, entry := range e.tt.entries {
		if entry.used {
			t.Fatal("Reset did not clear the transposition table")
		}
	}
}

func TestBuildReasoningIncludesLanguageSpecificText(t *testing.T) {
	en := buildReasoning(English, 5, 12345, 42)
	zh := buildReasoning(SimplifiedChinese, 5, 12345, 42)
	if en == zh {
		t.Error("expected different text for English vs Simplified Chinese")
	}
}
