// Package eval implements static position evaluation: material balance,
// a handful of piece-square adjustments, and a small hash-derived
// tie-break jitter. It has no notion of search — Evaluate is a pure
// function of the board it is given.
package eval

import "github.com/zhoujunwen/xiangqi-engine/board"

// Material values in centipawns, one per board.PieceType.
const (
	valueKing     = 10000
	valueRook     = 950
	valueHorse    = 420
	valueCannon   = 450
	valueAdvisor  = 220
	valueElephant = 220
	valuePawn     = 100
)

// PieceValue exposes the material value of a piece type for callers
// outside this package, such as search's MVV-LVA move ordering.
func PieceValue(t board.PieceType) int {
	return materialValue(t)
}

func materialValue(t board.PieceType) int {
	switch t {
	case board.King:
		return valueKing
	case board.Rook:
		return valueRook
	case board.Horse:
		return valueHorse
	case board.Cannon:
		return valueCannon
	case board.Advisor:
		return valueAdvisor
	case board.Elephant:
		return valueElephant
	case board.Pawn:
		return valuePawn
	}
	return 0
}

func isCentralFile(col int) bool {
	return col >= 3 && col <= 5
}

// rowsAdvanced returns how many rows a piece on sq has moved from its
// own back rank, always non-negative regardless of side.
func rowsAdvanced(sq board.Square, side board.Color) int {
	if side == board.Red {
		return 9 - sq.Row()
	}
	return sq.Row()
}

// Evaluate scores b from the perspective of the side to move: positive
// means the position favors whoever is about to move. It is symmetric
// and deterministic, save for the small hash-derived jitter that
// depends on the exact position rather than which side is asking.
func Evaluate(b *board.Board) int {
	score := 0
	for i := 0; i < 256; i++ {
		sq := board.Square(i)
		if !sq.Valid() {
			continue
		}
		piece := b.Squares[sq]
		if piece == board.Empty {
			continue
		}
		score += pieceScore(b, sq, piece)
	}
	score += int(b.Hash&0x1F) - 16

	if b.Turn == board.Red {
		return score
	}
	return -score
}

// pieceScore returns piece's contribution to the material+positional
// score, from Red's perspective (positive favors Red), for the single
// piece occupying sq.
func pieceScore(b *board.Board, sq board.Square, piece board.Piece) int {
	side := piece.Color()
	value := materialValue(piece.Type())
	value += positionalBonus(sq, side, piece.Type())

	if side == board.Red {
		return value
	}
	return -value
}

func positionalBonus(sq board.Square, side board.Color, t board.PieceType) int {
	col := sq.Col()
	crossed := board.HasCrossedRiver(sq, side)

	switch t {
	case board.Pawn:
		bonus := rowsAdvanced(sq, side) * 2
		if crossed {
			bonus += 30
			if isCentralFile(col) {
				bonus += 20
			}
		}
		return bonus
	case board.Horse:
		bonus := 0
		if isCentralFile(col) {
			bonus += 15
		}
		if crossed {
			bonus += 30
		}
		return bonus
	case board.Cannon:
		bonus := 0
		if isCentralFile(col) {
			bonus += 25
		}
		if crossed {
			bonus += 15
		}
		return bonus
	case board.Rook:
		bonus := 0
		if crossed {
			bonus += 20
		}
		if isCentralFile(col) {
			bonus += 10
		}
		return bonus
	case board.King:
		if inHomeRows(sq, side) {
			return 10
		}
		return -20
	}
	return 0
}

func inHomeRows(sq board.Square, side board.Color) bool {
	if side == board.Red {
		return sq.Row() >= 8
	}
	return sq.Row() <= 1
}
