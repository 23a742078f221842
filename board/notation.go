package board

import "fmt"

// notation.go implements a compact textual board format for the CLI
// (cmd/xiangqi) and for test fixtures. It is not part of the external
// interface in spec.md §6 — that interface is the Snapshot struct
// itself. This is purely a convenience encoding of the same data:
// ten rows of nine characters, uppercase for Red and lowercase for
// Black, '.' for an empty square. Row 0 is the Black back rank.
const pieceLetters = "kaehrcp"

// InitialSnapshot returns the standard Xiangqi starting position.
func InitialSnapshot() Snapshot {
	rows := [10]string{
		"rheakaehr",
		".........",
		".c.....c.",
		"p.p.p.p.p",
		".........",
		".........",
		"P.P.P.P.P",
		".C.....C.",
		".........",
		"RHEAKAEHR",
	}
	snap, err := ParseNotation(rows)
	if err != nil {
		panic(err)
	}
	return snap
}

// ParseNotation parses ten rows of nine characters into a Snapshot.
func ParseNotation(rows [10]string) (Snapshot, error) {
	var snap Snapshot
	for r, row := range rows {
		if len(row) != 9 {
			return Snapshot{}, fmt.Errorf("board: row %d has length %d, want 9", r, len(row))
		}
		for c := 0; c < 9; c++ {
			ch := row[c]
			if ch == '.' {
				continue
			}
			side := Red
			lower := ch
			if ch >= 'a' && ch <= 'z' {
				side = Black
			} else {
				lower = ch - 'A' + 'a'
			}
			kind, ok := kindFromLetter(lower)
			if !ok {
				return Snapshot{}, fmt.Errorf("board: unrecognised piece letter %q at row %d col %d", ch, r, c)
			}
			snap[r][c] = SquareState{Occupied: true, Kind: kind, Side: side}
		}
	}
	return snap, nil
}

func kindFromLetter(lower byte) (PieceKind, bool) {
	switch lower {
	case 'k':
		return KindKing, true
	case 'a':
		return KindAdvisor, true
	case 'e':
		return KindElephant, true
	case 'h':
		return KindHorse, true
	case 'r':
		return KindRook, true
	case 'c':
		return KindCannon, true
	case 'p':
		return KindPawn, true
	}
	return 0, false
}

func letterFromKind(k PieceKind) byte {
	return pieceLetters[int(k)]
}

// String renders the board as ten rows of nine characters, matching
// ParseNotation's own format, for debugging and CLI display — the
// counterpart of the teacher's PrintPosition console helper.
func (b *Board) String() string {
	buf := make([]byte, 0, 10*10)
	for r := 0; r < 10; r++ {
		for c := 0; c < 9; c++ {
			piece := b.Squares[MakeSquare(r, c)]
			if piece == Empty {
				buf = append(buf, '.')
				continue
			}
			kind, ok := externalKind(piece.Type())
			if !ok {
				buf = append(buf, '?')
				continue
			}
			ch := letterFromKind(kind)
			if piece.Color() == Red {
				ch -= 'a' - 'A'
			}
			buf = append(buf, ch)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func externalKind(t PieceType) (PieceKind, bool) {
	switch t {
	case King:
		return KindKing, true
	case Advisor:
		return KindAdvisor, true
	case Elephant:
		return KindElephant, true
	case Horse:
		return KindHorse, true
	case Rook:
		return KindRook, true
	case Cannon:
		return KindCannon, true
	case Pawn:
		return KindPawn, true
	}
	return 0, false
}
