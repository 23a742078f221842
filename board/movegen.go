package board

// Direction tables. Squares are row<<4|col, so a one-row step is ±16 and
// a one-column step is ±1; off-board results are caught by Square.Valid,
// never by bounds-checking a smaller table. This mirrors the teacher's
// own preference for constant delta arrays over closures (see the
// design notes on inlining direction tables as plain loops).
var orthogonalDeltas = [4]int{-16, -1, 1, 16}
var advisorDeltas = [4]int{-17, -15, 15, 17}

var elephantMoves = [4]struct{ move, eye int }{
	{-34, -17}, {-30, -15}, {30, 15}, {34, 17},
}

var horseMoves = [8]struct{ move, leg int }{
	{-33, -16}, {-31, -16}, {31, 16}, {33, 16},
	{-18, -1}, {-14, 1}, {14, -1}, {18, 1},
}

func addDelta(sq Square, delta int) Square {
	return Square(int(sq) + delta)
}

func pawnForwardDelta(c Color) int {
	if c == Red {
		return -16
	}
	return 16
}

// MaxMoves bounds the largest move list a Xiangqi position can produce;
// used to size caller-supplied buffers the way the teacher's MaxMoves
// sizes its own move buffers.
const MaxMoves = 128

// GenerateMoves appends every pseudo-legal move for the side to move
// into buf and returns the extended slice. Pseudo-legal means piece
// movement rules are enforced but the resulting position may leave the
// mover's own king in check — callers filter that with InCheck after
// MakeMove, per spec.md §4.3.
//
// When capturesOnly is true, only moves landing on an enemy piece are
// emitted: cannon quiet moves, pawn advances to empty squares, and every
// other non-capturing move are dropped. Quiescence search depends on
// this filter being exact.
func (b *Board) GenerateMoves(buf []Move, capturesOnly bool) []Move {
	side := b.Turn
	for from := 0; from < 256; from++ {
		sq := Square(from)
		piece := b.Squares[sq]
		if piece == Empty || piece.Color() != side {
			continue
		}
		switch piece.Type() {
		case King:
			buf = b.genStep(buf, sq, side, orthogonalDeltas[:], capturesOnly, func(to Square) bool {
				return InPalace(to, side)
			})
		case Advisor:
			buf = b.genStep(buf, sq, side, advisorDeltas[:], capturesOnly, func(to Square) bool {
				return InPalace(to, side)
			})
		case Elephant:
			buf = b.genElephant(buf, sq, side, capturesOnly)
		case Horse:
			buf = b.genHorse(buf, sq, side, capturesOnly)
		case Rook:
			buf = b.genSliding(buf, sq, side, capturesOnly)
		case Cannon:
			buf = b.genCannon(buf, sq, side, capturesOnly)
		case Pawn:
			buf = b.genPawn(buf, sq, side, capturesOnly)
		}
	}
	return buf
}

func (b *Board) genStep(buf []Move, from Square, side Color, deltas []int, capturesOnly bool, allowed func(Square) bool) []Move {
	for _, d := range deltas {
		to := addDelta(from, d)
		if !to.Valid() || !allowed(to) {
			continue
		}
		dst := b.Squares[to]
		if dst != Empty && dst.Color() == side {
			continue
		}
		if capturesOnly && dst == Empty {
			continue
		}
		buf = append(buf, MakeMove(from, to))
	}
	return buf
}

func (b *Board) genElephant(buf []Move, from Square, side Color, capturesOnly bool) []Move {
	for _, m := range elephantMoves {
		to := addDelta(from, m.move)
		if !to.Valid() || !OwnSide(to, side) {
			continue
		}
		eye := addDelta(from, m.eye)
		if b.Squares[eye] != Empty {
			continue
		}
		dst := b.Squares[to]
		if dst != Empty && dst.Color() == side {
			continue
		}
		if capturesOnly && dst == Empty {
			continue
		}
		buf = append(buf, MakeMove(from, to))
	}
	return buf
}

func (b *Board) genHorse(buf []Move, from Square, side Color, capturesOnly bool) []Move {
	for _, m := range horseMoves {
		to := addDelta(from, m.move)
		if !to.Valid() {
			continue
		}
		leg := addDelta(from, m.leg)
		if b.Squares[leg] != Empty {
			continue
		}
		dst := b.Squares[to]
		if dst != Empty && dst.Color() == side {
			continue
		}
		if capturesOnly && dst == Empty {
			continue
		}
		buf = append(buf, MakeMove(from, to))
	}
	return buf
}

func (b *Board) genSliding(buf []Move, from Square, side Color, capturesOnly bool) []Move {
	for _, d := range orthogonalDeltas {
		for to := addDelta(from, d); to.Valid(); to = addDelta(to, d) {
			dst := b.Squares[to]
			if dst == Empty {
				if !capturesOnly {
					buf = append(buf, MakeMove(from, to))
				}
				continue
			}
			if dst.Color() != side {
				buf = append(buf, MakeMove(from, to))
			}
			break
		}
	}
	return buf
}

func (b *Board) genCannon(buf []Move, from Square, side Color, capturesOnly bool) []Move {
	for _, d := range orthogonalDeltas {
		to := addDelta(from, d)
		for ; to.Valid() && b.Squares[to] == Empty; to = addDelta(to, d) {
			if !capturesOnly {
				buf = append(buf, MakeMove(from, to))
			}
		}
		if !to.Valid() {
			continue
		}
		// to now holds the screen piece; look past it for the capture.
		for to = addDelta(to, d); to.Valid(); to = addDelta(to, d) {
			if b.Squares[to] == Empty {
				continue
			}
			if b.Squares[to].Color() != side {
				buf = append(buf, MakeMove(from, to))
			}
			break
		}
	}
	return buf
}

func (b *Board) genPawn(buf []Move, from Square, side Color, capturesOnly bool) []Move {
	forward := addDelta(from, pawnForwardDelta(side))
	if forward.Valid() {
		dst := b.Squares[forward]
		if dst.Color() != side && (!capturesOnly || dst != Empty) {
			buf = append(buf, MakeMove(from, forward))
		}
	}
	if HasCrossedRiver(from, side) {
		for _, d := range [2]int{-1, 1} {
			to := addDelta(from, d)
			if !to.Valid() {
				continue
			}
			dst := b.Squares[to]
			if dst.Color() != side && (!capturesOnly || dst != Empty) {
				buf = append(buf, MakeMove(from, to))
			}
		}
	}
	return buf
}
