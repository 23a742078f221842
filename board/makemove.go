package board

// MakeMove applies m, returning whatever piece stood on the destination
// square (Empty if none). It does not check legality — the caller tests
// InCheck(sideJustMoved) afterwards and calls UndoMove to back out if the
// mover's own king ended up exposed. This mirrors spec.md's pseudo-legal
// contract: move generation enforces piece-movement rules only, and
// king safety is filtered by the search loop.
func (b *Board) MakeMove(m Move) Piece {
	from, to := m.From(), m.To()
	mover := b.Squares[from]
	captured := b.Squares[to]

	b.hashPiece(from, mover)
	if captured != Empty {
		b.hashPiece(to, captured)
	}
	b.hashPiece(to, mover)

	b.Squares[from] = Empty
	b.Squares[to] = mover

	if mover.Type() == King {
		*b.kingSquares(mover.Color()) = to
	}

	b.flipSide()
	return captured
}

// UndoMove reverses a prior MakeMove(m) that returned captured. Every
// field make/undo touches — the piece array, both king squares, side to
// move, and the Zobrist hash — is restored bit-exactly.
func (b *Board) UndoMove(m Move, captured Piece) {
	b.flipSide()

	from, to := m.From(), m.To()
	mover := b.Squares[to]

	b.hashPiece(to, mover)
	if captured != Empty {
		b.hashPiece(to, captured)
	}
	b.hashPiece(from, mover)

	b.Squares[to] = captured
	b.Squares[from] = mover

	if mover.Type() == King {
		*b.kingSquares(mover.Color()) = from
	}
}

// MakeNullMove passes the turn without moving a piece: search's
// null-move pruning uses this to test "what if my opponent got a free
// move", cheaply, without touching the piece array at all.
func (b *Board) MakeNullMove() {
	b.flipSide()
}

// UnmakeNullMove reverses MakeNullMove.
func (b *Board) UnmakeNullMove() {
	b.flipSide()
}
