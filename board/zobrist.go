package board

import "math/rand"

// zobristPieces is Z[256][24] from the spec: one 32-bit key per square,
// per piece code. Piece codes only ever populate 14 of the 24 rows
// (7 types x 2 colors); the rest sit unused, which is a deliberate,
// negligible waste in exchange for O(1) indexing with no piece-code
// remapping.
var (
	zobristPieces [256][24]uint32
	zobristSide   uint32
)

func init() {
	seedZobrist(rand.NewSource(1))
}

// seedZobrist fills the table from a fresh source. It is exported
// indirectly through ReseedZobrist so a long-lived engine can vary its
// move preference on symmetric choices across games, as spec.md's
// lifecycle section calls for.
func seedZobrist(src rand.Source) {
	r := rand.New(src)
	for sq := 0; sq < 256; sq++ {
		for pc := 0; pc < 24; pc++ {
			zobristPieces[sq][pc] = r.Uint32()
		}
	}
	zobristSide = r.Uint32()
}

// ReseedZobrist re-randomizes every Zobrist key from a fresh, unseeded
// source. Engine.Reset calls this; it changes which of several
// equal-scoring moves a fresh search prefers without touching move
// generation or evaluation.
func ReseedZobrist() {
	seedZobrist(rand.NewSource(rand.Int63()))
}

// hashPiece XORs sq/piece's key into the hash. Called once when a piece
// leaves a square and once when it lands on a new one; two calls for the
// same (sq, piece) pair cancel out, which is how make/undo stay
// symmetric.
func (b *Board) hashPiece(sq Square, piece Piece) {
	if piece == Empty {
		return
	}
	b.Hash ^= zobristPieces[sq][piece]
}

// flipSide toggles whose turn it is and keeps the hash's side bit in
// sync. Apart from LoadBoard, this is the only place Turn changes; both
// regular moves and search's null move go through it.
func (b *Board) flipSide() {
	b.Hash ^= zobristSide
	b.Turn = b.Turn.Opposite()
}

// recomputeHash rebuilds the hash from scratch by scanning every square.
// Used only by LoadBoard and by tests asserting incremental/recomputed
// hashes agree.
func (b *Board) recomputeHash() uint32 {
	var h uint32
	for sq := 0; sq < 256; sq++ {
		if piece := b.Squares[sq]; piece != Empty {
			h ^= zobristPieces[sq][piece]
		}
	}
	if b.Turn == Black {
		h ^= zobristSide
	}
	return h
}

// RecomputeHash exposes recomputeHash for property tests that check hash
// consistency after a sequence of make/undo calls.
func (b *Board) RecomputeHash() uint32 {
	return b.recomputeHash()
}
