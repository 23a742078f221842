package board

// InCheck reports whether side's king is attacked. It never enumerates
// the opponent's moves; instead it walks the four attack rays and the
// eight knight-offsets out from the king itself, which is asymptotically
// cheaper and keeps this routine branch-predictable and
// allocation-free — it sits on the hottest path in the engine, called
// twice per candidate move during search (legality filter, then
// extension/pruning gate).
func (b *Board) InCheck(side Color) bool {
	kingSq := b.KingSquare(side)

	if b.flyingGeneralExposed(side, kingSq) {
		return true
	}
	if b.rayCheck(side, kingSq) {
		return true
	}
	return b.horseCheck(side, kingSq)
}

// flyingGeneralExposed implements the rule that the two kings may never
// face each other down an open file.
func (b *Board) flyingGeneralExposed(side Color, kingSq Square) bool {
	enemyKing := b.KingSquare(side.Opposite())
	if kingSq.Col() != enemyKing.Col() {
		return false
	}
	lo, hi := kingSq, enemyKing
	if lo > hi {
		lo, hi = hi, lo
	}
	for sq := addDelta(lo, 16); sq != hi; sq = addDelta(sq, 16) {
		if b.Squares[sq] != Empty {
			return false
		}
	}
	return true
}

// rayCheck walks each of the four orthogonals from the king, tracking
// how many pieces have been met so far: the first (jump 0) checks via
// rook, adjacent king, or an adjacent pawn whose move pattern reaches
// the king square; the second (jump 1) checks only via cannon. Anything
// beyond the second piece is blocked and the ray stops.
func (b *Board) rayCheck(side Color, kingSq Square) bool {
	enemy := side.Opposite()
	for _, d := range orthogonalDeltas {
		jump := 0
		dist := 0
		for sq := addDelta(kingSq, d); sq.Valid(); sq = addDelta(sq, d) {
			dist++
			piece := b.Squares[sq]
			if piece == Empty {
				continue
			}
			if jump == 0 {
				if piece.Color() == enemy {
					switch piece.Type() {
					case Rook, King:
						return true
					case Pawn:
						if dist == 1 && pawnThreatens(enemy, sq, kingSq) {
							return true
						}
					}
				}
				jump = 1
				continue
			}
			if piece.Color() == enemy && piece.Type() == Cannon {
				return true
			}
			break
		}
	}
	return false
}

// pawnThreatens reports whether a pawn of attackerColor sitting on
// attackerSq can move to targetSq: forward-only before crossing the
// river, forward-or-sideways after.
func pawnThreatens(attackerColor Color, attackerSq, targetSq Square) bool {
	delta := int(targetSq) - int(attackerSq)
	if delta == pawnForwardDelta(attackerColor) {
		return true
	}
	if (delta == 1 || delta == -1) && HasCrossedRiver(attackerSq, attackerColor) {
		return true
	}
	return false
}

// horseCheck probes the eight knight-destination offsets relative to the
// king: if an enemy horse sits there and its own leg square (relative to
// its own position, not the king's) is empty, it is checking.
func (b *Board) horseCheck(side Color, kingSq Square) bool {
	enemy := side.Opposite()
	for _, m := range horseMoves {
		horseSq := addDelta(kingSq, -m.move)
		if !horseSq.Valid() {
			continue
		}
		piece := b.Squares[horseSq]
		if piece.Type() != Horse || piece.Color() != enemy {
			continue
		}
		leg := addDelta(horseSq, m.leg)
		if b.Squares[leg] == Empty {
			return true
		}
	}
	return false
}
