package search

import "github.com/zhoujunwen/xiangqi-engine/eval"

// quiescence resolves captures until the position is "quiet", so the
// main search never has to stop mid-exchange and misjudge a position
// that is about to lose material back. It has no depth limit — capture
// chains strictly shrink the piece count, so it always terminates —
// but still polls the shared node-count deadline, matching the main
// search's own cooperative-abort contract.
func (s *searcher) quiescence(alpha, beta int) int {
	s.nodes++
	if s.nodes&2047 == 0 {
		s.pollDeadline()
	}
	if s.aborted {
		return alpha
	}

	standPat := eval.Evaluate(s.board)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	sideToMove := s.board.Turn
	captures := s.board.GenerateMoves(s.captureBuf[s.qPly][:0], true)
	orderCaptures(s.board, captures, s.scoreBuf[s.qPly][:len(captures)])

	for _, m := range captures {
		captured := s.board.MakeMove(m)
		if s.board.InCheck(sideToMove) {
			s.board.UndoMove(m, captured)
			continue
		}
		s.qPly++
		v := -s.quiescence(-beta, -alpha)
		s.qPly--
		s.board.UndoMove(m, captured)

		if v >= beta {
			return beta
		}
		if v > alpha {
			alpha = v
		}
	}
	return alpha
}
