package search

import "strconv"

// buildReasoning renders a short, human-readable explanation of a
// search result: the deepest completed depth, node count in thousands,
// and a sign-prefixed score, in the requested language. This is the
// only UI-facing string the engine produces — everything else in the
// Result is plain data — so it is kept as one small pure function
// rather than an inline fmt.Sprintf at the call site, matching the
// teacher's own habit of giving score formatting (newUciScore) a name
// of its own.
func buildReasoning(language Language, depth int, nodes int64, score int) string {
	switch language {
	case SimplifiedChinese:
		return "搜索深度 " + strconv.Itoa(depth) +
			"，节点数 " + strconv.FormatInt(nodes/1000, 10) + "k" +
			"，评分 " + signed(score)
	default:
		return "depth " + strconv.Itoa(depth) +
			", nodes " + strconv.FormatInt(nodes/1000, 10) + "k" +
			", score " + signed(score)
	}
}

func signed(score int) string {
	if score >= 0 {
		return "+" + strconv.Itoa(score)
	}
	return strconv.Itoa(score)
}

// buildFallbackReasoning is used when the deadline elapses before any
// iteration completes: spec.md §4.5 calls for a plain "score = 0"
// reasoning in this case rather than a claim about a depth never
// reached.
func buildFallbackReasoning(language Language) string {
	switch language {
	case SimplifiedChinese:
		return "时间不足，随机走子"
	default:
		return "deadline elapsed before any depth completed, playing a legal move"
	}
}
