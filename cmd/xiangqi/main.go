// Command xiangqi is a small console front end for the search engine,
// the ambient-stack counterpart of the teacher's main.go+shell UCI
// console. Xiangqi has no UCI-equivalent wire protocol (spec.md's
// persistence section is explicitly "None"), so this instead loads one
// or more positions from a compact textual notation, runs a search on
// each, and prints the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/zhoujunwen/xiangqi-engine/board"
	"github.com/zhoujunwen/xiangqi-engine/search"
)

func main() {
	difficulty := flag.String("difficulty", "intermediate", "beginner|intermediate|expert|master|grandmaster")
	side := flag.String("side", "red", "red|black (side to move)")
	language := flag.String("language", "en", "en|zh")
	flag.Parse()

	d, err := parseDifficulty(*difficulty)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	lang := parseLanguage(*language)
	mover, err := parseSide(*side)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	positions := flag.Args()
	if len(positions) == 0 {
		positions = []string{defaultNotation}
	}

	if len(positions) == 1 {
		runOne(positions[0], mover, d, lang)
		return
	}
	runBatch(positions, mover, d, lang)
}

// defaultNotation is the standard opening position, its ten rows
// separated by '/', used when no position is given on the command line.
const defaultNotation = "rheakaehr/........./.c.....c./p.p.p.p.p/........./........./P.P.P.P.P/.C.....C./........./RHEAKAEHR"

func runOne(notation string, side board.Color, d search.Difficulty, lang search.Language) {
	snap, err := parseArgNotation(notation)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	e := search.NewEngine()
	result := e.GetBestMove(context.Background(), snap, side, d, lang)
	printResult(snap, side, result)
}

// runBatch resolves several independent positions concurrently, one
// search.Engine per position, under a shared errgroup — the
// batch-analysis counterpart of the teacher's own errgroup-based Lazy
// SMP fan-out, repurposed here across independent single-threaded
// searches rather than across threads working the same tree, since
// spec.md's Non-goals rule out multi-threaded search of one position.
func runBatch(notations []string, side board.Color, d search.Difficulty, lang search.Language) {
	snaps := make([]board.Snapshot, len(notations))
	results := make([]*search.Result, len(notations))
	var g errgroup.Group
	for i, notation := range notations {
		i, notation := i, notation
		g.Go(func() error {
			snap, err := parseArgNotation(notation)
			if err != nil {
				return fmt.Errorf("position %d: %w", i, err)
			}
			snaps[i] = snap
			e := search.NewEngine()
			results[i] = e.GetBestMove(context.Background(), snap, side, d, lang)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for i := range notations {
		printResult(snaps[i], side, results[i])
	}
}

// printResult renders the position before the move, the engine's
// reasoning and score, and the position after the move, the way the
// teacher's shell.PrintPosition dumps a board around a UCI search
// result.
func printResult(snap board.Snapshot, side board.Color, result *search.Result) {
	var b board.Board
	b.LoadBoard(snap, side)
	fmt.Print(b.String())
	if result == nil {
		fmt.Println("no legal move (checkmate or stalemate)")
		fmt.Println()
		return
	}
	fmt.Printf("move: (%d,%d) -> (%d,%d)\n", result.Move.From.Row, result.Move.From.Col, result.Move.To.Row, result.Move.To.Col)
	fmt.Printf("score: %d\n", result.Score)
	fmt.Println(result.Reasoning)

	from := board.MakeSquare(result.Move.From.Row, result.Move.From.Col)
	to := board.MakeSquare(result.Move.To.Row, result.Move.To.Col)
	b.MakeMove(board.MakeMove(from, to))
	fmt.Print(b.String())
	fmt.Println()
}

// parseArgNotation accepts the same slash-separated row format used by
// defaultNotation, converting it into board.ParseNotation's [10]string
// form.
func parseArgNotation(s string) (board.Snapshot, error) {
	rows := strings.Split(s, "/")
	if len(rows) != 10 {
		return board.Snapshot{}, fmt.Errorf("expected 10 rows separated by '/', got %d", len(rows))
	}
	var arr [10]string
	copy(arr[:], rows)
	return board.ParseNotation(arr)
}

func parseDifficulty(s string) (search.Difficulty, error) {
	switch strings.ToLower(s) {
	case "beginner":
		return search.Beginner, nil
	case "intermediate":
		return search.Intermediate, nil
	case "expert":
		return search.Expert, nil
	case "master":
		return search.Master, nil
	case "grandmaster":
		return search.Grandmaster, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

func parseLanguage(s string) search.Language {
	if strings.ToLower(s) == "zh" {
		return search.SimplifiedChinese
	}
	return search.English
}

func parseSide(s string) (board.Color, error) {
	switch strings.ToLower(s) {
	case "red":
		return board.Red, nil
	case "black":
		return board.Black, nil
	}
	return 0, fmt.Errorf("unknown side %q", s)
}
