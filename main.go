package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"parlor-games/internal/engine"
)

// Hot-seat demo: two players share the terminal and the engine referees.
// Usage: go run . [chess|checkers]
func main() {
	variant := engine.VariantCheckers
	if len(os.Args) > 1 {
		variant = engine.Variant(os.Args[1])
	}
	if variant != engine.VariantChess && variant != engine.VariantCheckers {
		fmt.Println("supported variants: chess, checkers")
		os.Exit(1)
	}

	state, err := engine.New(variant, []string{"player-1", "player-2"}, 0)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		if res := engine.IsGameOver(state); res.IsOver {
			if res.IsDraw {
				fmt.Println("\nDraw.")
			} else {
				fmt.Printf("\n%s wins!\n", res.Winner)
			}
			return
		}

		fmt.Printf("\nTurn: %s\n", state.CurrentPlayer)
		printBoard(state)
		fmt.Println("Enter move: fromRow fromCol toRow toCol (e.g. 2 1 3 2)")

		for {
			fmt.Print("> ")
			line, _ := reader.ReadString('\n')
			parts := strings.Fields(line)
			if len(parts) != 4 {
				fmt.Println("Need four numbers. Try again.")
				continue
			}
			n := make([]int, 4)
			for i, p := range parts {
				n[i], _ = strconv.Atoi(p)
			}
			mv := buildMove(state, n[0], n[1], n[2], n[3])
			if !engine.Validate(state, mv) {
				fmt.Println("Illegal move. Try again.")
				continue
			}
			state = engine.Apply(state, mv)
			break
		}
	}
}

func buildMove(s *engine.State, fr, fc, tr, tc int) engine.Move {
	from := engine.Square{Row: fr, Col: fc}
	to := engine.Square{Row: tr, Col: tc}
	mv := engine.Move{PlayerID: s.CurrentPlayer}
	if s.Variant == engine.VariantChess {
		mv.Chess = &engine.ChessMove{From: from, To: to}
	} else {
		mv.Checkers = &engine.CheckersMove{From: from, To: to}
	}
	return mv
}

func printBoard(s *engine.State) {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			fmt.Printf("%s ", cellGlyph(s, r, c))
		}
		fmt.Println()
	}
}

var chessGlyphs = map[engine.PieceKind]string{
	engine.Pawn: "p", engine.Rook: "r", engine.Knight: "n",
	engine.Bishop: "b", engine.Queen: "q", engine.King: "k",
}

func cellGlyph(s *engine.State, r, c int) string {
	if s.Variant == engine.VariantChess {
		p := s.Chess.Board[r][c]
		if p == nil {
			return "."
		}
		g := chessGlyphs[p.Kind]
		if p.Color == engine.White {
			return strings.ToUpper(g)
		}
		return g
	}
	p := s.Checkers.Board[r][c]
	if p == nil {
		return "."
	}
	g := "r"
	if p.Color == engine.DarkSide {
		g = "b"
	}
	if p.King {
		return strings.ToUpper(g)
	}
	return g
}
