package engine

import "testing"

// chessFixture returns an empty-board chess state to place pieces on.
func chessFixture() *State {
	return &State{
		Variant: VariantChess,
		Meta: Meta{
			CurrentPlayer: "alice",
			Players:       []string{"alice", "bob"}, // alice plays white
		},
		Chess: &ChessState{CurrentTurn: White},
	}
}

func put(s *State, row, col int, kind PieceKind, color PieceColor) {
	s.Chess.Board[row][col] = &ChessPiece{Kind: kind, Color: color}
}

func chessMove(fr, fc, tr, tc int) Move {
	return Move{PlayerID: "alice", Chess: &ChessMove{
		From: Square{Row: fr, Col: fc},
		To:   Square{Row: tr, Col: tc},
	}}
}

func TestChessRookPathMustBeClear(t *testing.T) {
	s := chessFixture()
	put(s, 7, 0, Rook, White)
	put(s, 4, 0, Pawn, White) // blocks the file

	if Validate(s, chessMove(7, 0, 0, 0)) {
		t.Fatal("rook slide through an occupied square accepted")
	}

	s.Chess.Board[4][0] = nil
	if !Validate(s, chessMove(7, 0, 0, 0)) {
		t.Fatal("rook slide on a cleared file rejected")
	}
}

func TestChessKnightIgnoresBlockers(t *testing.T) {
	s := chessFixture()
	put(s, 0, 1, Knight, White)
	// Crowd every surrounding square.
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if s.Chess.Board[r][c] == nil && !(r == 2 && c == 2) {
				put(s, r, c, Pawn, Black)
			}
		}
	}
	if !Validate(s, chessMove(0, 1, 2, 2)) {
		t.Fatal("knight move rejected because of intervening pieces")
	}
	if Validate(s, chessMove(0, 1, 3, 3)) {
		t.Fatal("non-L knight move accepted")
	}
}

func TestChessPawnMoves(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*State)
		move  Move
		want  bool
	}{
		{
			"double push from start rank",
			func(s *State) { put(s, 6, 4, Pawn, White) },
			chessMove(6, 4, 4, 4),
			true,
		},
		{
			"double push blocked midway",
			func(s *State) {
				put(s, 6, 4, Pawn, White)
				put(s, 5, 4, Knight, Black)
			},
			chessMove(6, 4, 4, 4),
			false,
		},
		{
			"double push off the start rank",
			func(s *State) { put(s, 5, 4, Pawn, White) },
			chessMove(5, 4, 3, 4),
			false,
		},
		{
			"single push onto occupied square",
			func(s *State) {
				put(s, 6, 4, Pawn, White)
				put(s, 5, 4, Knight, Black)
			},
			chessMove(6, 4, 5, 4),
			false,
		},
		{
			"diagonal capture",
			func(s *State) {
				put(s, 6, 4, Pawn, White)
				put(s, 5, 3, Knight, Black)
			},
			chessMove(6, 4, 5, 3),
			true,
		},
		{
			"diagonal onto empty square",
			func(s *State) { put(s, 6, 4, Pawn, White) },
			chessMove(6, 4, 5, 3),
			false,
		},
		{
			"backward push",
			func(s *State) { put(s, 5, 4, Pawn, White) },
			chessMove(5, 4, 6, 4),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := chessFixture()
			tt.setup(s)
			if got := Validate(s, tt.move); got != tt.want {
				t.Fatalf("Validate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChessQueenCombinesRookAndBishop(t *testing.T) {
	s := chessFixture()
	put(s, 4, 4, Queen, White)
	if !Validate(s, chessMove(4, 4, 4, 0)) {
		t.Fatal("queen rank slide rejected")
	}
	if !Validate(s, chessMove(4, 4, 1, 1)) {
		t.Fatal("queen diagonal slide rejected")
	}
	if Validate(s, chessMove(4, 4, 2, 3)) {
		t.Fatal("queen knight-shaped move accepted")
	}
}

func TestChessCastling(t *testing.T) {
	castleReady := func() *State {
		s := chessFixture()
		put(s, 7, 4, King, White)
		put(s, 7, 7, Rook, White)
		s.Chess.Castling.WhiteKingside = true
		return s
	}
	kingside := chessMove(7, 4, 7, 6)

	if !Validate(castleReady(), kingside) {
		t.Fatal("legal king-side castle rejected")
	}

	s := castleReady()
	s.Chess.InCheck = true
	if Validate(s, kingside) {
		t.Fatal("castle accepted while in check")
	}

	s = castleReady()
	s.Chess.Castling.WhiteKingside = false
	if Validate(s, kingside) {
		t.Fatal("castle accepted without the rights flag")
	}

	s = castleReady()
	put(s, 7, 5, Bishop, White)
	if Validate(s, kingside) {
		t.Fatal("castle accepted across an occupied square")
	}

	next := Apply(castleReady(), kingside)
	if p := next.Chess.Board[7][5]; p == nil || p.Kind != Rook {
		t.Fatal("rook did not cross the king")
	}
	if next.Chess.Castling.WhiteKingside || next.Chess.Castling.WhiteQueenside {
		t.Fatal("king move should spend both white castle rights")
	}
}

func TestChessApplySwitchesTurnAndRecordsHistory(t *testing.T) {
	s := chessFixture()
	put(s, 6, 4, Pawn, White)
	put(s, 1, 4, Pawn, Black)

	next := Apply(s, chessMove(6, 4, 4, 4))
	if next.Chess.CurrentTurn != Black {
		t.Fatalf("turn = %s, want black", next.Chess.CurrentTurn)
	}
	if next.CurrentPlayer != "bob" {
		t.Fatalf("current player = %s, want bob", next.CurrentPlayer)
	}
	if len(next.Chess.MoveHistory) != 1 {
		t.Fatalf("history length = %d", len(next.Chess.MoveHistory))
	}
	if n := next.Chess.MoveHistory[0].Notation; n != "e2e4" {
		t.Fatalf("notation = %q, want e2e4", n)
	}
	if s.Chess.Board[6][4] == nil {
		t.Fatal("input state mutated by Apply")
	}
}

func TestChessPromotionChangesKind(t *testing.T) {
	s := chessFixture()
	put(s, 1, 0, Pawn, White)
	mv := Move{PlayerID: "alice", Chess: &ChessMove{
		From:      Square{Row: 1, Col: 0},
		To:        Square{Row: 0, Col: 0},
		Promotion: Queen,
	}}
	if !Validate(s, mv) {
		t.Fatal("promotion push rejected")
	}
	next := Apply(s, mv)
	if p := next.Chess.Board[0][0]; p == nil || p.Kind != Queen {
		t.Fatalf("expected a queen on the back rank, got %+v", next.Chess.Board[0][0])
	}
}

func TestChessGameOverFlags(t *testing.T) {
	s := chessFixture()
	if res := IsGameOver(s); res.IsOver {
		t.Fatal("fresh position should not be over")
	}

	s.Chess.Checkmate = true
	s.Chess.CurrentTurn = Black // black to move and mated: white won
	res := IsGameOver(s)
	if !res.IsOver || res.Winner != "alice" {
		t.Fatalf("want alice winning, got %+v", res)
	}

	s = chessFixture()
	s.Chess.Stalemate = true
	res = IsGameOver(s)
	if !res.IsOver || !res.IsDraw || res.Winner != "" {
		t.Fatalf("want a draw, got %+v", res)
	}
}

func TestChessRejectsMalformedMoves(t *testing.T) {
	s := chessFixture()
	put(s, 7, 0, Rook, White)
	put(s, 0, 0, Rook, Black)

	tests := []struct {
		name string
		move Move
	}{
		{"empty source square", chessMove(3, 3, 3, 4)},
		{"opponent piece", chessMove(0, 0, 0, 4)},
		{"source off the board", chessMove(-1, 0, 0, 0)},
		{"target off the board", chessMove(7, 0, 8, 0)},
		{"no move at all", chessMove(7, 0, 7, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Validate(s, tt.move) {
				t.Fatal("malformed move accepted")
			}
		})
	}
}
