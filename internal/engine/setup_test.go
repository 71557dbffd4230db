package engine

import "testing"

func TestNewUnoDealsUniqueCards(t *testing.T) {
	s, err := New(VariantUno, []string{"a", "b", "c", "d"}, 7)
	if err != nil {
		t.Fatal(err)
	}
	u := s.Uno

	seen := map[string]bool{}
	total := 0
	track := func(cards []Card) {
		for _, c := range cards {
			if seen[c.ID] {
				t.Fatalf("card id %s dealt twice", c.ID)
			}
			seen[c.ID] = true
			total++
		}
	}
	track(u.Deck)
	track(u.DiscardPile)
	for _, h := range u.PlayerHands {
		track(h)
	}

	if total != 108 {
		t.Fatalf("card count = %d, want 108", total)
	}
	for _, p := range s.Players {
		if len(u.PlayerHands[p]) != unoHandSize {
			t.Fatalf("hand size = %d, want %d", len(u.PlayerHands[p]), unoHandSize)
		}
	}
	if len(u.DiscardPile) != 1 || u.DiscardPile[0].Color == ColorWild {
		t.Fatalf("opening discard = %+v", u.DiscardPile)
	}
	if u.CurrentColor != u.DiscardPile[0].Color {
		t.Fatalf("current color %s does not match the opening discard", u.CurrentColor)
	}
	if u.Direction != 1 {
		t.Fatalf("direction = %d", u.Direction)
	}
}

func TestNewUnoIsDeterministicPerSeed(t *testing.T) {
	a, _ := New(VariantUno, []string{"a", "b"}, 99)
	b, _ := New(VariantUno, []string{"a", "b"}, 99)
	for i, c := range a.Uno.Deck {
		if b.Uno.Deck[i].ID != c.ID {
			t.Fatalf("decks diverge at %d for the same seed", i)
		}
	}
}

func TestNewChessStartingPosition(t *testing.T) {
	s, err := New(VariantChess, []string{"w", "b"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	c := s.Chess
	if c.CurrentTurn != White || s.CurrentPlayer != "w" {
		t.Fatalf("white should move first, got %s/%s", c.CurrentTurn, s.CurrentPlayer)
	}
	if !c.Castling.WhiteKingside || !c.Castling.BlackQueenside {
		t.Fatal("castle rights should start set")
	}
	if p := c.Board[7][4]; p == nil || p.Kind != King || p.Color != White {
		t.Fatalf("white king misplaced: %+v", p)
	}
	if p := c.Board[0][3]; p == nil || p.Kind != Queen || p.Color != Black {
		t.Fatalf("black queen misplaced: %+v", p)
	}
	for col := 0; col < 8; col++ {
		if p := c.Board[6][col]; p == nil || p.Kind != Pawn {
			t.Fatalf("white pawn missing at col %d", col)
		}
	}
}

func TestNewCheckersStartingPosition(t *testing.T) {
	s, err := New(VariantCheckers, []string{"r", "b"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	counts := map[CheckerColor]int{}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := s.Checkers.Board[r][c]
			if p == nil {
				continue
			}
			if (r+c)%2 != 1 {
				t.Fatalf("piece on a light square at %d,%d", r, c)
			}
			if p.King {
				t.Fatal("no piece starts as a king")
			}
			counts[p.Color]++
		}
	}
	if counts[Red] != 12 || counts[DarkSide] != 12 {
		t.Fatalf("piece counts = %+v, want 12 each", counts)
	}
}

func TestNewRejectsBadArguments(t *testing.T) {
	if _, err := New(Variant("go"), []string{"a", "b"}, 0); err != ErrUnknownVariant {
		t.Fatalf("err = %v, want ErrUnknownVariant", err)
	}
	if _, err := New(VariantUno, []string{"solo"}, 0); err == nil {
		t.Fatal("single-player game accepted")
	}
	if _, err := New(VariantChess, []string{"a", "b", "c"}, 0); err == nil {
		t.Fatal("three-player chess accepted")
	}
}
