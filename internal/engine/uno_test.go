package engine

import "testing"

func unoFixture() *State {
	return &State{
		Variant: VariantUno,
		Meta: Meta{
			CurrentPlayer: "p1",
			Players:       []string{"p1", "p2", "p3"},
		},
		Uno: &UnoState{
			DiscardPile: []Card{{Color: ColorRed, Value: "5", ID: "top"}},
			PlayerHands: map[string][]Card{
				"p1": {
					{Color: ColorRed, Value: "7", ID: "r7"},
					{Color: ColorBlue, Value: "5", ID: "b5"},
					{Color: ColorGreen, Value: "2", ID: "g2"},
					{Color: ColorWild, Value: ValueWild, ID: "w"},
					{Color: ColorRed, Value: ValueSkip, ID: "rskip"},
					{Color: ColorRed, Value: ValueReverse, ID: "rrev"},
					{Color: ColorBlue, Value: ValueDraw2, ID: "bd2"},
				},
				"p2": {{Color: ColorYellow, Value: "9", ID: "y9"}},
				"p3": {{Color: ColorGreen, Value: "1", ID: "g1"}},
			},
			CurrentColor: ColorRed,
			Direction:    1,
		},
	}
}

func unoPlay(cardID string) Move {
	return Move{PlayerID: "p1", Uno: &UnoMove{CardID: cardID}}
}

func TestUnoValidate(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want bool
	}{
		{"color match", unoPlay("r7"), true},
		{"value match", unoPlay("b5"), true},
		{"wild always plays", unoPlay("w"), true},
		{"no color or value match", unoPlay("g2"), false},
		{"unknown card id", unoPlay("nope"), false},
		{"absent hand", Move{PlayerID: "ghost", Uno: &UnoMove{CardID: "r7"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(unoFixture(), tt.move); got != tt.want {
				t.Fatalf("Validate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnoValidateAfterWildUsesChosenColor(t *testing.T) {
	s := unoFixture()
	s.Uno.DiscardPile = []Card{{Color: ColorWild, Value: ValueWild, ID: "top"}}
	s.Uno.CurrentColor = ColorGreen

	if !Validate(s, unoPlay("g2")) {
		t.Fatal("green card should match the declared color")
	}
	if Validate(s, unoPlay("r7")) {
		t.Fatal("red card should not match a declared green")
	}
}

func TestUnoSkipAdvancesTwoSeats(t *testing.T) {
	s := unoFixture()
	next := Apply(s, unoPlay("rskip"))

	if next.CurrentPlayer != "p3" {
		t.Fatalf("skip should hand the turn to p3, got %s", next.CurrentPlayer)
	}
	if s.CurrentPlayer != "p1" {
		t.Fatal("input state mutated by Apply")
	}
}

func TestUnoReverseFlipsDirection(t *testing.T) {
	s := unoFixture()
	next := Apply(s, unoPlay("rrev"))
	if next.Uno.Direction != -1 {
		t.Fatalf("direction = %d, want -1", next.Uno.Direction)
	}
	// Reverse walks backwards from p1, wrapping to p3.
	if next.CurrentPlayer != "p3" {
		t.Fatalf("current player = %s, want p3", next.CurrentPlayer)
	}

	next.Uno.PlayerHands["p3"] = []Card{{Color: ColorRed, Value: ValueReverse, ID: "rrev2"}}
	again := Apply(next, Move{PlayerID: "p3", Uno: &UnoMove{CardID: "rrev2"}})
	if again.Uno.Direction != 1 {
		t.Fatalf("double reverse should restore direction, got %d", again.Uno.Direction)
	}
}

func TestUnoDrawCardsStack(t *testing.T) {
	s := unoFixture()
	s.Uno.DrawStack = 2
	next := Apply(s, unoPlay("bd2"))
	if next.Uno.DrawStack != 4 {
		t.Fatalf("draw stack = %d, want 4", next.Uno.DrawStack)
	}
}

func TestUnoWildSetsChosenColor(t *testing.T) {
	s := unoFixture()
	next := Apply(s, Move{PlayerID: "p1", Uno: &UnoMove{CardID: "w", ChosenColor: ColorYellow}})
	if next.Uno.CurrentColor != ColorYellow {
		t.Fatalf("current color = %s, want yellow", next.Uno.CurrentColor)
	}
}

func TestUnoGameOverOnEmptyHand(t *testing.T) {
	s := unoFixture()
	if res := IsGameOver(s); res.IsOver {
		t.Fatal("game should not be over with cards in every hand")
	}

	s.Uno.PlayerHands["p2"] = nil
	res := IsGameOver(s)
	if !res.IsOver || res.Winner != "p2" {
		t.Fatalf("want p2 winning, got %+v", res)
	}
	// Terminal check is idempotent.
	if res2 := IsGameOver(s); res2 != res {
		t.Fatalf("repeated check differs: %+v vs %+v", res2, res)
	}
}

func TestUnoCardConservation(t *testing.T) {
	s := unoFixture()
	next := Apply(s, unoPlay("r7"))

	count := func(st *State) map[string]int {
		ids := map[string]int{}
		for _, c := range st.Uno.Deck {
			ids[c.ID]++
		}
		for _, c := range st.Uno.DiscardPile {
			ids[c.ID]++
		}
		for _, h := range st.Uno.PlayerHands {
			for _, c := range h {
				ids[c.ID]++
			}
		}
		return ids
	}

	before, after := count(s), count(next)
	if len(before) != len(after) {
		t.Fatalf("card set changed: %d ids before, %d after", len(before), len(after))
	}
	for id, n := range after {
		if n != 1 {
			t.Fatalf("card %s counted %d times", id, n)
		}
		if before[id] != 1 {
			t.Fatalf("card %s not present before", id)
		}
	}
}
