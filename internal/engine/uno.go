package engine

// CardColor is an Uno card color. Wild cards carry ColorWild.
type CardColor string

const (
	ColorRed    CardColor = "red"
	ColorBlue   CardColor = "blue"
	ColorGreen  CardColor = "green"
	ColorYellow CardColor = "yellow"
	ColorWild   CardColor = "wild"
)

// CardValue is an Uno card face: "0".."9" or an action value.
type CardValue string

const (
	ValueSkip    CardValue = "skip"
	ValueReverse CardValue = "reverse"
	ValueDraw2   CardValue = "draw2"
	ValueDraw4   CardValue = "draw4"
	ValueWild    CardValue = "wild"
)

// Card ids are unique across the deck, the discard pile and every hand; a
// card is never duplicated or lost by Apply.
type Card struct {
	Color CardColor `json:"color"`
	Value CardValue `json:"value"`
	ID    string    `json:"id"`
}

type UnoState struct {
	Deck         []Card            `json:"deck"`        // top of the draw pile is the last element
	DiscardPile  []Card            `json:"discardPile"` // top is the most recent play
	PlayerHands  map[string][]Card `json:"playerHands"`
	CurrentColor CardColor         `json:"currentColor,omitempty"` // override in effect after a wild
	Direction    int               `json:"direction"`              // +1 or -1
	DrawStack    int               `json:"drawStack"`              // undrawn penalty cards from draw2/draw4 chains
}

type UnoMove struct {
	CardID      string    `json:"cardId"`
	ChosenColor CardColor `json:"chosenColor,omitempty"` // required when playing a wild
}

func validateUno(s *State, m Move) bool {
	u := s.Uno
	hand, ok := u.PlayerHands[m.PlayerID]
	if !ok {
		return false
	}
	card := findCard(hand, m.Uno.CardID)
	if card == nil {
		return false
	}
	if len(u.DiscardPile) == 0 {
		// Nothing to match against yet; any card opens.
		return true
	}
	top := u.DiscardPile[len(u.DiscardPile)-1]
	if card.Color == ColorWild {
		return true
	}
	if card.Color == top.Color || card.Value == top.Value {
		return true
	}
	// A wild on top matches by the color its player declared.
	if top.Color == ColorWild && card.Color == u.CurrentColor {
		return true
	}
	return false
}

func applyUno(s *State, m Move) *State {
	next := cloneUno(s)
	u := next.Uno

	hand := u.PlayerHands[m.PlayerID]
	card := findCard(hand, m.Uno.CardID)
	u.PlayerHands[m.PlayerID] = removeCard(hand, m.Uno.CardID)
	u.DiscardPile = append(u.DiscardPile, *card)

	steps := 1
	switch card.Value {
	case ValueSkip:
		steps = 2
	case ValueReverse:
		u.Direction = -u.Direction
	case ValueDraw2:
		u.DrawStack += 2
	case ValueDraw4:
		u.DrawStack += 4
	}
	if card.Color == ColorWild {
		u.CurrentColor = m.Uno.ChosenColor
	} else {
		u.CurrentColor = card.Color
	}

	next.CurrentPlayer = advanceSeat(next.Players, next.CurrentPlayer, u.Direction, steps)
	return next
}

func unoGameOver(s *State) Result {
	for _, p := range s.Players {
		if hand, ok := s.Uno.PlayerHands[p]; ok && len(hand) == 0 {
			return Result{IsOver: true, Winner: p}
		}
	}
	return Result{}
}

// advanceSeat moves the turn pointer steps seats in direction, wrapping
// modulo the player count.
func advanceSeat(players []string, current string, direction, steps int) string {
	n := len(players)
	if n == 0 {
		return current
	}
	idx := playerIndex(players, current)
	if idx < 0 {
		idx = 0
	}
	idx = ((idx+direction*steps)%n + n) % n
	return players[idx]
}

func findCard(hand []Card, id string) *Card {
	for i := range hand {
		if hand[i].ID == id {
			return &hand[i]
		}
	}
	return nil
}

func removeCard(hand []Card, id string) []Card {
	out := make([]Card, 0, len(hand))
	for _, c := range hand {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

func cloneUno(s *State) *State {
	u := s.Uno
	hands := make(map[string][]Card, len(u.PlayerHands))
	for p, h := range u.PlayerHands {
		hands[p] = append([]Card(nil), h...)
	}
	return &State{
		Variant: s.Variant,
		Meta:    s.cloneMeta(),
		Uno: &UnoState{
			Deck:         append([]Card(nil), u.Deck...),
			DiscardPile:  append([]Card(nil), u.DiscardPile...),
			PlayerHands:  hands,
			CurrentColor: u.CurrentColor,
			Direction:    u.Direction,
			DrawStack:    u.DrawStack,
		},
	}
}
