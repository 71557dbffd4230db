package engine

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrUnknownVariant is returned by New for a variant tag it cannot set up.
var ErrUnknownVariant = errors.New("unknown game variant")

// New builds the initial state for variant with the given ordered player
// ids. The seed drives every shuffle so games can be replayed.
func New(variant Variant, players []string, seed int64) (*State, error) {
	if len(players) < 2 {
		return nil, errors.New("at least two players required")
	}
	meta := Meta{
		CurrentPlayer: players[0],
		Players:       append([]string(nil), players...),
	}
	switch variant {
	case VariantUno:
		return &State{Variant: variant, Meta: meta, Uno: newUnoState(players, seed)}, nil
	case VariantChess:
		if len(players) != 2 {
			return nil, errors.New("chess takes exactly two players")
		}
		return &State{Variant: variant, Meta: meta, Chess: newChessState()}, nil
	case VariantCheckers:
		if len(players) != 2 {
			return nil, errors.New("checkers takes exactly two players")
		}
		return &State{Variant: variant, Meta: meta, Checkers: newCheckersState()}, nil
	}
	return nil, ErrUnknownVariant
}

const unoHandSize = 7

// newUnoState shuffles a standard 108-card deck, deals seven cards to each
// player and flips the first non-wild card to open the discard pile.
func newUnoState(players []string, seed int64) *UnoState {
	deck := unoDeck()
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	hands := make(map[string][]Card, len(players))
	for _, p := range players {
		hands[p] = append([]Card(nil), deck[:unoHandSize]...)
		deck = deck[unoHandSize:]
	}

	// The opening discard must declare a color, so wilds are buried.
	var discard []Card
	for i, c := range deck {
		if c.Color != ColorWild {
			discard = []Card{c}
			deck = append(deck[:i:i], deck[i+1:]...)
			break
		}
	}

	u := &UnoState{
		Deck:        deck,
		DiscardPile: discard,
		PlayerHands: hands,
		Direction:   1,
	}
	if len(discard) > 0 {
		u.CurrentColor = discard[0].Color
	}
	return u
}

// unoDeck builds the 108-card set: per color one 0, two each of 1-9 and of
// skip/reverse/draw2, plus four wilds and four wild-draw4s.
func unoDeck() []Card {
	colors := []CardColor{ColorRed, ColorBlue, ColorGreen, ColorYellow}
	var deck []Card
	add := func(color CardColor, value CardValue, copies int) {
		for i := 0; i < copies; i++ {
			deck = append(deck, Card{
				Color: color,
				Value: value,
				ID:    fmt.Sprintf("%s-%s-%d", color, value, i),
			})
		}
	}
	for _, color := range colors {
		add(color, CardValue("0"), 1)
		for v := 1; v <= 9; v++ {
			add(color, CardValue(fmt.Sprintf("%d", v)), 2)
		}
		add(color, ValueSkip, 2)
		add(color, ValueReverse, 2)
		add(color, ValueDraw2, 2)
	}
	add(ColorWild, ValueWild, 4)
	add(ColorWild, ValueDraw4, 4)
	return deck
}

var chessBackRank = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func newChessState() *ChessState {
	c := &ChessState{
		CurrentTurn: White,
		Castling: CastlingRights{
			WhiteKingside:  true,
			WhiteQueenside: true,
			BlackKingside:  true,
			BlackQueenside: true,
		},
	}
	for col, kind := range chessBackRank {
		c.Board[0][col] = &ChessPiece{Kind: kind, Color: Black}
		c.Board[1][col] = &ChessPiece{Kind: Pawn, Color: Black}
		c.Board[6][col] = &ChessPiece{Kind: Pawn, Color: White}
		c.Board[7][col] = &ChessPiece{Kind: kind, Color: White}
	}
	return c
}

func newCheckersState() *CheckersState {
	ck := &CheckersState{CurrentTurn: Red}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if (r+c)%2 != 1 {
				continue
			}
			if r < 3 {
				ck.Board[r][c] = &CheckerPiece{Color: Red}
			} else if r > 4 {
				ck.Board[r][c] = &CheckerPiece{Color: DarkSide}
			}
		}
	}
	return ck
}
