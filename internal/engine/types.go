package engine

// Variant selects which rule set a state and its moves belong to.
type Variant string

const (
	VariantUno      Variant = "uno"
	VariantChess    Variant = "chess"
	VariantCheckers Variant = "checkers"
)

// Meta holds the fields every variant shares.
type Meta struct {
	CurrentPlayer string   `json:"currentPlayer"`
	Players       []string `json:"players"`
	Winner        string   `json:"winner,omitempty"`
	IsDraw        bool     `json:"isDraw,omitempty"`
	// TimeRemaining is owned by the caller's turn timer; the engine never
	// touches it.
	TimeRemaining int `json:"timeRemaining,omitempty"`
}

// State is a tagged union: exactly one of Uno/Chess/Checkers is set,
// matching Variant.
type State struct {
	Variant Variant `json:"variant"`
	Meta
	Uno      *UnoState      `json:"uno,omitempty"`
	Chess    *ChessState    `json:"chess,omitempty"`
	Checkers *CheckersState `json:"checkers,omitempty"`
}

// Move is the parallel tagged union of per-variant move payloads.
type Move struct {
	PlayerID string        `json:"playerId"`
	Uno      *UnoMove      `json:"uno,omitempty"`
	Chess    *ChessMove    `json:"chess,omitempty"`
	Checkers *CheckersMove `json:"checkers,omitempty"`
}

// Result reports whether a state is terminal.
type Result struct {
	IsOver bool   `json:"isOver"`
	Winner string `json:"winner,omitempty"`
	IsDraw bool   `json:"isDraw,omitempty"`
}

// Square addresses a board cell. Row 0 is the top row as serialized.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func inBoard(sq Square) bool {
	return sq.Row >= 0 && sq.Row < 8 && sq.Col >= 0 && sq.Col < 8
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// playerIndex returns the seat of id in the ordered player list, -1 if absent.
func playerIndex(players []string, id string) int {
	for i, p := range players {
		if p == id {
			return i
		}
	}
	return -1
}

func (s *State) cloneMeta() Meta {
	m := s.Meta
	m.Players = append([]string(nil), s.Players...)
	return m
}
