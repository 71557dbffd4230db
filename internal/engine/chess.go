package engine

type PieceColor string

const (
	White PieceColor = "white"
	Black PieceColor = "black"
)

func (c PieceColor) opponent() PieceColor {
	if c == White {
		return Black
	}
	return White
}

type PieceKind string

const (
	Pawn   PieceKind = "pawn"
	Rook   PieceKind = "rook"
	Knight PieceKind = "knight"
	Bishop PieceKind = "bishop"
	Queen  PieceKind = "queen"
	King   PieceKind = "king"
)

type ChessPiece struct {
	Kind  PieceKind  `json:"kind"`
	Color PieceColor `json:"color"`
}

// CastlingRights tracks the four independent castle permissions.
type CastlingRights struct {
	WhiteKingside  bool `json:"whiteKingside"`
	WhiteQueenside bool `json:"whiteQueenside"`
	BlackKingside  bool `json:"blackKingside"`
	BlackQueenside bool `json:"blackQueenside"`
}

// ChessState keeps the board with black's back rank at row 0 and white's at
// row 7. InCheck, Checkmate and Stalemate are caller-maintained flags: the
// engine reads them but never recomputes them, and it never verifies that a
// move leaves the mover's own king safe.
type ChessState struct {
	Board       [8][8]*ChessPiece `json:"board"`
	CurrentTurn PieceColor        `json:"currentTurn"`
	EnPassant   *Square           `json:"enPassant,omitempty"`
	Castling    CastlingRights    `json:"castling"`
	InCheck     bool              `json:"inCheck,omitempty"`
	Checkmate   bool              `json:"checkmate,omitempty"`
	Stalemate   bool              `json:"stalemate,omitempty"`
	MoveHistory []ChessRecord     `json:"moveHistory"`
}

type ChessMove struct {
	From      Square    `json:"from"`
	To        Square    `json:"to"`
	Promotion PieceKind `json:"promotion,omitempty"` // supplied by the caller, not derived
}

// ChessRecord is one applied move as kept in the history.
type ChessRecord struct {
	From      Square      `json:"from"`
	To        Square      `json:"to"`
	Piece     ChessPiece  `json:"piece"`
	Captured  *ChessPiece `json:"captured,omitempty"`
	Promotion PieceKind   `json:"promotion,omitempty"`
	Notation  string      `json:"notation"`
}

func validateChess(s *State, m Move) bool {
	c := s.Chess
	mv := m.Chess
	if !inBoard(mv.From) || !inBoard(mv.To) || mv.From == mv.To {
		return false
	}
	piece := c.Board[mv.From.Row][mv.From.Col]
	if piece == nil || piece.Color != c.CurrentTurn {
		return false
	}
	dest := c.Board[mv.To.Row][mv.To.Col]
	if dest != nil && dest.Color == piece.Color {
		return false
	}

	dr := mv.To.Row - mv.From.Row
	dc := mv.To.Col - mv.From.Col

	switch piece.Kind {
	case Pawn:
		return validPawn(c, piece.Color, mv.From, mv.To, dest)
	case Rook:
		return (dr == 0 || dc == 0) && clearPath(c, mv.From, mv.To)
	case Knight:
		// Blocking pieces are irrelevant to the knight.
		return (abs(dr) == 2 && abs(dc) == 1) || (abs(dr) == 1 && abs(dc) == 2)
	case Bishop:
		return abs(dr) == abs(dc) && clearPath(c, mv.From, mv.To)
	case Queen:
		return (dr == 0 || dc == 0 || abs(dr) == abs(dc)) && clearPath(c, mv.From, mv.To)
	case King:
		if abs(dr) <= 1 && abs(dc) <= 1 {
			return true
		}
		return validCastle(c, piece.Color, mv.From, mv.To)
	}
	return false
}

func validPawn(c *ChessState, color PieceColor, from, to Square, dest *ChessPiece) bool {
	dir := -1 // white advances toward row 0
	startRow := 6
	if color == Black {
		dir = 1
		startRow = 1
	}
	dr := to.Row - from.Row
	dc := to.Col - from.Col

	// Single push onto an empty square.
	if dc == 0 && dr == dir && dest == nil {
		return true
	}
	// Double push from the starting rank through an empty square.
	if dc == 0 && dr == 2*dir && from.Row == startRow && dest == nil &&
		c.Board[from.Row+dir][from.Col] == nil {
		return true
	}
	// Diagonal capture of exactly one square.
	if abs(dc) == 1 && dr == dir && dest != nil && dest.Color != color {
		return true
	}
	return false
}

// validCastle checks a multi-square king move. Only the global in-check
// flag, the rights flag and the emptiness of the squares between king and
// rook are verified; the king's path is not checked for attacks.
func validCastle(c *ChessState, color PieceColor, from, to Square) bool {
	if c.InCheck {
		return false
	}
	homeRow := 7
	if color == Black {
		homeRow = 0
	}
	if from.Row != homeRow || to.Row != homeRow || from.Col != 4 {
		return false
	}

	var rookCol int
	switch to.Col {
	case 6: // king side
		if color == White && !c.Castling.WhiteKingside {
			return false
		}
		if color == Black && !c.Castling.BlackKingside {
			return false
		}
		rookCol = 7
	case 2: // queen side
		if color == White && !c.Castling.WhiteQueenside {
			return false
		}
		if color == Black && !c.Castling.BlackQueenside {
			return false
		}
		rookCol = 0
	default:
		return false
	}

	lo, hi := from.Col, rookCol
	if lo > hi {
		lo, hi = hi, lo
	}
	for col := lo + 1; col < hi; col++ {
		if c.Board[homeRow][col] != nil {
			return false
		}
	}
	return true
}

// clearPath reports whether every square strictly between from and to is
// empty. from and to must share a row, a column or a diagonal.
func clearPath(c *ChessState, from, to Square) bool {
	stepR := sign(to.Row - from.Row)
	stepC := sign(to.Col - from.Col)
	r, col := from.Row+stepR, from.Col+stepC
	for r != to.Row || col != to.Col {
		if c.Board[r][col] != nil {
			return false
		}
		r += stepR
		col += stepC
	}
	return true
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func applyChess(s *State, m Move) *State {
	next := cloneChess(s)
	c := next.Chess
	mv := m.Chess

	piece := *c.Board[mv.From.Row][mv.From.Col]
	captured := c.Board[mv.To.Row][mv.To.Col]

	rec := ChessRecord{
		From:      mv.From,
		To:        mv.To,
		Piece:     piece,
		Captured:  captured,
		Promotion: mv.Promotion,
	}

	if piece.Kind == King {
		// A king move spends both castle rights for its color.
		if piece.Color == White {
			c.Castling.WhiteKingside = false
			c.Castling.WhiteQueenside = false
		} else {
			c.Castling.BlackKingside = false
			c.Castling.BlackQueenside = false
		}
		// Castling also moves the rook across the king.
		if abs(mv.To.Col-mv.From.Col) == 2 {
			rookFrom, rookTo := 7, 5
			if mv.To.Col == 2 {
				rookFrom, rookTo = 0, 3
			}
			c.Board[mv.From.Row][rookTo] = c.Board[mv.From.Row][rookFrom]
			c.Board[mv.From.Row][rookFrom] = nil
		}
	}

	if mv.Promotion != "" {
		piece.Kind = mv.Promotion
	}
	c.Board[mv.To.Row][mv.To.Col] = &piece
	c.Board[mv.From.Row][mv.From.Col] = nil

	rec.Notation = coordNotation(rec)
	c.MoveHistory = append(c.MoveHistory, rec)
	c.CurrentTurn = c.CurrentTurn.opponent()
	next.CurrentPlayer = chessPlayer(next, c.CurrentTurn)
	return next
}

func chessGameOver(s *State) Result {
	c := s.Chess
	if c.Checkmate {
		// Turn has already switched to the losing side.
		return Result{IsOver: true, Winner: chessPlayer(s, c.CurrentTurn.opponent())}
	}
	if c.Stalemate {
		return Result{IsOver: true, IsDraw: true}
	}
	return Result{}
}

// chessPlayer maps a color to a player id: players[0] is white.
func chessPlayer(s *State, color PieceColor) string {
	idx := 0
	if color == Black {
		idx = 1
	}
	if idx >= len(s.Players) {
		return ""
	}
	return s.Players[idx]
}

var pieceLetters = map[PieceKind]string{
	Rook: "R", Knight: "N", Bishop: "B", Queen: "Q", King: "K",
}

// coordNotation renders a display string such as "Nb8c6" or "e2e4".
func coordNotation(rec ChessRecord) string {
	n := pieceLetters[rec.Piece.Kind] + squareName(rec.From)
	if rec.Captured != nil {
		n += "x"
	}
	n += squareName(rec.To)
	if rec.Promotion != "" {
		n += "=" + pieceLetters[rec.Promotion]
	}
	return n
}

func squareName(sq Square) string {
	return string(rune('a'+sq.Col)) + string(rune('0'+(8-sq.Row)))
}

func cloneChess(s *State) *State {
	c := s.Chess
	out := &ChessState{
		CurrentTurn: c.CurrentTurn,
		Castling:    c.Castling,
		InCheck:     c.InCheck,
		Checkmate:   c.Checkmate,
		Stalemate:   c.Stalemate,
		MoveHistory: append([]ChessRecord(nil), c.MoveHistory...),
	}
	if c.EnPassant != nil {
		sq := *c.EnPassant
		out.EnPassant = &sq
	}
	for r := range c.Board {
		for col, p := range c.Board[r] {
			if p != nil {
				cp := *p
				out.Board[r][col] = &cp
			}
		}
	}
	return &State{Variant: s.Variant, Meta: s.cloneMeta(), Chess: out}
}
