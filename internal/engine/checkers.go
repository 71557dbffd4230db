package engine

type CheckerColor string

const (
	Red      CheckerColor = "red"
	DarkSide CheckerColor = "black"
)

func (c CheckerColor) other() CheckerColor {
	if c == Red {
		return DarkSide
	}
	return Red
}

type CheckerPiece struct {
	Color CheckerColor `json:"color"`
	King  bool         `json:"king"`
}

// CheckersState: red advances toward increasing rows, black toward
// decreasing rows. MustCapture mirrors whether the side to move has a
// capture available; it is recomputed on every turn switch.
type CheckersState struct {
	Board           [8][8]*CheckerPiece `json:"board"`
	CurrentTurn     CheckerColor        `json:"currentTurn"`
	MustCapture     bool                `json:"mustCapture"`
	CaptureSequence []Square            `json:"captureSequence,omitempty"` // squares visited mid multi-jump
	MoveHistory     []CheckersRecord    `json:"moveHistory"`
}

type CheckersMove struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

type CheckersRecord struct {
	From     Square  `json:"from"`
	To       Square  `json:"to"`
	Captured *Square `json:"captured,omitempty"`
	Kinged   bool    `json:"kinged,omitempty"`
}

func validateCheckers(s *State, m Move) bool {
	ck := s.Checkers
	mv := m.Checkers
	if !inBoard(mv.From) || !inBoard(mv.To) {
		return false
	}
	piece := ck.Board[mv.From.Row][mv.From.Col]
	if piece == nil || piece.Color != ck.CurrentTurn {
		return false
	}
	if ck.Board[mv.To.Row][mv.To.Col] != nil {
		return false
	}

	dr := mv.To.Row - mv.From.Row
	dc := mv.To.Col - mv.From.Col
	if abs(dr) != abs(dc) {
		return false
	}

	switch abs(dr) {
	case 1:
		if ck.MustCapture {
			// A capture is available somewhere; simple steps are off.
			return false
		}
		return piece.King || forwardRow(piece.Color, dr)
	case 2:
		// Captures may jump backwards even for men.
		mid := ck.Board[mv.From.Row+dr/2][mv.From.Col+dc/2]
		return mid != nil && mid.Color != piece.Color
	}
	return false
}

// forwardRow reports whether a row delta is forward for color.
func forwardRow(color CheckerColor, dr int) bool {
	if color == Red {
		return dr > 0
	}
	return dr < 0
}

func applyCheckers(s *State, m Move) *State {
	next := cloneCheckers(s)
	ck := next.Checkers
	mv := m.Checkers

	piece := ck.Board[mv.From.Row][mv.From.Col]
	ck.Board[mv.To.Row][mv.To.Col] = piece
	ck.Board[mv.From.Row][mv.From.Col] = nil

	rec := CheckersRecord{From: mv.From, To: mv.To}

	captured := abs(mv.To.Row-mv.From.Row) == 2
	if captured {
		mid := Square{
			Row: mv.From.Row + (mv.To.Row-mv.From.Row)/2,
			Col: mv.From.Col + (mv.To.Col-mv.From.Col)/2,
		}
		ck.Board[mid.Row][mid.Col] = nil
		rec.Captured = &mid

		// Another capture from the landing square keeps the turn: the
		// same piece must continue the chain.
		if canCaptureFrom(ck, mv.To, piece) {
			ck.CaptureSequence = append(ck.CaptureSequence, mv.To)
			ck.MustCapture = true
			ck.MoveHistory = append(ck.MoveHistory, rec)
			return next
		}
	}

	if !piece.King && crowningRow(piece.Color) == mv.To.Row {
		piece.King = true
		rec.Kinged = true
	}

	ck.CaptureSequence = nil
	ck.CurrentTurn = ck.CurrentTurn.other()
	ck.MustCapture = sideHasCapture(ck, ck.CurrentTurn)
	ck.MoveHistory = append(ck.MoveHistory, rec)
	next.CurrentPlayer = checkersPlayer(next, ck.CurrentTurn)
	return next
}

func crowningRow(color CheckerColor) int {
	if color == Red {
		return 7
	}
	return 0
}

var allDiagonals = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// moveDirs returns the step directions available to piece: all four
// diagonals for a king, the forward pair otherwise.
func moveDirs(piece *CheckerPiece) [][2]int {
	if piece.King {
		return allDiagonals[:]
	}
	if piece.Color == Red {
		return [][2]int{{1, -1}, {1, 1}}
	}
	return [][2]int{{-1, -1}, {-1, 1}}
}

// canCaptureFrom reports whether piece, standing on from, has a jump
// available in any of the four diagonal directions: an opposing piece
// adjacent with an empty landing square beyond.
func canCaptureFrom(ck *CheckersState, from Square, piece *CheckerPiece) bool {
	return canCaptureDirs(ck, from, piece, allDiagonals[:])
}

func canCaptureDirs(ck *CheckersState, from Square, piece *CheckerPiece, dirs [][2]int) bool {
	for _, d := range dirs {
		over := Square{Row: from.Row + d[0], Col: from.Col + d[1]}
		land := Square{Row: from.Row + 2*d[0], Col: from.Col + 2*d[1]}
		if !inBoard(land) {
			continue
		}
		mid := ck.Board[over.Row][over.Col]
		if mid != nil && mid.Color != piece.Color && ck.Board[land.Row][land.Col] == nil {
			return true
		}
	}
	return false
}

func sideHasCapture(ck *CheckersState, color CheckerColor) bool {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := ck.Board[r][c]
			if p != nil && p.Color == color && canCaptureFrom(ck, Square{Row: r, Col: c}, p) {
				return true
			}
		}
	}
	return false
}

// pieceHasMove reports whether piece on from has any legal move, a simple
// step into an empty adjacent diagonal or a capture jump.
func pieceHasMove(ck *CheckersState, from Square, piece *CheckerPiece) bool {
	for _, d := range moveDirs(piece) {
		step := Square{Row: from.Row + d[0], Col: from.Col + d[1]}
		if inBoard(step) && ck.Board[step.Row][step.Col] == nil {
			return true
		}
	}
	return canCaptureDirs(ck, from, piece, moveDirs(piece))
}

func checkersGameOver(s *State) Result {
	ck := s.Checkers
	counts := map[CheckerColor]int{}
	mobile := map[CheckerColor]bool{}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := ck.Board[r][c]
			if p == nil {
				continue
			}
			counts[p.Color]++
			if !mobile[p.Color] && pieceHasMove(ck, Square{Row: r, Col: c}, p) {
				mobile[p.Color] = true
			}
		}
	}
	for _, color := range []CheckerColor{Red, DarkSide} {
		if counts[color] == 0 || !mobile[color] {
			return Result{IsOver: true, Winner: checkersPlayer(s, color.other())}
		}
	}
	return Result{}
}

// checkersPlayer maps a color to a player id: players[0] is red.
func checkersPlayer(s *State, color CheckerColor) string {
	idx := 0
	if color == DarkSide {
		idx = 1
	}
	if idx >= len(s.Players) {
		return ""
	}
	return s.Players[idx]
}

func cloneCheckers(s *State) *State {
	ck := s.Checkers
	out := &CheckersState{
		CurrentTurn:     ck.CurrentTurn,
		MustCapture:     ck.MustCapture,
		CaptureSequence: append([]Square(nil), ck.CaptureSequence...),
		MoveHistory:     append([]CheckersRecord(nil), ck.MoveHistory...),
	}
	for r := range ck.Board {
		for c, p := range ck.Board[r] {
			if p != nil {
				cp := *p
				out.Board[r][c] = &cp
			}
		}
	}
	return &State{Variant: s.Variant, Meta: s.cloneMeta(), Checkers: out}
}
