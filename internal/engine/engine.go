// Package engine implements the rule sets for the supported game variants
// behind a single validate/apply/gameover entry point. Every operation is a
// pure function of its inputs: no I/O, no locks, no state retained between
// calls. Apply never mutates its input state; it returns a fresh value with
// copied containers.
package engine

// Validate reports whether move is legal in state. It fails closed: an
// unknown variant, a missing variant payload, or a move whose payload does
// not match the state's variant all yield false.
func Validate(s *State, m Move) bool {
	if s == nil {
		return false
	}
	switch s.Variant {
	case VariantUno:
		return s.Uno != nil && m.Uno != nil && validateUno(s, m)
	case VariantChess:
		return s.Chess != nil && m.Chess != nil && validateChess(s, m)
	case VariantCheckers:
		return s.Checkers != nil && m.Checkers != nil && validateCheckers(s, m)
	}
	return false
}

// Apply returns the state that results from playing move. The move must
// already have passed Validate; applying an unvalidated move is a caller
// bug with undefined results. An unknown variant returns the input
// unchanged.
func Apply(s *State, m Move) *State {
	switch s.Variant {
	case VariantUno:
		return applyUno(s, m)
	case VariantChess:
		return applyChess(s, m)
	case VariantCheckers:
		return applyCheckers(s, m)
	}
	return s
}

// IsGameOver reports whether state is terminal, and if so who won or
// whether it is a draw. An unknown variant reports not-over.
func IsGameOver(s *State) Result {
	switch s.Variant {
	case VariantUno:
		return unoGameOver(s)
	case VariantChess:
		return chessGameOver(s)
	case VariantCheckers:
		return checkersGameOver(s)
	}
	return Result{}
}
