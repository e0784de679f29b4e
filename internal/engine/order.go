package engine

import (
	"github.com/notnil/chess"
	"github.com/samber/lo"
)

// OrderMoves puts captures (en passant included) first. Both groups keep
// their relative order, so the result is a stable partition of moves.
func OrderMoves(pos Position, moves []*chess.Move) []*chess.Move {
	isCapture := func(m *chess.Move, _ int) bool { return pos.IsCapture(m) }

	captures := lo.Filter(moves, isCapture)
	quiet := lo.Reject(moves, isCapture)

	out := make([]*chess.Move, 0, len(moves))
	out = append(out, captures...)
	return append(out, quiet...)
}
