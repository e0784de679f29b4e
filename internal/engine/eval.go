package engine

import (
	"github.com/notnil/chess"
)

// 基础子力估值；王也计分，保证不会有“换王”的局面出现在评估里
var pieceValue = map[chess.PieceType]float64{
	chess.King:   100,
	chess.Queen:  9,
	chess.Rook:   5,
	chess.Bishop: 3,
	chess.Knight: 3,
	chess.Pawn:   1,
}

// Evaluate 从白方视角：白方子力 - 黑方子力
func Evaluate(pos Squares) float64 {
	score := 0.0
	for _, pc := range pos.SquareMap() {
		v := pieceValue[pc.Type()]
		if pc.Color() == chess.White {
			score += v
		} else {
			score -= v
		}
	}
	return score
}
