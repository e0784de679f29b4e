package board

import (
	"github.com/notnil/chess"
)

const (
	seventyFiveMoveClock = 150
	fiftyMoveClock       = 100
)

func (p *Position) IsCheckmate() bool {
	return p.top().pos.Status() == chess.Checkmate
}

func (p *Position) IsStalemate() bool {
	return p.top().pos.Status() == chess.Stalemate
}

// IsGameOver 和 python-chess 的 is_game_over() 一致（不含需要申请的和棋）：
// 将死、逼和、子力不足、75 回合、五次重复。
func (p *Position) IsGameOver() bool {
	switch p.top().pos.Status() {
	case chess.Checkmate, chess.Stalemate:
		return true
	}
	return p.IsInsufficientMaterial() || p.IsSeventyFiveMoves() || p.IsFivefoldRepetition()
}

func (p *Position) IsSeventyFiveMoves() bool {
	return p.top().halfMoves >= seventyFiveMoveClock
}

func (p *Position) CanClaimFiftyMoves() bool {
	return p.top().halfMoves >= fiftyMoveClock
}

func (p *Position) IsFivefoldRepetition() bool {
	return p.repetitions() >= 5
}

func (p *Position) CanClaimThreefoldRepetition() bool {
	return p.repetitions() >= 3
}

// repetitions counts occurrences of the current position, itself included.
func (p *Position) repetitions() int {
	key := p.top().key
	n := 0
	for _, k := range p.history {
		if k == key {
			n++
		}
	}
	for i := range p.frames {
		if p.frames[i].key == key {
			n++
		}
	}
	return n
}

type material struct {
	kings, queens, rooks, bishops, knights, pawns int
	lightBishops, darkBishops                     int
}

func (m material) total() int {
	return m.kings + m.queens + m.rooks + m.bishops + m.knights + m.pawns
}

func countMaterial(squares map[chess.Square]chess.Piece) [2]material {
	var out [2]material
	for sq, pc := range squares {
		idx := 0
		if pc.Color() == chess.Black {
			idx = 1
		}
		m := &out[idx]
		switch pc.Type() {
		case chess.King:
			m.kings++
		case chess.Queen:
			m.queens++
		case chess.Rook:
			m.rooks++
		case chess.Bishop:
			m.bishops++
			if isLightSquare(sq) {
				m.lightBishops++
			} else {
				m.darkBishops++
			}
		case chess.Knight:
			m.knights++
		case chess.Pawn:
			m.pawns++
		}
	}
	return out
}

// a1 是黑格
func isLightSquare(sq chess.Square) bool {
	file := int(sq) % 8
	rank := int(sq) / 8
	return (file+rank)%2 == 1
}

// IsInsufficientMaterial reports that neither side can possibly mate.
func (p *Position) IsInsufficientMaterial() bool {
	mat := countMaterial(p.SquareMap())
	return insufficientFor(mat, 0) && insufficientFor(mat, 1)
}

func insufficientFor(mat [2]material, side int) bool {
	own, other := mat[side], mat[1-side]
	if own.pawns > 0 || own.rooks > 0 || own.queens > 0 {
		return false
	}
	if own.knights > 0 {
		// 单马：对方只剩王和后时才算不够
		return own.total() <= 2 && other.rooks == 0 && other.bishops == 0 && other.knights == 0 && other.pawns == 0
	}
	if own.bishops > 0 {
		lights := mat[0].lightBishops + mat[1].lightBishops
		darks := mat[0].darkBishops + mat[1].darkBishops
		sameColor := lights == 0 || darks == 0
		return sameColor && mat[0].pawns+mat[1].pawns == 0 && mat[0].knights+mat[1].knights == 0
	}
	return true
}
