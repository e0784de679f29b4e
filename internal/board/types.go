// Package board adapts github.com/notnil/chess to the push/pop position the
// search needs. Move generation, legality and notation all come from notnil;
// this package only keeps the ply stack and answers terminal-state queries.
package board

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"
)

var ErrInvalidFEN = errors.New("invalid FEN")

// frame 是栈上的一层：notnil 的局面 + 缓存的 FEN / 哈希
type frame struct {
	pos       *chess.Position
	fen       string
	key       uint64
	halfMoves int
}

// Position = 一个可以 Push/Pop 的局面栈。
// 栈底是调用方交进来的局面，搜索过程中每 Push 一步多一层。
type Position struct {
	// 栈底之前的历史局面哈希（只用于重复局面判断，不会被 Pop）
	history []uint64
	frames  []frame
}

func newFrame(pos *chess.Position) frame {
	fen := pos.String()
	return frame{
		pos:       pos,
		fen:       fen,
		key:       zobristKey(pos, fen),
		halfMoves: halfMoveClock(fen),
	}
}

// New returns the standard starting position.
func New() *Position {
	return &Position{frames: []frame{newFrame(chess.NewGame().Position())}}
}

// FromFEN builds a position with no history from a FEN string.
func FromFEN(fen string) (*Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	return &Position{frames: []frame{newFrame(chess.NewGame(opt).Position())}}, nil
}

// FromGame builds a position at the current point of g. Earlier positions of
// the game are kept for repetition detection.
func FromGame(g *chess.Game) *Position {
	positions := g.Positions()
	p := &Position{}
	if len(positions) == 0 {
		p.frames = []frame{newFrame(g.Position())}
		return p
	}
	p.history = make([]uint64, 0, len(positions)-1)
	for _, pos := range positions[:len(positions)-1] {
		p.history = append(p.history, zobristKey(pos, pos.String()))
	}
	p.frames = []frame{newFrame(positions[len(positions)-1])}
	return p
}

func (p *Position) top() *frame {
	return &p.frames[len(p.frames)-1]
}
