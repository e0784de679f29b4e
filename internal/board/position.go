package board

import (
	"github.com/notnil/chess"
)

// LegalMoves returns the legal moves in notnil's generation order. The slice
// is a fresh copy, callers may reorder it.
func (p *Position) LegalMoves() []*chess.Move {
	valid := p.top().pos.ValidMoves()
	out := make([]*chess.Move, len(valid))
	copy(out, valid)
	return out
}

// Push applies m on top of the stack. m must be legal in the current position.
func (p *Position) Push(m *chess.Move) {
	next := p.top().pos.Update(m)
	p.frames = append(p.frames, newFrame(next))
}

// Pop undoes the most recent Push. Popping the root is a programming error.
func (p *Position) Pop() {
	if len(p.frames) <= 1 {
		panic("board: pop on empty move stack")
	}
	p.frames = p.frames[:len(p.frames)-1]
}

// Ply 是当前 Push 进去的步数（栈深度 - 1）
func (p *Position) Ply() int {
	return len(p.frames) - 1
}

func (p *Position) Turn() chess.Color {
	return p.top().pos.Turn()
}

func (p *Position) Current() *chess.Position {
	return p.top().pos
}

func (p *Position) FEN() string {
	return p.top().fen
}

// Key identifies the position for book / tablebase lookups: the first four
// FEN fields (placement, side, castling, en passant), without the clocks.
func (p *Position) Key() string {
	return positionKey(p.top().fen)
}

// Hash is the Zobrist key of the current position.
func (p *Position) Hash() uint64 {
	return p.top().key
}

// IsCapture reports whether m takes a piece, en passant included.
func (p *Position) IsCapture(m *chess.Move) bool {
	return m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant)
}

func (p *Position) GivesCheck(m *chess.Move) bool {
	return m.HasTag(chess.Check)
}

func (p *Position) SquareMap() map[chess.Square]chess.Piece {
	return p.top().pos.Board().SquareMap()
}

// Draw renders the board for terminal output.
func (p *Position) Draw() string {
	return p.top().pos.Board().Draw()
}

// Clone copies the stack so the copy can be pushed/popped independently.
func (p *Position) Clone() *Position {
	c := &Position{
		history: make([]uint64, len(p.history)),
		frames:  make([]frame, len(p.frames)),
	}
	copy(c.history, p.history)
	copy(c.frames, p.frames)
	return c
}
