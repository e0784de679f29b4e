package engine

import (
	"fmt"

	"github.com/notnil/chess"
)

// Squares is the board snapshot the evaluator reads.
type Squares interface {
	SquareMap() map[chess.Square]chess.Piece
}

// Position is what the search needs from the rules engine. board.Position
// implements it on top of notnil/chess.
type Position interface {
	Squares

	LegalMoves() []*chess.Move
	Push(m *chess.Move)
	Pop()

	IsGameOver() bool
	IsCheckmate() bool
	IsCapture(m *chess.Move) bool
	GivesCheck(m *chess.Move) bool

	Turn() chess.Color
	// Key 标识局面（不含步数计数），开局库 / 残局库都按它查
	Key() string
}

// SearchStats 只做统计，不影响搜索结果
type SearchStats struct {
	NumEvals  int64
	NumPrunes int64
}

type Engine struct {
	cfg SearchConfig

	// 开局库开关：查一次失败就永久关掉
	useBook bool
	book    Book
	tb      Prober

	stats SearchStats
}

type Option func(*Engine)

func WithBook(b Book) Option {
	return func(e *Engine) { e.book = b }
}

func WithTablebase(p Prober) Option {
	return func(e *Engine) { e.tb = p }
}

// NewEngine validates cfg up front; a bad config never reaches the search.
func NewEngine(cfg SearchConfig, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:     cfg,
		useBook: cfg.OpeningBook,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) Config() SearchConfig {
	return e.cfg
}

// Stats returns the counters accumulated over every search of this engine.
func (e *Engine) Stats() SearchStats {
	return e.stats
}

// BookEnabled reports whether the opening book will still be consulted.
func (e *Engine) BookEnabled() bool {
	return e.useBook
}

func (e *Engine) String() string {
	return fmt.Sprintf("NegamaxEngine(depth=%d)", e.cfg.Depth)
}
