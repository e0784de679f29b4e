package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/notnil/chess"

	"negachess/internal/board"
	"negachess/internal/engine"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

const (
	StatusOngoing   = "ongoing"
	StatusCheckmate = "checkmate"
	StatusStalemate = "stalemate"
	StatusDraw      = "draw"
)

// GameState 一局棋。引擎不是并发安全的，所有操作都在 mu 下进行
type GameState struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	mu     sync.Mutex
	game   *chess.Game
	engine *engine.Engine
}

// Snapshot is the client-facing view of a game.
type Snapshot struct {
	FEN        string
	Turn       chess.Color
	LegalMoves []string
	Status     string
	Moves      int
}

func (g *GameState) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

// Play applies a UCI move from the client.
func (g *GameState) Play(uci string) (Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	pos := board.FromGame(g.game)
	if pos.IsGameOver() {
		return Snapshot{}, ErrGameOver
	}
	mv := findMove(pos, uci)
	if mv == nil {
		return Snapshot{}, fmt.Errorf("%w: %q", ErrIllegalMove, uci)
	}
	if err := g.apply(mv); err != nil {
		return Snapshot{}, err
	}
	return g.snapshot(), nil
}

// AIMove asks the game's engine for a move, and plays it when apply is set.
func (g *GameState) AIMove(apply bool) (engine.SearchResult, Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	pos := board.FromGame(g.game)
	if pos.IsGameOver() {
		return engine.SearchResult{}, Snapshot{}, ErrGameOver
	}
	res := g.engine.Search(pos)
	if apply {
		if err := g.apply(res.BestMove); err != nil {
			return engine.SearchResult{}, Snapshot{}, err
		}
	}
	return res, g.snapshot(), nil
}

// Engine returns the game's engine. Callers must not search with it
// concurrently with Play or AIMove.
func (g *GameState) Engine() *engine.Engine {
	return g.engine
}

func (g *GameState) apply(mv *chess.Move) error {
	if err := g.game.Move(mv); err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	g.UpdatedAt = time.Now()
	return nil
}

func (g *GameState) snapshot() Snapshot {
	pos := board.FromGame(g.game)
	legal := pos.LegalMoves()
	moves := make([]string, len(legal))
	for i, m := range legal {
		moves[i] = m.String()
	}
	return Snapshot{
		FEN:        pos.FEN(),
		Turn:       pos.Turn(),
		LegalMoves: moves,
		Status:     status(pos),
		Moves:      len(g.game.Moves()),
	}
}

func status(pos *board.Position) string {
	switch {
	case pos.IsCheckmate():
		return StatusCheckmate
	case pos.IsStalemate():
		return StatusStalemate
	case pos.IsGameOver():
		return StatusDraw
	}
	return StatusOngoing
}

func findMove(pos *board.Position, uci string) *chess.Move {
	for _, m := range pos.LegalMoves() {
		if m.String() == uci {
			return m
		}
	}
	return nil
}
