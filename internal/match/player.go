package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/notnil/chess"

	"negachess/internal/board"
	"negachess/internal/engine"
)

// ErrResign is returned by ChooseMove when the player gives up.
var ErrResign = errors.New("player resigned")

// Player picks moves for one side. pos must be left as it was received.
type Player interface {
	Name() string
	ChooseMove(ctx context.Context, pos *board.Position) (*chess.Move, error)
}

type EnginePlayer struct {
	Engine *engine.Engine
}

func NewEnginePlayer(e *engine.Engine) *EnginePlayer {
	return &EnginePlayer{Engine: e}
}

func (p *EnginePlayer) Name() string {
	return p.Engine.String()
}

func (p *EnginePlayer) ChooseMove(ctx context.Context, pos *board.Position) (*chess.Move, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mv := p.Engine.SelectMove(pos)
	if mv == nil {
		return nil, fmt.Errorf("%s: no move in %s", p.Name(), pos.FEN())
	}
	return mv, nil
}

type SimplePlayer struct {
	Engine *engine.SimpleEngine
}

func NewSimplePlayer(h engine.Heuristic) *SimplePlayer {
	return &SimplePlayer{Engine: engine.NewSimpleEngine(h)}
}

func (p *SimplePlayer) Name() string {
	return p.Engine.String()
}

func (p *SimplePlayer) ChooseMove(ctx context.Context, pos *board.Position) (*chess.Move, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.Engine.SelectMove(pos), nil
}
