package game

import (
	"errors"
	"sync"
	"testing"

	"github.com/notnil/chess"

	"negachess/internal/engine"
)

func TestManagerNewAndGet(t *testing.T) {
	m := NewManager(nil)
	g, err := m.NewGame(engine.SearchConfig{Depth: 1})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	got, err := m.Get(g.ID)
	if err != nil || got != g {
		t.Fatalf("Get(%s) = %v, %v", g.ID, got, err)
	}
	if _, err := m.Get("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
	if _, err := m.NewGame(engine.SearchConfig{Depth: -1}); !errors.Is(err, engine.ErrInvalidConfig) {
		t.Fatalf("expected config error, got %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("expected 1 game, got %d", m.Len())
	}
}

func TestPlayAndStatus(t *testing.T) {
	m := NewManager(nil)
	g, err := m.NewGame(engine.SearchConfig{Depth: 1})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	snap := g.Snapshot()
	if snap.Status != StatusOngoing || snap.Turn != chess.White || len(snap.LegalMoves) != 20 {
		t.Fatalf("unexpected start snapshot %+v", snap)
	}

	if _, err := g.Play("e2e5"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}

	for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		if snap, err = g.Play(uci); err != nil {
			t.Fatalf("Play(%s): %v", uci, err)
		}
	}
	if snap.Status != StatusCheckmate || len(snap.LegalMoves) != 0 || snap.Moves != 4 {
		t.Fatalf("expected checkmate, got %+v", snap)
	}
	if _, err := g.Play("a2a3"); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
	if _, _, err := g.AIMove(true); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver from AIMove, got %v", err)
	}
}

func TestAIMove(t *testing.T) {
	m := NewManager(nil)
	g, _ := m.NewGame(engine.SearchConfig{Depth: 1})

	res, snap, err := g.AIMove(false)
	if err != nil {
		t.Fatalf("AIMove: %v", err)
	}
	if res.BestMove == nil || snap.Moves != 0 {
		t.Fatalf("dry run should not play: %+v", snap)
	}

	_, snap, err = g.AIMove(true)
	if err != nil {
		t.Fatalf("AIMove: %v", err)
	}
	if snap.Moves != 1 || snap.Turn != chess.Black {
		t.Fatalf("expected the move to be applied, got %+v", snap)
	}
	if g.Engine().Stats().NumEvals == 0 {
		t.Fatalf("engine stats should be kept per game")
	}
}

func TestConcurrentAIMoves(t *testing.T) {
	m := NewManager(nil)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		g, err := m.NewGame(engine.SearchConfig{Depth: 1})
		if err != nil {
			t.Fatalf("NewGame: %v", err)
		}
		for j := 0; j < 2; j++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, _, err := g.AIMove(true); err != nil {
					t.Errorf("AIMove: %v", err)
				}
			}()
		}
	}
	wg.Wait()
	if m.Len() != 4 {
		t.Fatalf("expected 4 games, got %d", m.Len())
	}
}
