package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/notnil/chess"

	"negachess/internal/engine"
)

var ErrGameNotFound = errors.New("game not found")

// EngineFactory builds a fresh engine for every new game.
type EngineFactory func(cfg engine.SearchConfig) (*engine.Engine, error)

type Manager struct {
	mu        sync.RWMutex
	games     map[string]*GameState
	newEngine EngineFactory
}

func NewManager(factory EngineFactory) *Manager {
	if factory == nil {
		factory = func(cfg engine.SearchConfig) (*engine.Engine, error) {
			return engine.NewEngine(cfg)
		}
	}
	return &Manager{
		games:     make(map[string]*GameState),
		newEngine: factory,
	}
}

func (m *Manager) NewGame(cfg engine.SearchConfig) (*GameState, error) {
	e, err := m.newEngine(cfg)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		game:      chess.NewGame(),
		engine:    e,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return g, nil
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
