package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	// 自动加载 .env
	_ "github.com/joho/godotenv/autoload"

	"negachess/internal/engine"
)

type Config struct {
	Logs   LogConfig
	Engine EngineConfig
	HTTP   HTTPConfig
}

type EngineConfig struct {
	Depth        int
	OpeningBook  bool
	BookPath     string
	EndgameTable bool
	TablebaseDir string
	MaxPieces    int
	Heuristic    engine.Heuristic
}

type HTTPConfig struct {
	Addr string
}

const (
	DefaultDepth    = 3
	DefaultBookPath = "data/book.json"
	DefaultTBDir    = "data/tablebase"
	DefaultAddr     = "127.0.0.1:8080"
)

// SearchConfig is the part of the engine settings the search itself reads.
func (c EngineConfig) SearchConfig() engine.SearchConfig {
	return engine.SearchConfig{
		Depth:        c.Depth,
		OpeningBook:  c.OpeningBook,
		EndgameTable: c.EndgameTable,
	}
}

// Options builds the lookup sources for an engine. The sources are plain
// paths; nothing is opened here.
func (c EngineConfig) Options() []engine.Option {
	var opts []engine.Option
	if c.OpeningBook && c.BookPath != "" {
		opts = append(opts, engine.WithBook(engine.NewFileBook(c.BookPath)))
	}
	if c.EndgameTable && c.TablebaseDir != "" {
		opts = append(opts, engine.WithTablebase(&engine.FileTablebase{
			Dir:       c.TablebaseDir,
			MaxPieces: c.MaxPieces,
		}))
	}
	return opts
}

// NewEngine builds a fresh negamax engine from c.
func (c EngineConfig) NewEngine() (*engine.Engine, error) {
	return engine.NewEngine(c.SearchConfig(), c.Options()...)
}

// LoadConfig reads the environment (and .env). Unset variables take their
// defaults; malformed ones are errors.
func LoadConfig() (*Config, error) {
	depth, err := envInt("ENGINE_DEPTH", DefaultDepth)
	if err != nil {
		return nil, err
	}
	openingBook, err := envBool("ENGINE_OPENING_BOOK", false)
	if err != nil {
		return nil, err
	}
	endgameTable, err := envBool("ENGINE_ENDGAME_TABLE", false)
	if err != nil {
		return nil, err
	}
	maxPieces, err := envInt("ENGINE_TABLEBASE_MAX_PIECES", engine.DefaultTablebasePieces)
	if err != nil {
		return nil, err
	}
	heuristic := engine.HeuristicRandom
	if s := os.Getenv("ENGINE_HEURISTIC"); s != "" {
		if heuristic, err = engine.ParseHeuristic(s); err != nil {
			return nil, fmt.Errorf("ENGINE_HEURISTIC: %w", err)
		}
	}

	cfg := &Config{
		Logs: LogConfig{
			Style: os.Getenv("LOG_STYLE"),
			Level: os.Getenv("LOG_LEVEL"),
		},
		Engine: EngineConfig{
			Depth:        depth,
			OpeningBook:  openingBook,
			BookPath:     envString("ENGINE_BOOK_PATH", DefaultBookPath),
			EndgameTable: endgameTable,
			TablebaseDir: envString("ENGINE_TABLEBASE_DIR", DefaultTBDir),
			MaxPieces:    maxPieces,
			Heuristic:    heuristic,
		},
		HTTP: HTTPConfig{
			Addr: envString("HTTP_ADDR", DefaultAddr),
		},
	}
	if err := cfg.Engine.SearchConfig().Validate(); err != nil {
		return nil, fmt.Errorf("ENGINE_DEPTH: %w", err)
	}
	return cfg, nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %w", key, err)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("error parsing %s: %w", key, err)
	}
	return b, nil
}
