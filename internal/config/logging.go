package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type LogConfig struct {
	Style string // "pretty" 输出彩色控制台，其余输出 JSON
	Level string
}

// Setup configures the global zerolog logger. An empty level means info.
func (c LogConfig) Setup() error {
	return c.setup(os.Stderr)
}

func (c LogConfig) setup(out io.Writer) error {
	level := zerolog.InfoLevel
	if s := strings.TrimSpace(c.Level); s != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(s))
		if err != nil {
			return fmt.Errorf("LOG_LEVEL: %w", err)
		}
		level = l
	}
	zerolog.SetGlobalLevel(level)

	if strings.EqualFold(c.Style, "pretty") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return nil
}
