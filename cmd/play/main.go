package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog/log"

	"negachess/internal/config"
	"negachess/internal/engine"
	"negachess/internal/match"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	color := flag.String("color", "white", "your colour: white or black")
	notation := flag.String("notation", "uci", "move notation: uci or san")
	engineName := flag.String("engine", "negamax", "opponent: negamax, random, attacking or limiting")
	depth := flag.Int("depth", cfg.Engine.Depth, "negamax search depth")
	flag.Parse()

	if err := cfg.Logs.Setup(); err != nil {
		log.Fatal().Err(err).Msg("logging")
	}
	cfg.Engine.Depth = *depth

	n, err := match.ParseNotation(*notation)
	if err != nil {
		log.Fatal().Err(err).Msg("notation")
	}
	opponent, err := newOpponent(cfg.Engine, *engineName)
	if err != nil {
		log.Fatal().Err(err).Msg("engine")
	}
	human := match.NewHumanPlayer("Human", os.Stdin, os.Stdout, n)

	var white, black match.Player
	switch strings.ToLower(*color) {
	case "white", "w":
		white, black = human, opponent
	case "black", "b":
		white, black = opponent, human
	default:
		log.Fatal().Str("color", *color).Msg("colour must be white or black")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rec, err := match.PlayGame(ctx, white, black, match.GameOptions{Event: "negachess"})
	if err != nil {
		log.Fatal().Err(err).Msg("game")
	}

	fmt.Printf("\nGame over: %s (%s) after %d plies\n\n", rec.Result, rec.Stoppage, rec.Plies)
	fmt.Println(rec.Game.String())
}

func newOpponent(ec config.EngineConfig, name string) (match.Player, error) {
	if strings.EqualFold(name, "negamax") {
		e, err := ec.NewEngine()
		if err != nil {
			return nil, err
		}
		return match.NewEnginePlayer(e), nil
	}
	h, err := engine.ParseHeuristic(name)
	if err != nil {
		return nil, err
	}
	return match.NewSimplePlayer(h), nil
}
