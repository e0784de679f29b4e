package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

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

	games := flag.Int("games", 2, "games per pairing")
	depth := flag.Int("depth", cfg.Engine.Depth, "negamax search depth")
	parallel := flag.Int("parallel", 4, "matches running at once (0 = unlimited)")
	maxPlies := flag.Int("maxplies", 300, "stop a game after this many plies (0 = no limit)")
	pgnPath := flag.String("pgn", "", "write all games to this PGN file")
	bench := flag.Bool("benchmark", false, "play negamax against one simple engine, alternating colours")
	opponent := flag.String("opponent", cfg.Engine.Heuristic.String(), "simple engine for -benchmark: random, attacking or limiting")
	flag.Parse()

	if err := cfg.Logs.Setup(); err != nil {
		log.Fatal().Err(err).Msg("logging")
	}
	cfg.Engine.Depth = *depth
	if err := cfg.Engine.SearchConfig().Validate(); err != nil {
		log.Fatal().Err(err).Msg("engine config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := match.GameOptions{MaxPlies: *maxPlies, Event: "negachess selfplay"}

	if *bench {
		h, err := engine.ParseHeuristic(*opponent)
		if err != nil {
			log.Fatal().Err(err).Msg("opponent")
		}
		runBenchmark(ctx, cfg.Engine, h, *games, opts, *pgnPath)
		return
	}

	entrants := []match.Entrant{
		{Name: fmt.Sprintf("negamax(%d)", *depth), New: func() match.Player {
			e, err := cfg.Engine.NewEngine()
			if err != nil {
				// 上面已经校验过配置
				panic(err)
			}
			return match.NewEnginePlayer(e)
		}},
	}
	for _, h := range []engine.Heuristic{engine.HeuristicRandom, engine.HeuristicAttacking, engine.HeuristicLimiting} {
		h := h
		entrants = append(entrants, match.Entrant{
			Name: h.String(),
			New:  func() match.Player { return match.NewSimplePlayer(h) },
		})
	}

	log.Info().Int("entrants", len(entrants)).Int("games", *games).Int("parallel", *parallel).Msg("tournament-start")
	res, err := match.RunTournament(ctx, entrants, *games, *parallel, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("tournament")
	}

	fmt.Printf("\n=== Standings ===\n")
	fmt.Printf("%-14s %5s %5s %5s %5s\n", "engine", "win", "draw", "loss", "*")
	for _, s := range res.Standings {
		fmt.Printf("%-14s %5d %5d %5d %5d\n", s.Name, s.Wins, s.Draws, s.Losses, s.Unfinished)
	}

	if *pgnPath != "" {
		var all []*match.GameRecord
		for _, m := range res.Matches {
			all = append(all, m.Games...)
		}
		writePGNFile(*pgnPath, all)
	}
}

func writePGNFile(path string, games []*match.GameRecord) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatal().Err(err).Msg("create pgn")
	}
	defer f.Close()
	if err := match.WritePGN(f, games); err != nil {
		log.Fatal().Err(err).Msg("write pgn")
	}
	log.Info().Str("path", path).Int("games", len(games)).Msg("pgn-written")
}
