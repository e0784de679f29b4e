package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"negachess/internal/config"
	"negachess/internal/engine"
	"negachess/internal/match"
)

// runBenchmark 负极大值引擎 vs 一个简单引擎，双方轮流执白
func runBenchmark(ctx context.Context, ec config.EngineConfig, h engine.Heuristic, totalGames int, opts match.GameOptions, pgnPath string) {
	negamaxName := fmt.Sprintf("Negamax (Depth %d)", ec.Depth)
	simpleName := h.String() + "Engine"

	negamaxWins, simpleWins, draws, unfinished := 0, 0, 0, 0
	var records []*match.GameRecord

	for g := 0; g < totalGames; g++ {
		e, err := ec.NewEngine()
		if err != nil {
			log.Fatal().Err(err).Msg("engine")
		}
		negamax := match.Player(match.NewEnginePlayer(e))
		simple := match.Player(match.NewSimplePlayer(h))

		white, black := negamax, simple
		if g%2 == 1 {
			white, black = simple, negamax
		}

		fmt.Printf("\n=== Game %d: White [%s] vs Black [%s] ===\n", g+1, white.Name(), black.Name())
		gameOpts := opts
		gameOpts.Round = g + 1
		rec, err := match.PlayGame(ctx, white, black, gameOpts)
		if err != nil {
			log.Fatal().Err(err).Int("game", g+1).Msg("benchmark game")
		}
		records = append(records, rec)

		negamaxWhite := g%2 == 0
		switch rec.Result {
		case match.WhiteWins, match.BlackWins:
			if (rec.Result == match.WhiteWins) == negamaxWhite {
				negamaxWins++
				fmt.Printf("Result: %s wins by %s\n", negamaxName, rec.Stoppage)
			} else {
				simpleWins++
				fmt.Printf("Result: %s wins by %s\n", simpleName, rec.Stoppage)
			}
		case match.Draw:
			draws++
			fmt.Printf("Result: draw (%s)\n", rec.Stoppage)
		default:
			unfinished++
			fmt.Printf("Result: unfinished after %d plies\n", rec.Plies)
		}
	}

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("%s: %d\n", negamaxName, negamaxWins)
	fmt.Printf("%s: %d\n", simpleName, simpleWins)
	fmt.Printf("Draws: %d\n", draws)
	fmt.Printf("Unfinished: %d\n", unfinished)

	if pgnPath != "" {
		writePGNFile(pgnPath, records)
	}
}
