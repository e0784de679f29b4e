package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"negachess/internal/board"
	"negachess/internal/config"
	"negachess/internal/engine"
)

func main() {
	fen := flag.String("fen", "", "position to inspect (default: initial position)")
	depth := flag.Int("depth", 2, "search depth")
	flag.Parse()

	if err := (config.LogConfig{Style: "pretty", Level: "debug"}).Setup(); err != nil {
		log.Fatal().Err(err).Msg("logging")
	}

	pos := board.New()
	if *fen != "" {
		var err error
		if pos, err = board.FromFEN(*fen); err != nil {
			log.Fatal().Err(err).Msg("fen")
		}
	}

	fmt.Println(pos.Draw())
	fmt.Println("FEN:", pos.FEN())
	fmt.Printf("Clocks: halfmove %d, fullmove %d\n", pos.HalfMoveClock(), pos.FullMoveNumber())
	fmt.Println("Material:", engine.MaterialSignature(pos.SquareMap()))
	fmt.Println("Evaluation (white):", engine.Evaluate(pos))

	moves := engine.OrderMoves(pos, pos.LegalMoves())
	ucis := make([]string, len(moves))
	for i, m := range moves {
		ucis[i] = m.String()
	}
	fmt.Printf("Legal moves (%d, captures first): %s\n", len(moves), strings.Join(ucis, " "))

	if pos.IsGameOver() {
		fmt.Println("Game over.")
		return
	}

	e, err := engine.NewEngine(engine.SearchConfig{Depth: *depth})
	if err != nil {
		log.Fatal().Err(err).Msg("engine")
	}
	res := e.Search(pos)
	fmt.Printf("BestMove: %s, Score: %v, Evals: %d, Prunes: %d, Time: %v\n",
		res.BestMove, res.Score, res.Evals, res.Prunes, res.TimeUsed)
}
