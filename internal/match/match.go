package match

import (
	"context"
	"fmt"

	"github.com/samber/lo"
)

type MatchResult struct {
	White      string
	Black      string
	Results    map[Result]int
	Stoppages  map[Stoppage]int
	TotalMoves int // 所有对局的总步数（ply）
	Games      []*GameRecord
}

func newMatchResult(white, black string) *MatchResult {
	return &MatchResult{
		White: white,
		Black: black,
		Results: map[Result]int{
			WhiteWins:  0,
			Draw:       0,
			BlackWins:  0,
			Unfinished: 0,
		},
		Stoppages: make(map[Stoppage]int),
	}
}

func (m *MatchResult) add(rec *GameRecord) {
	m.Results[rec.Result]++
	m.Stoppages[rec.Stoppage]++
	m.Games = append(m.Games, rec)
	m.TotalMoves = lo.SumBy(m.Games, func(r *GameRecord) int { return r.Plies })
}

// PlayMatch plays n games with fixed colours.
func PlayMatch(ctx context.Context, white, black Player, n int, opts GameOptions) (*MatchResult, error) {
	res := newMatchResult(white.Name(), black.Name())
	for i := 0; i < n; i++ {
		gameOpts := opts
		gameOpts.Round = i + 1
		rec, err := PlayGame(ctx, white, black, gameOpts)
		if err != nil {
			return nil, fmt.Errorf("game %d of %s vs %s: %w", i+1, res.White, res.Black, err)
		}
		res.add(rec)
	}
	return res, nil
}
