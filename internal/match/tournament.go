package match

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Entrant builds a fresh Player for every match it plays, so engines are
// never shared between goroutines.
type Entrant struct {
	Name string
	New  func() Player
}

type Standing struct {
	Name       string
	Wins       int
	Draws      int
	Losses     int
	Unfinished int
}

func (s Standing) Games() int {
	return s.Wins + s.Draws + s.Losses + s.Unfinished
}

type TournamentResult struct {
	Matches   []*MatchResult
	Standings []Standing
}

// RunTournament plays a match of games between every ordered pair of
// entrants, self-pairings included. At most parallel matches run at once;
// parallel <= 0 means no limit.
func RunTournament(ctx context.Context, entrants []Entrant, games, parallel int, opts GameOptions) (*TournamentResult, error) {
	type pairing struct{ white, black int }
	var pairings []pairing
	for i := range entrants {
		for j := range entrants {
			pairings = append(pairings, pairing{white: i, black: j})
		}
	}

	matches := make([]*MatchResult, len(pairings))
	eg, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		eg.SetLimit(parallel)
	}
	for k, p := range pairings {
		k, p := k, p
		eg.Go(func() error {
			white, black := entrants[p.white], entrants[p.black]
			res, err := PlayMatch(ctx, white.New(), black.New(), games, opts)
			if err != nil {
				return fmt.Errorf("%s vs %s: %w", white.Name, black.Name, err)
			}
			// 用报名名字，不用引擎自己的名字
			res.White, res.Black = white.Name, black.Name
			matches[k] = res
			log.Info().
				Str("white", white.Name).
				Str("black", black.Name).
				Int("1-0", res.Results[WhiteWins]).
				Int("1/2-1/2", res.Results[Draw]).
				Int("0-1", res.Results[BlackWins]).
				Int("*", res.Results[Unfinished]).
				Msg("match-finished")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	standings := lo.Map(entrants, func(e Entrant, _ int) Standing {
		return Standing{Name: e.Name}
	})
	for k, p := range pairings {
		m := matches[k]
		w, b := &standings[p.white], &standings[p.black]

		w.Wins += m.Results[WhiteWins]
		w.Losses += m.Results[BlackWins]
		w.Draws += m.Results[Draw]
		w.Unfinished += m.Results[Unfinished]

		b.Wins += m.Results[BlackWins]
		b.Losses += m.Results[WhiteWins]
		b.Draws += m.Results[Draw]
		b.Unfinished += m.Results[Unfinished]
	}

	return &TournamentResult{Matches: matches, Standings: standings}, nil
}
