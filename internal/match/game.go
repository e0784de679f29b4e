package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"

	"negachess/internal/board"
)

type GameOptions struct {
	// MaxPlies 为 0 表示不限步数
	MaxPlies int
	Event    string
	Round    int
}

type GameRecord struct {
	ID       string
	White    string
	Black    string
	Game     *chess.Game
	Result   Result
	Stoppage Stoppage
	Plies    int
	Duration time.Duration
}

// PlayGame plays one game from the initial position. It returns an error
// only when a player fails or ctx is cancelled; resignation is a result.
func PlayGame(ctx context.Context, white, black Player, opts GameOptions) (*GameRecord, error) {
	start := time.Now()
	g := chess.NewGame()
	pos := board.New()

	rec := &GameRecord{
		ID:    uuid.NewString(),
		White: white.Name(),
		Black: black.Name(),
		Game:  g,
	}
	g.AddTagPair("Event", opts.Event)
	g.AddTagPair("Date", start.Format("2006.01.02"))
	if opts.Round > 0 {
		g.AddTagPair("Round", fmt.Sprint(opts.Round))
	}
	g.AddTagPair("White", rec.White)
	g.AddTagPair("Black", rec.Black)

	for {
		if stop, res, over := stoppageOf(pos); over {
			rec.Stoppage, rec.Result = stop, res
			break
		}
		if opts.MaxPlies > 0 && rec.Plies >= opts.MaxPlies {
			rec.Stoppage, rec.Result = StoppageMoveLimit, Unfinished
			break
		}

		side := pos.Turn()
		player := white
		if side == chess.Black {
			player = black
		}

		mv, err := player.ChooseMove(ctx, pos)
		if errors.Is(err, ErrResign) {
			rec.Stoppage = StoppageResign
			rec.Result = WhiteWins
			if side == chess.White {
				rec.Result = BlackWins
			}
			g.Resign(side)
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s (%s): %w", player.Name(), side.Name(), err)
		}
		if err := g.Move(mv); err != nil {
			return nil, fmt.Errorf("%s (%s) played %s: %w", player.Name(), side.Name(), mv, err)
		}
		pos.Push(mv)
		rec.Plies++
	}

	closeGame(g, rec)
	rec.Duration = time.Since(start)

	log.Debug().
		Str("game", rec.ID).
		Str("white", rec.White).
		Str("black", rec.Black).
		Str("result", string(rec.Result)).
		Stringer("stoppage", rec.Stoppage).
		Int("plies", rec.Plies).
		Msg("game-finished")
	return rec, nil
}

// closeGame 让 notnil 的 Game 结果和记录保持一致，PGN 里才有正确的 Result
func closeGame(g *chess.Game, rec *GameRecord) {
	if g.Outcome() != chess.NoOutcome {
		return
	}
	switch rec.Stoppage {
	case StoppageFiftyMoves, StoppageThreefoldRepetition:
		if err := g.Draw(rec.Stoppage.method()); err != nil {
			log.Debug().Err(err).Str("game", rec.ID).Msg("draw claim not recorded in pgn")
		}
	}
}
