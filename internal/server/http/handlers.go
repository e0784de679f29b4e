package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"negachess/internal/engine"
	"negachess/internal/server/game"
)

// Handler serves the /api routes over an in-memory game manager.
type Handler struct {
	games    *game.Manager
	defaults engine.SearchConfig
}

func NewHandler(games *game.Manager, defaults engine.SearchConfig) *Handler {
	return &Handler{games: games, defaults: defaults}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) NewGame(c *gin.Context) {
	var req NewGameRequest
	// 空 body 也可以，全部用默认值
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, http.StatusBadRequest, "bad json")
			return
		}
	}

	cfg := h.defaults
	if req.Depth != nil {
		cfg.Depth = *req.Depth
	}
	if req.OpeningBook != nil {
		cfg.OpeningBook = *req.OpeningBook
	}
	if req.EndgameTable != nil {
		cfg.EndgameTable = *req.EndgameTable
	}

	g, err := h.games.NewGame(cfg)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	log.Info().Str("game", g.ID).Int("depth", cfg.Depth).Msg("new-game")

	s := stateToDTO(g.Snapshot())
	c.JSON(http.StatusOK, NewGameResponse{
		GameID:     g.ID,
		Position:   s.Position,
		ToMove:     s.ToMove,
		LegalMoves: s.LegalMoves,
		Status:     s.Status,
	})
}

func (h *Handler) Play(c *gin.Context) {
	var req PlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "bad json")
		return
	}
	g, ok := h.lookup(c, req.GameID)
	if !ok {
		return
	}
	snap, err := g.Play(req.Move)
	if err != nil {
		writeGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateToDTO(snap))
}

func (h *Handler) State(c *gin.Context) {
	var req StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "bad json")
		return
	}
	g, ok := h.lookup(c, req.GameID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, stateToDTO(g.Snapshot()))
}

func (h *Handler) AiMove(c *gin.Context) {
	var req AiMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "bad json")
		return
	}
	g, ok := h.lookup(c, req.GameID)
	if !ok {
		return
	}

	res, snap, err := g.AIMove(req.Apply)
	if err != nil {
		writeGameError(c, err)
		return
	}
	score, mate := scoreToDTO(res.Score)
	log.Info().
		Str("game", g.ID).
		Str("move", res.BestMove.String()).
		Bool("book", res.FromBook).
		Int64("evals", res.Evals).
		Msg("ai-move")

	c.JSON(http.StatusOK, AiMoveResponse{
		BestMove:      res.BestMove.String(),
		Score:         score,
		Mate:          mate,
		FromBook:      res.FromBook,
		Depth:         res.Depth,
		Evals:         res.Evals,
		Prunes:        res.Prunes,
		TimeMs:        res.TimeUsed.Milliseconds(),
		StateResponse: stateToDTO(snap),
	})
}

func (h *Handler) lookup(c *gin.Context, id string) (*game.GameState, bool) {
	g, err := h.games.Get(id)
	if err != nil {
		writeGameError(c, err)
		return nil, false
	}
	return g, true
}

func writeGameError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrIllegalMove), errors.Is(err, game.ErrGameOver):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeError(c, http.StatusInternalServerError, err.Error())
	}
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
