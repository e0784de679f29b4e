package httpserver

import (
	"math"

	"github.com/notnil/chess"

	"negachess/internal/server/game"
)

// NewGame 请求，字段都可省略，省略时用服务端默认配置
type NewGameRequest struct {
	Depth        *int  `json:"depth"`
	OpeningBook  *bool `json:"opening_book"`
	EndgameTable *bool `json:"endgame_table"`
}

type NewGameResponse struct {
	GameID     string   `json:"game_id"`
	Position   string   `json:"position"` // FEN
	ToMove     string   `json:"to_move"`  // "white" / "black"
	LegalMoves []string `json:"legal_moves"`
	Status     string   `json:"status"`
}

// Play 请求，招法用 UCI（e2e4、e7e8q）
type PlayRequest struct {
	GameID string `json:"game_id" binding:"required"`
	Move   string `json:"move" binding:"required"`
}

type StateRequest struct {
	GameID string `json:"game_id" binding:"required"`
}

// Play / State 共用
type StateResponse struct {
	Position   string   `json:"position"`
	ToMove     string   `json:"to_move"`
	LegalMoves []string `json:"legal_moves"`
	Status     string   `json:"status"` // ongoing / checkmate / stalemate / draw
	Moves      int      `json:"moves"`
}

// AiMoveRequest 让引擎为当前局面走一步；Apply 为 false 时只思考不落子
type AiMoveRequest struct {
	GameID string `json:"game_id" binding:"required"`
	Apply  bool   `json:"apply"`
}

type AiMoveResponse struct {
	BestMove string  `json:"best_move"`
	Score    float64 `json:"score"`
	Mate     int     `json:"mate"` // 1 = 轮走方能将死对方，-1 = 被将死，0 = 没有
	FromBook bool    `json:"from_book"`
	Depth    int     `json:"depth"`
	Evals    int64   `json:"evals"`
	Prunes   int64   `json:"prunes"`
	TimeMs   int64   `json:"time_ms"`
	StateResponse
}

func sideName(c chess.Color) string {
	if c == chess.Black {
		return "black"
	}
	return "white"
}

func stateToDTO(s game.Snapshot) StateResponse {
	return StateResponse{
		Position:   s.FEN,
		ToMove:     sideName(s.Turn),
		LegalMoves: s.LegalMoves,
		Status:     s.Status,
		Moves:      s.Moves,
	}
}

// JSON 不能表示 ±Inf：把将死分数拆到 Mate 字段
func scoreToDTO(score float64) (float64, int) {
	switch {
	case math.IsInf(score, 1):
		return 0, 1
	case math.IsInf(score, -1):
		return 0, -1
	}
	return score, 0
}
