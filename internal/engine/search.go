package engine

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
)

// TablebaseScale 把残局库的 WDL 换算成分数
const TablebaseScale = 100

var ErrInvalidConfig = errors.New("invalid search config")

// 搜索配置
type SearchConfig struct {
	Depth        int  // 搜索深度（ply），0 按 1 处理
	OpeningBook  bool // 根节点先查开局库
	EndgameTable bool // 叶子节点先查残局库
}

func (c SearchConfig) Validate() error {
	if c.Depth < 0 {
		return fmt.Errorf("%w: depth must be >= 0, got %d", ErrInvalidConfig, c.Depth)
	}
	return nil
}

// 搜索结果
type SearchResult struct {
	BestMove *chess.Move
	Score    float64 // 轮走方视角；来自开局库时为 0
	FromBook bool
	Depth    int
	Evals    int64 // 本次搜索的静态评估次数
	Prunes   int64 // 本次搜索的剪枝次数
	TimeUsed time.Duration
}

// SelectMove picks a move for the side to move. pos must have at least one
// legal move; it is handed back in the state it was received in.
func (e *Engine) SelectMove(pos Position) *chess.Move {
	return e.Search(pos).BestMove
}

// Search is SelectMove plus diagnostics.
func (e *Engine) Search(pos Position) SearchResult {
	start := time.Now()

	if mv, ok := e.bookMove(pos); ok {
		log.Debug().Str("move", mv.String()).Msg("book-move")
		return SearchResult{
			BestMove: mv,
			FromBook: true,
			TimeUsed: time.Since(start),
		}
	}

	color := 1.0
	if pos.Turn() == chess.Black {
		color = -1.0
	}
	// 根节点至少展开一层
	depth := e.cfg.Depth
	if depth < 1 {
		depth = 1
	}

	before := e.stats
	score, move := e.negamax(pos, color, depth, math.Inf(-1), math.Inf(1))

	res := SearchResult{
		BestMove: move,
		Score:    score,
		Depth:    depth,
		Evals:    e.stats.NumEvals - before.NumEvals,
		Prunes:   e.stats.NumPrunes - before.NumPrunes,
		TimeUsed: time.Since(start),
	}
	log.Debug().
		Int("depth", depth).
		Float64("score", score).
		Int64("evals", res.Evals).
		Int64("prunes", res.Prunes).
		Dur("took", res.TimeUsed).
		Msg("search-done")
	return res
}

// negamax 返回 (分数, 着法)，分数永远是当前轮走方视角。
func (e *Engine) negamax(pos Position, color float64, depth int, alpha, beta float64) (float64, *chess.Move) {
	// 终局先于深度判断：地平线上的将死也要算出来
	if pos.IsGameOver() {
		if pos.IsCheckmate() {
			return math.Inf(-1), nil
		}
		return 0, nil
	}

	if depth == 0 {
		if score, ok := e.tablebaseScore(pos); ok {
			return score, nil
		}
		e.stats.NumEvals++
		return color * Evaluate(pos), nil
	}

	moves := OrderMoves(pos, pos.LegalMoves())
	// 兜底：就算没有任何子节点比 -Inf 好，也要返回一步
	bestMove := moves[0]
	maxEval := math.Inf(-1)

	for _, mv := range moves {
		score := -e.searchChild(pos, mv, color, depth, alpha, beta)
		if score > maxEval {
			maxEval = score
			bestMove = mv
		}
		alpha = math.Max(alpha, maxEval)
		if alpha >= beta {
			e.stats.NumPrunes++
			break
		}
	}
	return maxEval, bestMove
}

// searchChild pushes mv, searches the child from the opponent's view and
// always pops before returning.
func (e *Engine) searchChild(pos Position, mv *chess.Move, color float64, depth int, alpha, beta float64) float64 {
	pos.Push(mv)
	defer pos.Pop()
	score, _ := e.negamax(pos, -color, depth-1, -beta, -alpha)
	return score
}

func (e *Engine) bookMove(pos Position) (*chess.Move, bool) {
	if !e.useBook {
		return nil, false
	}
	mv, err := lookupBook(e.book, pos)
	if err != nil {
		e.useBook = false
		log.Debug().Err(err).Msg("opening book unavailable, disabled for this engine")
		return nil, false
	}
	return mv, true
}

func (e *Engine) tablebaseScore(pos Position) (float64, bool) {
	if !e.cfg.EndgameTable || e.tb == nil {
		return 0, false
	}
	wdl, err := probeTablebase(e.tb, pos)
	if err != nil {
		if !errors.Is(err, ErrNotCovered) {
			log.Debug().Err(err).Msg("tablebase probe failed")
		}
		return 0, false
	}
	return float64(wdl) * TablebaseScale, true
}
