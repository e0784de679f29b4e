package engine

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
	"lukechampine.com/frand"
)

type Heuristic int

const (
	HeuristicRandom Heuristic = iota
	HeuristicAttacking
	HeuristicLimiting
)

var heuristicNames = map[Heuristic]string{
	HeuristicRandom:    "random",
	HeuristicAttacking: "attacking",
	HeuristicLimiting:  "limiting",
}

func (h Heuristic) String() string {
	if name, ok := heuristicNames[h]; ok {
		return name
	}
	return fmt.Sprintf("Heuristic(%d)", int(h))
}

func ParseHeuristic(s string) (Heuristic, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for h, name := range heuristicNames {
		if name == s {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown heuristic %q", ErrInvalidConfig, s)
}

// SimpleEngine plays one of the cheap heuristics; no search tree.
type SimpleEngine struct {
	heuristic Heuristic

	intn    func(n int) int
	shuffle func(n int, swap func(i, j int))
}

func NewSimpleEngine(h Heuristic) *SimpleEngine {
	if _, ok := heuristicNames[h]; !ok {
		panic(fmt.Sprintf("engine: unknown heuristic %d", int(h)))
	}
	return &SimpleEngine{
		heuristic: h,
		intn:      frand.Intn,
		shuffle:   frand.Shuffle,
	}
}

func (s *SimpleEngine) Heuristic() Heuristic {
	return s.heuristic
}

func (s *SimpleEngine) String() string {
	return s.heuristic.String() + "Engine"
}

// SelectMove needs at least one legal move in pos.
func (s *SimpleEngine) SelectMove(pos Position) *chess.Move {
	switch s.heuristic {
	case HeuristicAttacking:
		return s.attackingMove(pos)
	case HeuristicLimiting:
		return s.limitingMove(pos)
	default:
		return s.randomMove(pos)
	}
}

func (s *SimpleEngine) randomMove(pos Position) *chess.Move {
	moves := pos.LegalMoves()
	return moves[s.intn(len(moves))]
}

// 将死 > 将军 > 吃子，同级按打乱后的顺序取第一个
func (s *SimpleEngine) attackingMove(pos Position) *chess.Move {
	moves := pos.LegalMoves()
	s.shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })

	var check, capture *chess.Move
	for _, mv := range moves {
		if matesAfter(pos, mv) {
			return mv
		}
		if check == nil && pos.GivesCheck(mv) {
			check = mv
		}
		if capture == nil && pos.IsCapture(mv) {
			capture = mv
		}
	}
	switch {
	case check != nil:
		return check
	case capture != nil:
		return capture
	}
	return moves[0]
}

// 让对方可走的着法最少，平局随机
func (s *SimpleEngine) limitingMove(pos Position) *chess.Move {
	var (
		best    []*chess.Move
		fewest  = -1
		replies int
	)
	for _, mv := range pos.LegalMoves() {
		replies = countReplies(pos, mv)
		switch {
		case fewest < 0 || replies < fewest:
			fewest = replies
			best = append(best[:0], mv)
		case replies == fewest:
			best = append(best, mv)
		}
	}
	return best[s.intn(len(best))]
}

func matesAfter(pos Position, mv *chess.Move) bool {
	pos.Push(mv)
	defer pos.Pop()
	return pos.IsCheckmate()
}

func countReplies(pos Position, mv *chess.Move) int {
	pos.Push(mv)
	defer pos.Pop()
	return len(pos.LegalMoves())
}
