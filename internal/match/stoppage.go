package match

import (
	"github.com/notnil/chess"

	"negachess/internal/board"
)

// Result uses PGN result strings.
type Result string

const (
	WhiteWins  Result = "1-0"
	Draw       Result = "1/2-1/2"
	BlackWins  Result = "0-1"
	Unfinished Result = "*"
)

// Stoppage is why a game ended.
type Stoppage int

const (
	StoppageNone Stoppage = iota
	StoppageCheckmate
	StoppageStalemate
	StoppageInsufficientMaterial
	StoppageSeventyFiveMoves
	StoppageFivefoldRepetition
	StoppageFiftyMoves
	StoppageThreefoldRepetition
	StoppageResign
	StoppageMoveLimit
)

var stoppageNames = map[Stoppage]string{
	StoppageNone:                 "none",
	StoppageCheckmate:            "checkmate",
	StoppageStalemate:            "stalemate",
	StoppageInsufficientMaterial: "insuff_mat",
	StoppageSeventyFiveMoves:     "seventyfive_moves",
	StoppageFivefoldRepetition:   "fivefold_rep",
	StoppageFiftyMoves:           "fifty_moves",
	StoppageThreefoldRepetition:  "threefold_rep",
	StoppageResign:               "resign",
	StoppageMoveLimit:            "move_limit",
}

func (s Stoppage) String() string {
	if name, ok := stoppageNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Stoppage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// method 对应到 notnil/chess 的结束方式，用来写 PGN
func (s Stoppage) method() chess.Method {
	switch s {
	case StoppageCheckmate:
		return chess.Checkmate
	case StoppageStalemate:
		return chess.Stalemate
	case StoppageInsufficientMaterial:
		return chess.InsufficientMaterial
	case StoppageSeventyFiveMoves:
		return chess.SeventyFiveMoveRule
	case StoppageFivefoldRepetition:
		return chess.FivefoldRepetition
	case StoppageFiftyMoves:
		return chess.FiftyMoveRule
	case StoppageThreefoldRepetition:
		return chess.ThreefoldRepetition
	case StoppageResign:
		return chess.Resignation
	}
	return chess.NoMethod
}

// stoppageOf reports whether the game is over at pos, honouring draw claims.
func stoppageOf(pos *board.Position) (Stoppage, Result, bool) {
	switch {
	case pos.IsCheckmate():
		if pos.Turn() == chess.White {
			return StoppageCheckmate, BlackWins, true
		}
		return StoppageCheckmate, WhiteWins, true
	case pos.IsStalemate():
		return StoppageStalemate, Draw, true
	case pos.IsInsufficientMaterial():
		return StoppageInsufficientMaterial, Draw, true
	case pos.IsSeventyFiveMoves():
		return StoppageSeventyFiveMoves, Draw, true
	case pos.IsFivefoldRepetition():
		return StoppageFivefoldRepetition, Draw, true
	case pos.CanClaimFiftyMoves():
		return StoppageFiftyMoves, Draw, true
	case pos.CanClaimThreefoldRepetition():
		return StoppageThreefoldRepetition, Draw, true
	}
	return StoppageNone, Unfinished, false
}
