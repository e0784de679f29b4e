package board

import (
	"strconv"
	"strings"
)

// FEN 字段：placement side castling ep halfmove fullmove
const (
	fenPlacement = iota
	fenSide
	fenCastling
	fenEnPassant
	fenHalfMove
	fenFullMove
)

func fenField(fen string, idx int) string {
	fields := strings.Fields(fen)
	if idx >= len(fields) {
		return ""
	}
	return fields[idx]
}

func positionKey(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) > fenHalfMove {
		fields = fields[:fenHalfMove]
	}
	return strings.Join(fields, " ")
}

// PositionKey strips the move clocks from a FEN string, giving the key used
// by the opening book and endgame table files.
func PositionKey(fen string) string {
	return positionKey(fen)
}

func halfMoveClock(fen string) int {
	n, err := strconv.Atoi(fenField(fen, fenHalfMove))
	if err != nil {
		return 0
	}
	return n
}

// FullMoveNumber reads the fullmove counter of the current position.
func (p *Position) FullMoveNumber() int {
	n, err := strconv.Atoi(fenField(p.top().fen, fenFullMove))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func (p *Position) HalfMoveClock() int {
	return p.top().halfMoves
}
