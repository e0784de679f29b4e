package board

import (
	"strings"
	"sync"

	"github.com/notnil/chess"
)

const zobristPieceTypes = 7 // chess.PieceType 范围 [1..6]，0 = NoPieceType

var (
	zobristOnce sync.Once

	zobristPieces   [2][zobristPieceTypes][64]uint64
	zobristSide     uint64
	zobristCastling [4]uint64 // K Q k q
	zobristEPFile   [8]uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for pt := 1; pt < zobristPieceTypes; pt++ {
				for sq := 0; sq < 64; sq++ {
					zobristPieces[side][pt][sq] = next()
				}
			}
		}
		zobristSide = next()
		for i := range zobristCastling {
			zobristCastling[i] = next()
		}
		for i := range zobristEPFile {
			zobristEPFile[i] = next()
		}
	})
}

func pieceHashKey(pc chess.Piece, sq chess.Square) uint64 {
	if pc == chess.NoPiece || sq < 0 || sq >= 64 {
		return 0
	}

	var sideIdx int
	switch pc.Color() {
	case chess.White:
		sideIdx = 0
	case chess.Black:
		sideIdx = 1
	default:
		return 0
	}

	pt := int(pc.Type())
	if pt <= 0 || pt >= zobristPieceTypes {
		return 0
	}
	return zobristPieces[sideIdx][pt][sq]
}

// zobristKey 全量计算局面哈希：棋子 + 轮走方 + 易位权 + 过路兵列。
// fen 由调用方传入，避免重复 pos.String()。
func zobristKey(pos *chess.Position, fen string) uint64 {
	initZobrist()

	var h uint64
	for sq, pc := range pos.Board().SquareMap() {
		h ^= pieceHashKey(pc, sq)
	}
	if pos.Turn() == chess.Black {
		h ^= zobristSide
	}
	castling := fenField(fen, fenCastling)
	for i, r := range "KQkq" {
		if strings.ContainsRune(castling, r) {
			h ^= zobristCastling[i]
		}
	}
	if ep := fenField(fen, fenEnPassant); len(ep) == 2 && ep[0] >= 'a' && ep[0] <= 'h' {
		h ^= zobristEPFile[ep[0]-'a']
	}
	return h
}
