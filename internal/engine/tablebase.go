package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/notnil/chess"
)

// WDL is a win/draw/loss verdict from the side to move's point of view.
type WDL int

const (
	WDLLoss        WDL = -2
	WDLBlessedLoss WDL = -1 // 输棋但会被 50 回合规则救回来
	WDLDraw        WDL = 0
	WDLCursedWin   WDL = 1 // 赢棋但会被 50 回合规则吃掉
	WDLWin         WDL = 2
)

// DefaultTablebasePieces 残局库最多覆盖的棋子数（含双王）
const DefaultTablebasePieces = 5

var ErrNotCovered = errors.New("tablebase: position not covered")

type Prober interface {
	ProbeWDL(pos Position) (WDL, error)
}

// FileTablebase reads text tables from Dir, one file per material
// signature (KQvK.tbl, KRPvKR.tbl, ...). Each line is
//
//	<fen key>;<wdl>
//
// Blank lines and lines starting with '#' are skipped.
type FileTablebase struct {
	Dir       string
	MaxPieces int
}

func (tb *FileTablebase) ProbeWDL(pos Position) (WDL, error) {
	squares := pos.SquareMap()
	maxPieces := tb.MaxPieces
	if maxPieces <= 0 {
		maxPieces = DefaultTablebasePieces
	}
	if len(squares) > maxPieces {
		return 0, ErrNotCovered
	}

	dir, err := resolveDataPath(tb.Dir, true)
	if err != nil {
		return 0, err
	}
	name := MaterialSignature(squares) + ".tbl"
	f, err := os.Open(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return 0, ErrNotCovered
	}
	if err != nil {
		return 0, err
	}
	defer f.Close()

	key := pos.Key()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, ";")
		if !ok || strings.TrimSpace(k) != key {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < int(WDLLoss) || n > int(WDLWin) {
			return 0, fmt.Errorf("tablebase %s: bad wdl %q", name, v)
		}
		return WDL(n), nil
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("tablebase %s: %w", name, err)
	}
	return 0, ErrNotCovered
}

var signatureOrder = []chess.PieceType{
	chess.King, chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.Pawn,
}

var signatureLetter = map[chess.PieceType]byte{
	chess.King:   'K',
	chess.Queen:  'Q',
	chess.Rook:   'R',
	chess.Bishop: 'B',
	chess.Knight: 'N',
	chess.Pawn:   'P',
}

// MaterialSignature names the material on the board, white first:
// "KRPvKR".
func MaterialSignature(squares map[chess.Square]chess.Piece) string {
	var counts [2]map[chess.PieceType]int
	counts[0] = make(map[chess.PieceType]int)
	counts[1] = make(map[chess.PieceType]int)
	for _, pc := range squares {
		side := 0
		if pc.Color() == chess.Black {
			side = 1
		}
		counts[side][pc.Type()]++
	}

	var sb strings.Builder
	for side := 0; side < 2; side++ {
		if side == 1 {
			sb.WriteByte('v')
		}
		for _, pt := range signatureOrder {
			for i := 0; i < counts[side][pt]; i++ {
				sb.WriteByte(signatureLetter[pt])
			}
		}
	}
	return sb.String()
}

func probeTablebase(p Prober, pos Position) (wdl WDL, err error) {
	defer func() {
		if r := recover(); r != nil {
			wdl, err = 0, fmt.Errorf("tablebase: %v", r)
		}
	}()
	return p.ProbeWDL(pos)
}
