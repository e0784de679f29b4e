package match

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/notnil/chess"

	"negachess/internal/board"
)

type Notation int

const (
	NotationUCI Notation = iota
	NotationSAN
)

func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uci":
		return NotationUCI, nil
	case "san":
		return NotationSAN, nil
	}
	return 0, fmt.Errorf("unknown notation %q (want uci or san)", s)
}

func (n Notation) String() string {
	if n == NotationSAN {
		return "san"
	}
	return "uci"
}

func (n Notation) encoder() chess.Notation {
	if n == NotationSAN {
		return chess.AlgebraicNotation{}
	}
	return chess.UCINotation{}
}

// HumanPlayer reads moves from in and prints the board and options to out.
// Typing "resign" resigns; anything illegal asks again.
type HumanPlayer struct {
	name     string
	in       *bufio.Scanner
	out      io.Writer
	notation Notation
}

func NewHumanPlayer(name string, in io.Reader, out io.Writer, notation Notation) *HumanPlayer {
	if name == "" {
		name = "Human"
	}
	return &HumanPlayer{
		name:     name,
		in:       bufio.NewScanner(in),
		out:      out,
		notation: notation,
	}
}

func (h *HumanPlayer) Name() string {
	return h.name
}

func (h *HumanPlayer) ChooseMove(ctx context.Context, pos *board.Position) (*chess.Move, error) {
	enc := h.notation.encoder()
	legal := pos.LegalMoves()

	options := make([]string, 0, len(legal))
	for _, m := range legal {
		options = append(options, enc.Encode(pos.Current(), m))
	}

	fmt.Fprintln(h.out, pos.Draw())
	fmt.Fprintf(h.out, "Legal moves: %s\n", strings.Join(options, " "))

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fmt.Fprintf(h.out, "%s to move (%s, or \"resign\"): ", pos.Turn().Name(), h.notation)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return nil, err
			}
			return nil, io.ErrUnexpectedEOF
		}
		text := strings.TrimSpace(h.in.Text())
		if strings.EqualFold(text, "resign") {
			return nil, ErrResign
		}
		for i, opt := range options {
			// SAN 的 +/# 可省略
			if strings.TrimRight(opt, "+#") == strings.TrimRight(text, "+#") {
				return legal[i], nil
			}
		}
		fmt.Fprintf(h.out, "Illegal move %q, try again.\n", text)
	}
}
