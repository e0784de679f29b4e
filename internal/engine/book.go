package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/notnil/chess"
	"lukechampine.com/frand"
)

var ErrBookMiss = errors.New("opening book: position not in book")

// Book returns a move for pos, or an error when it has none.
type Book interface {
	Lookup(pos Position) (*chess.Move, error)
}

// 开局库文件格式：
//
//	{"positions": {"<fen key>": {"moves": [{"uci": "e2e4", "weight": 10}]}}}
type bookFile struct {
	Positions map[string]bookEntry `json:"positions"`
}

type bookEntry struct {
	Moves []BookMove `json:"moves"`
}

type BookMove struct {
	UCI    string `json:"uci"`
	Weight uint64 `json:"weight"`
}

// FileBook reads a JSON opening book. The file is opened for every lookup
// and closed before Lookup returns.
type FileBook struct {
	Path string

	pick func(n uint64) uint64
}

func NewFileBook(path string) *FileBook {
	return &FileBook{Path: path, pick: frand.Uint64n}
}

// Lookup does a weighted random choice among the book moves for pos that
// are legal there.
func (b *FileBook) Lookup(pos Position) (*chess.Move, error) {
	entry, err := b.read(pos.Key())
	if err != nil {
		return nil, err
	}

	legal := make(map[string]*chess.Move)
	for _, m := range pos.LegalMoves() {
		legal[m.String()] = m
	}

	type candidate struct {
		move   *chess.Move
		weight uint64
	}
	var (
		cands []candidate
		total uint64
	)
	for _, bm := range entry.Moves {
		m, ok := legal[bm.UCI]
		if !ok || bm.Weight == 0 {
			continue
		}
		cands = append(cands, candidate{move: m, weight: bm.Weight})
		total += bm.Weight
	}
	if total == 0 {
		return nil, ErrBookMiss
	}

	pick := b.pick
	if pick == nil {
		pick = frand.Uint64n
	}
	r := pick(total)
	for _, c := range cands {
		if r < c.weight {
			return c.move, nil
		}
		r -= c.weight
	}
	return cands[len(cands)-1].move, nil
}

func (b *FileBook) read(key string) (bookEntry, error) {
	path, err := resolveDataPath(b.Path, false)
	if err != nil {
		return bookEntry{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return bookEntry{}, err
	}
	defer f.Close()

	var data bookFile
	if err := json.NewDecoder(f).Decode(&data); err != nil {
		return bookEntry{}, fmt.Errorf("opening book %s: %w", path, err)
	}
	entry, ok := data.Positions[key]
	if !ok {
		return bookEntry{}, ErrBookMiss
	}
	return entry, nil
}

// lookupBook turns every failure, a panic included, into an error.
func lookupBook(b Book, pos Position) (mv *chess.Move, err error) {
	if b == nil {
		return nil, errors.New("opening book: none configured")
	}
	defer func() {
		if r := recover(); r != nil {
			mv, err = nil, fmt.Errorf("opening book: %v", r)
		}
	}()
	mv, err = b.Lookup(pos)
	if err == nil && mv == nil {
		err = ErrBookMiss
	}
	return mv, err
}
