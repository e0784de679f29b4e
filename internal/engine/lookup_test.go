package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/notnil/chess"

	"negachess/internal/board"
)

type countingBook struct {
	calls int
	move  string
	err   error
	panic bool
}

func (b *countingBook) Lookup(pos Position) (*chess.Move, error) {
	b.calls++
	if b.panic {
		panic("corrupt book")
	}
	if b.err != nil {
		return nil, b.err
	}
	for _, m := range pos.LegalMoves() {
		if m.String() == b.move {
			return m, nil
		}
	}
	return nil, ErrBookMiss
}

type fakeTable struct {
	calls int
	fn    func(pos Position) (WDL, error)
}

func (f *fakeTable) ProbeWDL(pos Position) (WDL, error) {
	f.calls++
	return f.fn(pos)
}

func TestBookDisabledAfterFirstFailure(t *testing.T) {
	cases := []struct {
		name string
		book *countingBook
	}{
		{"miss", &countingBook{err: ErrBookMiss}},
		{"io error", &countingBook{err: os.ErrNotExist}},
		{"panic", &countingBook{panic: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := mustEngine(t, SearchConfig{Depth: 1, OpeningBook: true}, WithBook(tc.book))
			p := board.New()

			for i := 0; i < 2; i++ {
				res := e.Search(p)
				if res.FromBook || res.BestMove == nil {
					t.Fatalf("search %d: expected searched move, got %+v", i, res)
				}
			}
			if tc.book.calls != 1 {
				t.Fatalf("book consulted %d times, want 1", tc.book.calls)
			}
			if e.BookEnabled() {
				t.Fatalf("book should stay disabled")
			}
		})
	}
}

func TestBookHitSkipsSearch(t *testing.T) {
	book := &countingBook{move: "d2d4"}
	e := mustEngine(t, SearchConfig{Depth: 2, OpeningBook: true}, WithBook(book))

	for i := 0; i < 2; i++ {
		res := e.Search(board.New())
		if !res.FromBook || res.BestMove.String() != "d2d4" {
			t.Fatalf("expected book move d2d4, got %+v", res)
		}
	}
	if book.calls != 2 || !e.BookEnabled() {
		t.Fatalf("book should stay enabled after hits, calls=%d", book.calls)
	}
	if e.Stats().NumEvals != 0 {
		t.Fatalf("book move must not search")
	}
}

func TestBookNotConsultedWhenOff(t *testing.T) {
	book := &countingBook{move: "d2d4"}
	e := mustEngine(t, SearchConfig{Depth: 1}, WithBook(book))
	e.Search(board.New())
	if book.calls != 0 {
		t.Fatalf("book consulted with OpeningBook off")
	}
}

func TestBookWithoutSourceFallsBack(t *testing.T) {
	e := mustEngine(t, SearchConfig{Depth: 1, OpeningBook: true})
	if res := e.Search(board.New()); res.BestMove == nil || res.FromBook {
		t.Fatalf("expected searched move, got %+v", res)
	}
	if e.BookEnabled() {
		t.Fatalf("missing book should disable lookups")
	}
}

func TestTablebaseMissesDoNotDisable(t *testing.T) {
	tb := &fakeTable{fn: func(Position) (WDL, error) { return 0, ErrNotCovered }}
	e := mustEngine(t, SearchConfig{Depth: 1, EndgameTable: true}, WithTablebase(tb))

	e.Search(board.New())
	first := tb.calls
	if first != 20 {
		t.Fatalf("expected one probe per leaf, got %d", first)
	}
	e.Search(board.New())
	if tb.calls != 2*first {
		t.Fatalf("table should be probed again on the next search")
	}
	if e.Stats().NumEvals != int64(tb.calls) {
		t.Fatalf("every miss should fall back to the evaluator")
	}
}

func TestTablebaseScoreDrivesChoice(t *testing.T) {
	target := board.New()
	target.Push(findLegal(t, target, "h2h4"))
	key := target.Key()

	// 叶子局面的 WDL 是轮走方（黑方）视角
	tb := &fakeTable{fn: func(pos Position) (WDL, error) {
		if pos.Key() == key {
			return WDLLoss, nil
		}
		return WDLDraw, nil
	}}
	e := mustEngine(t, SearchConfig{Depth: 1, EndgameTable: true}, WithTablebase(tb))

	res := e.Search(board.New())
	if res.BestMove.String() != "h2h4" {
		t.Fatalf("expected h2h4, got %s", res.BestMove)
	}
	if res.Score != 2*TablebaseScale {
		t.Fatalf("expected score %d, got %v", 2*TablebaseScale, res.Score)
	}
	if e.Stats().NumEvals != 0 {
		t.Fatalf("table hits must not count as evaluations")
	}
}

func TestTablebaseIgnoredWhenOff(t *testing.T) {
	tb := &fakeTable{fn: func(Position) (WDL, error) { return WDLWin, nil }}
	e := mustEngine(t, SearchConfig{Depth: 1}, WithTablebase(tb))
	e.Search(board.New())
	if tb.calls != 0 {
		t.Fatalf("table probed with EndgameTable off")
	}
}

func findLegal(t *testing.T, pos Position, uci string) *chess.Move {
	t.Helper()
	for _, m := range pos.LegalMoves() {
		if m.String() == uci {
			return m
		}
	}
	t.Fatalf("move %s not legal", uci)
	return nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFileBook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.json")
	start := board.New()
	writeFile(t, path, `{"positions": {"`+start.Key()+`": {"moves": [
		{"uci": "e2e4", "weight": 1},
		{"uci": "e2e5", "weight": 50},
		{"uci": "d2d4", "weight": 3}
	]}}}`)

	t.Run("weighted pick skips illegal moves", func(t *testing.T) {
		for r, want := range map[uint64]string{0: "e2e4", 1: "d2d4", 3: "d2d4"} {
			b := NewFileBook(path)
			var gotN uint64
			b.pick = func(n uint64) uint64 { gotN = n; return r }
			mv, err := b.Lookup(board.New())
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			if gotN != 4 {
				t.Fatalf("expected total weight 4, got %d", gotN)
			}
			if mv.String() != want {
				t.Fatalf("pick %d: got %s, want %s", r, mv, want)
			}
		}
	})

	t.Run("miss", func(t *testing.T) {
		p := board.New()
		p.Push(findLegal(t, p, "e2e4"))
		if _, err := NewFileBook(path).Lookup(p); !errors.Is(err, ErrBookMiss) {
			t.Fatalf("expected ErrBookMiss, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFileBook(filepath.Join(dir, "nope.json")).Lookup(board.New())
		if err == nil {
			t.Fatalf("expected error for missing book")
		}
	})

	t.Run("drives engine", func(t *testing.T) {
		e := mustEngine(t, SearchConfig{Depth: 1, OpeningBook: true}, WithBook(NewFileBook(path)))
		res := e.Search(board.New())
		if !res.FromBook {
			t.Fatalf("expected book move")
		}
		if s := res.BestMove.String(); s != "e2e4" && s != "d2d4" {
			t.Fatalf("unexpected book move %s", s)
		}
	})
}

func TestFileTablebase(t *testing.T) {
	dir := t.TempDir()
	kqk, err := board.FromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	writeFile(t, filepath.Join(dir, "KQvK.tbl"), "# kqk\n\n"+kqk.Key()+";2\n")

	tb := &FileTablebase{Dir: dir, MaxPieces: 3}

	if wdl, err := tb.ProbeWDL(kqk); err != nil || wdl != WDLWin {
		t.Fatalf("expected WDLWin, got %v %v", wdl, err)
	}

	other, _ := board.FromFEN("4k3/8/8/8/8/8/8/2Q1K3 w - - 0 1")
	if _, err := tb.ProbeWDL(other); !errors.Is(err, ErrNotCovered) {
		t.Fatalf("unknown position: expected ErrNotCovered, got %v", err)
	}

	krk, _ := board.FromFEN("4k3/8/8/8/8/8/8/3RK3 w - - 0 1")
	if _, err := tb.ProbeWDL(krk); !errors.Is(err, ErrNotCovered) {
		t.Fatalf("missing table file: expected ErrNotCovered, got %v", err)
	}

	if _, err := tb.ProbeWDL(board.New()); !errors.Is(err, ErrNotCovered) {
		t.Fatalf("too many pieces: expected ErrNotCovered, got %v", err)
	}
}

func TestMaterialSignature(t *testing.T) {
	cases := map[string]string{
		"4k3/8/8/8/8/8/8/3QK3 w - - 0 1":                           "KQvK",
		"3rk3/8/8/8/8/8/4P3/3RK3 w - - 0 1":                        "KRPvKR",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1": "KQRRBBNNPPPPPPPPvKQRRBBNNPPPPPPPP",
	}
	for fen, want := range cases {
		p, err := board.FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN: %v", err)
		}
		if got := MaterialSignature(p.SquareMap()); got != want {
			t.Fatalf("%s: got %s, want %s", fen, got, want)
		}
	}
}
