package engine

import (
	"errors"
	"testing"

	"negachess/internal/board"
)

func TestParseHeuristic(t *testing.T) {
	for _, h := range []Heuristic{HeuristicRandom, HeuristicAttacking, HeuristicLimiting} {
		got, err := ParseHeuristic(h.String())
		if err != nil || got != h {
			t.Fatalf("ParseHeuristic(%q) = %v, %v", h.String(), got, err)
		}
	}
	if got, err := ParseHeuristic(" Limiting "); err != nil || got != HeuristicLimiting {
		t.Fatalf("expected case-insensitive parse, got %v %v", got, err)
	}
	if _, err := ParseHeuristic("aggressive"); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSimpleEnginesPlayLegalMoves(t *testing.T) {
	for _, h := range []Heuristic{HeuristicRandom, HeuristicAttacking, HeuristicLimiting} {
		t.Run(h.String(), func(t *testing.T) {
			p := board.New()
			before := p.FEN()
			s := NewSimpleEngine(h)
			for i := 0; i < 10; i++ {
				mv := s.SelectMove(p)
				if mv == nil || !isLegal(p, mv) {
					t.Fatalf("illegal move %v", mv)
				}
				if p.FEN() != before {
					t.Fatalf("position not restored")
				}
			}
		})
	}
}

func TestAttackingPriorities(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		ok   func(p *board.Position, uci string) bool
	}{
		{
			// Qxh5 吃后，Ra8/Qd8 将死
			name: "mate beats capture",
			fen:  "6k1/5ppp/8/7q/8/8/8/R2Q2K1 w - - 0 1",
			ok: func(p *board.Position, uci string) bool {
				return uci == "a1a8" || uci == "d1d8"
			},
		},
		{
			name: "check beats capture",
			fen:  "4k3/8/8/3p4/4P3/8/8/R3K3 w - - 0 1",
			ok: func(p *board.Position, uci string) bool {
				return uci == "a1a8"
			},
		},
		{
			name: "capture beats quiet",
			fen:  "k7/8/8/3p4/4P3/8/8/7K w - - 0 1",
			ok: func(p *board.Position, uci string) bool {
				return uci == "e4d5"
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustFEN(t, tc.fen)
			s := NewSimpleEngine(HeuristicAttacking)
			for i := 0; i < 10; i++ {
				if got := s.SelectMove(p).String(); !tc.ok(p, got) {
					t.Fatalf("unexpected move %s", got)
				}
			}
		})
	}
}

func TestLimitingMinimisesReplies(t *testing.T) {
	// Rh8 将死，对方一步都没有
	p := mustFEN(t, "k7/8/1K6/8/8/8/8/7R w - - 0 1")
	s := NewSimpleEngine(HeuristicLimiting)

	mv := s.SelectMove(p)
	fewest := -1
	for _, m := range p.LegalMoves() {
		n := countReplies(p, m)
		if fewest < 0 || n < fewest {
			fewest = n
		}
	}
	if got := countReplies(p, mv); got != fewest {
		t.Fatalf("%s leaves %d replies, best is %d", mv, got, fewest)
	}
}

func TestNewSimpleEngineRejectsUnknownHeuristic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewSimpleEngine(Heuristic(42))
}
