package board

import "testing"

func TestHashMatchesAcrossMoveOrders(t *testing.T) {
	a := New()
	for _, uci := range []string{"g1f3", "g8f6", "b1c3", "b8c6"} {
		a.Push(findMove(t, a, uci))
	}
	b := New()
	for _, uci := range []string{"b1c3", "b8c6", "g1f3", "g8f6"} {
		b.Push(findMove(t, b, uci))
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("transposed positions should hash equal: %d vs %d", a.Hash(), b.Hash())
	}
}

func TestHashDiffersForSideToMove(t *testing.T) {
	w, err := FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	b, err := FromFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if w.Hash() == b.Hash() {
		t.Fatalf("expected hash to differ for different side to move")
	}
}

func TestHashDiffersForCastlingRights(t *testing.T) {
	with, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	without, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if with.Hash() == without.Hash() {
		t.Fatalf("expected hash to differ for castling rights")
	}
}
