package movegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmakarov/chesscore/movegen"
	"github.com/dmakarov/chesscore/position"
	"github.com/dmakarov/chesscore/types"
)

func mustParse(t *testing.T, fen string) (*position.Board, *position.State) {
	t.Helper()
	b, s, err := position.ParseFEN(fen)
	require.NoError(t, err)
	return b, s
}

func TestGenerateLegalStartposCount(t *testing.T) {
	b, s := mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	list := movegen.GenerateLegal(b, s)
	assert.Equal(t, 20, list.Len())
}

func TestGenerateLegalKiwipeteCount(t *testing.T) {
	b, s := mustParse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	list := movegen.GenerateLegal(b, s)
	assert.Equal(t, 48, list.Len())
}

func TestGenerateLegalDoubleCheckKingOnly(t *testing.T) {
	// A position where the white king on e1 is hit by both a rook on e8
	// and a knight on d3 -- every move must be a king move.
	b, s := mustParse(t, "k3r3/8/8/8/8/3n4/8/4K3 w - - 0 1")
	require.Equal(t, 2, s.Checkers.PopCount())
	list := movegen.GenerateLegal(b, s)
	list.Each(func(m types.Move) {
		assert.Equal(t, types.E1, m.From(), "only the king may move under double check")
	})
}

func TestGenerateLegalPinnedPieceCannotLeaveLine(t *testing.T) {
	b, s := mustParse(t, "k3r3/8/8/8/4R3/8/8/4K3 w - - 0 1")
	list := movegen.GenerateLegal(b, s)
	list.Each(func(m types.Move) {
		if m.From() == types.E4 {
			assert.Equal(t, 4, m.To().File(), "pinned rook must stay on the e-file")
		}
	})
}

func TestGenerateLegalBlocksSingleCheck(t *testing.T) {
	// Black rook on e8 checks the white king on e1; a white piece must
	// either capture the checker, block on the e-file, or move the king.
	// The knight starts on g2, off the e-file, so it doesn't block the
	// check itself and must actively jump onto the e-file to help.
	b, s := mustParse(t, "k3r3/8/8/8/8/8/6N1/4K3 w - - 0 1")
	require.Equal(t, 1, s.Checkers.PopCount())
	list := movegen.GenerateLegal(b, s)
	list.Each(func(m types.Move) {
		if m.From() != types.E1 {
			assert.Equal(t, 4, m.To().File(), "non-king move must block on the e-file")
		}
	})
}

func TestGenerateLegalNoDuplicateMoves(t *testing.T) {
	// The generator must emit a non-empty list in which no move appears
	// twice; this is a structural sanity check, not a re-derivation of the
	// pseudo-legal move set.
	b, s := mustParse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	list := movegen.GenerateLegal(b, s)
	assert.Greater(t, list.Len(), 0)
	seen := map[types.Move]bool{}
	list.Each(func(m types.Move) {
		assert.False(t, seen[m], "duplicate move %s", m)
		seen[m] = true
	})
}

func TestGenerateLegalEnPassantDiscoveredCheckTrap(t *testing.T) {
	b, s := mustParse(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	moves := []string{"b4b1", "f4f3", "a5b4", "c7c5"}
	for _, mv := range moves {
		m, err := parseLong(b, s, mv)
		require.NoError(t, err)
		var err2 error
		s, err2 = movegen.DoMove(b, s, m)
		require.NoError(t, err2)
	}
	list := movegen.GenerateLegal(b, s)
	// After c7c5 the black pawn on c5 checks the white king on b4 and c6
	// is the en passant square. Under that check a non-king move may only
	// land on c5, so b5xc6 en passant must not appear in the list.
	for i := 0; i < list.Len(); i++ {
		m := list.Get(i)
		if m.IsEnPassant() {
			t.Fatalf("en passant move %s should have been filtered as illegal", m)
		}
	}
}

func parseLong(b *position.Board, s *position.State, str string) (types.Move, error) {
	from, err := types.ParseSquare(str[0:2])
	if err != nil {
		return types.NullMove, err
	}
	to, err := types.ParseSquare(str[2:4])
	if err != nil {
		return types.NullMove, err
	}
	list := movegen.GenerateLegal(b, s)
	for i := 0; i < list.Len(); i++ {
		m := list.Get(i)
		if m.From() == from && m.To() == to {
			return m, nil
		}
	}
	return types.NullMove, assertErr(str)
}

type parseError string

func (e parseError) Error() string { return string(e) }

func assertErr(str string) error { return parseError("no legal move matches " + str) }
