package asciiboard_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmakarov/chesscore/asciiboard"
	"github.com/dmakarov/chesscore/bitboard"
	"github.com/dmakarov/chesscore/position"
	"github.com/dmakarov/chesscore/types"
)

func TestBitboardRendersSetSquares(t *testing.T) {
	bb := bitboard.Of(types.E4) | bitboard.Of(types.A1)
	rendered := asciiboard.Bitboard(bb, 'X')

	lines := strings.Split(rendered, "\n")
	require.True(t, len(lines) >= 9)
	assert.Contains(t, rendered, "X")
	assert.Equal(t, 2, strings.Count(rendered, "X"))
}

func TestBoardRendersStartposSummary(t *testing.T) {
	b, s, err := position.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	rendered := asciiboard.Board(b, s)
	assert.Contains(t, rendered, "Side to move: white")
	assert.Contains(t, rendered, "En passant: none")
	assert.Contains(t, rendered, "Castling rights: KQkq")
}

func TestBoardRendersEnPassantAndNoRights(t *testing.T) {
	b, s, err := position.ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w - d6 0 2")
	require.NoError(t, err)

	rendered := asciiboard.Board(b, s)
	assert.Contains(t, rendered, "En passant: d6")
	assert.Contains(t, rendered, "Castling rights: -")
}
