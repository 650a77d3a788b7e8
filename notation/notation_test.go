package notation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmakarov/chesscore/notation"
	"github.com/dmakarov/chesscore/position"
	"github.com/dmakarov/chesscore/types"
)

func mustParseFEN(t *testing.T, fen string) (*position.Board, *position.State) {
	t.Helper()
	b, s, err := position.ParseFEN(fen)
	require.NoError(t, err)
	return b, s
}

func TestParseLongAlgebraic(t *testing.T) {
	b, s := mustParseFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	mv, err := notation.Parse(b, s, "e2e4")
	require.NoError(t, err)
	assert.Equal(t, types.E2, mv.From())
	assert.Equal(t, types.E4, mv.To())
	assert.Equal(t, types.MoveNormal, mv.Flag())
}

func TestParsePromotion(t *testing.T) {
	b, s := mustParseFEN(t, "8/P7/8/8/8/8/8/k1K5 w - - 0 1")
	mv, err := notation.Parse(b, s, "a7a8q")
	require.NoError(t, err)
	assert.True(t, mv.IsPromotion())
	assert.Equal(t, types.PromoQueen, mv.Promotion())
}

func TestParseEnPassant(t *testing.T) {
	b, s := mustParseFEN(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	mv, err := notation.Parse(b, s, "e5d6")
	require.NoError(t, err)
	assert.True(t, mv.IsEnPassant())
}

func TestParseCastleShorthand(t *testing.T) {
	b, s := mustParseFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	mv, err := notation.Parse(b, s, "O-O")
	require.NoError(t, err)
	assert.True(t, mv.IsCastle())
	assert.Equal(t, types.E1, mv.From())
	assert.Equal(t, types.G1, mv.To())

	mv, err = notation.Parse(b, s, "o-o-o")
	require.NoError(t, err)
	assert.True(t, mv.IsCastle())
	assert.Equal(t, types.C1, mv.To())
}

func TestParseCastleLongAlgebraicAlsoFlagged(t *testing.T) {
	b, s := mustParseFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	mv, err := notation.Parse(b, s, "e1g1")
	require.NoError(t, err)
	assert.True(t, mv.IsCastle())
}

func TestParseMalformedMove(t *testing.T) {
	b, s := mustParseFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	_, err := notation.Parse(b, s, "e2")
	assert.Error(t, err)

	_, err = notation.Parse(b, s, "e2e4x")
	assert.Error(t, err)
}

func TestFormatLongAlgebraicAndCastling(t *testing.T) {
	mv := types.NewMove(types.E2, types.E4, types.MoveNormal)
	assert.Equal(t, "e2e4", notation.Format(mv))

	promo := types.NewPromotionMove(types.A7, types.A8, types.PromoQueen)
	assert.Equal(t, "a7a8q", notation.Format(promo))

	kingside := types.NewMove(types.E1, types.G1, types.MoveCastle)
	assert.Equal(t, "O-O", notation.Format(kingside))

	queenside := types.NewMove(types.E1, types.C1, types.MoveCastle)
	assert.Equal(t, "O-O-O", notation.Format(queenside))
}
