package movegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmakarov/chesscore/movegen"
	"github.com/dmakarov/chesscore/position"
	"github.com/dmakarov/chesscore/types"
)

func TestDoMoveRejectsIllegalMove(t *testing.T) {
	b, s := mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	illegal := types.NewMove(types.E1, types.E2, types.MoveNormal)
	_, err := movegen.DoMove(b, s, illegal)
	require.Error(t, err)
	var illegalErr *movegen.IllegalMoveError
	require.ErrorAs(t, err, &illegalErr)
	assert.Equal(t, illegal, illegalErr.Move)
}

func TestDoUndoMoveRoundTripsQuietMove(t *testing.T) {
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	b, s := mustParse(t, fen)
	before := position.SerializeFEN(b, s)

	mv := types.NewMove(types.E2, types.E4, types.MoveNormal)
	next, err := movegen.DoMove(b, s, mv)
	require.NoError(t, err)
	assert.NotEqual(t, before, position.SerializeFEN(b, next))

	restored := movegen.UndoMove(b, next, mv)
	assert.Equal(t, before, position.SerializeFEN(b, restored))
}

func TestDoMoveSetsEnPassantOnDoublePush(t *testing.T) {
	// The black pawn on d4 can capture en passant on e3 after e2e4.
	b, s := mustParse(t, "rnbqkbnr/ppp1pppp/8/8/3p4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	mv := types.NewMove(types.E2, types.E4, types.MoveNormal)
	next, err := movegen.DoMove(b, s, mv)
	require.NoError(t, err)
	assert.Equal(t, types.E3, next.EnPassant)
}

func TestDoUndoMoveRoundTripsEnPassantCapture(t *testing.T) {
	b, s := mustParse(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	before := position.SerializeFEN(b, s)
	mv := types.NewMove(types.E5, types.D6, types.MoveEnPassant)

	next, err := movegen.DoMove(b, s, mv)
	require.NoError(t, err)
	assert.Equal(t, types.NoPiece, b.PieceAt(types.D5), "captured pawn must be removed")

	restored := movegen.UndoMove(b, next, mv)
	assert.Equal(t, before, position.SerializeFEN(b, restored))
}

func TestDoUndoMoveRoundTripsCastling(t *testing.T) {
	b, s := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	before := position.SerializeFEN(b, s)
	mv := types.NewMove(types.E1, types.G1, types.MoveCastle)

	next, err := movegen.DoMove(b, s, mv)
	require.NoError(t, err)
	assert.Equal(t, types.NewPiece(types.King, types.ColorWhite), b.PieceAt(types.G1))
	assert.Equal(t, types.NewPiece(types.Rook, types.ColorWhite), b.PieceAt(types.F1))
	assert.False(t, next.Castle.Has(position.WhiteShort))
	assert.False(t, next.Castle.Has(position.WhiteLong))

	restored := movegen.UndoMove(b, next, mv)
	assert.Equal(t, before, position.SerializeFEN(b, restored))
}

func TestDoUndoMoveRoundTripsPromotion(t *testing.T) {
	b, s := mustParse(t, "8/P7/8/8/8/8/8/k1K5 w - - 0 1")
	before := position.SerializeFEN(b, s)
	mv := types.NewPromotionMove(types.A7, types.A8, types.PromoQueen)

	next, err := movegen.DoMove(b, s, mv)
	require.NoError(t, err)
	assert.Equal(t, types.NewPiece(types.Queen, types.ColorWhite), b.PieceAt(types.A8))

	restored := movegen.UndoMove(b, next, mv)
	assert.Equal(t, before, position.SerializeFEN(b, restored))
}

func TestDoMoveClearsCastleRightOnRookCapture(t *testing.T) {
	b, s := mustParse(t, "r3k2r/6B1/8/8/8/8/8/R3K2R w KQkq - 0 1")
	mv := types.NewMove(types.G7, types.H8, types.MoveNormal)
	next, err := movegen.DoMove(b, s, mv)
	require.NoError(t, err)
	assert.False(t, next.Castle.Has(position.BlackShort), "capturing the h8 rook must clear black's kingside right")
	assert.True(t, next.Castle.Has(position.BlackLong), "black's queenside right is untouched")
}

func TestApplyMovesStopsAtFirstIllegalMove(t *testing.T) {
	// The black pawn on d4 makes e2e4 leave an en passant square on e3.
	b, s := mustParse(t, "rnbqkbnr/ppp1pppp/8/8/3p4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	legal := types.NewMove(types.E2, types.E4, types.MoveNormal)
	illegal := types.NewMove(types.E1, types.E8, types.MoveNormal)

	final, err := movegen.ApplyMoves(b, s, []types.Move{legal, illegal})
	require.Error(t, err)
	var illegalErr *movegen.IllegalMoveError
	require.ErrorAs(t, err, &illegalErr)
	assert.Equal(t, illegal, illegalErr.Move)
	assert.Equal(t, types.E3, final.EnPassant, "the legal first move must have been applied")
}
