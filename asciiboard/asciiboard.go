/*
Package asciiboard renders boards and bitboards as human-readable text, for
test failure output and the perft CLI's -verbose mode.

Grounded directly on the teacher's format package (Bitboard/Position),
ported from the teacher's flat [12]uint64 + Piece-index representation to
this module's Board/bitboard.Bitboard types, and extended with the
castling/en-passant summary line the teacher's Position formatter already
built.
*/
package asciiboard

import (
	"strings"

	"github.com/dmakarov/chesscore/bitboard"
	"github.com/dmakarov/chesscore/position"
	"github.com/dmakarov/chesscore/types"
)

var pieceSymbols = [12]rune{
	'♙', '♟', '♘', '♞', '♗', '♝',
	'♖', '♜', '♕', '♛', '♔', '♚',
}

// Bitboard renders a single bitboard as an 8x8 grid, marking set squares
// with symbol and everything else with '.'.
func Bitboard(bb bitboard.Bitboard, symbol rune) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte(rank) + '1')
		sb.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := types.NewSquare(file, rank)
			r := symbol
			if !bb.Has(sq) {
				r = '.'
			}
			sb.WriteRune(r)
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")
	return sb.String()
}

// Board renders the full position: piece placement, side to move, en
// passant target, and castling rights.
func Board(b *position.Board, s *position.State) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte(rank) + '1')
		sb.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := types.NewSquare(file, rank)
			p := b.PieceAt(sq)
			r := '.'
			if p != types.NoPiece {
				r = pieceSymbols[p]
			}
			sb.WriteRune(r)
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\nSide to move: ")
	sb.WriteString(b.SideToMove.String())

	sb.WriteString("\nEn passant: ")
	if s.EnPassant == types.NoSquare {
		sb.WriteString("none")
	} else {
		sb.WriteString(s.EnPassant.String())
	}

	sb.WriteString("\nCastling rights: ")
	rights := ""
	if s.Castle.Has(position.WhiteShort) {
		rights += "K"
	}
	if s.Castle.Has(position.WhiteLong) {
		rights += "Q"
	}
	if s.Castle.Has(position.BlackShort) {
		rights += "k"
	}
	if s.Castle.Has(position.BlackLong) {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)
	sb.WriteByte('\n')

	return sb.String()
}
