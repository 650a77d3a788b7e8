package attacks

import (
	"github.com/dmakarov/chesscore/bitboard"
	"github.com/dmakarov/chesscore/types"
)

// buildBetweenAndLineTables fills the three 64x64 ray tables that checker/
// pin detection in package position relies on. For squares a, b sharing a
// rank, file, or diagonal:
//   - Between(a, b) is the open segment strictly between them (excludes
//     both endpoints) -- used to test whether a sliding checker's ray to
//     the king is blocked, and to build the check-block mask.
//   - BetweenInclusive(a, b) is the same segment plus b -- the mask a
//     response to check must land on when the checker itself is at b.
//   - Line(a, b) is the infinite line through both squares, clipped to the
//     board -- used to decide whether a pinned piece's move keeps it on
//     the pinning ray.
//
// Not aligned pairs (including a == b) get all-zero entries in every
// table. Built from BishopAttacks/RookAttacks on an empty board, which is
// why this lives in package attacks instead of package bitboard: it
// depends on the slider lookup this package already owns.
func buildBetweenAndLineTables() {
	for a := types.Square(0); a < 64; a++ {
		aBishop := BishopAttacks(a, 0)
		aRook := RookAttacks(a, 0)
		for b := types.Square(0); b < 64; b++ {
			if a == b {
				continue
			}
			switch {
			case aBishop.Has(b):
				betweenExclusive[a][b] = BishopAttacks(a, bitboard.Of(b)) & BishopAttacks(b, bitboard.Of(a))
				lineThrough[a][b] = (aBishop & BishopAttacks(b, 0)) | bitboard.Of(a) | bitboard.Of(b)
			case aRook.Has(b):
				betweenExclusive[a][b] = RookAttacks(a, bitboard.Of(b)) & RookAttacks(b, bitboard.Of(a))
				lineThrough[a][b] = (aRook & RookAttacks(b, 0)) | bitboard.Of(a) | bitboard.Of(b)
			default:
				continue
			}
			betweenInclusive[a][b] = betweenExclusive[a][b] | bitboard.Of(b)
		}
	}
}

// Between returns the open segment strictly between a and b if they share
// a rank, file, or diagonal, or 0 otherwise.
func Between(a, b types.Square) bitboard.Bitboard { return betweenExclusive[a][b] }

// BetweenInclusive returns Between(a, b) plus b itself.
func BetweenInclusive(a, b types.Square) bitboard.Bitboard { return betweenInclusive[a][b] }

// Line returns the full board-clipped line through a and b if aligned, or
// 0 otherwise.
func Line(a, b types.Square) bitboard.Bitboard { return lineThrough[a][b] }

// Aligned reports whether a, b, and c all lie on one rank, file, or
// diagonal -- the test a pinned piece's destination square must pass.
func Aligned(a, b, c types.Square) bool {
	return Line(a, b)&bitboard.Of(c) != 0
}
