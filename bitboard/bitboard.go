// Package bitboard implements 64-bit bitboard algebra: the shift/popcount/
// iteration primitives and file/rank masks. The between/line tables are
// built in package attacks, since they need its slider lookups.
//
// Grounded on the teacher's bitutil package (BitScan/PopLSB/CountBits).
package bitboard

import (
	"math/bits"

	"github.com/dmakarov/chesscore/types"
)

// Bitboard is a set of squares, one bit per square, bit i set meaning
// square i is occupied/attacked/whatever the caller's context means.
type Bitboard uint64

// Of returns the single-bit bitboard for a square.
func Of(s types.Square) Bitboard { return Bitboard(1) << uint(s) }

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// MoreThanOne reports whether at least two bits are set -- cheaper than
// PopCount() > 1 since it's a single AND.
func (b Bitboard) MoreThanOne() bool { return b&(b-1) != 0 }

// LSB returns the index of the least significant set bit. Undefined
// (returns 64, out of board range) for an empty bitboard; callers must
// check Empty() first when that matters.
func (b Bitboard) LSB() types.Square { return types.Square(bits.TrailingZeros64(uint64(b))) }

// PopLSB clears and returns the least significant set bit.
func (b *Bitboard) PopLSB() types.Square {
	s := b.LSB()
	*b &= *b - 1
	return s
}

// Empty reports whether the bitboard has no set bits.
func (b Bitboard) Empty() bool { return b == 0 }

// AndNot returns b &^ other.
func (b Bitboard) AndNot(other Bitboard) Bitboard { return b &^ other }

// Has reports whether square s is set.
func (b Bitboard) Has(s types.Square) bool { return b&Of(s) != 0 }

// Iter is a lazy, finite iterator over set squares in ascending order,
// each call to Next clearing the lowest set bit of its own internal copy
// -- it does not mutate the original bitboard.
type Iter struct{ bb Bitboard }

// Squares returns an iterator over b's set squares.
func (b Bitboard) Squares() Iter { return Iter{bb: b} }

// Next returns the next square and true, or (0, false) when exhausted.
func (it *Iter) Next() (types.Square, bool) {
	if it.bb == 0 {
		return 0, false
	}
	return it.bb.PopLSB(), true
}

// Forward returns the +1 rank shift for White, -1 rank shift for Black --
// "forward for White" = <<8, "forward for Black" = >>8, per spec.md §4.B.
func Forward(b Bitboard, c types.Color) Bitboard {
	if c == types.ColorWhite {
		return b << 8
	}
	return b >> 8
}

// Backward is the inverse of Forward.
func Backward(b Bitboard, c types.Color) Bitboard {
	return Forward(b, c.Other())
}
