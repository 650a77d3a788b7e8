/*
Package attacks implements the attack tables spec.md §4.D calls the "magic
engine": precomputed pawn/knight/king attack arrays, sliding-ray generation
for bishops/rooks/queens accelerated by fancy magic bitboards (or, under
the "pext" build tag, a direct bit-extract index), plus the between/line
tables spec.md §4.B describes (built here rather than in package bitboard
to avoid a bitboard->attacks->bitboard import cycle, since they consume
BishopAttacks/RookAttacks on an empty board).

Grounded on the teacher's precalc.go/init.go/movegen.go: the leaper-attack
generators (genPawnAttacks/genKnightAttacks/genKingAttacks), the relevant-
occupancy builders (initBishopOccupancy/initRookOccupancy), the carry-
rippler subset enumeration baked into initBishopAttacks/initRookAttacks,
and the magic lookup scheme itself (occupancy & mask, multiply, shift).
The teacher ships fixed magic numbers found offline; this package instead
performs the trial-and-error magic search spec.md §4.D requires, using the
xorshift64* generator from package prng seeded with one fixed constant per
slider kind. No precomputed magic numbers are kept.
*/
package attacks

import (
	"sync"

	"github.com/dmakarov/chesscore/bitboard"
	"github.com/dmakarov/chesscore/types"
)

var (
	pawnAttacks   [2][64]bitboard.Bitboard
	knightAttacks [64]bitboard.Bitboard
	kingAttacks   [64]bitboard.Bitboard

	betweenExclusive [64][64]bitboard.Bitboard
	betweenInclusive [64][64]bitboard.Bitboard
	lineThrough      [64][64]bitboard.Bitboard

	initOnce sync.Once
)

// Init builds every attack table exactly once per process, in the
// dependency order spec.md §4.D mandates: distance table (already built by
// package types' init), magic/pext tables, then leaper tables, then
// between/line tables (which consume the slider lookups with empty
// occupancy). Safe to call from multiple goroutines; only the first call
// does any work. After Init returns, every lookup function in this package
// is a pure function of its arguments and safe to call concurrently.
func Init() {
	initOnce.Do(func() {
		buildSliderTables()
		buildLeaperTables()
		buildBetweenAndLineTables()
	})
}

func buildLeaperTables() {
	for sq := types.Square(0); sq < 64; sq++ {
		bb := bitboard.Of(sq)
		pawnAttacks[types.ColorWhite][sq] = genPawnAttacks(bb, types.ColorWhite)
		pawnAttacks[types.ColorBlack][sq] = genPawnAttacks(bb, types.ColorBlack)
		knightAttacks[sq] = genKnightAttacks(bb)
		kingAttacks[sq] = genKingAttacks(bb)
	}
}

// genPawnAttacks returns the attack set of a (possibly multi-pawn)
// bitboard. Use the pawnAttacks lookup table for single-pawn queries.
func genPawnAttacks(pawns bitboard.Bitboard, c types.Color) bitboard.Bitboard {
	if c == types.ColorWhite {
		return (pawns & bitboard.NotFileA << 7) | (pawns & bitboard.NotFileH << 9)
	}
	return (pawns & bitboard.NotFileA >> 9) | (pawns & bitboard.NotFileH >> 7)
}

func genKnightAttacks(knights bitboard.Bitboard) bitboard.Bitboard {
	return (knights & bitboard.NotFileA >> 17) |
		(knights & bitboard.NotFileH >> 15) |
		(knights & bitboard.NotFileAB >> 10) |
		(knights & bitboard.NotFileGH >> 6) |
		(knights & bitboard.NotFileAB << 6) |
		(knights & bitboard.NotFileGH << 10) |
		(knights & bitboard.NotFileA << 15) |
		(knights & bitboard.NotFileH << 17)
}

func genKingAttacks(king bitboard.Bitboard) bitboard.Bitboard {
	return (king & bitboard.NotFileA >> 9) |
		(king >> 8) |
		(king & bitboard.NotFileH >> 7) |
		(king & bitboard.NotFileA >> 1) |
		(king & bitboard.NotFileH << 1) |
		(king & bitboard.NotFileA << 7) |
		(king << 8) |
		(king & bitboard.NotFileH << 9)
}

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c types.Color, sq types.Square) bitboard.Bitboard { return pawnAttacks[c][sq] }

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq types.Square) bitboard.Bitboard { return knightAttacks[sq] }

// KingAttacks returns the king attack set from sq (castling excluded --
// that's the move generator's concern, not a pure attack lookup).
func KingAttacks(sq types.Square) bitboard.Bitboard { return kingAttacks[sq] }

// QueenAttacks is the union of bishop and rook attacks from sq.
func QueenAttacks(sq types.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	return BishopAttacks(sq, occ) | RookAttacks(sq, occ)
}

// rayAttacks walks four directions from sq until it hits an occupied
// square or the board edge, OR-ing in every square visited (including the
// first blocker, so captures fall out naturally). Each step shifts the
// current square and then masks the *result* against stepMask, which
// strips the square a step would otherwise wrap onto (e.g. a one-file
// east step off the h-file lands on the a-file of the next rank --
// stepMask removes that landing square so the ray stops there instead of
// continuing around the board). This is the teacher's
// genBishopAttacks/genRookAttacks loop, generalized to take an arbitrary
// direction list so both slider kinds share one walker.
func rayAttacks(sq types.Square, occ bitboard.Bitboard, dirs []direction) bitboard.Bitboard {
	var attacks bitboard.Bitboard
	bb := bitboard.Of(sq)
	for _, d := range dirs {
		for i := bb; i != 0; {
			i = shift(i, d.delta) & d.stepMask
			if i == 0 {
				break
			}
			attacks |= i
			if i&occ != 0 {
				break
			}
		}
	}
	return attacks
}

// direction describes one ray direction for rayAttacks: delta is the shift
// amount (positive = left shift), stepMask excludes the square each step
// would wrap onto if taken from the edge file/rank delta leaves.
type direction struct {
	delta    int
	stepMask bitboard.Bitboard
}

func shift(b bitboard.Bitboard, delta int) bitboard.Bitboard {
	if delta >= 0 {
		return b << uint(delta)
	}
	return b >> uint(-delta)
}

var bishopDirs = []direction{
	{9, bitboard.NotFileA},
	{7, bitboard.NotFileH},
	{-7, bitboard.NotFileA},
	{-9, bitboard.NotFileH},
}

var rookDirs = []direction{
	{8, bitboard.All},
	{-8, bitboard.All},
	{1, bitboard.NotFileA},
	{-1, bitboard.NotFileH},
}

// relevantOccupancy returns the "relevant occupancy squares" for a slider
// on sq: the squares whose occupancy can actually change the attack set.
// A blocker on the square where a given ray terminates at the board edge
// can never hide a further blocker, so that one square is excluded per
// ray -- computed directly rather than subtracting the whole outer ring,
// since a corner rook's own ranks/files lie on that ring too (a rook on
// a1 must keep a2..a7 and b1..g1 in its mask, not just the two interior
// rays away from the corner).
func relevantOccupancy(sq types.Square, dirs []direction) bitboard.Bitboard {
	var mask bitboard.Bitboard
	for _, d := range dirs {
		mask |= rayAttacks(sq, 0, []direction{d}) &^ farEdge(d.delta)
	}
	return mask
}

// farEdge returns the rank/file mask covering the square a ray in this
// direction runs into at the board edge, so it can be stripped back out
// of that ray's relevant-occupancy contribution.
func farEdge(delta int) bitboard.Bitboard {
	switch delta {
	case 8:
		return bitboard.Rank8
	case -8:
		return bitboard.Rank1
	case 1:
		return bitboard.FileH
	case -1:
		return bitboard.FileA
	case 9:
		return bitboard.FileH | bitboard.Rank8
	case 7:
		return bitboard.FileA | bitboard.Rank8
	case -7:
		return bitboard.FileH | bitboard.Rank1
	case -9:
		return bitboard.FileA | bitboard.Rank1
	default:
		panic("attacks: unhandled ray delta")
	}
}

// subsets enumerates every occupancy subset of mask via the carry-rippler
// idiom: sub = (sub - mask) & mask, starting and ending at 0. fn is called
// once per subset including the empty and full sets.
func subsets(mask bitboard.Bitboard, fn func(bitboard.Bitboard)) {
	sub := bitboard.Bitboard(0)
	for {
		fn(sub)
		sub = (sub - mask) & mask
		if sub == 0 {
			break
		}
	}
}
