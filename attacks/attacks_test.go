package attacks

import (
	"testing"

	"github.com/dmakarov/chesscore/bitboard"
	"github.com/dmakarov/chesscore/types"
)

func init() { Init() }

func TestKnightAttacksCorner(t *testing.T) {
	got := KnightAttacks(types.A1)
	want := bitboard.Of(types.B3) | bitboard.Of(types.C2)
	if got != want {
		t.Fatalf("KnightAttacks(A1) = %064b, want %064b", uint64(got), uint64(want))
	}
}

func TestKingAttacksCenter(t *testing.T) {
	got := KingAttacks(types.E4)
	if got.PopCount() != 8 {
		t.Fatalf("KingAttacks(E4) popcount = %d, want 8", got.PopCount())
	}
}

func TestPawnAttacksDirection(t *testing.T) {
	white := PawnAttacks(types.ColorWhite, types.E4)
	want := bitboard.Of(types.D5) | bitboard.Of(types.F5)
	if white != want {
		t.Fatalf("white pawn attacks from E4 = %064b, want %064b", uint64(white), uint64(want))
	}

	black := PawnAttacks(types.ColorBlack, types.E4)
	want = bitboard.Of(types.D3) | bitboard.Of(types.F3)
	if black != want {
		t.Fatalf("black pawn attacks from E4 = %064b, want %064b", uint64(black), uint64(want))
	}
}

func TestRookAttacksEmptyBoard(t *testing.T) {
	got := RookAttacks(types.A1, 0)
	if got.PopCount() != 14 {
		t.Fatalf("RookAttacks(A1, empty) popcount = %d, want 14", got.PopCount())
	}
}

func TestRookAttacksBlocked(t *testing.T) {
	occ := bitboard.Of(types.A4)
	got := RookAttacks(types.A1, occ)
	want := bitboard.Of(types.A2) | bitboard.Of(types.A3) | bitboard.Of(types.A4) |
		bitboard.Of(types.B1) | bitboard.Of(types.C1) | bitboard.Of(types.D1) |
		bitboard.Of(types.E1) | bitboard.Of(types.F1) | bitboard.Of(types.G1) | bitboard.Of(types.H1)
	if got != want {
		t.Fatalf("RookAttacks(A1, blocked at A4) = %064b, want %064b", uint64(got), uint64(want))
	}
}

func TestBishopAttacksEmptyBoard(t *testing.T) {
	got := BishopAttacks(types.D4, 0)
	if got.PopCount() != 13 {
		t.Fatalf("BishopAttacks(D4, empty) popcount = %d, want 13", got.PopCount())
	}
}

func TestBishopAttacksBlocked(t *testing.T) {
	occ := bitboard.Of(types.F6)
	got := BishopAttacks(types.D4, occ)
	if !got.Has(types.F6) {
		t.Fatal("bishop attack set should include the blocking square itself")
	}
	if got.Has(types.G7) {
		t.Fatal("bishop attack set should not see past a blocker")
	}
}

func TestQueenAttacksIsUnion(t *testing.T) {
	sq, occ := types.D4, bitboard.Bitboard(0)
	got := QueenAttacks(sq, occ)
	want := BishopAttacks(sq, occ) | RookAttacks(sq, occ)
	if got != want {
		t.Fatalf("QueenAttacks != BishopAttacks | RookAttacks")
	}
}

// Every magic (or pext) slider lookup must agree with a direct ray walk
// for every occupancy subset of its relevant mask -- this is the
// correctness property the whole indexing scheme exists to preserve.
func TestSliderAttacksAgainstRayWalkAllSquares(t *testing.T) {
	for sq := types.Square(0); sq < 64; sq++ {
		mask := relevantOccupancy(sq, bishopDirs)
		subsets(mask, func(occ bitboard.Bitboard) {
			want := rayAttacks(sq, occ, bishopDirs)
			if got := BishopAttacks(sq, occ); got != want {
				t.Fatalf("BishopAttacks(%v, %064b) = %064b, want %064b", sq, uint64(occ), uint64(got), uint64(want))
			}
		})

		mask = relevantOccupancy(sq, rookDirs)
		subsets(mask, func(occ bitboard.Bitboard) {
			want := rayAttacks(sq, occ, rookDirs)
			if got := RookAttacks(sq, occ); got != want {
				t.Fatalf("RookAttacks(%v, %064b) = %064b, want %064b", sq, uint64(occ), uint64(got), uint64(want))
			}
		})
	}
}

func TestBetweenAdjacent(t *testing.T) {
	if got := Between(types.A1, types.B1); got != 0 {
		t.Fatalf("Between adjacent squares should be empty, got %064b", uint64(got))
	}
}

func TestBetweenRank(t *testing.T) {
	got := Between(types.A1, types.D1)
	want := bitboard.Of(types.B1) | bitboard.Of(types.C1)
	if got != want {
		t.Fatalf("Between(A1, D1) = %064b, want %064b", uint64(got), uint64(want))
	}
}

func TestBetweenInclusiveAddsEndpoint(t *testing.T) {
	excl := Between(types.A1, types.D1)
	incl := BetweenInclusive(types.A1, types.D1)
	if incl != excl|bitboard.Of(types.D1) {
		t.Fatal("BetweenInclusive should equal Between plus the far endpoint")
	}
}

func TestBetweenUnaligned(t *testing.T) {
	if got := Between(types.A1, types.B3); got != 0 {
		t.Fatalf("unaligned squares should have empty Between, got %064b", uint64(got))
	}
}

func TestLineThroughDiagonal(t *testing.T) {
	got := Line(types.A1, types.C3)
	if !got.Has(types.H8) || !got.Has(types.A1) {
		t.Fatalf("Line(A1,C3) should span the whole a1-h8 diagonal, got %064b", uint64(got))
	}
}

func TestAligned(t *testing.T) {
	if !Aligned(types.A1, types.H8, types.D4) {
		t.Fatal("D4 should be aligned with the A1-H8 diagonal")
	}
	if Aligned(types.A1, types.H8, types.A2) {
		t.Fatal("A2 should not be aligned with the A1-H8 diagonal")
	}
}

func TestInitIsIdempotent(t *testing.T) {
	before := RookAttacks(types.D4, bitboard.Of(types.D6))
	Init()
	Init()
	after := RookAttacks(types.D4, bitboard.Of(types.D6))
	if before != after {
		t.Fatal("calling Init repeatedly must not change table contents")
	}
}
