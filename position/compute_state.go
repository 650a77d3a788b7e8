package position

import (
	"fmt"

	"github.com/dmakarov/chesscore/attacks"
	"github.com/dmakarov/chesscore/bitboard"
	"github.com/dmakarov/chesscore/types"
)

func init() { attacks.Init() }

// ComputeState derives every field of State that's a function of piece
// placement rather than move history: checkers, pinners, blockers (which
// the move generator and legality filter consume), and the check-square
// tables (which nothing in this module reads yet).
// Must run after every change to Board's piece placement or side to move.
//
// Grounded on the teacher's inline checkers/pinners bookkeeping in
// MakeMove (precalc.go/movegen.go), pulled out into the standalone pass
// spec.md §4.E names, using the fancy-magic attacks package instead of a
// ray walk recomputed on every call.
func ComputeState(b *Board, s *State) {
	us := b.SideToMove
	them := us.Other()
	kingUs := b.King(us)
	kingThem := b.King(them)
	occ := b.Occupancy()

	if IsAttackedBy(b, kingThem, us) {
		panic(fmt.Sprintf("position: side not to move (%v) is in check -- illegal position reached", them))
	}

	s.Checkers = AttackersOf(b, kingUs, occ, them)

	for _, c := range [2]types.Color{types.ColorWhite, types.ColorBlack} {
		s.Blockers[c], s.Pinners[c] = 0, 0
	}
	computePins(b, occ, us, them, kingUs, &s.Blockers[us], &s.Pinners[them])
	computePins(b, occ, them, us, kingThem, &s.Blockers[them], &s.Pinners[us])

	s.CheckSquares[types.Pawn] = attacks.PawnAttacks(us, kingUs)
	s.CheckSquares[types.Knight] = attacks.KnightAttacks(kingUs)
	s.CheckSquares[types.Bishop] = attacks.BishopAttacks(kingUs, occ)
	s.CheckSquares[types.Rook] = attacks.RookAttacks(kingUs, occ)
	s.CheckSquares[types.Queen] = s.CheckSquares[types.Bishop] | s.CheckSquares[types.Rook]
	s.CheckSquares[types.King] = 0
}

// computePins scans enemy (relative to king) bishops/rooks/queens that
// could reach kingSq on an empty board, and for each one whose ray to the
// king contains exactly one occupied square, records that square as a
// blocker for defender and the slider itself as a pinner for attacker.
func computePins(b *Board, occ bitboard.Bitboard, defender, attacker types.Color, kingSq types.Square, blockers, pinners *bitboard.Bitboard) {
	sliders := b.Piece(attacker, types.Bishop) | b.Piece(attacker, types.Rook) | b.Piece(attacker, types.Queen)
	candidates := (attacks.BishopAttacks(kingSq, 0) & (b.Piece(attacker, types.Bishop) | b.Piece(attacker, types.Queen))) |
		(attacks.RookAttacks(kingSq, 0) & (b.Piece(attacker, types.Rook) | b.Piece(attacker, types.Queen)))
	candidates &= sliders

	it := candidates.Squares()
	for {
		sq, ok := it.Next()
		if !ok {
			break
		}
		between := attacks.Between(sq, kingSq) & occ
		if between.PopCount() == 1 {
			*blockers |= between
			*pinners |= bitboard.Of(sq)
		}
	}
}
