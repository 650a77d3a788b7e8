/*
Package movegen implements legal move generation (spec.md §4.G) and the
do_move/undo_move pair (§4.H) that mutates a position through it. It is
the one package allowed to depend on both attacks and position, since
do_move's legality check is itself a move-generation question.

Grounded on the teacher's movegen.go (genPawnMoves/genKnightMoves/
genAttacks and its GenLegalMoves entry point), but the teacher validates
legality by copy-making the whole board and recomputing checkers from
scratch for every pseudo-legal move; this package instead uses the
pin/blocker/checker bookkeeping position.ComputeState already derived, per
spec.md §4.G's staged target-mask + narrow legality filter design, which
only re-verifies the three move shapes that can actually be illegal
(king moves, pinned-piece moves, en passant).
*/
package movegen

import (
	"github.com/dmakarov/chesscore/attacks"
	"github.com/dmakarov/chesscore/bitboard"
	"github.com/dmakarov/chesscore/position"
	"github.com/dmakarov/chesscore/types"
)

// GenerateLegal returns every legal move available to the side to move in
// (b, s).
func GenerateLegal(b *position.Board, s *position.State) *types.MoveList {
	list := &types.MoveList{}

	us := b.SideToMove
	them := us.Other()
	k := b.King(us)
	occ := b.Occupancy()

	checkerCount := s.Checkers.PopCount()
	var targets bitboard.Bitboard
	switch {
	case checkerCount == 0:
		targets = ^b.ColorBB[us]
	case checkerCount == 1:
		// BetweenInclusive(k, checker) never contains the king's own
		// square; friendly squares are stripped from the mask as well.
		targets = attacks.BetweenInclusive(k, s.Checkers.LSB()) &^ b.ColorBB[us]
	default:
		targets = 0
	}

	if checkerCount < 2 {
		genPawnMoves(b, s, us, them, occ, targets, list)
		genKnightMoves(b, us, targets, list)
		genSliderMoves(b, us, types.Bishop, occ, targets, list, attacks.BishopAttacks)
		genSliderMoves(b, us, types.Rook, occ, targets, list, attacks.RookAttacks)
		genSliderMoves(b, us, types.Queen, occ, targets, list, attacks.QueenAttacks)
	}

	genKingMoves(b, s, us, them, occ, list)
	if checkerCount == 0 {
		genCastles(b, s, us, them, occ, list)
	}

	filterLegal(b, s, us, them, k, list)
	return list
}

func genKnightMoves(b *position.Board, us types.Color, targets bitboard.Bitboard, list *types.MoveList) {
	knights := b.Piece(us, types.Knight)
	it := knights.Squares()
	for {
		from, ok := it.Next()
		if !ok {
			break
		}
		dests := attacks.KnightAttacks(from) & targets
		di := dests.Squares()
		for {
			to, ok := di.Next()
			if !ok {
				break
			}
			list.PushBack(types.NewMove(from, to, types.MoveNormal))
		}
	}
}

type sliderAttackFn func(types.Square, bitboard.Bitboard) bitboard.Bitboard

func genSliderMoves(b *position.Board, us types.Color, pt types.PieceType, occ, targets bitboard.Bitboard, list *types.MoveList, attackFn sliderAttackFn) {
	pieces := b.Piece(us, pt)
	it := pieces.Squares()
	for {
		from, ok := it.Next()
		if !ok {
			break
		}
		dests := attackFn(from, occ) & targets
		di := dests.Squares()
		for {
			to, ok := di.Next()
			if !ok {
				break
			}
			list.PushBack(types.NewMove(from, to, types.MoveNormal))
		}
	}
}

func genKingMoves(b *position.Board, s *position.State, us, them types.Color, occ bitboard.Bitboard, list *types.MoveList) {
	from := b.King(us)
	dests := attacks.KingAttacks(from) &^ b.ColorBB[us]
	it := dests.Squares()
	for {
		to, ok := it.Next()
		if !ok {
			break
		}
		list.PushBack(types.NewMove(from, to, types.MoveNormal))
	}
}

func castleSidesFor(us types.Color) [2]position.CastleSide {
	if us == types.ColorWhite {
		return [2]position.CastleSide{position.WhiteShort, position.WhiteLong}
	}
	return [2]position.CastleSide{position.BlackShort, position.BlackLong}
}

func genCastles(b *position.Board, s *position.State, us, them types.Color, occ bitboard.Bitboard, list *types.MoveList) {
	for _, side := range castleSidesFor(us) {
		if !s.Castle.Has(side) {
			continue
		}
		right := s.Castle[side]

		rookPath := attacks.Between(right.KingFrom, right.RookFrom)
		kingPath := attacks.BetweenInclusive(right.KingFrom, right.KingTo)
		if rookPath&occ != 0 || kingPath&occ != 0 {
			continue
		}

		transit := bitboard.Of(right.KingFrom) | kingPath
		blocked := false
		ti := transit.Squares()
		for {
			sq, ok := ti.Next()
			if !ok {
				break
			}
			if position.IsAttackedBy(b, sq, them) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		list.PushBack(types.NewMove(right.KingFrom, right.KingTo, types.MoveCastle))
	}
}

func genPawnMoves(b *position.Board, s *position.State, us, them types.Color, occ, targets bitboard.Bitboard, list *types.MoveList) {
	pawns := b.Piece(us, types.Pawn)

	promoRank := bitboard.Rank7
	rank3 := bitboard.Rank3
	if us == types.ColorBlack {
		promoRank = bitboard.Rank2
		rank3 = bitboard.Rank6
	}

	promoPawns := pawns & promoRank
	restPawns := pawns &^ promoRank

	genPawnPromotions(b, us, them, promoPawns, occ, targets, list)
	genPawnQuietMoves(restPawns, us, occ, rank3, targets, list)
	genPawnCaptures(b, s, us, them, restPawns, targets, list)
}

func genPawnPromotions(b *position.Board, us, them types.Color, promoPawns, occ, targets bitboard.Bitboard, list *types.MoveList) {
	it := promoPawns.Squares()
	for {
		from, ok := it.Next()
		if !ok {
			break
		}
		push := bitboard.Forward(bitboard.Of(from), us) &^ occ
		captures := attacks.PawnAttacks(us, from) & b.ColorBB[them]
		dests := (push | captures) & targets
		di := dests.Squares()
		for {
			to, ok := di.Next()
			if !ok {
				break
			}
			list.PushBack(types.NewPromotionMove(from, to, types.PromoKnight))
			list.PushBack(types.NewPromotionMove(from, to, types.PromoBishop))
			list.PushBack(types.NewPromotionMove(from, to, types.PromoRook))
			list.PushBack(types.NewPromotionMove(from, to, types.PromoQueen))
		}
	}
}

// genPawnQuietMoves handles single and double pushes. The single-push
// bitboard is computed before intersecting with targets, per spec.md
// §4.G's correctness trap: a pawn double-pushing to block a discovered
// check must still be found even though its single-push intermediate
// square isn't itself a target.
func genPawnQuietMoves(restPawns bitboard.Bitboard, us types.Color, occ, rank3, targets bitboard.Bitboard, list *types.MoveList) {
	singlePushRaw := bitboard.Forward(restPawns, us) &^ occ

	singlePush := singlePushRaw & targets
	it := singlePush.Squares()
	for {
		to, ok := it.Next()
		if !ok {
			break
		}
		from := backOneRank(to, us)
		list.PushBack(types.NewMove(from, to, types.MoveNormal))
	}

	doubleCandidates := singlePushRaw & rank3
	doublePush := bitboard.Forward(doubleCandidates, us) &^ occ & targets
	di := doublePush.Squares()
	for {
		to, ok := di.Next()
		if !ok {
			break
		}
		from := backOneRank(backOneRank(to, us), us)
		list.PushBack(types.NewMove(from, to, types.MoveNormal))
	}
}

func genPawnCaptures(b *position.Board, s *position.State, us, them types.Color, restPawns, targets bitboard.Bitboard, list *types.MoveList) {
	var epBB bitboard.Bitboard
	if s.EnPassant != types.NoSquare {
		epBB = bitboard.Of(s.EnPassant)
	}

	it := restPawns.Squares()
	for {
		from, ok := it.Next()
		if !ok {
			break
		}
		dests := attacks.PawnAttacks(us, from) & (b.ColorBB[them] | epBB) & targets
		di := dests.Squares()
		for {
			to, ok := di.Next()
			if !ok {
				break
			}
			flag := types.MoveNormal
			if to == s.EnPassant {
				flag = types.MoveEnPassant
			}
			list.PushBack(types.NewMove(from, to, flag))
		}
	}
}

// backOneRank returns the square one rank behind to, relative to us --
// i.e. where a pawn that just pushed to `to` must have come from.
func backOneRank(to types.Square, us types.Color) types.Square {
	if us == types.ColorWhite {
		return to - 8
	}
	return to + 8
}
