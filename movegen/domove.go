package movegen

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/dmakarov/chesscore/attacks"
	"github.com/dmakarov/chesscore/position"
	"github.com/dmakarov/chesscore/types"
)

// DoMove applies mv to (b, s) if legal, mutating b in place and returning
// the new State, which becomes the new head of the undo chain (s itself
// survives as New.Prev). On illegality, b and s are left untouched and the
// offending move is returned in the error.
//
// Grounded on the teacher's Position.MakeMove, restructured around the
// pin/checkers bookkeeping this module already computes instead of the
// teacher's from-scratch board rescan, and split so the legality check
// (which needs move generation) lives beside generate.go rather than in
// package position, which knows nothing about move generation.
func DoMove(b *position.Board, s *position.State, mv types.Move) (*position.State, error) {
	if !GenerateLegal(b, s).Contains(mv) {
		return nil, &IllegalMoveError{Move: mv}
	}
	return doMoveUnchecked(b, s, mv), nil
}

// ApplyMoves applies a sequence of moves in order, stopping at and
// returning the first illegal move, per spec.md §7.
func ApplyMoves(b *position.Board, s *position.State, moves []types.Move) (*position.State, error) {
	for _, mv := range moves {
		next, err := DoMove(b, s, mv)
		if err != nil {
			return s, err
		}
		s = next
	}
	return s, nil
}

func doMoveUnchecked(b *position.Board, s *position.State, mv types.Move) *position.State {
	us := b.SideToMove
	them := us.Other()
	from, to := mv.From(), mv.To()
	movedPiece := b.PieceAt(from)

	next := *s
	next.Prev = s
	next.HalfMoves = s.HalfMoves + 1
	next.PliesFromNull = s.PliesFromNull + 1
	next.CapturedPiece = types.NoPieceType
	next.EnPassant = types.NoSquare

	b.Ply++

	switch mv.Flag() {
	case types.MoveEnPassant:
		capSq := types.NewSquare(to.File(), from.Rank())
		captured := b.Remove(capSq)
		next.CapturedPiece = captured.Type()
		next.HalfMoves = 0
		b.RelocatePiece(from, to)

	case types.MoveCastle:
		side := castleSideForKingMove(s, us, from, to)
		right := s.Castle[side]
		b.RelocatePiece(right.KingFrom, right.KingTo)
		b.RelocatePiece(right.RookFrom, right.RookTo)

	default:
		if captured := b.PieceAt(to); captured != types.NoPiece {
			if captured.Type() == types.King {
				panic(fmt.Sprintf("movegen: move %s captures a king", mv))
			}
			b.Remove(to)
			next.CapturedPiece = captured.Type()
			next.HalfMoves = 0
			clearCastleRightOnRookCapture(&next, captured, to)
		}
		b.RelocatePiece(from, to)
		if mv.IsPromotion() {
			b.Remove(to)
			b.Put(to, types.NewPiece(mv.Promotion().ToPieceType(), us))
		}
	}

	if movedPiece.Type() == types.Pawn {
		next.HalfMoves = 0
		if diff := int(to) - int(from); diff == 16 || diff == -16 {
			epSquare := backOneRank(to, us)
			if attacks.PawnAttacks(us, epSquare)&b.Piece(them, types.Pawn) != 0 {
				next.EnPassant = epSquare
			}
		}
	}

	switch movedPiece.Type() {
	case types.King:
		clearBothCastleRights(&next, us)
	case types.Rook:
		clearCastleRightIfRookMoved(&next, us, from)
	}

	b.SideToMove = them
	b.History = append(b.History, mv)

	position.ComputeState(b, &next)
	return &next
}

// UndoMove reverses the most recently applied move, restoring b to the
// state it had before mv, and pops s off the undo chain, returning its
// predecessor. Panics on integrity violations (no predecessor, empty
// history) -- these indicate a caller bug, not a recoverable condition,
// per spec.md §7.
func UndoMove(b *position.Board, s *position.State, mv types.Move) *position.State {
	if s.Prev == nil {
		panic("movegen: undo with no predecessor state")
	}
	if len(b.History) == 0 || b.History[len(b.History)-1] != mv {
		panic("movegen: undo move does not match move history")
	}

	them := b.SideToMove
	us := them.Other()
	b.SideToMove = us
	b.Ply--

	from, to := mv.From(), mv.To()

	switch mv.Flag() {
	case types.MoveCastle:
		side := castleSideForKingMove(s, us, from, to)
		right := s.Castle[side]
		b.RelocatePiece(right.RookTo, right.RookFrom)
		b.RelocatePiece(right.KingTo, right.KingFrom)

	case types.MoveEnPassant:
		b.RelocatePiece(to, from)
		capSq := types.NewSquare(to.File(), from.Rank())
		b.Put(capSq, types.NewPiece(types.Pawn, them))

	default:
		if mv.IsPromotion() {
			b.Remove(to)
			b.Put(from, types.NewPiece(types.Pawn, us))
		} else {
			b.RelocatePiece(to, from)
		}
		if s.CapturedPiece != types.NoPieceType {
			b.Put(to, types.NewPiece(s.CapturedPiece, them))
		}
	}

	b.History = b.History[:len(b.History)-1]
	return s.Prev
}

func castleSideForKingMove(s *position.State, us types.Color, from, to types.Square) position.CastleSide {
	sides := castleSidesFor(us)
	idx := slices.IndexFunc(sides[:], func(side position.CastleSide) bool {
		return s.Castle[side].KingFrom == from && s.Castle[side].KingTo == to
	})
	if idx < 0 {
		panic("movegen: castle move matches no castling right")
	}
	return sides[idx]
}

func clearCastleRightOnRookCapture(s *position.State, captured types.Piece, sq types.Square) {
	if captured.Type() != types.Rook {
		return
	}
	for side := position.WhiteShort; side <= position.BlackLong; side++ {
		if s.Castle[side].Present && s.Castle[side].RookFrom == sq {
			s.Castle.Clear(side)
		}
	}
}

func clearBothCastleRights(s *position.State, us types.Color) {
	for _, side := range castleSidesFor(us) {
		s.Castle.Clear(side)
	}
}

func clearCastleRightIfRookMoved(s *position.State, us types.Color, from types.Square) {
	for _, side := range castleSidesFor(us) {
		if s.Castle[side].Present && s.Castle[side].RookFrom == from {
			s.Castle.Clear(side)
		}
	}
}
