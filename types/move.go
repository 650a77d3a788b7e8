package types

import "strings"

// MoveFlag distinguishes the four move shapes a packed Move can encode.
type MoveFlag uint16

const (
	MoveNormal MoveFlag = iota
	MoveEnPassant
	MoveCastle
	MovePromotion
)

/*
Move represents a chess move, packed into a 16 bit unsigned integer exactly
as spec'd:

	bits 0-5:   from square
	bits 6-11:  to square
	bits 12-13: flag (MoveFlag)
	bits 14-15: promotion piece kind (PromotionPiece), meaningless unless
	            flag == MovePromotion, in which case pawn (0) is never a
	            valid encoding -- it aliases PromoKnight, which is fine
	            since the field is only read when flag == MovePromotion.

A null move is the all-zeros pattern: from=A1, to=A1, MoveNormal, PromoKnight.
It is never produced by move generation (a move never has from == to), so
it is safe to use as a sentinel.
*/
type Move uint16

// NewMove builds a normal, en passant, or castle move.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(uint16(from) | uint16(to)<<6 | uint16(flag)<<12)
}

// NewPromotionMove builds a promotion move with the given promotion piece.
func NewPromotionMove(from, to Square, promo PromotionPiece) Move {
	return Move(uint16(from) | uint16(to)<<6 | uint16(MovePromotion)<<12 | uint16(promo)<<14)
}

// NullMove is the all-zero sentinel described above.
const NullMove Move = 0

func (m Move) From() Square { return Square(m & 0x3F) }
func (m Move) To() Square   { return Square((m >> 6) & 0x3F) }
func (m Move) Flag() MoveFlag {
	// Flag occupies bits 12-13; the promotion-piece field (bits 14-15)
	// must not leak into it.
	return MoveFlag((m >> 12) & 0x3)
}
func (m Move) Promotion() PromotionPiece { return PromotionPiece((m >> 14) & 0x3) }

func (m Move) IsPromotion() bool { return m.Flag() == MovePromotion }
func (m Move) IsCastle() bool    { return m.Flag() == MoveCastle }
func (m Move) IsEnPassant() bool { return m.Flag() == MoveEnPassant }

// String renders the move in long algebraic notation (see notation
// package for the full parser/encoder pair); kept here too since %v on a
// Move is extremely common in test failure output.
func (m Move) String() string {
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.IsPromotion() {
		switch m.Promotion() {
		case PromoKnight:
			b.WriteByte('n')
		case PromoBishop:
			b.WriteByte('b')
		case PromoRook:
			b.WriteByte('r')
		case PromoQueen:
			b.WriteByte('q')
		}
	}
	return b.String()
}
