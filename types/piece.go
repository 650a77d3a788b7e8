package types

// PieceType is one of the six chess piece kinds, color-independent.
type PieceType int8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = -1
)

var pieceTypeLetters = [6]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

func (pt PieceType) String() string {
	if pt < Pawn || pt > King {
		return "."
	}
	return string(pieceTypeLetters[pt])
}

// Piece is a (kind, color) pair, packed as kind*2+color so that the two
// colors of a kind are adjacent -- the same indexing trick the teacher's
// bitboard array uses (PieceWPawn, PieceBPawn, PieceWKnight, ...).
type Piece int8

// NewPiece packs a PieceType and Color into a Piece.
func NewPiece(pt PieceType, c Color) Piece {
	if pt == NoPieceType {
		return NoPiece
	}
	return Piece(int(pt)*2 + int(c))
}

// Type extracts the PieceType.
func (p Piece) Type() PieceType {
	if p == NoPiece {
		return NoPieceType
	}
	return PieceType(p / 2)
}

// Color extracts the Color.
func (p Piece) Color() Color { return Color(p % 2) }

// NoPiece marks an empty square in the mailbox.
const NoPiece Piece = -1

var pieceSymbols = [12]byte{
	'P', 'p', 'N', 'n', 'B', 'b',
	'R', 'r', 'Q', 'q', 'K', 'k',
}

func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	return string(pieceSymbols[p])
}

// PromotionPiece enumerates the legal under-promotion targets, packed as
// Knight=0, Bishop=1, Rook=2, Queen=3. Non-promotion moves leave these
// bits zero, which decodes as PromoKnight; the field is only read when
// the move's flag is MovePromotion.
type PromotionPiece int8

const (
	PromoKnight PromotionPiece = iota
	PromoBishop
	PromoRook
	PromoQueen
)

// ToPieceType converts a promotion selector to its PieceType.
func (pp PromotionPiece) ToPieceType() PieceType {
	switch pp {
	case PromoKnight:
		return Knight
	case PromoBishop:
		return Bishop
	case PromoRook:
		return Rook
	default:
		return Queen
	}
}
