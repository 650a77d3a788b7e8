/*
Package notation implements the external move-string format spec.md §6
defines: long algebraic (<from><to>[<promo>]) plus the O-O/O-O-O castling
convenience, resolved against a position's actual castling rights since
the king's destination square depends on where its rook starts.

Grounded on the teacher's uci.go, which accepts the same long-algebraic
shape for its UCI "position moves ..." command; generalized here to also
render/parse the castling shorthand the teacher's uci.go doesn't handle.
*/
package notation

import (
	"fmt"
	"strings"

	"github.com/dmakarov/chesscore/position"
	"github.com/dmakarov/chesscore/types"
)

var promoLetters = map[byte]types.PromotionPiece{
	'n': types.PromoKnight,
	'b': types.PromoBishop,
	'r': types.PromoRook,
	'q': types.PromoQueen,
}

// Parse converts a long-algebraic move string (or "O-O"/"O-O-O") into a
// packed Move, resolved against b/s so castling and en passant get the
// right flag. It does not check legality -- callers pass the result to
// movegen.DoMove for that.
func Parse(b *position.Board, s *position.State, str string) (types.Move, error) {
	us := b.SideToMove
	switch strings.ToUpper(str) {
	case "O-O":
		return castleMove(s, us, position.WhiteShort, position.BlackShort)
	case "O-O-O":
		return castleMove(s, us, position.WhiteLong, position.BlackLong)
	}

	if len(str) < 4 || len(str) > 5 {
		return types.NullMove, fmt.Errorf("notation: malformed move %q", str)
	}
	from, err := types.ParseSquare(str[0:2])
	if err != nil {
		return types.NullMove, fmt.Errorf("notation: %w", err)
	}
	to, err := types.ParseSquare(str[2:4])
	if err != nil {
		return types.NullMove, fmt.Errorf("notation: %w", err)
	}

	if len(str) == 5 {
		promo, ok := promoLetters[str[4]]
		if !ok {
			return types.NullMove, fmt.Errorf("notation: invalid promotion letter %q", str[4:])
		}
		return types.NewPromotionMove(from, to, promo), nil
	}

	flag := types.MoveNormal
	if b.PieceAt(from).Type() == types.Pawn && to == s.EnPassant && s.EnPassant != types.NoSquare {
		flag = types.MoveEnPassant
	}
	if b.PieceAt(from).Type() == types.King {
		right := s.Castle[whiteOrBlackShort(us)]
		left := s.Castle[whiteOrBlackLong(us)]
		if from == right.KingFrom && to == right.KingTo {
			flag = types.MoveCastle
		} else if from == left.KingFrom && to == left.KingTo {
			flag = types.MoveCastle
		}
	}
	return types.NewMove(from, to, flag), nil
}

func castleMove(s *position.State, us types.Color, whiteSide, blackSide position.CastleSide) (types.Move, error) {
	side := whiteSide
	if us == types.ColorBlack {
		side = blackSide
	}
	right := s.Castle[side]
	return types.NewMove(right.KingFrom, right.KingTo, types.MoveCastle), nil
}

func whiteOrBlackShort(c types.Color) position.CastleSide {
	if c == types.ColorWhite {
		return position.WhiteShort
	}
	return position.BlackShort
}

func whiteOrBlackLong(c types.Color) position.CastleSide {
	if c == types.ColorWhite {
		return position.WhiteLong
	}
	return position.BlackLong
}

// Format renders mv in long algebraic notation, using O-O/O-O-O for
// castling instead of the king's raw from/to squares.
func Format(mv types.Move) string {
	if mv.IsCastle() {
		if mv.To().File() > mv.From().File() {
			return "O-O"
		}
		return "O-O-O"
	}
	return mv.String()
}
