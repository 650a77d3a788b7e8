package position

import (
	"github.com/dmakarov/chesscore/attacks"
	"github.com/dmakarov/chesscore/bitboard"
	"github.com/dmakarov/chesscore/types"
)

// AttackersOf returns every piece of color by attacking sq given occupancy
// occ. Pawn attackers are found by looking up the OPPOSITE color's pawn
// attack pattern from sq, per spec.md §4.E -- a black pawn attacking e4
// diagonally is found at the squares a white pawn standing on e4 would
// itself attack.
func AttackersOf(b *Board, sq types.Square, occ bitboard.Bitboard, by types.Color) bitboard.Bitboard {
	var attackers bitboard.Bitboard
	attackers |= attacks.KnightAttacks(sq) & b.Piece(by, types.Knight)
	attackers |= attacks.PawnAttacks(by.Other(), sq) & b.Piece(by, types.Pawn)
	attackers |= attacks.KingAttacks(sq) & b.Piece(by, types.King)
	attackers |= attacks.RookAttacks(sq, occ) & (b.Piece(by, types.Rook) | b.Piece(by, types.Queen))
	attackers |= attacks.BishopAttacks(sq, occ) & (b.Piece(by, types.Bishop) | b.Piece(by, types.Queen))
	return attackers
}

// AttacksTo returns every piece of either color attacking sq given
// occupancy occ.
func AttacksTo(b *Board, sq types.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	return AttackersOf(b, sq, occ, types.ColorWhite) | AttackersOf(b, sq, occ, types.ColorBlack)
}

// IsAttackedBy reports whether sq is attacked by any piece of color by,
// given the board's actual occupancy.
func IsAttackedBy(b *Board, sq types.Square, by types.Color) bool {
	return AttackersOf(b, sq, b.Occupancy(), by) != 0
}
