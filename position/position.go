/*
Package position implements the board representation spec.md §3/§4.E
describes: the persistent Board (piece bitboards, mailbox, side to move,
move history) and the per-ply State (castling rights and geometry,
checkers, pinners, blockers, check squares, en passant, clocks), FEN parsing and
serialization, and compute_state, the function that derives State from a
freshly placed board.

Grounded on the teacher's position.go/fen.go/precalc.go (NewGame, ParseFEN,
SerializeFEN, and the checkers/pinners bookkeeping the teacher recomputes
inline in MakeMove) and generalized into the standalone State struct and
explicit compute_state pass spec.md requires, using the fancy-magic lookups
from package attacks instead of the teacher's naive ray walk.

Do/undo and legal move generation live in package movegen, not here:
do_move's legality check calls into move generation, and move generation
needs Board/State, so the dependency only closes one way if this package
stays a pure data + FEN + derived-state layer and movegen depends on it.
*/
package position

import (
	"github.com/dmakarov/chesscore/bitboard"
	"github.com/dmakarov/chesscore/types"
)

// CastleSide indexes the four castling rights.
type CastleSide int

const (
	WhiteShort CastleSide = iota
	WhiteLong
	BlackShort
	BlackLong
)

// CastleRight is one castling right: absent, or present with the four
// squares king/rook move between. ParseFEN accepts only the standard
// KQkq letters and always uses the e-file king and a/h-file rooks;
// Chess960 rook files are not parsed.
type CastleRight struct {
	Present                            bool
	KingFrom, KingTo, RookFrom, RookTo types.Square
}

// CastleRights holds all four rights for a position.
type CastleRights [4]CastleRight

// Clear removes a right.
func (cr *CastleRights) Clear(side CastleSide) { cr[side].Present = false }

// Has reports whether a right is currently present.
func (cr CastleRights) Has(side CastleSide) bool { return cr[side].Present }

// standardCastleRights returns the four standard-chess castling geometries
// (king starts on e-file, rooks on a/h-files), with Present left false --
// callers flip on the rights a FEN's castling field actually grants.
func standardCastleRights() CastleRights {
	return CastleRights{
		WhiteShort: {KingFrom: types.E1, KingTo: types.G1, RookFrom: types.H1, RookTo: types.F1},
		WhiteLong:  {KingFrom: types.E1, KingTo: types.C1, RookFrom: types.A1, RookTo: types.D1},
		BlackShort: {KingFrom: types.E8, KingTo: types.G8, RookFrom: types.H8, RookTo: types.F8},
		BlackLong:  {KingFrom: types.E8, KingTo: types.C8, RookFrom: types.A8, RookTo: types.D8},
	}
}

// Board is the persistent chess position: piece placement, side to move,
// and append-only move history. Everything derived per-ply (checkers,
// pins, en passant, clocks) lives in State instead, which is stacked for
// undo -- see compute_state.go and the movegen package's DoMove/UndoMove.
type Board struct {
	ColorBB [2]bitboard.Bitboard
	PieceBB [6]bitboard.Bitboard
	Mailbox [64]types.Piece
	Counts  [2][6]int

	SideToMove types.Color
	Ply        int
	Chess960   bool

	History []types.Move
}

// State is the derived, per-ply metadata stacked across do_move/undo_move.
type State struct {
	Castle        CastleRights
	EnPassant     types.Square
	HalfMoves     int
	PliesFromNull int

	Checkers     bitboard.Bitboard
	CheckSquares [6]bitboard.Bitboard
	Blockers     [2]bitboard.Bitboard
	Pinners      [2]bitboard.Bitboard

	CapturedPiece types.PieceType

	Prev *State
}

// Occupancy returns every occupied square, regardless of color.
func (b *Board) Occupancy() bitboard.Bitboard { return b.ColorBB[types.ColorWhite] | b.ColorBB[types.ColorBlack] }

// Piece returns the bitboard of color c's pieces of kind pt.
func (b *Board) Piece(c types.Color, pt types.PieceType) bitboard.Bitboard {
	return b.ColorBB[c] & b.PieceBB[pt]
}

// King returns the square color c's king occupies.
func (b *Board) King(c types.Color) types.Square {
	return b.Piece(c, types.King).LSB()
}

// PieceAt returns the piece occupying sq, or types.NoPiece if empty.
func (b *Board) PieceAt(sq types.Square) types.Piece { return b.Mailbox[sq] }

// Put places piece p on sq, updating every redundant representation. sq
// must be empty; callers (FEN parsing, do_move/undo_move in package
// movegen) are responsible for that invariant.
func (b *Board) Put(sq types.Square, p types.Piece) {
	bb := bitboard.Of(sq)
	c, pt := p.Color(), p.Type()
	b.ColorBB[c] |= bb
	b.PieceBB[pt] |= bb
	b.Mailbox[sq] = p
	b.Counts[c][pt]++
}

// Remove clears whatever piece sits on sq and returns it. sq must be
// occupied.
func (b *Board) Remove(sq types.Square) types.Piece {
	p := b.Mailbox[sq]
	bb := bitboard.Of(sq)
	c, pt := p.Color(), p.Type()
	b.ColorBB[c] &^= bb
	b.PieceBB[pt] &^= bb
	b.Mailbox[sq] = types.NoPiece
	b.Counts[c][pt]--
	return p
}

// RelocatePiece moves whatever piece sits on from to to, which must be
// empty.
func (b *Board) RelocatePiece(from, to types.Square) {
	p := b.Remove(from)
	b.Put(to, p)
}
