package movegen

import (
	"github.com/dmakarov/chesscore/attacks"
	"github.com/dmakarov/chesscore/bitboard"
	"github.com/dmakarov/chesscore/position"
	"github.com/dmakarov/chesscore/types"
)

// filterLegal removes pseudo-legal moves that are not actually legal.
// Per spec.md §4.G, only three move shapes need re-checking: a king move,
// a move by a pinned blocker, and en passant (which can expose the king
// along a rank through two pawns at once). Castling is validated fully at
// generation time in genCastles, so it's exempted here.
func filterLegal(b *position.Board, s *position.State, us, them types.Color, k types.Square, list *types.MoveList) {
	occ := b.Occupancy()
	list.Retain(func(m types.Move) bool {
		if m.IsCastle() {
			return true
		}
		from := m.From()
		switch {
		case from == k:
			return legalKingMove(b, them, occ, m)
		case m.IsEnPassant():
			return legalEnPassant(b, us, them, k, occ, m)
		case s.Blockers[us].Has(from):
			return legalPinnedMove(s, them, k, m)
		default:
			return true
		}
	})
}

// legalKingMove re-verifies attacks_to(m.to) with the king's origin opened
// up, since a slider behind the king's starting square may now see
// through it.
func legalKingMove(b *position.Board, them types.Color, occ bitboard.Bitboard, m types.Move) bool {
	simOcc := occ &^ bitboard.Of(m.From())
	return position.AttackersOf(b, m.To(), simOcc, them) == 0
}

// legalPinnedMove confirms a pinned piece stays on the line between the
// king and its pinner.
func legalPinnedMove(s *position.State, them types.Color, k types.Square, m types.Move) bool {
	pinner := attacks.Line(m.From(), k) & s.Pinners[them]
	if pinner == 0 {
		return true
	}
	allowed := attacks.BetweenInclusive(k, pinner.LSB())
	return allowed.Has(m.To())
}

// legalEnPassant simulates removing both the moving pawn and the captured
// pawn, then checks that no enemy slider attacks the king -- the classic
// horizontal discovered-check trap spec.md §4.G calls out explicitly.
func legalEnPassant(b *position.Board, us, them types.Color, k types.Square, occ bitboard.Bitboard, m types.Move) bool {
	capturedSq := types.NewSquare(m.To().File(), m.From().Rank())
	simOcc := occ &^ bitboard.Of(m.From()) &^ bitboard.Of(capturedSq) | bitboard.Of(m.To())
	return position.AttackersOf(b, k, simOcc, them) == 0
}
