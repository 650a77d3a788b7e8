/*
Package perft implements the performance-test leaf-counting driver spec.md
§4.H describes: a recursive move-tree walk that counts leaves at a given
depth, with a depth-1 shortcut that counts the generated move list
directly (so depth 2 recurses one ply and then counts), and a root-level
"divide" breakdown reporting each root move's subtree count.

Grounded on the teacher's internal/perft/perft.go (the recursive Perft
function and its depth-1 shortcut), generalized to operate through the
movegen package's DoMove/UndoMove instead of the teacher's raw MakeMove,
so perft also exercises the do/undo inverse-exactness property spec.md §8
calls out.
*/
package perft

import (
	"github.com/dmakarov/chesscore/movegen"
	"github.com/dmakarov/chesscore/position"
	"github.com/dmakarov/chesscore/types"
)

// Count returns the number of leaf positions reachable from (b, s) in
// exactly depth plies. Count(b, s, 0) is 1 (the position itself is the
// one leaf of an empty search).
func Count(b *position.Board, s *position.State, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := movegen.GenerateLegal(b, s)
	if depth == 1 {
		return uint64(moves.Len())
	}

	var total uint64
	for i := 0; i < moves.Len(); i++ {
		mv := moves.Get(i)
		next, err := movegen.DoMove(b, s, mv)
		if err != nil {
			panic("perft: move generator produced an illegal move: " + err.Error())
		}
		total += Count(b, next, depth-1)
		movegen.UndoMove(b, next, mv)
	}
	return total
}

// DivideEntry is one root move's subtree leaf count, as reported by
// Divide.
type DivideEntry struct {
	Move  types.Move
	Nodes uint64
}

// Divide runs perft at depth from (b, s) and additionally reports the
// per-root-move leaf count, the standard way to bisect a perft mismatch
// against a reference engine down to the first diverging move.
func Divide(b *position.Board, s *position.State, depth int) (entries []DivideEntry, total uint64) {
	if depth < 1 {
		return nil, Count(b, s, depth)
	}

	moves := movegen.GenerateLegal(b, s)
	entries = make([]DivideEntry, 0, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		mv := moves.Get(i)
		next, err := movegen.DoMove(b, s, mv)
		if err != nil {
			panic("perft: move generator produced an illegal move: " + err.Error())
		}
		nodes := Count(b, next, depth-1)
		movegen.UndoMove(b, next, mv)

		entries = append(entries, DivideEntry{Move: mv, Nodes: nodes})
		total += nodes
	}
	return entries, total
}
