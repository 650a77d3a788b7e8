package types

// MaxMoves bounds MoveList's capacity. The practical maximum for a legal
// chess position is 218 (see https://www.chessprogramming.org/Chess_Position_with_Maximum_Moves);
// 256 gives headroom the way the teacher's array does.
const MaxMoves = 256

// MoveList is a fixed-capacity, insertion-ordered sequence of moves backed
// by an array, so pushing never reallocates. movegen.GenerateLegal
// allocates a fresh MoveList per call and returns it.
type MoveList struct {
	moves [MaxMoves]Move
	n     int
}

// Len returns the number of moves currently stored.
func (l *MoveList) Len() int { return l.n }

// Reset empties the list without touching its backing array.
func (l *MoveList) Reset() { l.n = 0 }

// PushBack appends a move. It panics on overflow: exceeding MaxMoves means
// either a generation bug or a position so exotic it falls outside any
// reachable chess game, and that must not be silently truncated.
func (l *MoveList) PushBack(m Move) {
	if l.n >= MaxMoves {
		panic("movelist: capacity exceeded")
	}
	l.moves[l.n] = m
	l.n++
}

// Get returns the move at index i.
func (l *MoveList) Get(i int) Move { return l.moves[i] }

// Set overwrites the move at index i in place.
func (l *MoveList) Set(i int, m Move) { l.moves[i] = m }

// SwapRemove removes the move at index i in O(1) by swapping in the last
// element, which reorders the list but avoids shifting.
func (l *MoveList) SwapRemove(i int) {
	l.n--
	l.moves[i] = l.moves[l.n]
}

// Retain keeps only the moves for which pred returns true, compacting the
// list in place and preserving the insertion order of the survivors. This
// is how the legality filter removes pseudo-legal moves that turn out to
// expose the king.
func (l *MoveList) Retain(pred func(Move) bool) {
	w := 0
	for r := 0; r < l.n; r++ {
		if pred(l.moves[r]) {
			l.moves[w] = l.moves[r]
			w++
		}
	}
	l.n = w
}

// Each calls fn for every move in insertion order.
func (l *MoveList) Each(fn func(Move)) {
	for i := 0; i < l.n; i++ {
		fn(l.moves[i])
	}
}

// Contains reports whether a move with matching from/to/flag/promotion is
// present -- used to validate a caller-supplied move against what the
// generator actually produced.
func (l *MoveList) Contains(m Move) bool {
	for i := 0; i < l.n; i++ {
		if l.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice copies the list's contents out as a plain slice, mainly useful for
// tests that want to sort/compare move sets.
func (l *MoveList) Slice() []Move {
	out := make([]Move, l.n)
	copy(out, l.moves[:l.n])
	return out
}
