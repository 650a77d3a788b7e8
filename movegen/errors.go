package movegen

import (
	"fmt"

	"github.com/dmakarov/chesscore/types"
)

// IllegalMoveError is returned by DoMove when the requested move is not
// legal in the given position. No state is mutated when this is returned.
type IllegalMoveError struct {
	Move types.Move
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("movegen: illegal move %s", e.Move)
}
