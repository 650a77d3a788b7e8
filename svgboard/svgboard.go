/*
Package svgboard renders a position as an SVG diagram using
github.com/ajstarks/svgo, for documentation and bug-report snapshots of
perft divergences. New relative to the teacher (which only ever prints
ASCII boards); this is the concrete home SPEC_FULL.md's domain-stack
section names for svgo, since nothing in the teacher repo draws anything.
*/
package svgboard

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/dmakarov/chesscore/position"
	"github.com/dmakarov/chesscore/types"
)

const squareSize = 60

var pieceGlyphs = [12]string{
	"♙", "♟", "♘", "♞", "♗", "♝",
	"♖", "♜", "♕", "♛", "♔", "♚",
}

var (
	lightSquare = "#f0d9b5"
	darkSquare  = "#b58863"
)

// Render writes an 8x8 SVG diagram of b to w.
func Render(w io.Writer, b *position.Board) {
	canvas := svg.New(w)
	dim := squareSize * 8
	canvas.Start(dim, dim)

	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			x := file * squareSize
			y := (7 - rank) * squareSize
			color := lightSquare
			if (file+rank)%2 == 0 {
				color = darkSquare
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+color)

			sq := types.NewSquare(file, rank)
			p := b.PieceAt(sq)
			if p != types.NoPiece {
				canvas.Text(x+squareSize/2, y+squareSize/2+squareSize/6, pieceGlyphs[p],
					"text-anchor:middle;font-size:36px")
			}
		}
	}

	canvas.End()
}
