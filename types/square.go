// Package types declares the primitive chess types shared by every other
// package in this module: squares, colors, pieces, and the packed Move and
// MoveList representations. Keeping them here (rather than scattered across
// bitboard/attacks/position) mirrors the teacher repo's own types/enum
// split, collapsed into a single package since the two never diverge in
// practice.
package types

import "fmt"

// Square is an index in [0, 64), laid out file-major within rank:
// A1 = 0, B1 = 1, ..., H1 = 7, A2 = 8, ..., H8 = 63.
type Square int8

// Board squares, named the way the teacher's enum package names them.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	// NoSquare marks the absence of a square, e.g. no en passant target.
	NoSquare Square = -1
)

// NewSquare builds a square from zero-based file and rank. Both must be
// in [0, 8); this is total for valid inputs, as spec'd.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the zero-based file (a=0 .. h=7).
func (s Square) File() int { return int(s) & 7 }

// Rank returns the zero-based rank (1st=0 .. 8th=7).
func (s Square) Rank() int { return int(s) >> 3 }

// Offset shifts the square by i squares in raw index space. It returns
// (NoSquare, false) if the result leaves [0, 64). It does NOT detect
// wrap-around across files -- callers guard that with file masks, same as
// the teacher's raw bitshift-based move generation does.
func (s Square) Offset(i int) (Square, bool) {
	r := int(s) + i
	if r < 0 || r > 63 {
		return NoSquare, false
	}
	return Square(r), true
}

// RelativeTo flips the square vertically when color is Black, the standard
// trick for writing colour-symmetric constants and tables (seventh rank
// relative to Black is the second rank in absolute terms, etc).
func (s Square) RelativeTo(c Color) Square {
	if c == ColorBlack {
		return s ^ 56
	}
	return s
}

// Bitboard returns the single-bit bitboard for this square.
func (s Square) Bitboard() uint64 { return 1 << uint(s) }

// Distance returns the Chebyshev distance between two squares, i.e.
// max(|file delta|, |rank delta|).
func Distance(a, b Square) int {
	return distanceTable[a][b]
}

// distanceTable is populated once by init and backs Distance.
var distanceTable [64][64]int

func init() {
	for a := Square(0); a < 64; a++ {
		for b := Square(0); b < 64; b++ {
			df := abs(a.File() - b.File())
			dr := abs(a.Rank() - b.Rank())
			d := df
			if dr > d {
				d = dr
			}
			distanceTable[a][b] = d
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

var squareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// String renders the square in algebraic notation, "-" for NoSquare.
func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	if s < 0 || s > 63 {
		return fmt.Sprintf("<invalid square %d>", int(s))
	}
	return squareNames[s]
}

// ParseSquare parses algebraic notation ("e4") into a Square. Accepts "-"
// as NoSquare.
func ParseSquare(str string) (Square, error) {
	if str == "-" {
		return NoSquare, nil
	}
	if len(str) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", str)
	}
	file := str[0] - 'a'
	rank := str[1] - '1'
	if file > 7 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square %q", str)
	}
	return NewSquare(int(file), int(rank)), nil
}

// Color is the side to move or the owner of a piece.
type Color int8

const (
	ColorWhite Color = iota
	ColorBlack
)

// Other returns the opposite color. Color is negatable per spec.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == ColorWhite {
		return "white"
	}
	return "black"
}
