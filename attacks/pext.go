//go:build pext

package attacks

import (
	"github.com/dmakarov/chesscore/bitboard"
	"github.com/dmakarov/chesscore/types"
)

// pextEntry is the PEXT-mode counterpart to magic.go's magicEntry: no
// multiplier or shift is needed since the index comes directly from
// extracting the mask's bits out of the occupancy word.
type pextEntry struct {
	mask   bitboard.Bitboard
	offset int
}

var (
	bishopPext [64]pextEntry
	rookPext   [64]pextEntry

	bishopTable [0x1480]bitboard.Bitboard
	rookTable   [0x19000]bitboard.Bitboard
)

// softwarePext is a portable bit-extract: it gathers the bits of x
// selected by mask into a contiguous low-order run, the same contract as
// the x86 BMI2 PEXT instruction. Real PEXT is a single cycle in hardware;
// this is the functional fallback used when the "pext" build tag asks for
// PEXT-shaped indexing (direct extract, no magic search) without requiring
// assembly or cgo. Swap this for an asm stub on amd64 if the instruction
// is available; the table layout and callers are unaffected either way.
func softwarePext(x, mask uint64) uint64 {
	var result uint64
	var outBit uint
	for mask != 0 {
		lsb := mask & -mask
		if x&lsb != 0 {
			result |= 1 << outBit
		}
		mask &= mask - 1
		outBit++
	}
	return result
}

func buildSliderTables() {
	buildOnePextTable(bishopDirs, &bishopPext, bishopTable[:])
	buildOnePextTable(rookDirs, &rookPext, rookTable[:])
}

func buildOnePextTable(dirs []direction, entries *[64]pextEntry, table []bitboard.Bitboard) {
	offset := 0
	for sq := types.Square(0); sq < 64; sq++ {
		mask := relevantOccupancy(sq, dirs)
		size := 1 << uint(mask.PopCount())
		entries[sq] = pextEntry{mask: mask, offset: offset}
		subsets(mask, func(occ bitboard.Bitboard) {
			idx := offset + int(softwarePext(uint64(occ), uint64(mask)))
			table[idx] = rayAttacks(sq, occ, dirs)
		})
		offset += size
	}
}

func pextIndex(e *pextEntry, occ bitboard.Bitboard) int {
	return e.offset + int(softwarePext(uint64(occ)&uint64(e.mask), uint64(e.mask)))
}

// BishopAttacks returns the bishop attack set from sq given full occupancy.
func BishopAttacks(sq types.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	e := &bishopPext[sq]
	return bishopTable[pextIndex(e, occ)]
}

// RookAttacks returns the rook attack set from sq given full occupancy.
func RookAttacks(sq types.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	e := &rookPext[sq]
	return rookTable[pextIndex(e, occ)]
}
