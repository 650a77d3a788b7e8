package position

import (
	"strconv"
	"strings"

	"github.com/dmakarov/chesscore/types"
)

var pieceLetters = map[byte]types.Piece{
	'P': types.NewPiece(types.Pawn, types.ColorWhite),
	'N': types.NewPiece(types.Knight, types.ColorWhite),
	'B': types.NewPiece(types.Bishop, types.ColorWhite),
	'R': types.NewPiece(types.Rook, types.ColorWhite),
	'Q': types.NewPiece(types.Queen, types.ColorWhite),
	'K': types.NewPiece(types.King, types.ColorWhite),
	'p': types.NewPiece(types.Pawn, types.ColorBlack),
	'n': types.NewPiece(types.Knight, types.ColorBlack),
	'b': types.NewPiece(types.Bishop, types.ColorBlack),
	'r': types.NewPiece(types.Rook, types.ColorBlack),
	'q': types.NewPiece(types.Queen, types.ColorBlack),
	'k': types.NewPiece(types.King, types.ColorBlack),
}

// ParseFEN builds a fresh Board and its seed State from a standard
// six-field FEN string, per spec.md §4.E/§6. On any error, no partial
// board is returned -- the zero value of each out parameter is meaningless
// and must be ignored.
//
// Grounded on the teacher's fen.go ParseFEN, restructured to return the
// discriminated FENErrorKind taxonomy spec.md §7 requires instead of the
// teacher's single generic error.
func ParseFEN(fen string) (*Board, *State, error) {
	fen = strings.TrimSpace(fen)
	if fen == "" {
		return nil, nil, fenErr(NoFenGiven, "")
	}

	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, nil, fenErr(InvalidPiece, "expected 6 space-separated fields")
	}

	b := &Board{}
	for i := range b.Mailbox {
		b.Mailbox[i] = types.NoPiece
	}
	if err := parsePlacement(b, fields[0]); err != nil {
		return nil, nil, err
	}

	switch fields[1] {
	case "w":
		b.SideToMove = types.ColorWhite
	case "b":
		b.SideToMove = types.ColorBlack
	default:
		return nil, nil, fenErr(InvalidColor, fields[1])
	}

	s := &State{EnPassant: types.NoSquare}
	if err := parseCastling(b, s, fields[2]); err != nil {
		return nil, nil, err
	}

	ep, err := parseEnPassant(fields[3], b.SideToMove)
	if err != nil {
		return nil, nil, err
	}
	s.EnPassant = ep

	halfMoves, err := parseNonNegativeInt(fields[4])
	if err != nil {
		return nil, nil, err
	}
	s.HalfMoves = halfMoves

	fullMoves, err := parseNonNegativeInt(fields[5])
	if err != nil || fullMoves < 1 {
		return nil, nil, fenErr(InvalidNumber, fields[5])
	}
	b.Ply = (fullMoves-1)*2 + int(b.SideToMove)

	ComputeState(b, s)
	return b, s, nil
}

func parsePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fenErr(BoardOverflow, placement)
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				if file > 8 {
					return fenErr(BoardOverflow, rankStr)
				}
				continue
			}
			p, ok := pieceLetters[ch]
			if !ok {
				return fenErr(InvalidPiece, string(ch))
			}
			if file >= 8 {
				return fenErr(BoardOverflow, rankStr)
			}
			b.Put(types.NewSquare(file, rank), p)
			file++
		}
		if file != 8 {
			return fenErr(BoardOverflow, rankStr)
		}
	}
	if b.Counts[types.ColorWhite][types.King] != 1 || b.Counts[types.ColorBlack][types.King] != 1 {
		return fenErr(BoardOverflow, "exactly one king per side required")
	}
	return nil
}

func parseCastling(b *Board, s *State, field string) error {
	s.Castle = standardCastleRights()
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		var side CastleSide
		switch field[i] {
		case 'K':
			side = WhiteShort
		case 'Q':
			side = WhiteLong
		case 'k':
			side = BlackShort
		case 'q':
			side = BlackLong
		default:
			return fenErr(InvalidCastleRights, field)
		}
		right := s.Castle[side]
		if b.PieceAt(right.KingFrom) != types.NewPiece(types.King, colorOf(side)) ||
			b.PieceAt(right.RookFrom) != types.NewPiece(types.Rook, colorOf(side)) {
			return fenErr(InvalidCastleRights, field)
		}
		s.Castle[side].Present = true
	}
	return nil
}

func colorOf(side CastleSide) types.Color {
	if side == WhiteShort || side == WhiteLong {
		return types.ColorWhite
	}
	return types.ColorBlack
}

func parseEnPassant(field string, stm types.Color) (types.Square, error) {
	if field == "-" {
		return types.NoSquare, nil
	}
	sq, err := types.ParseSquare(field)
	if err != nil {
		return types.NoSquare, fenErr(InvalidEnPassant, field)
	}
	wantRank := 5 // rank 6 (0-indexed 5), target of a black double push, when White is to move
	if stm == types.ColorBlack {
		wantRank = 2 // rank 3, target of a white double push
	}
	if sq.Rank() != wantRank {
		return types.NoSquare, fenErr(InvalidEnPassant, field)
	}
	return sq, nil
}

func parseNonNegativeInt(field string) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil || n < 0 {
		return 0, fenErr(InvalidNumber, field)
	}
	return n, nil
}

// SerializeFEN renders b/s back into a standard six-field FEN string.
func SerializeFEN(b *Board, s *State) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.PieceAt(types.NewSquare(file, rank))
			if p == types.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.SideToMove == types.ColorWhite {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	castling := ""
	if s.Castle.Has(WhiteShort) {
		castling += "K"
	}
	if s.Castle.Has(WhiteLong) {
		castling += "Q"
	}
	if s.Castle.Has(BlackShort) {
		castling += "k"
	}
	if s.Castle.Has(BlackLong) {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)

	sb.WriteByte(' ')
	if s.EnPassant == types.NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(s.EnPassant.String())
	}

	fullMoves := b.Ply/2 + 1
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(s.HalfMoves))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(fullMoves))

	return sb.String()
}
