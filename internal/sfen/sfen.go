// Package sfen reads and writes shogi positions in SFEN notation and moves in
// USI notation.
package sfen

import (
	"strconv"
	"strings"

	"github.com/jiro/shogi/internal/board"
	"github.com/jiro/shogi/internal/game"
)

// StartPosition is the SFEN string of the even-game starting position.
const StartPosition = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

// maxPooled is the largest count allowed before a pooled piece (18 pawns).
const maxPooled = 18

// Position is a parsed SFEN record.
type Position struct {
	Board    *board.Board
	Color    board.Color
	Captured []board.Piece

	// MoveNumber is 0 when the record has no move number field.
	MoveNumber int
}

// Parse parses an SFEN string. Malformed input yields ok == false and no
// partial position.
func Parse(s string) (pos *Position, ok bool) {
	fields := strings.Fields(s)
	if len(fields) != 3 && len(fields) != 4 {
		return nil, false
	}

	b, ok := parseBoard(fields[0])
	if !ok {
		return nil, false
	}
	c, ok := parseColor(fields[1])
	if !ok {
		return nil, false
	}
	captured, ok := parseCaptured(fields[2])
	if !ok {
		return nil, false
	}

	pos = &Position{Board: b, Color: c, Captured: captured}
	if len(fields) == 4 {
		n, err := strconv.Atoi(fields[3])
		if err != nil || n < 1 {
			return nil, false
		}
		pos.MoveNumber = n
	}
	return pos, true
}

// Game creates a game from the position.
func (p *Position) Game() *game.Game {
	return game.NewGame(p.Board, p.Color, p.Captured)
}

// parseBoard parses the piece placement field. Ranks run from a to i and
// each rank lists files 9 to 1.
func parseBoard(field string) (*board.Board, bool) {
	ranks := strings.Split(field, "/")
	if len(ranks) != board.NumRanks {
		return nil, false
	}

	b := &board.Board{}
	for i, rankStr := range ranks {
		rank := board.RankA + board.Rank(i)
		filled := 0
		promoted := false

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			switch {
			case c == '+':
				if promoted {
					return nil, false
				}
				promoted = true
			case c >= '1' && c <= '9':
				if promoted {
					return nil, false
				}
				filled += int(c - '0')
				if filled > board.NumFiles {
					return nil, false
				}
			default:
				p := board.PieceFromChar(c, promoted)
				if p == board.NoPiece || filled >= board.NumFiles {
					return nil, false
				}
				b.SetPiece(board.NewSquare(board.File9-board.File(filled), rank), p)
				filled++
				promoted = false
			}
		}

		if promoted || filled != board.NumFiles {
			return nil, false
		}
	}

	return b, true
}

func parseColor(field string) (board.Color, bool) {
	switch field {
	case "b":
		return board.Black, true
	case "w":
		return board.White, true
	default:
		return board.NoColor, false
	}
}

// parseCaptured parses the pool field: "-" or runs of [count]['+']letter.
func parseCaptured(field string) ([]board.Piece, bool) {
	pieces := []board.Piece{}
	if field == "-" {
		return pieces, true
	}

	count, hasCount := 0, false
	promoted := false
	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c >= '0' && c <= '9':
			if promoted {
				return nil, false
			}
			count = count*10 + int(c-'0')
			hasCount = true
			if count > maxPooled {
				return nil, false
			}
		case c == '+':
			if promoted {
				return nil, false
			}
			promoted = true
		default:
			p := board.PieceFromChar(c, promoted)
			if p == board.NoPiece || (hasCount && count == 0) {
				return nil, false
			}
			if !hasCount {
				count = 1
			}
			for k := 0; k < count; k++ {
				pieces = append(pieces, p)
			}
			count, hasCount = 0, false
			promoted = false
		}
	}

	if hasCount || promoted {
		return nil, false
	}
	return pieces, true
}

// String returns the SFEN representation of the position.
func (p *Position) String() string {
	var sb strings.Builder

	b := p.Board
	if b == nil {
		b = &board.Board{}
	}
	for r := board.RankA; r <= board.RankI; r++ {
		empty := 0
		for f := board.File9; ; f-- {
			piece := b.PieceAt(board.NewSquare(f, r))
			if piece == board.NoPiece {
				empty++
			} else {
				if empty > 0 {
					sb.WriteString(strconv.Itoa(empty))
					empty = 0
				}
				sb.WriteString(piece.String())
			}
			if f == board.File1 {
				break
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r < board.RankI {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.Color == board.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if len(p.Captured) == 0 {
		sb.WriteByte('-')
	}
	for i := 0; i < len(p.Captured); {
		j := i
		for j < len(p.Captured) && p.Captured[j] == p.Captured[i] {
			j++
		}
		if j-i > 1 {
			sb.WriteString(strconv.Itoa(j - i))
		}
		sb.WriteString(p.Captured[i].String())
		i = j
	}

	if p.MoveNumber > 0 {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(p.MoveNumber))
	}

	return sb.String()
}

// Format returns the SFEN string of a game. A moveNumber of 0 omits the field.
func Format(g *game.Game, moveNumber int) string {
	pos := &Position{
		Board:      g.Board(),
		Color:      g.Color(),
		Captured:   g.CapturedPieces(),
		MoveNumber: moveNumber,
	}
	return pos.String()
}
