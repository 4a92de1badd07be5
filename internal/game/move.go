package game

import "github.com/jiro/shogi/internal/board"

// Move encodes a shogi move in 23 bits:
// bits 0-6:   from square (0-80, board.NoSquare for a drop)
// bits 7-13:  to square (0-80)
// bits 14-21: moving piece
// bit 22:     promotion flag
type Move uint32

const (
	moveSquareMask = 0x7F
	movePieceMask  = 0xFF
	movePromote    = 1 << 22
)

// NoMove represents an invalid or null move.
const NoMove Move = Move(board.NoSquare) | Move(board.NoSquare)<<7 | Move(board.NoPiece)<<14

// NewMove creates a move of piece p from one board square to another.
func NewMove(from, to board.Square, p board.Piece, promote bool) Move {
	m := Move(from) | Move(to)<<7 | Move(p)<<14
	if promote {
		m |= movePromote
	}
	return m
}

// NewDrop creates a move placing p from the captured-piece pool onto to.
func NewDrop(p board.Piece, to board.Square) Move {
	return NewMove(board.NoSquare, to, p, false)
}

// From returns the origin square, or board.NoSquare for a drop.
func (m Move) From() board.Square {
	return board.Square(m & moveSquareMask)
}

// To returns the destination square.
func (m Move) To() board.Square {
	return board.Square((m >> 7) & moveSquareMask)
}

// Piece returns the moving piece as it stands before the move.
func (m Move) Piece() board.Piece {
	return board.Piece((m >> 14) & movePieceMask)
}

// Promote returns true if the piece should promote.
func (m Move) Promote() bool {
	return m&movePromote != 0
}

// IsDrop returns true if the piece comes from the captured-piece pool.
func (m Move) IsDrop() bool {
	return m.From() == board.NoSquare
}

// String returns the USI form of the move (e.g., "7g7f", "8h2b+", "G*5e").
func (m Move) String() string {
	if m == NoMove {
		return "resign"
	}
	if m.IsDrop() {
		return string(m.Piece().Kind().Char()) + "*" + m.To().String()
	}
	s := m.From().String() + m.To().String()
	if m.Promote() {
		s += "+"
	}
	return s
}
