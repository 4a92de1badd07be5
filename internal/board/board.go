package board

import (
	"fmt"
	"strings"
)

// Board maps squares to pieces with one bitboard per piece.
// The bitboards are pairwise disjoint. The zero value is an empty board.
type Board struct {
	pieces [NumPieces]Bitboard
}

// NewBoard returns a board initialized from a square-to-piece mapping.
func NewBoard(m map[Square]Piece) *Board {
	b := &Board{}
	for sq, p := range m {
		b.SetPiece(sq, p)
	}
	return b
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := *b
	return &newBoard
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (b *Board) PieceAt(sq Square) Piece {
	bb := SquareBB(sq)
	if bb.Empty() {
		return NoPiece
	}
	for i, pieces := range b.pieces {
		if pieces.Intersects(bb) {
			return AllPieces[i]
		}
	}
	return NoPiece
}

// SetPiece places p on sq, replacing whatever was there. NoPiece empties the square.
func (b *Board) SetPiece(sq Square, p Piece) {
	if !sq.IsValid() {
		return
	}
	for i := range b.pieces {
		b.pieces[i] = b.pieces[i].Clear(sq)
	}
	if p != NoPiece {
		i := p.index()
		b.pieces[i] = b.pieces[i].Set(sq)
	}
}

// Pieces returns the squares occupied by p.
func (b *Board) Pieces(p Piece) Bitboard {
	if p == NoPiece {
		return Empty
	}
	return b.pieces[p.index()]
}

// Occupied returns all occupied squares.
func (b *Board) Occupied() Bitboard {
	occupied := Empty
	for _, pieces := range b.pieces {
		occupied = occupied.Or(pieces)
	}
	return occupied
}

// OccupiedBy returns the squares occupied by pieces of color c.
func (b *Board) OccupiedBy(c Color) Bitboard {
	occupied := Empty
	for _, pieces := range b.pieces[int(c)*NumKinds : int(c+1)*NumKinds] {
		occupied = occupied.Or(pieces)
	}
	return occupied
}

// OccupiedSquares returns the squares occupied by color c in ascending order.
func (b *Board) OccupiedSquares(c Color) []Square {
	return b.OccupiedBy(c).Squares()
}

// EmptySquares returns the unoccupied squares in ascending order.
func (b *Board) EmptySquares() []Square {
	return b.Occupied().Not().Squares()
}

// Attacks returns the squares attacked by the piece on from.
func (b *Board) Attacks(from Square) Bitboard {
	p := b.PieceAt(from)
	if p == NoPiece {
		return Empty
	}
	return AttacksFor(p, from, b.Occupied())
}

// IsAttackable returns true if the piece on from attacks to.
func (b *Board) IsAttackable(from, to Square) bool {
	return b.Attacks(from).IsSet(to)
}

// AttackableSquares returns the squares attacked by the piece on from.
func (b *Board) AttackableSquares(from Square) []Square {
	return b.Attacks(from).Squares()
}

// AttackersOf returns the squares of color c whose pieces attack to.
func (b *Board) AttackersOf(to Square, c Color) []Square {
	var attackers []Square
	occupied := b.Occupied()
	b.OccupiedBy(c).ForEach(func(from Square) {
		if AttacksFor(b.PieceAt(from), from, occupied).IsSet(to) {
			attackers = append(attackers, from)
		}
	})
	return attackers
}

// KingSquare returns the square of c's king, or NoSquare if c has none.
func (b *Board) KingSquare(c Color) Square {
	return b.Pieces(NewPiece(King, c)).LSB()
}

// IsKingChecked returns true if c's king is attacked by the other color.
// A board without c's king is never in check.
func (b *Board) IsKingChecked(c Color) bool {
	ksq := b.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return len(b.AttackersOf(ksq, c.Other())) > 0
}

// IsKingCheckedByMovingPiece returns true if moving p from from to to would
// leave p's own king attacked. from is NoSquare for a drop. The move itself
// is not checked for legality.
func (b *Board) IsKingCheckedByMovingPiece(p Piece, from, to Square) bool {
	hypothetical := b.Copy()
	if from != NoSquare {
		hypothetical.SetPiece(from, NoPiece)
	}
	hypothetical.SetPiece(to, p)
	return hypothetical.IsKingChecked(p.Color())
}

// String returns a visual representation of the board as seen by black.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("\n    9  8  7  6  5  4  3  2  1\n")
	for r := RankA; r <= RankI; r++ {
		fmt.Fprintf(&sb, "%c  ", 'a'+byte(r))
		for f := File9; ; f-- {
			p := b.PieceAt(NewSquare(f, r))
			switch {
			case p == NoPiece:
				sb.WriteString(" . ")
			case p.IsPromoted():
				sb.WriteString(p.String() + " ")
			default:
				sb.WriteString(" " + p.String() + " ")
			}
			if f == File1 {
				break
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
