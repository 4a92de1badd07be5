// Package board implements the shogi board representation using 81-bit bitboards.
package board

import "fmt"

// File is a board file. File1 is the rightmost file from black's side.
type File uint8

const (
	File1 File = iota
	File2
	File3
	File4
	File5
	File6
	File7
	File8
	File9
)

// Rank is a board rank. RankA is the rank nearest to white.
type Rank uint8

const (
	RankA Rank = iota
	RankB
	RankC
	RankD
	RankE
	RankF
	RankG
	RankH
	RankI
)

// Board dimensions.
const (
	NumFiles   = 9
	NumRanks   = 9
	NumSquares = NumFiles * NumRanks
)

// Square is one of the 81 squares (0-80).
// Squares are laid out file by file: OneA=0, OneI=8, TwoA=9, NineI=80.
type Square uint8

// Square constants for all 81 squares.
const (
	OneA Square = iota
	OneB
	OneC
	OneD
	OneE
	OneF
	OneG
	OneH
	OneI
	TwoA
	TwoB
	TwoC
	TwoD
	TwoE
	TwoF
	TwoG
	TwoH
	TwoI
	ThreeA
	ThreeB
	ThreeC
	ThreeD
	ThreeE
	ThreeF
	ThreeG
	ThreeH
	ThreeI
	FourA
	FourB
	FourC
	FourD
	FourE
	FourF
	FourG
	FourH
	FourI
	FiveA
	FiveB
	FiveC
	FiveD
	FiveE
	FiveF
	FiveG
	FiveH
	FiveI
	SixA
	SixB
	SixC
	SixD
	SixE
	SixF
	SixG
	SixH
	SixI
	SevenA
	SevenB
	SevenC
	SevenD
	SevenE
	SevenF
	SevenG
	SevenH
	SevenI
	EightA
	EightB
	EightC
	EightD
	EightE
	EightF
	EightG
	EightH
	EightI
	NineA
	NineB
	NineC
	NineD
	NineE
	NineF
	NineG
	NineH
	NineI
	NoSquare Square = NumSquares
)

// NewSquare creates a square from a file and a rank.
func NewSquare(f File, r Rank) Square {
	return Square(int(f)*NumRanks + int(r))
}

// File returns the file of the square.
func (sq Square) File() File {
	return File(int(sq) / NumRanks)
}

// Rank returns the rank of the square.
func (sq Square) Rank() Rank {
	return Rank(int(sq) % NumRanks)
}

// IsValid returns true if the square is on the board.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns the USI notation for the square (e.g., "7g").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", '1'+byte(sq.File()), 'a'+byte(sq.Rank()))
}

// ParseSquare parses USI notation (e.g., "7g") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	file := int(s[0]) - '1'
	rank := int(s[1]) - 'a'

	if file < 0 || file >= NumFiles || rank < 0 || rank >= NumRanks {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	return NewSquare(File(file), Rank(rank)), nil
}

// SquaresOnFile returns the squares of a file from rank a to rank i.
func SquaresOnFile(f File) []Square {
	squares := make([]Square, 0, NumRanks)
	for r := RankA; r <= RankI; r++ {
		squares = append(squares, NewSquare(f, r))
	}
	return squares
}

// SquaresOnRank returns the squares of a rank from file 1 to file 9.
func SquaresOnRank(r Rank) []Square {
	squares := make([]Square, 0, NumFiles)
	for f := File1; f <= File9; f++ {
		squares = append(squares, NewSquare(f, r))
	}
	return squares
}

// InPromotionZone returns true if the square lies in the three ranks
// nearest to the opponent of c.
func (sq Square) InPromotionZone(c Color) bool {
	return PromotionZone(c).IsSet(sq)
}
