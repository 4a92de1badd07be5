package board

import "strings"

// Bitboard is a set of squares, one bit per square.
// Bit 0 = OneA, Bit 8 = OneI, Bit 80 = NineI. Bits 81-127 are always zero.
type Bitboard struct {
	v uint128
}

// boardMask keeps the low 81 bits.
var boardMask = uint128{hi: 0x1ffff, lo: 0xffffffffffffffff}

// Special masks
var (
	Empty    = Bitboard{}
	Universe = Bitboard{v: boardMask}
)

var (
	fileMasks      = initFileMasks()
	rankMasks      = initRankMasks()
	promotionZones = [2]Bitboard{
		Black: rankMasks[RankA].Or(rankMasks[RankB]).Or(rankMasks[RankC]),
		White: rankMasks[RankG].Or(rankMasks[RankH]).Or(rankMasks[RankI]),
	}
)

func initFileMasks() [NumFiles]Bitboard {
	var masks [NumFiles]Bitboard
	for f := File1; f <= File9; f++ {
		for r := RankA; r <= RankI; r++ {
			masks[f] = masks[f].Set(NewSquare(f, r))
		}
	}
	return masks
}

func initRankMasks() [NumRanks]Bitboard {
	var masks [NumRanks]Bitboard
	for r := RankA; r <= RankI; r++ {
		for f := File1; f <= File9; f++ {
			masks[r] = masks[r].Set(NewSquare(f, r))
		}
	}
	return masks
}

// FileMask returns the squares of a file.
func FileMask(f File) Bitboard {
	return fileMasks[f]
}

// RankMask returns the squares of a rank.
func RankMask(r Rank) Bitboard {
	return rankMasks[r]
}

// PromotionZone returns the three ranks in which pieces of color c may promote.
func PromotionZone(c Color) Bitboard {
	return promotionZones[c]
}

func newBitboard(v uint128) Bitboard {
	return Bitboard{v: v.and(boardMask)}
}

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	if !sq.IsValid() {
		return Empty
	}
	return Bitboard{v: uint128{lo: 1}.lsh(int(sq))}
}

// Set sets the bit at the given square.
func (b Bitboard) Set(sq Square) Bitboard {
	return b.Or(SquareBB(sq))
}

// Clear clears the bit at the given square.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b.AndNot(SquareBB(sq))
}

// Assign sets or clears the bit at the given square.
func (b Bitboard) Assign(sq Square, on bool) Bitboard {
	if on {
		return b.Set(sq)
	}
	return b.Clear(sq)
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b.Intersects(SquareBB(sq))
}

// Or returns the union of two bitboards.
func (b Bitboard) Or(o Bitboard) Bitboard {
	return newBitboard(b.v.or(o.v))
}

// And returns the intersection of two bitboards.
func (b Bitboard) And(o Bitboard) Bitboard {
	return newBitboard(b.v.and(o.v))
}

// AndNot returns the squares of b that are not in o.
func (b Bitboard) AndNot(o Bitboard) Bitboard {
	return newBitboard(b.v.andNot(o.v))
}

// Not returns the complement within the 81 board squares.
func (b Bitboard) Not() Bitboard {
	return newBitboard(b.v.not())
}

// Intersects returns true if the two bitboards share a square.
func (b Bitboard) Intersects(o Bitboard) bool {
	return !b.v.and(o.v).isZero()
}

// Empty returns true if no bits are set.
func (b Bitboard) Empty() bool {
	return b.v.isZero()
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return b.v.onesCount()
}

// LSB returns the lowest set square, or NoSquare if empty.
func (b Bitboard) LSB() Square {
	if b.Empty() {
		return NoSquare
	}
	return Square(b.v.trailingZeros())
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b = b.Clear(sq)
	return sq
}

// ForEach calls the function for each set square in ascending order.
func (b Bitboard) ForEach(f func(Square)) {
	for !b.Empty() {
		f(b.PopLSB())
	}
}

// Squares returns a slice of all squares that are set, in ascending order.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for !b.Empty() {
		squares = append(squares, b.PopLSB())
	}
	return squares
}

// Shift moves every square one step in the given direction.
// Squares that would leave the board are dropped rather than wrapped.
func (b Bitboard) Shift(d Direction) Bitboard {
	info := &directions[d]
	return newBitboard(b.v.andNot(info.guard.v).lsh(info.shift))
}

// fill casts a ray from the squares of b toward d. The ray includes the
// first square in stoppers and goes no further.
func (b Bitboard) fill(d Direction, stoppers Bitboard) Bitboard {
	ray := b
	for {
		prev := ray
		ray = ray.Or(ray.Shift(d)).AndNot(b)
		if ray.Intersects(stoppers) || ray == prev {
			return ray
		}
	}
}

// AttacksFor returns the squares attacked by piece p standing on from.
// Far-reaching attacks stop at the first square in stoppers, inclusive.
func AttacksFor(p Piece, from Square, stoppers Bitboard) Bitboard {
	origin := SquareBB(from)
	attacks := Empty
	for _, a := range p.Attacks() {
		if a.FarReaching {
			attacks = attacks.Or(origin.fill(a.Direction, stoppers))
		} else {
			attacks = attacks.Or(origin.Shift(a.Direction))
		}
	}
	return attacks
}

// String returns a visual representation of the bitboard as seen by black.
func (b Bitboard) String() string {
	var sb strings.Builder
	sb.WriteString("  9 8 7 6 5 4 3 2 1\n")
	for r := RankA; r <= RankI; r++ {
		sb.WriteByte('a' + byte(r))
		sb.WriteByte(' ')
		for f := File9; ; f-- {
			if b.IsSet(NewSquare(f, r)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
			if f == File1 {
				break
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
