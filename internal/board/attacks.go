package board

// Attack is one direction a piece attacks in. A far-reaching attack slides
// until it hits an occupied square; otherwise it covers a single step.
type Attack struct {
	Direction   Direction
	FarReaching bool
}

// Attack tables for each [Color][Kind]. Black's table is written out below;
// white's is the vertical mirror.
var attackTable = initAttackTables()

func steps(dirs ...Direction) []Attack {
	attacks := make([]Attack, len(dirs))
	for i, d := range dirs {
		attacks[i] = Attack{Direction: d}
	}
	return attacks
}

func slides(dirs ...Direction) []Attack {
	attacks := steps(dirs...)
	for i := range attacks {
		attacks[i].FarReaching = true
	}
	return attacks
}

func initAttackTables() [2][NoKind][]Attack {
	var table [2][NoKind][]Attack
	goldLike := steps(North, South, East, West, NorthEast, NorthWest)
	kingLike := steps(North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest)

	black := &table[Black]
	black[Pawn] = steps(North)
	black[Lance] = slides(North)
	black[Knight] = steps(NorthNorthEast, NorthNorthWest)
	black[Silver] = steps(North, NorthEast, NorthWest, SouthEast, SouthWest)
	black[Gold] = goldLike
	black[Bishop] = slides(NorthEast, NorthWest, SouthEast, SouthWest)
	black[Rook] = slides(North, South, East, West)
	black[King] = kingLike
	black[PromotedPawn] = goldLike
	black[PromotedLance] = goldLike
	black[PromotedKnight] = goldLike
	black[PromotedSilver] = goldLike
	black[PromotedBishop] = append(steps(North, South, East, West), slides(NorthEast, NorthWest, SouthEast, SouthWest)...)
	black[PromotedRook] = append(slides(North, South, East, West), steps(NorthEast, NorthWest, SouthEast, SouthWest)...)

	for _, k := range Kinds {
		mirrored := make([]Attack, len(black[k]))
		for i, a := range black[k] {
			mirrored[i] = Attack{Direction: a.Direction.Flipped(), FarReaching: a.FarReaching}
		}
		table[White][k] = mirrored
	}
	return table
}

// Attacks returns the attack directions of the piece. The slice is shared
// and must not be modified.
func (p Piece) Attacks() []Attack {
	if p == NoPiece {
		return nil
	}
	return attackTable[p.Color()][p.Kind()]
}
