package board

// Direction is a step vector on the board, from black's point of view.
// North points toward rank a, east toward file 1.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
	NorthNorthEast
	NorthNorthWest
	SouthSouthEast
	SouthSouthWest
	NumDirections
)

// Bit deltas of the unit steps. Squares are stored file by file, so a rank
// step moves one bit and a file step moves a whole file.
const (
	northShift = -1
	southShift = 1
	eastShift  = -NumRanks
	westShift  = NumRanks
)

type directionInfo struct {
	name  string
	north int // number of north steps
	south int // number of south steps
	east  int
	west  int
	flip  Direction
	shift int
	guard Bitboard // squares whose bits would wrap onto another file
}

var directions = initDirections()

func initDirections() [NumDirections]directionInfo {
	infos := [NumDirections]directionInfo{
		North:          {name: "North", north: 1, flip: South},
		South:          {name: "South", south: 1, flip: North},
		East:           {name: "East", east: 1, flip: East},
		West:           {name: "West", west: 1, flip: West},
		NorthEast:      {name: "NorthEast", north: 1, east: 1, flip: SouthEast},
		NorthWest:      {name: "NorthWest", north: 1, west: 1, flip: SouthWest},
		SouthEast:      {name: "SouthEast", south: 1, east: 1, flip: NorthEast},
		SouthWest:      {name: "SouthWest", south: 1, west: 1, flip: NorthWest},
		NorthNorthEast: {name: "NorthNorthEast", north: 2, east: 1, flip: SouthSouthEast},
		NorthNorthWest: {name: "NorthNorthWest", north: 2, west: 1, flip: SouthSouthWest},
		SouthSouthEast: {name: "SouthSouthEast", south: 2, east: 1, flip: NorthNorthEast},
		SouthSouthWest: {name: "SouthSouthWest", south: 2, west: 1, flip: NorthNorthWest},
	}

	for d := range infos {
		info := &infos[d]
		info.shift = info.north*northShift + info.south*southShift +
			info.east*eastShift + info.west*westShift

		// A bit stepping north off rank a would land on rank i of the
		// neighbouring file, so those ranks are cleared before shifting.
		guard := Empty
		for r := 0; r < info.north; r++ {
			guard = guard.Or(RankMask(RankA + Rank(r)))
		}
		for r := 0; r < info.south; r++ {
			guard = guard.Or(RankMask(RankI - Rank(r)))
		}
		info.guard = guard
	}
	return infos
}

// Shift returns the signed bit delta of one step in the direction.
func (d Direction) Shift() int {
	return directions[d].shift
}

// ContainsNorth returns true if the direction has a northward component.
func (d Direction) ContainsNorth() bool {
	return directions[d].north > 0
}

// ContainsSouth returns true if the direction has a southward component.
func (d Direction) ContainsSouth() bool {
	return directions[d].south > 0
}

// Flipped returns the direction mirrored vertically (north and south swapped).
func (d Direction) Flipped() Direction {
	return directions[d].flip
}

// String returns the direction name.
func (d Direction) String() string {
	if d >= NumDirections {
		return "None"
	}
	return directions[d].name
}
