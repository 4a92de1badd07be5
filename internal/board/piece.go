package board

// Color represents the side owning a piece or having the move.
type Color uint8

const (
	Black Color = iota
	White
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "NoColor"
	}
}

// State tells whether a piece has been promoted.
type State uint8

const (
	Normal State = iota
	Promoted
)

// Kind is the kind of a piece including its promotion state.
// A promoted kind is its base kind plus promotedFlag.
type Kind uint8

const (
	Pawn Kind = iota
	Lance
	Knight
	Silver
	Gold
	Bishop
	Rook
	King
	PromotedPawn
	PromotedLance
	PromotedKnight
	PromotedSilver
	_ // gold never promotes
	PromotedBishop
	PromotedRook
	NoKind Kind = 15
)

const promotedFlag Kind = 8

// Kinds lists the 14 distinct kinds.
var Kinds = [...]Kind{
	Pawn, Lance, Knight, Silver, Gold, Bishop, Rook, King,
	PromotedPawn, PromotedLance, PromotedKnight, PromotedSilver, PromotedBishop, PromotedRook,
}

// NumKinds is the number of distinct kinds.
const NumKinds = len(Kinds)

// NewKind creates a kind from a base kind and a state. Gold and king
// ignore the state.
func NewKind(base Kind, s State) Kind {
	base = base.Base()
	if s == Promoted {
		return base.Promoted()
	}
	return base
}

// IsValid returns true if k is one of the 14 kinds.
func (k Kind) IsValid() bool {
	return k < NoKind && k != Gold|promotedFlag
}

// Base returns the unpromoted kind.
func (k Kind) Base() Kind {
	return k &^ promotedFlag
}

// State returns the promotion state of the kind.
func (k Kind) State() State {
	if k&promotedFlag != 0 {
		return Promoted
	}
	return Normal
}

// IsPromoted returns true for promoted kinds.
func (k Kind) IsPromoted() bool {
	return k.State() == Promoted
}

// CanPromote returns true if the kind has a promoted form it is not already in.
func (k Kind) CanPromote() bool {
	return !k.IsPromoted() && k != Gold && k != King
}

// Promoted returns the promoted form. Gold, king and promoted kinds are unchanged.
func (k Kind) Promoted() Kind {
	if !k.CanPromote() {
		return k
	}
	return k | promotedFlag
}

// Unpromoted returns the normal form.
func (k Kind) Unpromoted() Kind {
	return k.Base()
}

// Less orders kinds by base kind (pawn lowest, king highest), then normal
// before promoted.
func (k Kind) Less(o Kind) bool {
	if k.Base() != o.Base() {
		return k.Base() < o.Base()
	}
	return k.State() < o.State()
}

// String returns the kind name.
func (k Kind) String() string {
	names := [...]string{
		Pawn: "Pawn", Lance: "Lance", Knight: "Knight", Silver: "Silver",
		Gold: "Gold", Bishop: "Bishop", Rook: "Rook", King: "King",
	}
	if !k.IsValid() {
		return "None"
	}
	if k.IsPromoted() {
		return "Promoted" + names[k.Base()]
	}
	return names[k]
}

// Char returns the SFEN letter of the base kind (uppercase).
func (k Kind) Char() byte {
	chars := "PLNSGBRK"
	if !k.IsValid() {
		return ' '
	}
	return chars[k.Base()]
}

// Piece combines a Kind and a Color into a single value.
// Encoded as: kind + color*16
type Piece uint8

// NoPiece marks an empty square.
const NoPiece Piece = 0xFF

// NumPieces is the number of distinct pieces (14 kinds for each color).
const NumPieces = NumKinds * 2

// AllPieces lists every piece, black pieces first.
var AllPieces = initAllPieces()

func initAllPieces() [NumPieces]Piece {
	var pieces [NumPieces]Piece
	i := 0
	for c := Black; c <= White; c++ {
		for _, k := range Kinds {
			pieces[i] = NewPiece(k, c)
			i++
		}
	}
	return pieces
}

// NewPiece creates a Piece from a Kind and a Color.
func NewPiece(k Kind, c Color) Piece {
	if !k.IsValid() || c >= NoColor {
		return NoPiece
	}
	return Piece(k) | Piece(c)<<4
}

// Kind returns the kind of the piece.
func (p Piece) Kind() Kind {
	if p == NoPiece {
		return NoKind
	}
	return Kind(p & 0x0F)
}

// Color returns the color of the piece.
func (p Piece) Color() Color {
	if p == NoPiece {
		return NoColor
	}
	return Color(p >> 4)
}

// IsPromoted returns true if the piece is promoted.
func (p Piece) IsPromoted() bool {
	return p.Kind().IsPromoted()
}

// CanPromote returns true if the piece may still promote.
func (p Piece) CanPromote() bool {
	return p != NoPiece && p.Kind().CanPromote()
}

// Promoted returns the piece in its promoted form.
func (p Piece) Promoted() Piece {
	return NewPiece(p.Kind().Promoted(), p.Color())
}

// Unpromoted returns the piece in its normal form.
func (p Piece) Unpromoted() Piece {
	return NewPiece(p.Kind().Unpromoted(), p.Color())
}

// Captured returns the piece as it enters the hand of color by:
// unpromoted and owned by the capturer.
func (p Piece) Captured(by Color) Piece {
	return NewPiece(p.Kind().Unpromoted(), by)
}

// index returns the position of the piece in AllPieces.
func (p Piece) index() int {
	k := p.Kind()
	i := int(k.Base())
	if k.IsPromoted() {
		// Promoted kinds follow the 8 base kinds, skipping the gold slot.
		i = int(King) + 1 + int(k.Base())
		if k.Base() > Gold {
			i--
		}
	}
	return int(p.Color())*NumKinds + i
}

// String returns the SFEN notation for the piece.
// Uppercase for black, lowercase for white, "+" prefix when promoted.
func (p Piece) String() string {
	if p == NoPiece {
		return " "
	}
	c := p.Kind().Char()
	if p.Color() == White {
		c += 'a' - 'A'
	}
	if p.IsPromoted() {
		return "+" + string(c)
	}
	return string(c)
}

// PieceFromChar converts an SFEN letter to a Piece.
func PieceFromChar(c byte, promoted bool) Piece {
	color := Black
	if c >= 'a' && c <= 'z' {
		color = White
		c -= 'a' - 'A'
	}

	var k Kind
	switch c {
	case 'P':
		k = Pawn
	case 'L':
		k = Lance
	case 'N':
		k = Knight
	case 'S':
		k = Silver
	case 'G':
		k = Gold
	case 'B':
		k = Bishop
	case 'R':
		k = Rook
	case 'K':
		k = King
	default:
		return NoPiece
	}

	if promoted {
		if !k.CanPromote() {
			return NoPiece
		}
		k = k.Promoted()
	}
	return NewPiece(k, color)
}
