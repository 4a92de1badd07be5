package sfen

import (
	"fmt"

	"github.com/jiro/shogi/internal/board"
	"github.com/jiro/shogi/internal/game"
)

// ParseMove parses a USI move string ("7g7f", "8h2b+", "G*5e") for the side
// to move in g. The move is not validated.
func ParseMove(s string, g *game.Game) (game.Move, error) {
	if len(s) == 4 && s[1] == '*' {
		if s[0] < 'A' || s[0] > 'Z' {
			return game.NoMove, fmt.Errorf("invalid drop piece: %c", s[0])
		}
		p := board.PieceFromChar(s[0], false)
		if p == board.NoPiece {
			return game.NoMove, fmt.Errorf("invalid drop piece: %c", s[0])
		}
		to, err := board.ParseSquare(s[2:4])
		if err != nil {
			return game.NoMove, err
		}
		return game.NewDrop(board.NewPiece(p.Kind(), g.Color()), to), nil
	}

	if len(s) != 4 && len(s) != 5 {
		return game.NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := board.ParseSquare(s[0:2])
	if err != nil {
		return game.NoMove, err
	}
	to, err := board.ParseSquare(s[2:4])
	if err != nil {
		return game.NoMove, err
	}

	promote := false
	if len(s) == 5 {
		if s[4] != '+' {
			return game.NoMove, fmt.Errorf("invalid promotion suffix: %c", s[4])
		}
		promote = true
	}

	p := g.Board().PieceAt(from)
	if p == board.NoPiece {
		return game.NoMove, fmt.Errorf("no piece at %s", from)
	}

	return game.NewMove(from, to, p, promote), nil
}
