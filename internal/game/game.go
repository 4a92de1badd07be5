// Package game implements shogi move validation and application on top of
// the board package.
package game

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/jiro/shogi/internal/board"
)

// Game is a shogi position: the board, the side to move and the pool of
// captured pieces held by both sides.
type Game struct {
	board    board.Board
	color    board.Color
	captured []board.Piece
}

// New returns a game on an empty board with black to move and an empty pool.
func New() *Game {
	return &Game{color: board.Black}
}

// NewGame creates a game from a board, the side to move and a captured-piece
// pool. A nil board is empty. The pool is copied and sorted.
func NewGame(b *board.Board, c board.Color, captured []board.Piece) *Game {
	g := &Game{color: c, captured: slices.Clone(captured)}
	if b != nil {
		g.board = *b
	}
	g.sortCaptured()
	return g
}

// Copy creates a deep copy of the game.
func (g *Game) Copy() *Game {
	return &Game{
		board:    g.board,
		color:    g.color,
		captured: slices.Clone(g.captured),
	}
}

// Board returns a copy of the board.
func (g *Game) Board() *board.Board {
	return g.board.Copy()
}

// Color returns the side to move.
func (g *Game) Color() board.Color {
	return g.color
}

// CapturedPieces returns a copy of the captured-piece pool: black's pieces
// first, higher kinds before lower ones.
func (g *Game) CapturedPieces() []board.Piece {
	return slices.Clone(g.captured)
}

// InCheck returns true if the side to move has its king attacked.
func (g *Game) InCheck() bool {
	return g.board.IsKingChecked(g.color)
}

func (g *Game) sortCaptured() {
	slices.SortStableFunc(g.captured, comparePooled)
}

func comparePooled(a, b board.Piece) int {
	if a.Color() != b.Color() {
		return int(a.Color()) - int(b.Color())
	}
	switch {
	case b.Kind().Less(a.Kind()):
		return -1
	case a.Kind().Less(b.Kind()):
		return 1
	}
	return 0
}

// Perform validates m and applies it. On error the game is left unchanged.
func (g *Game) Perform(m Move) error {
	if err := g.Validate(m); err != nil {
		return fmt.Errorf("move %s: %w", m, err)
	}
	g.apply(m)
	return nil
}

// apply plays a move already known to be valid.
func (g *Game) apply(m Move) {
	p := m.Piece()

	if m.IsDrop() {
		i := slices.Index(g.captured, p)
		g.captured = slices.Delete(g.captured, i, i+1)
	} else {
		g.board.SetPiece(m.From(), board.NoPiece)
	}

	if target := g.board.PieceAt(m.To()); target != board.NoPiece {
		g.captured = append(g.captured, target.Captured(g.color))
		g.sortCaptured()
	}

	if m.Promote() {
		p = p.Promoted()
	}
	g.board.SetPiece(m.To(), p)

	g.color = g.color.Other()
}

// Validate checks m against the rules in order and returns the first
// violation, or nil if the move is legal.
func (g *Game) Validate(m Move) error {
	if err := g.validateSource(m); err != nil {
		return err
	}
	if err := g.validateDestination(m); err != nil {
		return err
	}
	if err := g.validateAttack(m); err != nil {
		return err
	}
	if m.Promote() {
		if err := g.validatePromotion(m); err != nil {
			return err
		}
	}
	return g.validateKingSafety(m)
}

func (g *Game) validateSource(m Move) error {
	p := m.Piece()
	if m.IsDrop() {
		if !slices.Contains(g.captured, p) {
			return ErrCapturedPieceDoesNotExist
		}
	} else if p == board.NoPiece || g.board.PieceAt(m.From()) != p {
		return ErrBoardPieceDoesNotExist
	}

	if p.Color() != g.color {
		return ErrInvalidPieceColor
	}
	return nil
}

func (g *Game) validateDestination(m Move) error {
	to := m.To()
	if !to.IsValid() {
		return ErrIllegalAttack
	}

	target := g.board.PieceAt(to)
	if target != board.NoPiece && target.Color() == g.color {
		return ErrFriendlyPieceAlreadyExists
	}
	return nil
}

// validateAttack only applies to board moves; a drop may land on any empty square.
func (g *Game) validateAttack(m Move) error {
	if m.IsDrop() {
		return nil
	}
	if !g.board.IsAttackable(m.From(), m.To()) {
		return ErrIllegalAttack
	}
	return nil
}

func (g *Game) validatePromotion(m Move) error {
	p := m.Piece()
	if p.IsPromoted() {
		return ErrPieceAlreadyPromoted
	}
	if !p.CanPromote() {
		return ErrPieceCannotPromote
	}

	if m.IsDrop() {
		return ErrIllegalCapturedPiecePromotion
	}
	if !m.From().InPromotionZone(g.color) && !m.To().InPromotionZone(g.color) {
		return ErrIllegalBoardPiecePromotion
	}
	return nil
}

func (g *Game) validateKingSafety(m Move) error {
	p := m.Piece()
	if m.Promote() {
		p = p.Promoted()
	}
	if g.board.IsKingCheckedByMovingPiece(p, m.From(), m.To()) {
		return ErrKingPieceIsChecked
	}
	return nil
}

// ValidMoves returns every legal move for the side to move. Board moves come
// first, ordered by source then destination square, each with and without
// promotion; drops follow in pool order onto every empty square.
func (g *Game) ValidMoves() []Move {
	candidates := g.candidateMoves()
	moves := candidates[:0]
	for _, m := range candidates {
		if g.Validate(m) == nil {
			moves = append(moves, m)
		}
	}
	return moves
}

// ValidMovesFrom returns the legal moves of piece p from square from. Use
// board.NoSquare as from to get the drops of a pooled piece.
func (g *Game) ValidMovesFrom(from board.Square, p board.Piece) []Move {
	var moves []Move
	for _, m := range g.ValidMoves() {
		if m.From() == from && m.Piece() == p {
			moves = append(moves, m)
		}
	}
	return moves
}

// candidateMoves generates every geometrically reachable move without
// checking legality.
func (g *Game) candidateMoves() []Move {
	var moves []Move

	g.board.OccupiedBy(g.color).ForEach(func(from board.Square) {
		p := g.board.PieceAt(from)
		g.board.Attacks(from).ForEach(func(to board.Square) {
			moves = append(moves, NewMove(from, to, p, true), NewMove(from, to, p, false))
		})
	})

	empty := g.board.Occupied().Not()
	for i, p := range g.captured {
		if p.Color() != g.color || slices.Contains(g.captured[:i], p) {
			continue
		}
		empty.ForEach(func(to board.Square) {
			moves = append(moves, NewDrop(p, to))
		})
	}

	return moves
}
