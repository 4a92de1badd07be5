package game

import (
	"errors"
	"testing"

	"golang.org/x/exp/slices"

	"github.com/jiro/shogi/internal/board"
)

var (
	blackKing           = board.NewPiece(board.King, board.Black)
	blackGold           = board.NewPiece(board.Gold, board.Black)
	blackSilver         = board.NewPiece(board.Silver, board.Black)
	blackPawn           = board.NewPiece(board.Pawn, board.Black)
	blackRook           = board.NewPiece(board.Rook, board.Black)
	blackPromotedPawn   = board.NewPiece(board.PromotedPawn, board.Black)
	blackPromotedRook   = board.NewPiece(board.PromotedRook, board.Black)
	blackPromotedSilver = board.NewPiece(board.PromotedSilver, board.Black)
	whiteKing           = board.NewPiece(board.King, board.White)
	whiteGold           = board.NewPiece(board.Gold, board.White)
	whiteSilver         = board.NewPiece(board.Silver, board.White)
	whiteRook           = board.NewPiece(board.Rook, board.White)
	whitePromotedRook   = board.NewPiece(board.PromotedRook, board.White)
)

// validationGame has a pinned gold, a white rook on the open file and a
// small pool for both sides.
//
//	9 8 7 6 5 4 3 2 1
//	s . . . r . . . .  a
//	. . . . . . . . .  b
//	. . . . . . . . +P c
//	...
//	. . . . G . . . .  h
//	. . . . K . . S .  i
func validationGame() *Game {
	b := board.NewBoard(map[board.Square]board.Piece{
		board.FiveI: blackKing,
		board.FiveH: blackGold,
		board.TwoI:  blackSilver,
		board.OneC:  blackPromotedPawn,
		board.FiveA: whiteRook,
		board.NineA: whiteSilver,
	})
	return NewGame(b, board.Black, []board.Piece{whiteGold, blackPawn})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want error
	}{
		{"empty source", NewMove(board.FiveE, board.FiveD, blackPawn, false), ErrBoardPieceDoesNotExist},
		{"wrong piece on source", NewMove(board.FiveH, board.FiveG, blackSilver, false), ErrBoardPieceDoesNotExist},
		{"no piece", NewMove(board.FiveH, board.FiveG, board.NoPiece, false), ErrBoardPieceDoesNotExist},
		{"drop not in pool", NewDrop(blackSilver, board.FiveE), ErrCapturedPieceDoesNotExist},
		{"opponent board piece", NewMove(board.NineA, board.NineB, whiteSilver, false), ErrInvalidPieceColor},
		{"opponent pooled piece", NewDrop(whiteGold, board.FiveE), ErrInvalidPieceColor},
		{"onto own piece", NewMove(board.FiveI, board.FiveH, blackKing, false), ErrFriendlyPieceAlreadyExists},
		{"unreachable square", NewMove(board.TwoI, board.TwoG, blackSilver, false), ErrIllegalAttack},
		{"off the board", NewMove(board.TwoI, board.NoSquare, blackSilver, false), ErrIllegalAttack},
		{"promoted piece promotes", NewMove(board.OneC, board.OneB, blackPromotedPawn, true), ErrPieceAlreadyPromoted},
		{"gold promotes", NewMove(board.FiveH, board.FiveG, blackGold, true), ErrPieceCannotPromote},
		{"king promotes", NewMove(board.FiveI, board.FourH, blackKing, true), ErrPieceCannotPromote},
		{"promotion outside the zone", NewMove(board.TwoI, board.TwoH, blackSilver, true), ErrIllegalBoardPiecePromotion},
		{"promoting drop", NewMove(board.NoSquare, board.FiveE, blackPawn, true), ErrIllegalCapturedPiecePromotion},
		{"pinned gold leaves the file", NewMove(board.FiveH, board.FourH, blackGold, false), ErrKingPieceIsChecked},
		{"pinned gold stays on the file", NewMove(board.FiveH, board.FiveG, blackGold, false), nil},
		{"king steps aside", NewMove(board.FiveI, board.FourH, blackKing, false), nil},
		{"silver steps forward", NewMove(board.TwoI, board.TwoH, blackSilver, false), nil},
		{"promoted pawn moves", NewMove(board.OneC, board.OneB, blackPromotedPawn, false), nil},
		{"pawn drop", NewDrop(blackPawn, board.FiveC), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := validationGame()
			if got := g.Validate(tc.move); got != tc.want {
				t.Errorf("Validate(%v) = %v, want %v", tc.move, got, tc.want)
			}
		})
	}
}

func TestPerformFailureLeavesGameUnchanged(t *testing.T) {
	moves := []struct {
		move Move
		want error
	}{
		{NewMove(board.FiveH, board.FourH, blackGold, false), ErrKingPieceIsChecked},
		{NewMove(board.TwoI, board.TwoG, blackSilver, false), ErrIllegalAttack},
		{NewDrop(blackSilver, board.FiveE), ErrCapturedPieceDoesNotExist},
		{NewMove(board.NoSquare, board.FiveE, blackPawn, true), ErrIllegalCapturedPiecePromotion},
	}

	for _, tc := range moves {
		g := validationGame()
		before := g.Copy()

		err := g.Perform(tc.move)
		if !errors.Is(err, tc.want) {
			t.Errorf("Perform(%v) = %v, want %v", tc.move, err, tc.want)
		}
		if *g.Board() != *before.Board() {
			t.Errorf("Perform(%v) changed the board", tc.move)
		}
		if g.Color() != before.Color() {
			t.Errorf("Perform(%v) changed the side to move", tc.move)
		}
		if !slices.Equal(g.CapturedPieces(), before.CapturedPieces()) {
			t.Errorf("Perform(%v) changed the pool: %v", tc.move, g.CapturedPieces())
		}
	}
}

func TestPerformCaptureWithPromotion(t *testing.T) {
	b := board.NewBoard(map[board.Square]board.Piece{
		board.FiveI: blackRook,
		board.FiveA: whitePromotedRook,
	})
	g := NewGame(b, board.Black, []board.Piece{whiteGold, blackPawn})

	if err := g.Perform(NewMove(board.FiveI, board.FiveA, blackRook, true)); err != nil {
		t.Fatalf("Perform: %v", err)
	}

	if got := g.Board().PieceAt(board.FiveA); got != blackPromotedRook {
		t.Errorf("5a = %v, want %v", got, blackPromotedRook)
	}
	if got := g.Board().PieceAt(board.FiveI); got != board.NoPiece {
		t.Errorf("5i = %v, want empty", got)
	}
	if got := g.Color(); got != board.White {
		t.Errorf("Color() = %v, want White", got)
	}
	want := []board.Piece{blackRook, blackPawn, whiteGold}
	if got := g.CapturedPieces(); !slices.Equal(got, want) {
		t.Errorf("CapturedPieces() = %v, want %v", got, want)
	}
}

func TestPerformDrop(t *testing.T) {
	g := NewGame(nil, board.Black, []board.Piece{blackGold, blackGold, whiteGold})

	if err := g.Perform(NewDrop(blackGold, board.FiveE)); err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if got := g.Board().PieceAt(board.FiveE); got != blackGold {
		t.Errorf("5e = %v, want %v", got, blackGold)
	}
	want := []board.Piece{blackGold, whiteGold}
	if got := g.CapturedPieces(); !slices.Equal(got, want) {
		t.Errorf("CapturedPieces() = %v, want %v", got, want)
	}

	// Drops skip the reach check, so white may drop onto black's gold
	// and capture it.
	if err := g.Perform(NewDrop(whiteGold, board.FiveE)); err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if got := g.Board().PieceAt(board.FiveE); got != whiteGold {
		t.Errorf("5e = %v, want %v", got, whiteGold)
	}
	if got := g.Color(); got != board.Black {
		t.Errorf("Color() = %v, want Black", got)
	}
	if got := g.CapturedPieces(); !slices.Equal(got, want) {
		t.Errorf("CapturedPieces() = %v, want %v", got, want)
	}
}

func TestPerformSequence(t *testing.T) {
	b := board.NewBoard(map[board.Square]board.Piece{
		board.FiveI: blackKing,
		board.FiveA: whiteKing,
		board.FiveD: blackSilver,
	})
	g := NewGame(b, board.Black, nil)

	steps := []Move{
		NewMove(board.FiveD, board.FiveC, blackSilver, true),
		NewMove(board.FiveA, board.FourA, whiteKing, false),
		NewMove(board.FiveC, board.FiveB, blackPromotedSilver, false),
	}
	for _, m := range steps {
		if err := g.Perform(m); err != nil {
			t.Fatalf("Perform(%v): %v", m, err)
		}
	}
	if got := g.Board().PieceAt(board.FiveB); got != blackPromotedSilver {
		t.Errorf("5b = %v, want %v", got, blackPromotedSilver)
	}
	if !g.InCheck() {
		t.Error("white king on 4a should be checked by the promoted silver on 5b")
	}
}

func TestNewGameSortsAndCopiesPool(t *testing.T) {
	pool := []board.Piece{whiteGold, blackPawn, whiteRook, blackRook, blackPromotedPawn, blackGold}
	g := NewGame(nil, board.White, pool)

	want := []board.Piece{blackRook, blackGold, blackPromotedPawn, blackPawn, whiteRook, whiteGold}
	if got := g.CapturedPieces(); !slices.Equal(got, want) {
		t.Errorf("CapturedPieces() = %v, want %v", got, want)
	}
	if pool[0] != whiteGold {
		t.Error("NewGame reordered the caller's slice")
	}

	got := g.CapturedPieces()
	got[0] = board.NoPiece
	if g.CapturedPieces()[0] != blackRook {
		t.Error("CapturedPieces exposes internal state")
	}

	bd := g.Board()
	bd.SetPiece(board.FiveE, blackPawn)
	if g.Board().PieceAt(board.FiveE) != board.NoPiece {
		t.Error("Board exposes internal state")
	}

	if def := New(); def.Color() != board.Black || len(def.CapturedPieces()) != 0 || !def.Board().Occupied().Empty() {
		t.Error("New() is not an empty game with black to move")
	}
}

func TestValidMoves(t *testing.T) {
	b := board.NewBoard(map[board.Square]board.Piece{
		board.FiveI: blackSilver,
		board.FiveA: whiteSilver,
	})
	g := NewGame(b, board.Black, []board.Piece{blackGold, whiteGold})

	want := []Move{
		NewMove(board.FiveI, board.FourH, blackSilver, false),
		NewMove(board.FiveI, board.FiveH, blackSilver, false),
		NewMove(board.FiveI, board.SixH, blackSilver, false),
	}
	for sq := board.OneA; sq < board.NoSquare; sq++ {
		if sq == board.FiveA || sq == board.FiveI {
			continue
		}
		want = append(want, NewDrop(blackGold, sq))
	}

	if got := g.ValidMoves(); !slices.Equal(got, want) {
		t.Errorf("ValidMoves() returned %d moves, want %d\ngot  %v\nwant %v", len(got), len(want), got, want)
	}

	if got := g.ValidMovesFrom(board.FiveI, blackSilver); !slices.Equal(got, want[:3]) {
		t.Errorf("ValidMovesFrom(5i) = %v, want %v", got, want[:3])
	}
	if got := g.ValidMovesFrom(board.NoSquare, blackGold); len(got) != 79 {
		t.Errorf("ValidMovesFrom(drop) returned %d moves, want 79", len(got))
	}
	if got := g.ValidMovesFrom(board.FiveA, whiteSilver); len(got) != 0 {
		t.Errorf("ValidMovesFrom(5a) = %v, want none", got)
	}
}

func TestValidMovesPromotion(t *testing.T) {
	b := board.NewBoard(map[board.Square]board.Piece{
		board.FiveD: blackSilver,
	})
	g := NewGame(b, board.Black, nil)

	moves := g.ValidMoves()
	if len(moves) != 8 {
		t.Fatalf("got %d moves, want 8: %v", len(moves), moves)
	}
	promotions := 0
	for _, m := range moves {
		if m.Promote() {
			promotions++
			if m.To().Rank() != board.RankC {
				t.Errorf("promotion outside the zone: %v", m)
			}
		}
	}
	if promotions != 3 {
		t.Errorf("got %d promotions, want 3", promotions)
	}
}

func TestValidMovesDeduplicatesDrops(t *testing.T) {
	g := NewGame(nil, board.Black, []board.Piece{blackPawn, blackPawn, blackPawn})
	if got := len(g.ValidMoves()); got != board.NumSquares {
		t.Errorf("got %d moves, want %d", got, board.NumSquares)
	}
}

func TestValidMovesExcludeSelfCheck(t *testing.T) {
	g := validationGame()
	for _, m := range g.ValidMoves() {
		if m.Piece() == blackGold && m.To() != board.FiveG {
			t.Errorf("pinned gold may only move along the file, got %v", m)
		}
		if err := g.Copy().Perform(m); err != nil {
			t.Errorf("valid move %v rejected: %v", m, err)
		}
	}
}
