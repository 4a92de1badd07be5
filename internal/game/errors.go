package game

import "errors"

// Move validation errors. Each names exactly one violated rule.
var (
	ErrBoardPieceDoesNotExist        = errors.New("piece is not on the source square")
	ErrCapturedPieceDoesNotExist     = errors.New("piece is not in the captured-piece pool")
	ErrInvalidPieceColor             = errors.New("piece does not belong to the side to move")
	ErrFriendlyPieceAlreadyExists    = errors.New("destination holds a friendly piece")
	ErrIllegalAttack                 = errors.New("piece cannot reach the destination")
	ErrPieceAlreadyPromoted          = errors.New("piece is already promoted")
	ErrPieceCannotPromote            = errors.New("piece kind cannot promote")
	ErrIllegalBoardPiecePromotion    = errors.New("move does not touch the promotion zone")
	ErrIllegalCapturedPiecePromotion = errors.New("dropped piece cannot promote")
	ErrKingPieceIsChecked            = errors.New("move leaves the king in check")
)
