// Package apperror holds the sentinel errors shared by the match service's
// repositories, services and controllers.
package apperror

import "errors"

var (
	ErrDeviceNotFound = errors.New("device not found")
	ErrMatchNotFound  = errors.New("match not found")
	ErrMatchFinished  = errors.New("match is already finished")
	ErrNotParticipant = errors.New("device is not playing in this match")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrInvalidMove    = errors.New("invalid move")
	ErrNotWaiting     = errors.New("device is not waiting for a match")
)
