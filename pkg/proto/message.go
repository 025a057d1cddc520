// Package proto holds the JSON bodies exchanged between the match service and
// its clients. Every response body travels inside the response envelope's
// extras field.
package proto

import "ctchen222/three-in-a-row/internal/game"

// Join and waiting statuses. GET /matches/waiting-status answers queued or
// matched; waiting is accepted as a synonym of queued.
const (
	StatusQueued  = "queued"
	StatusWaiting = "waiting"
	StatusMatched = "matched"
)

// DeviceResponse is returned by POST /devices.
type DeviceResponse struct {
	DeviceID string `json:"device_id" validate:"required"`
}

// DeviceInfoResponse is returned by GET /devices/:id/info.
type DeviceInfoResponse struct {
	DeviceID string `json:"device_id" validate:"required"`
	Wins     int    `json:"wins" validate:"gte=0"`
	Losses   int    `json:"losses" validate:"gte=0"`
}

// JoinMatchRequest is the body of POST /matches.
type JoinMatchRequest struct {
	DeviceID string `json:"device_id" binding:"required"`
	Size     int    `json:"size" binding:"required,min=3,max=7"`
}

// QueuedResponse is returned with 202 when no opponent is available yet.
type QueuedResponse struct {
	Status string `json:"status" validate:"eq=queued"`
}

// MatchResponse is the full state of a match. Turn holds a device id.
type MatchResponse struct {
	MatchID string                     `json:"match_id" validate:"required"`
	Size    int                        `json:"size" validate:"boardsize"`
	Board   [][]game.PlayerMark        `json:"board" validate:"required"`
	Turn    string                     `json:"turn"`
	Winner  game.GameResult            `json:"winner"`
	Players map[string]game.PlayerMark `json:"players" validate:"required,dive,keys,required,endkeys,oneof=X O"`
}

// WaitingStatusResponse is returned by GET /matches/waiting-status.
type WaitingStatusResponse struct {
	Status  string                     `json:"status" validate:"oneof=queued waiting matched"`
	MatchID string                     `json:"match_id,omitempty" validate:"required_if=Status matched"`
	Players map[string]game.PlayerMark `json:"players,omitempty"`
}

// MoveRequest is the body of POST /matches/:id/moves. X is the row and Y the
// column, both 0-indexed.
type MoveRequest struct {
	DeviceID string `json:"device_id" binding:"required"`
	X        *int   `json:"x" binding:"required,min=0"`
	Y        *int   `json:"y" binding:"required,min=0"`
}

// MoveResponse echoes the board after an accepted move.
type MoveResponse struct {
	Board    [][]game.PlayerMark `json:"board" validate:"required"`
	NextTurn string              `json:"next_turn"`
	Winner   game.GameResult     `json:"winner"`
}
