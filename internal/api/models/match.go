package models

import (
	"ctchen222/three-in-a-row/internal/game"
	"time"
)

// Match statuses.
const (
	MatchInProgress = "in_progress"
	MatchFinished   = "finished"
)

// Match is the authoritative state of an online match. NextTurn and the
// player fields hold device ids.
type Match struct {
	ID       string
	Board    game.Board
	PlayerX  string
	PlayerO  string
	NextTurn string
	Winner   game.GameResult
	Status   string
}

// MarkOf returns the mark deviceID plays, or game.None for a spectator.
func (m *Match) MarkOf(deviceID string) game.PlayerMark {
	switch deviceID {
	case m.PlayerX:
		return game.PlayerX
	case m.PlayerO:
		return game.PlayerO
	default:
		return game.None
	}
}

// DeviceOf returns the device playing mark.
func (m *Match) DeviceOf(mark game.PlayerMark) string {
	switch mark {
	case game.PlayerX:
		return m.PlayerX
	case game.PlayerO:
		return m.PlayerO
	default:
		return ""
	}
}

// Players maps each device id to its mark.
func (m *Match) Players() map[string]game.PlayerMark {
	return map[string]game.PlayerMark{
		m.PlayerX: game.PlayerX,
		m.PlayerO: game.PlayerO,
	}
}

// Waiting statuses of a device.
const (
	DeviceWaiting = "waiting"
	DeviceMatched = "matched"
)

// DeviceState is the matchmaking state kept for a device. SeenAt is the last
// time a waiting device joined or polled.
type DeviceState struct {
	Status  string
	Size    int
	MatchID string
	SeenAt  time.Time
}
