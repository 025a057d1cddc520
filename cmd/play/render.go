package main

import (
	"ctchen222/three-in-a-row/internal/game"
	"ctchen222/three-in-a-row/internal/match"
	"fmt"
	"strings"
)

// render draws the board and a status line for v.
func render(v match.View) string {
	var sb strings.Builder
	sb.WriteByte('\n')
	if v.Board.Size() > 0 {
		sb.WriteString(v.Board.String())
	}
	fmt.Fprintf(&sb, "%s | wins %d losses %d", status(v), v.Tally.Wins, v.Tally.Losses)
	if v.ParticipantID != "" {
		fmt.Fprintf(&sb, " | device %s", v.ParticipantID)
	}
	sb.WriteByte('\n')
	if v.Error != "" {
		sb.WriteString(v.Error)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func status(v match.View) string {
	switch v.Phase {
	case match.PhaseUnregistered:
		return "not connected"
	case match.PhaseIdle:
		return "no match"
	case match.PhaseWaiting:
		return "waiting for an opponent"
	case match.PhaseTerminal:
		if v.Winner == game.Draw {
			return "draw"
		}
		if mine := ownMark(v); mine != game.None {
			if v.Winner.Mark() == mine {
				return "you won"
			}
			return "you lost"
		}
		return fmt.Sprintf("%s wins", v.Winner)
	}

	if v.ParticipantID == "" {
		return fmt.Sprintf("%s to move", v.Turn)
	}
	if v.Turn == v.ParticipantID {
		return fmt.Sprintf("your move (%s)", ownMark(v))
	}
	return "opponent's move"
}

// ownMark is the local user's mark: X offline, the assigned mark online.
func ownMark(v match.View) game.PlayerMark {
	if v.ParticipantID == "" {
		return game.PlayerX
	}
	return v.Players[v.ParticipantID]
}
