package main

import (
	"ctchen222/three-in-a-row/internal/game"
	"ctchen222/three-in-a-row/internal/match"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	board, err := game.BoardFromRows([][]game.PlayerMark{
		{"X", "", ""},
		{"", "O", ""},
		{"", "", ""},
	})
	require.NoError(t, err)
	players := map[string]game.PlayerMark{"dev-1": game.PlayerX, "dev-2": game.PlayerO}

	tests := []struct {
		name string
		view match.View
		want string
	}{
		{
			name: "offline turn",
			view: match.View{Phase: match.PhaseInProgress, Board: board, Turn: "X", Tally: match.Tally{Wins: 2}},
			want: "\nX . .\n. O .\n. . .\nX to move | wins 2 losses 0\n",
		},
		{
			name: "online own turn",
			view: match.View{Phase: match.PhaseInProgress, Board: board, Turn: "dev-1", Players: players, ParticipantID: "dev-1"},
			want: "\nX . .\n. O .\n. . .\nyour move (X) | wins 0 losses 0 | device dev-1\n",
		},
		{
			name: "online loss with error",
			view: match.View{Phase: match.PhaseTerminal, Board: board, Winner: "X", Players: players, ParticipantID: "dev-2", Error: match.MsgSync},
			want: "\nX . .\n. O .\n. . .\nyou lost | wins 0 losses 0 | device dev-2\nError syncing match.\n",
		},
		{
			name: "waiting",
			view: match.View{Phase: match.PhaseWaiting, ParticipantID: "dev-1", Waiting: true},
			want: "\nwaiting for an opponent | wins 0 losses 0 | device dev-1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(tt.view))
		})
	}
}
