package models

import "time"

// Device is a registered participant and its cumulative results.
type Device struct {
	ID        string    `db:"id"`
	Wins      int       `db:"wins"`
	Losses    int       `db:"losses"`
	CreatedAt time.Time `db:"created_at"`
}
