package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxNameLength is the longest player name, in runes
const MaxNameLength = 20

// Run records one race from start to finish or crash. It lives in memory
// only.
type Run struct {
	ID         uuid.UUID `json:"id"`
	PlayerName string    `json:"player_name"`
	StartedAt  time.Time `json:"started_at"`
	EndedAt    time.Time `json:"ended_at"`
}

// NewRun starts a run for the given player
func NewRun(playerName string, now time.Time) *Run {
	return &Run{
		ID:         uuid.New(),
		PlayerName: playerName,
		StartedAt:  now,
	}
}

// End stamps the end of the run. Later calls keep the first timestamp.
func (r *Run) End(now time.Time) {
	if r.EndedAt.IsZero() {
		r.EndedAt = now
	}
}

// Ended reports whether the run has finished or crashed
func (r *Run) Ended() bool {
	return !r.EndedAt.IsZero()
}

// Elapsed returns the race time so far, or the final time once ended
func (r *Run) Elapsed(now time.Time) time.Duration {
	if r.Ended() {
		return r.EndedAt.Sub(r.StartedAt)
	}
	return now.Sub(r.StartedAt)
}
