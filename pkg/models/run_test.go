package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRun_Elapsed(t *testing.T) {
	start := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	r := NewRun("Ada", start)

	assert.NotEqual(t, uuid.Nil, r.ID)
	assert.Equal(t, "Ada", r.PlayerName)
	assert.False(t, r.Ended())
	assert.Equal(t, 3*time.Second, r.Elapsed(start.Add(3*time.Second)))

	r.End(start.Add(42 * time.Second))
	assert.True(t, r.Ended())
	assert.Equal(t, 42*time.Second, r.Elapsed(start.Add(time.Hour)))

	r.End(start.Add(time.Minute))
	assert.Equal(t, 42*time.Second, r.Elapsed(start.Add(time.Hour)), "first end wins")
}

func TestNewRun_UniqueIDs(t *testing.T) {
	now := time.Now()
	assert.NotEqual(t, NewRun("a", now).ID, NewRun("a", now).ID)
}
