package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsImminent(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	assert.True(t, IsImminent(now.Add(time.Minute), now))
	assert.True(t, IsImminent(now.Add(5*time.Minute), now))
	assert.True(t, IsImminent(now, now))

	// just past the window
	assert.False(t, IsImminent(now.Add(5*time.Minute+time.Second), now))

	// already due reminders are not "imminent", they are overdue
	assert.False(t, IsImminent(now.Add(-time.Minute), now))
}
