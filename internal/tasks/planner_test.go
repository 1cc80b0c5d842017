package tasks

import (
	"sync/atomic"
	"testing"
	"time"

	"sab_waitlist/internal/sessions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepStaleSessions(t *testing.T) {
	now := time.Unix(0, 0)
	dir := sessions.NewDirectory(10 * time.Minute).WithClock(func() time.Time { return now })
	dir.Join(sessions.JoinRequest{Username: "old"})
	now = now.Add(11 * time.Minute)

	assert.Equal(t, 1, SweepStaleSessions(dir))
	assert.Equal(t, 0, dir.Count())
}

func TestInitSchedulerRunsSweep(t *testing.T) {
	dir := sessions.NewDirectory(time.Minute)
	var runs atomic.Int32

	c, err := InitScheduler("@every 1s", dir, func(int) { runs.Add(1) })
	require.NoError(t, err)
	defer c.Stop()

	assert.Len(t, c.Entries(), 1)
	assert.Eventually(t, func() bool { return runs.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
}

func TestInitSchedulerRejectsBadSchedule(t *testing.T) {
	_, err := InitScheduler("not a schedule", sessions.NewDirectory(0), nil)
	assert.Error(t, err)
}
