package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestJoinDefaults(t *testing.T) {
	d := NewDirectory(0)

	p := d.Join(JoinRequest{Username: "builder"})
	assert.Equal(t, "builder", p.DisplayName)
	assert.Equal(t, "Unknown", p.Device)
	assert.Equal(t, AvatarURL(1), p.Avatar)

	p = d.Join(JoinRequest{Username: "other", UserID: 42, Device: "Phone", DisplayName: "Other"})
	assert.Contains(t, p.Avatar, "userId=42")
	assert.Equal(t, "Phone", p.Device)
	assert.Equal(t, 2, d.Count())
}

func TestLeave(t *testing.T) {
	d := NewDirectory(time.Minute)
	d.Join(JoinRequest{Username: "a"})

	assert.True(t, d.Leave("a"))
	assert.False(t, d.Leave("a"))
	assert.Equal(t, 0, d.Count())
}

func TestListOrderedByJoinTime(t *testing.T) {
	c := &clock{t: time.Unix(1000, 0)}
	d := NewDirectory(time.Hour).WithClock(c.now)

	d.Join(JoinRequest{Username: "second"})
	c.advance(-time.Second)
	d.Join(JoinRequest{Username: "first"})
	c.advance(5 * time.Second)
	d.Join(JoinRequest{Username: "third"})

	var names []string
	for _, p := range d.List() {
		names = append(names, p.Username)
	}
	assert.Equal(t, []string{"first", "second", "third"}, names)
}

func TestSweepEvictsStale(t *testing.T) {
	c := &clock{t: time.Unix(0, 0)}
	d := NewDirectory(10 * time.Minute).WithClock(c.now)

	d.Join(JoinRequest{Username: "old"})
	c.advance(6 * time.Minute)
	d.Join(JoinRequest{Username: "fresh"})
	c.advance(5 * time.Minute)

	assert.Equal(t, 1, d.Sweep())
	assert.Equal(t, 1, d.Count())
	assert.Equal(t, "fresh", d.List()[0].Username)

	assert.Equal(t, 0, d.Sweep())
}

func TestRejoinRefreshesTimestamp(t *testing.T) {
	c := &clock{t: time.Unix(0, 0)}
	d := NewDirectory(10 * time.Minute).WithClock(c.now)

	d.Join(JoinRequest{Username: "p"})
	c.advance(9 * time.Minute)
	d.Join(JoinRequest{Username: "p"})
	c.advance(9 * time.Minute)

	assert.Equal(t, 0, d.Sweep())
}

func TestJobStore(t *testing.T) {
	s := NewJobStore()
	_, ok := s.Get()
	assert.False(t, ok)

	s.Set("abc-123")
	id, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, "abc-123", id)
}
