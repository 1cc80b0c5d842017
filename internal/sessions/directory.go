// Package sessions tracks who is inside the live game session and which
// server instance (job id) that session runs on.
package sessions

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"sab_waitlist/internal/models"
)

// DefaultStaleAfter is how long a presence record survives without a rejoin.
const DefaultStaleAfter = 10 * time.Minute

// JoinRequest is what the game server reports when a player enters.
type JoinRequest struct {
	Username    string
	DisplayName string
	UserID      int64
	Device      string
	Avatar      string
}

// Directory holds presence records keyed by username. It shares no lock with
// the waitlist.
type Directory struct {
	mu         sync.Mutex
	players    map[string]models.PlayerSession
	staleAfter time.Duration
	now        func() time.Time
}

func NewDirectory(staleAfter time.Duration) *Directory {
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	return &Directory{
		players:    make(map[string]models.PlayerSession),
		staleAfter: staleAfter,
		now:        time.Now,
	}
}

// WithClock replaces the clock. Used by tests.
func (d *Directory) WithClock(now func() time.Time) *Directory {
	d.mu.Lock()
	d.now = now
	d.mu.Unlock()
	return d
}

// AvatarURL is the headshot used when the game server sends none.
func AvatarURL(userID int64) string {
	if userID == 0 {
		userID = 1
	}
	return fmt.Sprintf("https://www.roblox.com/headshot-thumbnail/image?userId=%d&width=420&height=420&format=png", userID)
}

// Join records (or refreshes) a player's presence.
func (d *Directory) Join(req JoinRequest) models.PlayerSession {
	player := models.PlayerSession{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		UserID:      req.UserID,
		Device:      req.Device,
		Avatar:      req.Avatar,
	}
	if strings.TrimSpace(player.DisplayName) == "" {
		player.DisplayName = req.Username
	}
	if strings.TrimSpace(player.Device) == "" {
		player.Device = "Unknown"
	}
	if strings.TrimSpace(player.Avatar) == "" {
		player.Avatar = AvatarURL(req.UserID)
	}

	d.mu.Lock()
	player.JoinedAt = d.now()
	d.players[req.Username] = player
	d.mu.Unlock()
	return player
}

// Leave removes a player and reports whether they were present.
func (d *Directory) Leave(username string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, existed := d.players[username]
	delete(d.players, username)
	return existed
}

// List returns players ordered by join time, oldest first.
func (d *Directory) List() []models.PlayerSession {
	d.mu.Lock()
	list := make([]models.PlayerSession, 0, len(d.players))
	for _, p := range d.players {
		list = append(list, p)
	}
	d.mu.Unlock()

	sort.Slice(list, func(i, j int) bool {
		if !list[i].JoinedAt.Equal(list[j].JoinedAt) {
			return list[i].JoinedAt.Before(list[j].JoinedAt)
		}
		return list[i].Username < list[j].Username
	})
	return list
}

func (d *Directory) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.players)
}

// Sweep evicts records older than the staleness threshold and returns how
// many were removed.
func (d *Directory) Sweep() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	removed := 0
	for username, p := range d.players {
		if now.Sub(p.JoinedAt) > d.staleAfter {
			delete(d.players, username)
			removed++
		}
	}
	return removed
}
