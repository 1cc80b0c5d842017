package tasks

import (
	"fmt"
	"log"

	"sab_waitlist/internal/sessions"

	"github.com/robfig/cron/v3"
)

// SweepStaleSessions evicts stale presence records and returns how many were removed.
func SweepStaleSessions(dir *sessions.Directory) int {
	removed := dir.Sweep()
	if removed > 0 {
		log.Printf("Cleaned up %d stale player session(s)", removed)
	}
	return removed
}

// InitScheduler starts the cron scheduler with the session sweep registered
// at schedule (cron expression with seconds, or a descriptor like "@every 5m").
// afterSweep, when non-nil, runs after every sweep.
func InitScheduler(schedule string, dir *sessions.Directory, afterSweep func(removed int)) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(schedule, func() {
		removed := SweepStaleSessions(dir)
		if afterSweep != nil {
			afterSweep(removed)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule session sweep %q: %w", schedule, err)
	}

	c.Start()
	log.Println("Cron scheduler started.")
	return c, nil
}
