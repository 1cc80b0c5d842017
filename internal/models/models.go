package models

import "time"

// WaitlistEntry is a buyer admitted to the waitlist.
type WaitlistEntry struct {
	AccountID   string    `json:"discordId"`
	DisplayName string    `json:"discordUsername"` // Captured at admission, never updated
	Position    int       `json:"position"`
	CreditPaid  int       `json:"brainrotPaid"`
	Steals      int       `json:"steals"`
	AdmittedAt  time.Time `json:"addedAt"`
}

// Active reports whether the entry currently holds a slot in the live session.
// Derived from Position on every call, never stored.
func (e WaitlistEntry) Active() bool {
	return e.Position > 1
}

// PlayerSession is a presence record for someone inside the live game session.
type PlayerSession struct {
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	UserID      int64     `json:"userId"`
	Device      string    `json:"device"`
	Avatar      string    `json:"avatar"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// AuditRecord is an append-only journal row describing one successful mutation.
type AuditRecord struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Action    string    `gorm:"index;not null" json:"action"` // e.g. waitlist.admit, exempt.add
	AccountID string    `gorm:"index" json:"account_id"`      // discordId or normalized exempt name
	Detail    string    `gorm:"type:text" json:"detail"`
	CreatedAt time.Time `gorm:"index;not null" json:"created_at"`
}
