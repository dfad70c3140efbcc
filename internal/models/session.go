package models

import "time"

// Session is an opaque bearer token with a fixed 24h TTL. Expired rows are
// not purged eagerly; resolution treats them as absent.
type Session struct {
	SessionID string    `gorm:"primaryKey;size:64" json:"session_id"`
	Email     string    `gorm:"not null;index" json:"email"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
}

// Expired reports whether the session is past its TTL at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
