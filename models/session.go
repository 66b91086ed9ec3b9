// session.go - Server-side record of an issued login session

package models

import "time"

// Session tracks one signed session token by its token id so it can be revoked.
type Session struct {
	ID        string    `gorm:"primaryKey;size:64"` // JWT "jti" claim
	UserID    uint      `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}
