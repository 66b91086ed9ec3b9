// user.go - Defines the User model for the database

package models // Declares the package name

import "time"

type User struct { // User struct represents an account that can purchase tours
	ID        uint      `gorm:"primaryKey"`           // Unique user ID (primary key)
	FirstName string    `gorm:"not null"`             // Given name from the sign-up form
	LastName  string    `gorm:"not null"`             // Family name from the sign-up form
	Email     string    `gorm:"uniqueIndex;not null"` // User's email (must be unique, cannot be null)
	Password  string    `gorm:"not null"`             // Bcrypt hash, never the plaintext password
	IsAdmin   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
