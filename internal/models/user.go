package models

import "time"

// User represents an operator account able to log in and manage the book.
type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Username         string    `gorm:"uniqueIndex;size:120;not null" json:"username"`
	PasswordHash     string    `gorm:"size:255;not null" json:"-"`
	RefreshTokenHash string    `gorm:"size:64" json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
