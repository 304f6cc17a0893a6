package models

import "time"

// Admin is the single account allowed to sign in. Rows are created by the
// seedadmin command; the API itself never writes this table.
type Admin struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
