package models

import "time"

// Content is one planned post on the editorial calendar.
// Platforms holds the JSON-encoded array (e.g. `["linkedin","tiktok"]`) so
// the selection order survives the round trip; handlers decode it on read.
// Date and Time are kept as strings ("YYYY-MM-DD", "HH:mm") so that plain
// lexicographic ordering is chronological.
type Content struct {
	ID          uint   `gorm:"primaryKey"`
	Date        string `gorm:"size:10;index;not null"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Platforms   string `gorm:"size:255;not null"`
	Format      string `gorm:"size:32;not null"`
	Genre       string `gorm:"size:32;not null"`
	SubGenre    string `gorm:"size:64"`
	Time        string `gorm:"size:8;not null"`
	Status      string `gorm:"size:16;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
