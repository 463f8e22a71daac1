package model

import "time"

// Message is a bulletin entry. Timestamp is whatever string the caller
// submitted, not a server clock reading; messages carry no link to the
// user that created them.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Timestamp string    `gorm:"size:64;not null" json:"timestamp"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
