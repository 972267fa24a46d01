package models

import "time"

// History is one recorded body measurement for a user.
type History struct {
	ID        uint      `gorm:"primarykey" json:"historyId"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Weight    float64   `gorm:"not null" json:"weight"`
	Height    float64   `gorm:"not null" json:"height"`
	Status    string    `gorm:"not null" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
