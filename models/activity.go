package models

import "time"

// Activity is read-only reference data; rows are seeded out of band.
type Activity struct {
	ID         uint      `gorm:"primarykey" json:"activityId"`
	Activity   string    `gorm:"not null" json:"activity"`
	Category   string    `gorm:"not null" json:"category"`
	CalPerHour float64   `gorm:"not null" json:"calPerHour"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
