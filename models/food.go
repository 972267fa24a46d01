package models

import "time"

// Food is read-only reference data; rows are seeded out of band.
type Food struct {
	ID           uint      `gorm:"primarykey" json:"foodId"`
	Menu         string    `gorm:"not null" json:"menu"`
	Calories     float64   `gorm:"not null" json:"calories"`
	Protein      float64   `gorm:"not null" json:"protein"`
	Fat          float64   `gorm:"not null" json:"fat"`
	Carbohydrate float64   `gorm:"not null" json:"carbo"`
	Image        *string   `json:"image"`
	Category     *string   `json:"category"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
