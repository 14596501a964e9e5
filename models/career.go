package models

import (
	"time"
)

// CareerStep représente une étape du parcours affichée dans le carrousel.
type CareerStep struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string    `json:"title"`
	Description string    `json:"description" gorm:"type:text"`
	Link        string    `json:"link"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (CareerStep) TableName() string {
	return "career_steps"
}
