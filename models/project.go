package models

import (
	"time"
)

// Project représente un projet mis en avant sur le portfolio.
// Techs et Competencies sont stockés en texte, séparés par des virgules.
type Project struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	Slug         string    `json:"slug" gorm:"uniqueIndex"`
	Title        string    `json:"title"`
	Description  string    `json:"description" gorm:"type:text"`
	Techs        string    `json:"techs"`
	Competencies string    `json:"competencies"`
	Position     int       `json:"position"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Project) TableName() string {
	return "projects"
}
