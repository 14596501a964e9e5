package models

import (
	"time"
)

// Comment représente un commentaire déposé sur un projet du portfolio.
// L'email n'est jamais sérialisé dans les réponses JSON.
type Comment struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectSlug string    `json:"projectSlug" gorm:"column:project_slug;index:idx_comments_listing,priority:1"`
	Author      string    `json:"author"`
	Email       string    `json:"-"`
	Content     string    `json:"content" gorm:"type:text"`
	Approved    bool      `json:"approved" gorm:"index:idx_comments_listing,priority:2"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index:idx_comments_listing,priority:3"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentCreate modèle pour déposer un commentaire
// @Description modèle pour déposer un commentaire sur un projet
type CommentCreate struct {
	ProjectSlug string `json:"projectSlug" binding:"required" example:"clone-cinema"`
	Author      string `json:"author" binding:"required" example:"Jean Dupont"`
	Email       string `json:"email" binding:"required" example:"jean.dupont@exemple.com"`
	Content     string `json:"content" binding:"required" example:"Super projet !"`
}

// CommentView projection publique d'un commentaire approuvé
// @Description projection publique d'un commentaire (sans email ni statut)
type CommentView struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
