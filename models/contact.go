package models

import (
	"time"
)

// Contact représente un message envoyé depuis le formulaire de contact
// @Description Modèle complet d'un message de contact
type Contact struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Contact) TableName() string {
	return "contacts"
}

// ContactCreate modèle pour envoyer un message de contact
// @Description modèle pour envoyer un message de contact
type ContactCreate struct {
	Name    string `json:"name" binding:"required" example:"Jean Dupont"`
	Email   string `json:"email" binding:"required" example:"jean.dupont@exemple.com"`
	Message string `json:"message" binding:"required" example:"Bonjour, je souhaite discuter d'une opportunité."`
}
