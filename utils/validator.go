package utils

import (
	"regexp"
)

// Même motif minimal que le formulaire du site : une partie locale, un @,
// un domaine avec au moins un point, aucun espace.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}
