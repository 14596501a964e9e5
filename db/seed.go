package db

import (
	"errors"

	"portfolio-backend/models"
	"portfolio-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contenu affiché sur le site. Les slugs servent de clé pour rattacher
// les commentaires aux projets.
var defaultProjects = []models.Project{
	{
		Slug:         "clone-cinema",
		Title:        "Clone Cinéma",
		Description:  "Projet PHP/MySQL : comptes, réservations, recherche, avis. Accent sur SQL propre, sécurité et pagination.",
		Techs:        "PHP,MySQL,HTML,CSS,JS",
		Competencies: "BACK,BDD,GESTION",
	},
	{
		Slug:         "clone-meetic",
		Title:        "Clone Meetic",
		Description:  "Rencontres (PHP/MySQL/JS) : profils, recherche, messagerie. Focus sécurité/auth & temps réel.",
		Techs:        "PHP,MySQL",
		Competencies: "BACK,BDD,FRONT,GESTION",
	},
	{
		Slug:         "myh5ai",
		Title:        "myH5AI",
		Description:  "Explorateur de fichiers serveur en PHP, UI arborescente avec aperçu et recherche (inspiré de h5ai).",
		Techs:        "PHP,JS,HTML/CSS",
		Competencies: "BACK,FRONT,GESTION",
	},
	{
		Slug:         "puissance-4",
		Title:        "Puissance 4",
		Description:  "Jeu ES6 : classes/modules, placement, détection de victoire, alternance des tours.",
		Techs:        "JavaScript ES6,HTML/CSS",
		Competencies: "FRONT",
	},
	{
		Slug:         "site-responsive",
		Title:        "Site Responsive",
		Description:  "Site vitrine responsive : media queries, Flexbox, CSS Grid. Soins A11y et SEO.",
		Techs:        "HTML,CSS,Grid/Flex",
		Competencies: "FRONT",
	},
	{
		Slug:         "mini-twitter",
		Title:        "Mini Twitter",
		Description:  "Timeline + publication. Focus sur la structure, l'état et la qualité.",
		Techs:        "JS,HTML/CSS,PHP",
		Competencies: "FRONT,GESTION,BACK",
	},
}

var defaultCareerSteps = []models.CareerStep{
	{
		Title:       "Baccalauréat",
		Description: "J'ai eu mon Bac",
		Link:        "https://github.com/tonuser/elearning",
	},
	{
		Title:       "Portfolio 3D",
		Description: "Site portfolio interactif avec Three.js et Tailwind CSS.",
		Link:        "https://tonuser.com/portfolio",
	},
	{
		Title:       "Blog Tech",
		Description: "Blog statique généré par MDX et Vercel.",
		Link:        "https://blog.tonuser.com",
	},
}

// Seed insère le contenu du site s'il n'existe pas déjà. Relancer le
// serveur ne duplique rien.
func Seed(database *gorm.DB) {
	for i, p := range defaultProjects {
		var existing models.Project
		err := database.Where("slug = ?", p.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.LogError(err, "Error checking project seed")
			continue
		}

		p.ID = uuid.NewString()
		p.Position = i + 1
		if err := database.Create(&p).Error; err != nil {
			utils.LogError(err, "Error seeding project "+p.Slug)
		}
	}

	for i, s := range defaultCareerSteps {
		var existing models.CareerStep
		err := database.Where("title = ?", s.Title).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.LogError(err, "Error checking career seed")
			continue
		}

		s.ID = uuid.NewString()
		s.Position = i + 1
		if err := database.Create(&s).Error; err != nil {
			utils.LogError(err, "Error seeding career step "+s.Title)
		}
	}

	utils.LogSuccess("Site content seeded")
}
