package main

import (
	"log"
	"os"

	"portfolio-backend/db"
	_ "portfolio-backend/docs"
	"portfolio-backend/routes"

	"github.com/gin-gonic/gin"
)

// @title API Portfolio Backend
// @version 1.0
// @description API du portfolio : commentaires modérés, formulaire de contact, projets et parcours
// @host localhost:8080
// @BasePath /
func main() {

	gin.SetMode(gin.ReleaseMode)

	database := db.InitDB()
	db.Seed(database)

	r := routes.SetupRouter(database)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Erreur lors du démarrage du serveur:", err)
	}
}
