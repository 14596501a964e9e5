package db

import (
	"os"

	"portfolio-backend/models"
	"portfolio-backend/utils"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB ouvre la connexion Postgres et migre le schéma. Le handle est
// retourné à l'appelant et injecté dans les handlers, jamais consulté via
// un état global.
func InitDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, the DB_URL variable must be set in the system environment")
	}

	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		utils.LogError(nil, "Variable DB_URL non définie")
		panic("URL de base de données non configurée")
	}

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		panic("Could not connect to the database")
	}

	err = database.AutoMigrate(
		&models.Comment{},
		&models.Contact{},
		&models.Project{},
		&models.CareerStep{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		panic("Could not migrate database")
	}

	utils.LogSuccess("Database connection successful")

	return database
}
