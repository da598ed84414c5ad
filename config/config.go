package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"p9e.in/sheets/pkg/blob"
)

var DB *gorm.DB

// Connect loads the environment, checks the required variables and opens the
// database. Missing configuration is fatal at startup rather than a surprise
// on the first request.
func Connect() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	required := []string{"DB_DSN"}
	if blob.UseGCS() {
		required = append(required, "GCS_BUCKET")
	}
	for _, name := range required {
		if os.Getenv(name) == "" {
			log.Fatalf("Missing required environment variable: %s", name)
		}
	}

	dsn := os.Getenv("DB_DSN")
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
}

// Production reports whether the process runs with APP_ENV=production, which
// suppresses upstream error detail in 500 responses.
func Production() bool {
	return os.Getenv("APP_ENV") == "production"
}
