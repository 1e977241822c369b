package db

import (
	"fmt"
	"log"
	"os"
	"technews/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Open dials gorm with the app's config. Foreign key DDL is turned off: the
// schema carries plain FK columns only, so deleting a user or post succeeds
// and strands its dependent rows.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
}

func Init() {
	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, os.Getenv("DB_USER"), os.Getenv("DB_PW"), os.Getenv("DB_NAME"), port)

	var err error
	DB, err = Open(postgres.Open(dsn))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Votes double as the many2many join table between users and posts.
	if err := DB.SetupJoinTable(&models.User{}, "VotedPosts", &models.Vote{}); err != nil {
		log.Fatalf("Failed to set up vote join table: %v", err)
	}
	if err := DB.SetupJoinTable(&models.Post{}, "VotedBy", &models.Vote{}); err != nil {
		log.Fatalf("Failed to set up vote join table: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Vote{},
		&models.Comment{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")
}
