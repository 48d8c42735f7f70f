package main

import (
	"avercms/database"
	"avercms/internal/utils"
	"flag"
	"log"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	dir := flag.String("dir", "./content", "Directory holding markdown files to import")
	flag.Parse()

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	count, err := utils.ImportMarkdownBlogs(database.DB, *dir)
	if err != nil {
		log.Fatalf("Import failed after %d files: %v", count, err)
	}

	log.Printf("Imported %d markdown files from %s", count, *dir)
}
