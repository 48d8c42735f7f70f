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
	withDemo := flag.Bool("demo", false, "Also seed demo blog posts and services")
	flag.Parse()

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	if err := utils.SeedLayout(database.DB); err != nil {
		log.Fatalf("Error seeding layout: %v", err)
	}

	if *withDemo {
		if err := utils.SeedDemoContent(database.DB); err != nil {
			log.Fatalf("Error seeding demo content: %v", err)
		}
	}

	log.Println("Seeding completed")
}
