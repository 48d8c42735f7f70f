package database

import (
	"log"

	"avercms/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.Blog{},
		&models.Project{},
		&models.Service{},
		&models.GlossaryTerm{},
		&models.Header{},
		&models.Footer{},
	)
	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	// Full-text indexes over the searchable columns. No endpoint queries
	// them yet; they exist so an admin search can be added without a
	// migration.
	searchIndexes := map[string]string{
		"idx_blogs_search":          `CREATE INDEX IF NOT EXISTS idx_blogs_search ON blogs USING gin (to_tsvector('simple', coalesce(title, '') || ' ' || coalesce(description, '') || ' ' || coalesce(markdown_content, '')))`,
		"idx_projects_search":       `CREATE INDEX IF NOT EXISTS idx_projects_search ON projects USING gin (to_tsvector('simple', coalesce(title, '') || ' ' || coalesce(description, '') || ' ' || coalesce(markdown_content, '')))`,
		"idx_services_search":       `CREATE INDEX IF NOT EXISTS idx_services_search ON services USING gin (to_tsvector('simple', coalesce(title, '') || ' ' || coalesce(description, '') || ' ' || coalesce(markdown_content, '')))`,
		"idx_glossary_terms_search": `CREATE INDEX IF NOT EXISTS idx_glossary_terms_search ON glossary_terms USING gin (to_tsvector('simple', coalesce(title, '') || ' ' || coalesce(description, '') || ' ' || coalesce(content, '')))`,
	}
	for name, stmt := range searchIndexes {
		if err := DB.Exec(stmt).Error; err != nil {
			log.Printf("Error creating %s: %v", name, err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
