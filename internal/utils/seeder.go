package utils

import (
	"fmt"
	"log"
	"time"

	"avercms/internal/models"
	"avercms/internal/slugs"

	"gorm.io/gorm"
)

// SeedLayout creates the default header and footer singletons when
// missing. Existing rows are left untouched so the command is safe to
// run repeatedly.
func SeedLayout(db *gorm.DB) error {
	var headerCount int64
	if err := db.Model(&models.Header{}).Where("is_active = ?", true).Count(&headerCount).Error; err != nil {
		return fmt.Errorf("failed to check header: %w", err)
	}
	if headerCount == 0 {
		if err := db.Create(models.DefaultHeader()).Error; err != nil {
			return fmt.Errorf("failed to seed header: %w", err)
		}
		log.Println("Seeded default header")
	}

	var footerCount int64
	if err := db.Model(&models.Footer{}).Where("is_active = ?", true).Count(&footerCount).Error; err != nil {
		return fmt.Errorf("failed to check footer: %w", err)
	}
	if footerCount == 0 {
		if err := db.Create(models.DefaultFooter()).Error; err != nil {
			return fmt.Errorf("failed to seed footer: %w", err)
		}
		log.Println("Seeded default footer")
	}

	return nil
}

// SeedDemoContent inserts a handful of sample documents for local
// development. Slug collisions with existing rows are skipped.
func SeedDemoContent(db *gorm.DB) error {
	now := time.Now()

	blogs := []models.Blog{
		{
			Title:       "Designing for Focus",
			Description: "Why less interface is more conversion.",
			Category:    "Design",
			Author:      "Aver Studio",
			Date:        now,
			Tags:        models.StringList{"design", "ux"},
			IsActive:    true,
		},
		{
			Title:       "Shipping a Marketing Site in a Week",
			Description: "A build log from kickoff to launch.",
			Category:    "Process",
			Author:      "Aver Studio",
			Date:        now,
			Tags:        models.StringList{"process"},
			IsActive:    true,
		},
	}
	for i := range blogs {
		slug, err := slugs.Make(blogs[i].Title)
		if err != nil {
			return fmt.Errorf("failed to slug %q: %w", blogs[i].Title, err)
		}
		blogs[i].Slug = slug
		blogs[i].ContentBlocks = models.BlockList{}

		var count int64
		if err := db.Model(&models.Blog{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&blogs[i]).Error; err != nil {
			return fmt.Errorf("failed to seed blog %q: %w", blogs[i].Title, err)
		}
		log.Printf("Seeded blog: %s", blogs[i].Title)
	}

	services := []models.Service{
		{
			Title:       "Brand Identity",
			Description: "Naming, logo and visual language.",
			Icon:        "/images/icons/brand.svg",
			IsActive:    true,
			Features: models.FeatureList{
				{ID: "seed-brand-1", Title: "Logo design", Order: 0},
				{ID: "seed-brand-2", Title: "Brand guidelines", Order: 1},
			},
		},
		{
			Title:       "Web Development",
			Description: "Fast, accessible marketing sites.",
			Icon:        "/images/icons/web.svg",
			IsActive:    true,
			Features: models.FeatureList{
				{ID: "seed-web-1", Title: "Responsive build", Order: 0},
				{ID: "seed-web-2", Title: "CMS integration", Order: 1},
			},
		},
	}
	for i := range services {
		slug, err := slugs.Make(services[i].Title)
		if err != nil {
			return fmt.Errorf("failed to slug %q: %w", services[i].Title, err)
		}
		services[i].Slug = slug
		services[i].ContentBlocks = models.BlockList{}

		var count int64
		if err := db.Model(&models.Service{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&services[i]).Error; err != nil {
			return fmt.Errorf("failed to seed service %q: %w", services[i].Title, err)
		}
		log.Printf("Seeded service: %s", services[i].Title)
	}

	return nil
}
