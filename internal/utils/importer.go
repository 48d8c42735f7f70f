package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"avercms/internal/models"
	"avercms/internal/slugs"

	"github.com/adrg/frontmatter"
	"gorm.io/gorm"
)

// markdownMatter is the front matter block accepted by the importer.
type markdownMatter struct {
	Title       string   `yaml:"title"`
	Subtitle    string   `yaml:"subtitle"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Date        string   `yaml:"date"`
	Category    string   `yaml:"category"`
	Author      string   `yaml:"author"`
	Tags        []string `yaml:"tags"`
	Slug        string   `yaml:"slug"`
}

// ImportMarkdownBlogs walks dir, parses every .md file and upserts a
// blog post per file, matched by slug. Files whose name starts with an
// underscore are skipped, as are subdirectories.
func ImportMarkdownBlogs(db *gorm.DB, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	imported := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "_") || !strings.HasSuffix(name, ".md") {
			continue
		}

		if err := importMarkdownFile(db, filepath.Join(dir, name)); err != nil {
			return imported, fmt.Errorf("failed to import %s: %w", name, err)
		}
		imported++
	}

	return imported, nil
}

func importMarkdownFile(db *gorm.DB, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var matter markdownMatter
	body, err := frontmatter.Parse(f, &matter)
	if err != nil {
		return fmt.Errorf("failed to parse front matter: %w", err)
	}

	if matter.Title == "" {
		return fmt.Errorf("missing title in front matter")
	}

	slug := matter.Slug
	if slug == "" {
		slug, err = slugs.Make(matter.Title)
		if err != nil {
			return fmt.Errorf("failed to build slug: %w", err)
		}
	}

	date := time.Now()
	if matter.Date != "" {
		parsed, err := time.Parse(time.RFC3339, matter.Date)
		if err != nil {
			parsed, err = time.Parse("2006-01-02", matter.Date)
		}
		if err != nil {
			return fmt.Errorf("unrecognized date %q", matter.Date)
		}
		date = parsed
	}

	var blog models.Blog
	err = db.Where("slug = ?", slug).First(&blog).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	exists := err == nil

	blog.Title = matter.Title
	blog.Subtitle = matter.Subtitle
	blog.Description = matter.Description
	blog.Image = matter.Image
	blog.Date = date
	blog.Category = matter.Category
	blog.Author = matter.Author
	blog.Tags = models.StringList(matter.Tags)
	blog.Slug = slug
	blog.MarkdownContent = string(body)
	if blog.ContentBlocks == nil {
		blog.ContentBlocks = models.BlockList{}
	}
	blog.IsActive = true

	if exists {
		if err := db.Save(&blog).Error; err != nil {
			return err
		}
		log.Printf("Updated blog from %s", filepath.Base(path))
		return nil
	}

	if err := db.Create(&blog).Error; err != nil {
		return err
	}
	log.Printf("Imported blog from %s", filepath.Base(path))
	return nil
}
