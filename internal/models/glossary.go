package models

import "time"

// GlossaryTerm is a plain dictionary entry, no content blocks.
type GlossaryTerm struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Content     string    `json:"content"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Category    string    `json:"category"`
	IsActive    bool      `json:"isActive"`
	UserID      uint      `json:"user"`
}

func (t GlossaryTerm) GetSlug() string { return t.Slug }
