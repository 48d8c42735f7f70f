package models

import "time"

type Blog struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	Title           string     `gorm:"not null" json:"title"`
	Subtitle        string     `json:"subtitle"`
	Description     string     `json:"description"`
	Image           string     `json:"image"`
	Date            time.Time  `json:"date"`
	Category        string     `json:"category"`
	Author          string     `json:"author"`
	Tags            StringList `gorm:"type:jsonb;serializer:json" json:"tags"`
	Slug            string     `gorm:"uniqueIndex;not null" json:"slug"`
	ContentBlocks   BlockList  `gorm:"type:jsonb;serializer:json" json:"contentBlocks"`
	MarkdownContent string     `json:"markdownContent"`
	IsActive        bool       `json:"isActive"`
	UserID          uint       `json:"user"`
}

type StringList []string

func (b Blog) GetSlug() string { return b.Slug }
