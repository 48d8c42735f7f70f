package models

import (
	"time"

	"github.com/google/uuid"
)

// Feature is one ordered entry in a service's feature list.
type Feature struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Order   int    `json:"order"`
	Content string `json:"content,omitempty"`
	Icon    string `json:"icon,omitempty"`
	Image   string `json:"image,omitempty"`
}

func (f Feature) ItemID() string { return f.ID }
func (f Feature) ItemOrder() int { return f.Order }

type FeatureList []Feature

type Service struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	Title           string      `gorm:"not null" json:"title"`
	Description     string      `json:"description"`
	Icon            string      `json:"icon"`
	Image           string      `json:"image"`
	Slug            string      `gorm:"uniqueIndex;not null" json:"slug"`
	ContentBlocks   BlockList   `gorm:"type:jsonb;serializer:json" json:"contentBlocks"`
	MarkdownContent string      `json:"markdownContent"`
	Features        FeatureList `gorm:"type:jsonb;serializer:json" json:"features"`
	IsActive        bool        `json:"isActive"`
	UserID          uint        `json:"user"`
}

func (s Service) GetSlug() string { return s.Slug }

func (l FeatureList) EnsureIDs() {
	for i := range l {
		if l[i].ID == "" {
			l[i].ID = uuid.NewString()
		}
	}
}
