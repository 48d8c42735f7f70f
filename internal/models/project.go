package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectInfo holds one label/value pair shown on the project page,
// e.g. Client, Timeline, Services, Website.
type ProjectInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Data  string `json:"data"`
}

type ProjectInfoList []ProjectInfo

func (l ProjectInfoList) EnsureIDs() {
	for i := range l {
		if l[i].ID == "" {
			l[i].ID = uuid.NewString()
		}
	}
}

type Project struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	Title           string          `gorm:"not null" json:"title"`
	Description     string          `json:"description"`
	Image           string          `json:"image"`
	Date            time.Time       `json:"date"`
	Category        string          `json:"category"`
	Color           string          `json:"color"`
	Slug            string          `gorm:"uniqueIndex;not null" json:"slug"`
	ContentBlocks   BlockList       `gorm:"type:jsonb;serializer:json" json:"contentBlocks"`
	MarkdownContent string          `json:"markdownContent"`
	ProjectInfo     ProjectInfoList `gorm:"type:jsonb;serializer:json" json:"projectInfo"`
	IsActive        bool            `json:"isActive"`
	UserID          uint            `json:"user"`
}

const DefaultProjectColor = "#000000"

func (p Project) GetSlug() string { return p.Slug }
