package models

import (
	"time"

	"github.com/google/uuid"
)

// MenuItem is one ordered link in a header/footer menu or social list.
type MenuItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Link     string `json:"link"`
	IsActive bool   `json:"isActive"`
	Order    int    `json:"order"`
}

func (m MenuItem) ItemID() string { return m.ID }
func (m MenuItem) ItemOrder() int { return m.Order }

type MenuList []MenuItem

// Header is a singleton document: the row with IsActive=true is the
// live site header.
type Header struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	MainMenu    MenuList  `gorm:"type:jsonb;serializer:json" json:"mainMenu"`
	SocialLinks MenuList  `gorm:"type:jsonb;serializer:json" json:"socialLinks"`
	LogoText    string    `json:"logoText"`
	LogoURL     string    `json:"logoUrl"`
	IsActive    bool      `json:"isActive"`
	UserID      uint      `json:"user"`
}

// DefaultHeader returns the singleton created lazily on first read.
func DefaultHeader() *Header {
	return &Header{
		MainMenu:    MenuList{},
		SocialLinks: MenuList{},
		LogoText:    "Aver",
		LogoURL:     "/images/logo.png",
		IsActive:    true,
	}
}

func (l MenuList) EnsureIDs() {
	for i := range l {
		if l[i].ID == "" {
			l[i].ID = uuid.NewString()
		}
	}
}
