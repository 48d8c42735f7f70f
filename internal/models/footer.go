package models

import "time"

// Footer is a singleton document like Header, with call-to-action and
// attribution fields of its own.
type Footer struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	FooterMenu    MenuList  `gorm:"type:jsonb;serializer:json" json:"footerMenu"`
	SocialLinks   MenuList  `gorm:"type:jsonb;serializer:json" json:"socialLinks"`
	CtaText       string    `json:"ctaText"`
	CtaLink       string    `json:"ctaLink"`
	Copyright     string    `json:"copyright"`
	DeveloperInfo string    `json:"developerInfo"`
	DeveloperLink string    `json:"developerLink"`
	IsActive      bool      `json:"isActive"`
	UserID        uint      `json:"user"`
}

// DefaultFooter returns the singleton created lazily on first read.
func DefaultFooter() *Footer {
	return &Footer{
		FooterMenu:    MenuList{},
		SocialLinks:   MenuList{},
		CtaText:       "Let's make something",
		CtaLink:       "/contact",
		Copyright:     "© 2023 Aver. All rights reserved.",
		DeveloperInfo: "Developed by Platol",
		DeveloperLink: "https://themeforest.net/user/platol/portfolio",
		IsActive:      true,
	}
}
