package controllers

import (
	"net/http"

	"avercms/internal/auth"
	"avercms/internal/models"
	"avercms/internal/ordering"
	"avercms/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FooterController struct {
	repo   repository.SingletonRepository[models.Footer]
	policy auth.Policy
}

func NewFooterController(repo repository.SingletonRepository[models.Footer], policy auth.Policy) *FooterController {
	return &FooterController{repo: repo, policy: policy}
}

type updateFooterRequest struct {
	FooterMenu    *models.MenuList `json:"footerMenu"`
	SocialLinks   *models.MenuList `json:"socialLinks"`
	CtaText       *string          `json:"ctaText"`
	CtaLink       *string          `json:"ctaLink"`
	Copyright     *string          `json:"copyright"`
	DeveloperInfo *string          `json:"developerInfo"`
	DeveloperLink *string          `json:"developerLink"`
}

func footerMenu(f *models.Footer, menuType string) *models.MenuList {
	switch menuType {
	case "footerMenu":
		return &f.FooterMenu
	case "socialLinks":
		return &f.SocialLinks
	}
	return nil
}

// GetFooter returns the active footer, creating the default one on
// first read.
func (fc *FooterController) GetFooter(c *gin.Context) {
	footer, err := fc.repo.FindActive()
	if err != nil {
		if !repository.IsNotFound(err) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to retrieve footer",
				"error":   err.Error(),
			})
			return
		}
		footer = models.DefaultFooter()
		if err := fc.repo.Create(footer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to retrieve footer",
				"error":   err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"footer": footer})
}

func (fc *FooterController) UpdateFooter(c *gin.Context) {
	userID, ok := requireEditor(c, fc.policy)
	if !ok {
		return
	}

	var req updateFooterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	footer, err := fc.repo.FindActive()
	created := false
	if err != nil {
		if !repository.IsNotFound(err) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to update footer",
				"error":   err.Error(),
			})
			return
		}
		footer = models.DefaultFooter()
		footer.UserID = userID
		created = true
	}

	if req.FooterMenu != nil {
		menu := *req.FooterMenu
		menu.EnsureIDs()
		ordering.SortAsc(menu)
		footer.FooterMenu = menu
	}
	if req.SocialLinks != nil {
		links := *req.SocialLinks
		links.EnsureIDs()
		ordering.SortAsc(links)
		footer.SocialLinks = links
	}
	if req.CtaText != nil {
		footer.CtaText = *req.CtaText
	}
	if req.CtaLink != nil {
		footer.CtaLink = *req.CtaLink
	}
	if req.Copyright != nil {
		footer.Copyright = *req.Copyright
	}
	if req.DeveloperInfo != nil {
		footer.DeveloperInfo = *req.DeveloperInfo
	}
	if req.DeveloperLink != nil {
		footer.DeveloperLink = *req.DeveloperLink
	}

	if created {
		if err := fc.repo.Create(footer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to update footer",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"footer": footer})
		return
	}

	if err := fc.repo.Save(footer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update footer",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"footer": footer})
}

func (fc *FooterController) AddMenuItem(c *gin.Context) {
	userID, ok := requireEditor(c, fc.policy)
	if !ok {
		return
	}

	var req addMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.Name == "" || req.Link == "" || req.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, link and type are required"})
		return
	}

	footer, err := fc.repo.FindActive()
	if err != nil {
		if !repository.IsNotFound(err) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to add menu item",
				"error":   err.Error(),
			})
			return
		}
		footer = models.DefaultFooter()
		footer.UserID = userID
		menu := footerMenu(footer, req.Type)
		if menu == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown menu type"})
			return
		}
		*menu = models.MenuList{{
			ID:       uuid.NewString(),
			Name:     req.Name,
			Link:     req.Link,
			IsActive: true,
			Order:    0,
		}}
		if err := fc.repo.Create(footer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to add menu item",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"footer": footer})
		return
	}

	menu := footerMenu(footer, req.Type)
	if menu == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown menu type"})
		return
	}

	*menu = append(*menu, models.MenuItem{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Link:     req.Link,
		IsActive: true,
		Order:    ordering.Next(*menu),
	})

	if err := fc.repo.Save(footer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to add menu item",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"footer": footer})
}

func (fc *FooterController) RemoveMenuItem(c *gin.Context) {
	_, ok := requireEditor(c, fc.policy)
	if !ok {
		return
	}

	var req removeMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.ItemID == "" || req.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Item ID and type are required"})
		return
	}

	footer, err := fc.repo.FindActive()
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Footer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to remove menu item",
			"error":   err.Error(),
		})
		return
	}

	menu := footerMenu(footer, req.Type)
	if menu == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown menu type"})
		return
	}

	*menu = models.MenuList(ordering.RemoveByID(*menu, req.ItemID))

	if err := fc.repo.Save(footer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to remove menu item",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"footer": footer})
}

func (fc *FooterController) ReorderMenuItems(c *gin.Context) {
	_, ok := requireEditor(c, fc.policy)
	if !ok {
		return
	}

	var req reorderMenuItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.Items == nil || req.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Items and type are required"})
		return
	}

	footer, err := fc.repo.FindActive()
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Footer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to reorder menu items",
			"error":   err.Error(),
		})
		return
	}

	menu := footerMenu(footer, req.Type)
	if menu == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown menu type"})
		return
	}

	ordering.Apply(*menu, req.Items, func(m *models.MenuItem, order int) {
		m.Order = order
	})

	if err := fc.repo.Save(footer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to reorder menu items",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"footer": footer})
}
