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

type HeaderController struct {
	repo   repository.SingletonRepository[models.Header]
	policy auth.Policy
}

func NewHeaderController(repo repository.SingletonRepository[models.Header], policy auth.Policy) *HeaderController {
	return &HeaderController{repo: repo, policy: policy}
}

type updateHeaderRequest struct {
	MainMenu    *models.MenuList `json:"mainMenu"`
	SocialLinks *models.MenuList `json:"socialLinks"`
	LogoText    *string          `json:"logoText"`
	LogoURL     *string          `json:"logoUrl"`
}

type addMenuItemRequest struct {
	Name string `json:"name"`
	Link string `json:"link"`
	Type string `json:"type"`
}

type removeMenuItemRequest struct {
	ItemID string `json:"itemId"`
	Type   string `json:"type"`
}

type reorderMenuItemsRequest struct {
	Items []ordering.Move `json:"items"`
	Type  string          `json:"type"`
}

// headerMenu maps a menu type to the matching list on the header, nil
// when the type is unknown.
func headerMenu(h *models.Header, menuType string) *models.MenuList {
	switch menuType {
	case "mainMenu":
		return &h.MainMenu
	case "socialLinks":
		return &h.SocialLinks
	}
	return nil
}

// GetHeader returns the active header, creating the default one on
// first read.
func (hc *HeaderController) GetHeader(c *gin.Context) {
	header, err := hc.repo.FindActive()
	if err != nil {
		if !repository.IsNotFound(err) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to retrieve header",
				"error":   err.Error(),
			})
			return
		}
		header = models.DefaultHeader()
		if err := hc.repo.Create(header); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to retrieve header",
				"error":   err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"header": header})
}

// UpdateHeader applies a partial update; if no header exists yet it
// creates one from the defaults plus the provided fields.
func (hc *HeaderController) UpdateHeader(c *gin.Context) {
	userID, ok := requireEditor(c, hc.policy)
	if !ok {
		return
	}

	var req updateHeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	header, err := hc.repo.FindActive()
	created := false
	if err != nil {
		if !repository.IsNotFound(err) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to update header",
				"error":   err.Error(),
			})
			return
		}
		header = models.DefaultHeader()
		header.UserID = userID
		created = true
	}

	if req.MainMenu != nil {
		menu := *req.MainMenu
		menu.EnsureIDs()
		ordering.SortAsc(menu)
		header.MainMenu = menu
	}
	if req.SocialLinks != nil {
		links := *req.SocialLinks
		links.EnsureIDs()
		ordering.SortAsc(links)
		header.SocialLinks = links
	}
	if req.LogoText != nil {
		header.LogoText = *req.LogoText
	}
	if req.LogoURL != nil {
		header.LogoURL = *req.LogoURL
	}

	if created {
		if err := hc.repo.Create(header); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to update header",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"header": header})
		return
	}

	if err := hc.repo.Save(header); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update header",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"header": header})
}

func (hc *HeaderController) AddMenuItem(c *gin.Context) {
	userID, ok := requireEditor(c, hc.policy)
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

	header, err := hc.repo.FindActive()
	if err != nil {
		if !repository.IsNotFound(err) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to add menu item",
				"error":   err.Error(),
			})
			return
		}
		header = models.DefaultHeader()
		header.UserID = userID
		menu := headerMenu(header, req.Type)
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
		if err := hc.repo.Create(header); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to add menu item",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"header": header})
		return
	}

	menu := headerMenu(header, req.Type)
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

	if err := hc.repo.Save(header); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to add menu item",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"header": header})
}

func (hc *HeaderController) RemoveMenuItem(c *gin.Context) {
	_, ok := requireEditor(c, hc.policy)
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

	header, err := hc.repo.FindActive()
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Header not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to remove menu item",
			"error":   err.Error(),
		})
		return
	}

	menu := headerMenu(header, req.Type)
	if menu == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown menu type"})
		return
	}

	*menu = models.MenuList(ordering.RemoveByID(*menu, req.ItemID))

	if err := hc.repo.Save(header); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to remove menu item",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"header": header})
}

func (hc *HeaderController) ReorderMenuItems(c *gin.Context) {
	_, ok := requireEditor(c, hc.policy)
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

	header, err := hc.repo.FindActive()
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Header not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to reorder menu items",
			"error":   err.Error(),
		})
		return
	}

	menu := headerMenu(header, req.Type)
	if menu == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown menu type"})
		return
	}

	ordering.Apply(*menu, req.Items, func(m *models.MenuItem, order int) {
		m.Order = order
	})

	if err := hc.repo.Save(header); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to reorder menu items",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"header": header})
}
