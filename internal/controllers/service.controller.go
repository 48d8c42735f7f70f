package controllers

import (
	"errors"
	"net/http"

	"avercms/internal/auth"
	"avercms/internal/models"
	"avercms/internal/ordering"
	"avercms/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ServiceController struct {
	repo   repository.ContentRepository[models.Service]
	policy auth.Policy
}

func NewServiceController(repo repository.ContentRepository[models.Service], policy auth.Policy) *ServiceController {
	return &ServiceController{repo: repo, policy: policy}
}

type createServiceRequest struct {
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Icon            string             `json:"icon"`
	Image           string             `json:"image"`
	MarkdownContent string             `json:"markdownContent"`
	ContentBlocks   models.BlockList   `json:"contentBlocks"`
	Features        models.FeatureList `json:"features"`
}

type updateServiceRequest struct {
	Title           *string             `json:"title"`
	Description     *string             `json:"description"`
	Icon            *string             `json:"icon"`
	Image           *string             `json:"image"`
	MarkdownContent *string             `json:"markdownContent"`
	ContentBlocks   *models.BlockList   `json:"contentBlocks"`
	Features        *models.FeatureList `json:"features"`
	IsActive        *bool               `json:"isActive"`
}

// updateFeatureRequest serves both append and update: with a featureId
// it updates that feature, without one it appends a new feature at the
// end of the order.
type updateFeatureRequest struct {
	FeatureID string `json:"featureId"`
	Title     string `json:"title"`
	Order     *int   `json:"order"`
	Content   string `json:"content"`
	Icon      string `json:"icon"`
	Image     string `json:"image"`
}

type removeFeatureRequest struct {
	FeatureID string `json:"featureId"`
}

func (sc *ServiceController) GetAllServices(c *gin.Context) {
	services, err := sc.repo.FindAllActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve services",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"services":      services,
		"totalServices": len(services),
		"currentPage":   1,
		"totalPages":    1,
	})
}

func (sc *ServiceController) GetServiceBySlug(c *gin.Context) {
	service, err := sc.repo.FindActiveBySlug(c.Param("slug"))
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve service",
			"error":   err.Error(),
		})
		return
	}

	resp := *service
	if resp.MarkdownContent != "" && len(resp.ContentBlocks) == 0 {
		resp.ContentBlocks = models.BlockList{
			{Type: "text", Content: resp.MarkdownContent, Order: 0},
		}
	}

	c.JSON(http.StatusOK, gin.H{"service": resp})
}

func (sc *ServiceController) GetServiceByID(c *gin.Context) {
	id, ok := parseID(c, "serviceId", "service")
	if !ok {
		return
	}

	service, err := sc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve service",
			"error":   err.Error(),
		})
		return
	}
	if !service.IsActive {
		c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": service})
}

func (sc *ServiceController) CreateService(c *gin.Context) {
	userID, ok := requireEditor(c, sc.policy)
	if !ok {
		return
	}

	var req createServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title is required"})
		return
	}

	slug, err := uniqueSlug(sc.repo, req.Title, 0)
	if err != nil {
		if errors.Is(err, errInvalidTitle) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Title cannot be converted to a valid slug"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create service",
			"error":   err.Error(),
		})
		return
	}

	blocks := normalizeBlockList(req.ContentBlocks)

	features := req.Features
	if features == nil {
		features = models.FeatureList{}
	}
	features.EnsureIDs()
	ordering.SortAsc(features)

	service := models.Service{
		Title:           req.Title,
		Description:     req.Description,
		Icon:            req.Icon,
		Image:           req.Image,
		Slug:            slug,
		ContentBlocks:   blocks,
		MarkdownContent: req.MarkdownContent,
		Features:        features,
		IsActive:        true,
		UserID:          userID,
	}

	if err := sc.repo.Create(&service); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create service",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"service": service})
}

func (sc *ServiceController) UpdateService(c *gin.Context) {
	_, ok := requireEditor(c, sc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "serviceId", "service")
	if !ok {
		return
	}

	var req updateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	service, err := sc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update service",
			"error":   err.Error(),
		})
		return
	}

	if req.Title != nil && *req.Title != "" && *req.Title != service.Title {
		slug, err := uniqueSlug(sc.repo, *req.Title, service.ID)
		if err != nil {
			if errors.Is(err, errInvalidTitle) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Title cannot be converted to a valid slug"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to update service",
				"error":   err.Error(),
			})
			return
		}
		service.Title = *req.Title
		service.Slug = slug
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Icon != nil {
		service.Icon = *req.Icon
	}
	if req.Image != nil {
		service.Image = *req.Image
	}
	if req.MarkdownContent != nil {
		service.MarkdownContent = *req.MarkdownContent
	}
	if req.ContentBlocks != nil {
		blocks := normalizeBlockList(*req.ContentBlocks)
		service.ContentBlocks = blocks
	}
	if req.Features != nil {
		features := *req.Features
		features.EnsureIDs()
		ordering.SortAsc(features)
		service.Features = features
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := sc.repo.Save(service); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update service",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": service})
}

func (sc *ServiceController) DeleteService(c *gin.Context) {
	_, ok := requireEditor(c, sc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "serviceId", "service")
	if !ok {
		return
	}

	service, err := sc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete service",
			"error":   err.Error(),
		})
		return
	}

	service.IsActive = false
	if err := sc.repo.Save(service); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete service",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

func (sc *ServiceController) AddContentBlock(c *gin.Context) {
	_, ok := requireEditor(c, sc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "serviceId", "service")
	if !ok {
		return
	}

	var req addBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.Type == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Type and content fields are required"})
		return
	}
	if !models.IsValidBlockType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown content block type"})
		return
	}

	service, err := sc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to add content block",
			"error":   err.Error(),
		})
		return
	}

	service.ContentBlocks = appendBlock(service.ContentBlocks, req)

	if err := sc.repo.Save(service); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to add content block",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": service})
}

func (sc *ServiceController) RemoveContentBlock(c *gin.Context) {
	_, ok := requireEditor(c, sc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "serviceId", "service")
	if !ok {
		return
	}

	var req removeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.BlockID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Block ID is required"})
		return
	}

	service, err := sc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to remove content block",
			"error":   err.Error(),
		})
		return
	}

	service.ContentBlocks = removeBlockFromList(service.ContentBlocks, req.BlockID)

	if err := sc.repo.Save(service); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to remove content block",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": service})
}

func (sc *ServiceController) ReorderContentBlocks(c *gin.Context) {
	_, ok := requireEditor(c, sc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "serviceId", "service")
	if !ok {
		return
	}

	var req reorderBlocksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.Blocks == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Block ordering information is required"})
		return
	}

	service, err := sc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to reorder content blocks",
			"error":   err.Error(),
		})
		return
	}

	reorderBlockList(service.ContentBlocks, req.Blocks)

	if err := sc.repo.Save(service); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to reorder content blocks",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": service})
}

func (sc *ServiceController) UpdateContentBlock(c *gin.Context) {
	_, ok := requireEditor(c, sc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "serviceId", "service")
	if !ok {
		return
	}

	var req updateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.BlockID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Block ID is required"})
		return
	}
	if req.Type != "" && !models.IsValidBlockType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown content block type"})
		return
	}

	service, err := sc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update content block",
			"error":   err.Error(),
		})
		return
	}

	if !applyBlockUpdate(service.ContentBlocks, req) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Content block not found"})
		return
	}

	if err := sc.repo.Save(service); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update content block",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": service})
}

// AddFeature appends a feature at the end of the order, or at the
// explicit order when one is given.
func (sc *ServiceController) AddFeature(c *gin.Context) {
	_, ok := requireEditor(c, sc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "serviceId", "service")
	if !ok {
		return
	}

	var req updateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Feature title is required"})
		return
	}

	service, err := sc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to add feature",
			"error":   err.Error(),
		})
		return
	}

	order := ordering.Next(service.Features)
	if req.Order != nil {
		order = *req.Order
	}
	service.Features = append(service.Features, models.Feature{
		ID:      uuid.NewString(),
		Title:   req.Title,
		Order:   order,
		Content: req.Content,
		Icon:    req.Icon,
		Image:   req.Image,
	})
	ordering.SortAsc(service.Features)

	if err := sc.repo.Save(service); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to add feature",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": service})
}

// UpdateFeature updates the addressed feature or, when no featureId is
// given, appends a new one at the end of the order. The list is kept
// sorted ascending either way.
func (sc *ServiceController) UpdateFeature(c *gin.Context) {
	_, ok := requireEditor(c, sc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "serviceId", "service")
	if !ok {
		return
	}

	var req updateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Feature title is required"})
		return
	}

	service, err := sc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update feature",
			"error":   err.Error(),
		})
		return
	}

	if req.FeatureID != "" {
		index := -1
		for i := range service.Features {
			if service.Features[i].ID == req.FeatureID {
				index = i
				break
			}
		}
		if index == -1 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Feature not found"})
			return
		}
		service.Features[index].Title = req.Title
		if req.Order != nil {
			service.Features[index].Order = *req.Order
		}
		if req.Content != "" {
			service.Features[index].Content = req.Content
		}
		if req.Icon != "" {
			service.Features[index].Icon = req.Icon
		}
		if req.Image != "" {
			service.Features[index].Image = req.Image
		}
	} else {
		order := ordering.Next(service.Features)
		if req.Order != nil {
			order = *req.Order
		}
		service.Features = append(service.Features, models.Feature{
			ID:      uuid.NewString(),
			Title:   req.Title,
			Order:   order,
			Content: req.Content,
			Icon:    req.Icon,
			Image:   req.Image,
		})
	}

	ordering.SortAsc(service.Features)

	if err := sc.repo.Save(service); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update feature",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": service})
}

// RemoveFeature filters the feature out of the list; an unknown
// featureId is a silent no-op.
func (sc *ServiceController) RemoveFeature(c *gin.Context) {
	_, ok := requireEditor(c, sc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "serviceId", "service")
	if !ok {
		return
	}

	var req removeFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.FeatureID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Feature ID is required"})
		return
	}

	service, err := sc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to remove feature",
			"error":   err.Error(),
		})
		return
	}

	service.Features = models.FeatureList(ordering.RemoveByID(service.Features, req.FeatureID))

	if err := sc.repo.Save(service); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to remove feature",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": service})
}
