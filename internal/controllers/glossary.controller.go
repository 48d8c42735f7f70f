package controllers

import (
	"errors"
	"net/http"

	"avercms/internal/auth"
	"avercms/internal/models"
	"avercms/internal/repository"

	"github.com/gin-gonic/gin"
)

type GlossaryController struct {
	repo   repository.ContentRepository[models.GlossaryTerm]
	policy auth.Policy
}

func NewGlossaryController(repo repository.ContentRepository[models.GlossaryTerm], policy auth.Policy) *GlossaryController {
	return &GlossaryController{repo: repo, policy: policy}
}

type createGlossaryTermRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Category    string `json:"category"`
}

type updateGlossaryTermRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	Category    *string `json:"category"`
	IsActive    *bool   `json:"isActive"`
}

func (gc *GlossaryController) GetAllTerms(c *gin.Context) {
	terms, err := gc.repo.FindAllActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve glossary terms",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"glossaryTerms": terms,
		"totalTerms":    len(terms),
	})
}

func (gc *GlossaryController) GetTermBySlug(c *gin.Context) {
	term, err := gc.repo.FindActiveBySlug(c.Param("slug"))
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Glossary term not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve glossary term",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"glossaryTerm": term})
}

func (gc *GlossaryController) GetTermByID(c *gin.Context) {
	id, ok := parseID(c, "termId", "glossary term")
	if !ok {
		return
	}

	term, err := gc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Glossary term not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve glossary term",
			"error":   err.Error(),
		})
		return
	}
	if !term.IsActive {
		c.JSON(http.StatusNotFound, gin.H{"message": "Glossary term not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"glossaryTerm": term})
}

func (gc *GlossaryController) CreateTerm(c *gin.Context) {
	userID, ok := requireEditor(c, gc.policy)
	if !ok {
		return
	}

	var req createGlossaryTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.Title == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and description are required"})
		return
	}

	slug, err := uniqueSlug(gc.repo, req.Title, 0)
	if err != nil {
		if errors.Is(err, errInvalidTitle) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Title cannot be converted to a valid slug"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create glossary term",
			"error":   err.Error(),
		})
		return
	}

	term := models.GlossaryTerm{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Category:    req.Category,
		Slug:        slug,
		IsActive:    true,
		UserID:      userID,
	}

	if err := gc.repo.Create(&term); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create glossary term",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"glossaryTerm": term})
}

func (gc *GlossaryController) UpdateTerm(c *gin.Context) {
	_, ok := requireEditor(c, gc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "termId", "glossary term")
	if !ok {
		return
	}

	var req updateGlossaryTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	term, err := gc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Glossary term not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update glossary term",
			"error":   err.Error(),
		})
		return
	}

	if req.Title != nil && *req.Title != "" && *req.Title != term.Title {
		slug, err := uniqueSlug(gc.repo, *req.Title, term.ID)
		if err != nil {
			if errors.Is(err, errInvalidTitle) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Title cannot be converted to a valid slug"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to update glossary term",
				"error":   err.Error(),
			})
			return
		}
		term.Title = *req.Title
		term.Slug = slug
	}
	if req.Description != nil {
		term.Description = *req.Description
	}
	if req.Content != nil {
		term.Content = *req.Content
	}
	if req.Category != nil {
		term.Category = *req.Category
	}
	if req.IsActive != nil {
		term.IsActive = *req.IsActive
	}

	if err := gc.repo.Save(term); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update glossary term",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"glossaryTerm": term})
}

func (gc *GlossaryController) DeleteTerm(c *gin.Context) {
	_, ok := requireEditor(c, gc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "termId", "glossary term")
	if !ok {
		return
	}

	term, err := gc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Glossary term not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete glossary term",
			"error":   err.Error(),
		})
		return
	}

	term.IsActive = false
	if err := gc.repo.Save(term); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete glossary term",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Glossary term deleted successfully"})
}
