package controllers

import (
	"errors"
	"net/http"
	"time"

	"avercms/internal/auth"
	"avercms/internal/models"
	"avercms/internal/repository"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	repo   repository.ContentRepository[models.Project]
	policy auth.Policy
}

func NewProjectController(repo repository.ContentRepository[models.Project], policy auth.Policy) *ProjectController {
	return &ProjectController{repo: repo, policy: policy}
}

type createProjectRequest struct {
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Image           string                 `json:"image"`
	Date            *time.Time             `json:"date"`
	Category        string                 `json:"category"`
	Color           string                 `json:"color"`
	MarkdownContent string                 `json:"markdownContent"`
	ContentBlocks   models.BlockList       `json:"contentBlocks"`
	ProjectInfo     models.ProjectInfoList `json:"projectInfo"`
}

type updateProjectRequest struct {
	Title           *string                 `json:"title"`
	Description     *string                 `json:"description"`
	Image           *string                 `json:"image"`
	Date            *time.Time              `json:"date"`
	Category        *string                 `json:"category"`
	Color           *string                 `json:"color"`
	MarkdownContent *string                 `json:"markdownContent"`
	ContentBlocks   *models.BlockList       `json:"contentBlocks"`
	ProjectInfo     *models.ProjectInfoList `json:"projectInfo"`
	IsActive        *bool                   `json:"isActive"`
}

func (pc *ProjectController) GetAllProjects(c *gin.Context) {
	projects, err := pc.repo.FindAllActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve projects",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects":      projects,
		"totalProjects": len(projects),
		"currentPage":   1,
		"totalPages":    1,
	})
}

func (pc *ProjectController) GetProjectBySlug(c *gin.Context) {
	project, err := pc.repo.FindActiveBySlug(c.Param("slug"))
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve project",
			"error":   err.Error(),
		})
		return
	}

	resp := *project
	if resp.MarkdownContent != "" && len(resp.ContentBlocks) == 0 {
		resp.ContentBlocks = models.BlockList{
			{Type: "text", Content: resp.MarkdownContent, Order: 0},
		}
	}

	c.JSON(http.StatusOK, gin.H{"project": resp})
}

func (pc *ProjectController) GetProjectByID(c *gin.Context) {
	id, ok := parseID(c, "projectId", "project")
	if !ok {
		return
	}

	project, err := pc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve project",
			"error":   err.Error(),
		})
		return
	}
	if !project.IsActive {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

func (pc *ProjectController) CreateProject(c *gin.Context) {
	userID, ok := requireEditor(c, pc.policy)
	if !ok {
		return
	}

	var req createProjectRequest
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

	slug, err := uniqueSlug(pc.repo, req.Title, 0)
	if err != nil {
		if errors.Is(err, errInvalidTitle) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Title cannot be converted to a valid slug"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create project",
			"error":   err.Error(),
		})
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	color := req.Color
	if color == "" {
		color = models.DefaultProjectColor
	}

	blocks := normalizeBlockList(req.ContentBlocks)

	info := req.ProjectInfo
	if info == nil {
		info = models.ProjectInfoList{}
	}
	info.EnsureIDs()

	project := models.Project{
		Title:           req.Title,
		Description:     req.Description,
		Image:           req.Image,
		Date:            date,
		Category:        req.Category,
		Color:           color,
		Slug:            slug,
		ContentBlocks:   blocks,
		MarkdownContent: req.MarkdownContent,
		ProjectInfo:     info,
		IsActive:        true,
		UserID:          userID,
	}

	if err := pc.repo.Create(&project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create project",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

func (pc *ProjectController) UpdateProject(c *gin.Context) {
	_, ok := requireEditor(c, pc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "projectId", "project")
	if !ok {
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	project, err := pc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update project",
			"error":   err.Error(),
		})
		return
	}

	if req.Title != nil && *req.Title != "" && *req.Title != project.Title {
		slug, err := uniqueSlug(pc.repo, *req.Title, project.ID)
		if err != nil {
			if errors.Is(err, errInvalidTitle) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Title cannot be converted to a valid slug"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to update project",
				"error":   err.Error(),
			})
			return
		}
		project.Title = *req.Title
		project.Slug = slug
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Image != nil {
		project.Image = *req.Image
	}
	if req.Date != nil {
		project.Date = *req.Date
	}
	if req.Category != nil {
		project.Category = *req.Category
	}
	if req.Color != nil {
		project.Color = *req.Color
	}
	if req.MarkdownContent != nil {
		project.MarkdownContent = *req.MarkdownContent
	}
	if req.ContentBlocks != nil {
		blocks := normalizeBlockList(*req.ContentBlocks)
		project.ContentBlocks = blocks
	}
	if req.ProjectInfo != nil {
		info := *req.ProjectInfo
		info.EnsureIDs()
		project.ProjectInfo = info
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}

	if err := pc.repo.Save(project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update project",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

func (pc *ProjectController) DeleteProject(c *gin.Context) {
	_, ok := requireEditor(c, pc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "projectId", "project")
	if !ok {
		return
	}

	project, err := pc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete project",
			"error":   err.Error(),
		})
		return
	}

	project.IsActive = false
	if err := pc.repo.Save(project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete project",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

func (pc *ProjectController) AddContentBlock(c *gin.Context) {
	_, ok := requireEditor(c, pc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "projectId", "project")
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

	project, err := pc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to add content block",
			"error":   err.Error(),
		})
		return
	}

	project.ContentBlocks = appendBlock(project.ContentBlocks, req)

	if err := pc.repo.Save(project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to add content block",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

func (pc *ProjectController) RemoveContentBlock(c *gin.Context) {
	_, ok := requireEditor(c, pc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "projectId", "project")
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

	project, err := pc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to remove content block",
			"error":   err.Error(),
		})
		return
	}

	project.ContentBlocks = removeBlockFromList(project.ContentBlocks, req.BlockID)

	if err := pc.repo.Save(project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to remove content block",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

func (pc *ProjectController) ReorderContentBlocks(c *gin.Context) {
	_, ok := requireEditor(c, pc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "projectId", "project")
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

	project, err := pc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to reorder content blocks",
			"error":   err.Error(),
		})
		return
	}

	reorderBlockList(project.ContentBlocks, req.Blocks)

	if err := pc.repo.Save(project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to reorder content blocks",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

func (pc *ProjectController) UpdateContentBlock(c *gin.Context) {
	_, ok := requireEditor(c, pc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "projectId", "project")
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

	project, err := pc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update content block",
			"error":   err.Error(),
		})
		return
	}

	if !applyBlockUpdate(project.ContentBlocks, req) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Content block not found"})
		return
	}

	if err := pc.repo.Save(project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update content block",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}
