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

type BlogController struct {
	repo   repository.ContentRepository[models.Blog]
	policy auth.Policy
}

func NewBlogController(repo repository.ContentRepository[models.Blog], policy auth.Policy) *BlogController {
	return &BlogController{repo: repo, policy: policy}
}

type createBlogRequest struct {
	Title           string            `json:"title"`
	Subtitle        string            `json:"subtitle"`
	Description     string            `json:"description"`
	Image           string            `json:"image"`
	Date            *time.Time        `json:"date"`
	Category        string            `json:"category"`
	Author          string            `json:"author"`
	Tags            models.StringList `json:"tags"`
	MarkdownContent string            `json:"markdownContent"`
	ContentBlocks   models.BlockList  `json:"contentBlocks"`
}

type updateBlogRequest struct {
	Title           *string            `json:"title"`
	Subtitle        *string            `json:"subtitle"`
	Description     *string            `json:"description"`
	Image           *string            `json:"image"`
	Date            *time.Time         `json:"date"`
	Category        *string            `json:"category"`
	Author          *string            `json:"author"`
	Tags            *models.StringList `json:"tags"`
	MarkdownContent *string            `json:"markdownContent"`
	ContentBlocks   *models.BlockList  `json:"contentBlocks"`
	IsActive        *bool              `json:"isActive"`
}

// GetAllBlogs returns every active blog post, newest first, without
// content blocks. The paging fields are fixed placeholders: the
// endpoint has never paginated and clients rely on the shape.
func (bc *BlogController) GetAllBlogs(c *gin.Context) {
	blogs, err := bc.repo.FindAllActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve blog posts",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"blogs":       blogs,
		"totalBlogs":  len(blogs),
		"currentPage": 1,
		"totalPages":  1,
	})
}

// GetBlogBySlug returns one active post. Posts imported from markdown
// may have no blocks; those get a single synthesized text block in the
// response so older readers keep working. The shim is never persisted.
func (bc *BlogController) GetBlogBySlug(c *gin.Context) {
	blog, err := bc.repo.FindActiveBySlug(c.Param("slug"))
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve blog post",
			"error":   err.Error(),
		})
		return
	}

	resp := *blog
	if resp.MarkdownContent != "" && len(resp.ContentBlocks) == 0 {
		resp.ContentBlocks = models.BlockList{
			{Type: "text", Content: resp.MarkdownContent, Order: 0},
		}
	}

	c.JSON(http.StatusOK, gin.H{"blog": resp})
}

func (bc *BlogController) GetBlogByID(c *gin.Context) {
	id, ok := parseID(c, "blogId", "blog")
	if !ok {
		return
	}

	blog, err := bc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve blog post",
			"error":   err.Error(),
		})
		return
	}
	if !blog.IsActive {
		c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

func (bc *BlogController) CreateBlog(c *gin.Context) {
	userID, ok := requireEditor(c, bc.policy)
	if !ok {
		return
	}

	var req createBlogRequest
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

	slug, err := uniqueSlug(bc.repo, req.Title, 0)
	if err != nil {
		if errors.Is(err, errInvalidTitle) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Title cannot be converted to a valid slug"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create blog post",
			"error":   err.Error(),
		})
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	blocks := normalizeBlockList(req.ContentBlocks)

	tags := req.Tags
	if tags == nil {
		tags = models.StringList{}
	}

	blog := models.Blog{
		Title:           req.Title,
		Subtitle:        req.Subtitle,
		Description:     req.Description,
		Image:           req.Image,
		Date:            date,
		Category:        req.Category,
		Author:          req.Author,
		Tags:            tags,
		Slug:            slug,
		ContentBlocks:   blocks,
		MarkdownContent: req.MarkdownContent,
		IsActive:        true,
		UserID:          userID,
	}

	if err := bc.repo.Create(&blog); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create blog post",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"blog": blog})
}

// UpdateBlog applies the provided fields to the post. It deliberately
// does not filter on isActive so soft-deleted posts stay editable.
func (bc *BlogController) UpdateBlog(c *gin.Context) {
	_, ok := requireEditor(c, bc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "blogId", "blog")
	if !ok {
		return
	}

	var req updateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	blog, err := bc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update blog post",
			"error":   err.Error(),
		})
		return
	}

	if req.Title != nil && *req.Title != "" && *req.Title != blog.Title {
		slug, err := uniqueSlug(bc.repo, *req.Title, blog.ID)
		if err != nil {
			if errors.Is(err, errInvalidTitle) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Title cannot be converted to a valid slug"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to update blog post",
				"error":   err.Error(),
			})
			return
		}
		blog.Title = *req.Title
		blog.Slug = slug
	}
	if req.Subtitle != nil {
		blog.Subtitle = *req.Subtitle
	}
	if req.Description != nil {
		blog.Description = *req.Description
	}
	if req.Image != nil {
		blog.Image = *req.Image
	}
	if req.Date != nil {
		blog.Date = *req.Date
	}
	if req.Category != nil {
		blog.Category = *req.Category
	}
	if req.Author != nil {
		blog.Author = *req.Author
	}
	if req.Tags != nil {
		blog.Tags = *req.Tags
	}
	if req.MarkdownContent != nil {
		blog.MarkdownContent = *req.MarkdownContent
	}
	if req.ContentBlocks != nil {
		blocks := normalizeBlockList(*req.ContentBlocks)
		blog.ContentBlocks = blocks
	}
	if req.IsActive != nil {
		blog.IsActive = *req.IsActive
	}

	if err := bc.repo.Save(blog); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update blog post",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

// DeleteBlog soft-deletes: the row stays in storage with
// isActive=false and disappears from the public read endpoints.
func (bc *BlogController) DeleteBlog(c *gin.Context) {
	_, ok := requireEditor(c, bc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "blogId", "blog")
	if !ok {
		return
	}

	blog, err := bc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete blog post",
			"error":   err.Error(),
		})
		return
	}

	blog.IsActive = false
	if err := bc.repo.Save(blog); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete blog post",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
}

func (bc *BlogController) AddContentBlock(c *gin.Context) {
	_, ok := requireEditor(c, bc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "blogId", "blog")
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

	blog, err := bc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to add content block",
			"error":   err.Error(),
		})
		return
	}

	blog.ContentBlocks = appendBlock(blog.ContentBlocks, req)

	if err := bc.repo.Save(blog); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to add content block",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

// RemoveContentBlock filters the block out of the list. Removing an id
// that is not present succeeds without touching anything.
func (bc *BlogController) RemoveContentBlock(c *gin.Context) {
	_, ok := requireEditor(c, bc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "blogId", "blog")
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

	blog, err := bc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to remove content block",
			"error":   err.Error(),
		})
		return
	}

	blog.ContentBlocks = removeBlockFromList(blog.ContentBlocks, req.BlockID)

	if err := bc.repo.Save(blog); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to remove content block",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

// ReorderContentBlocks applies the submitted {id, order} pairs and
// re-sorts the list. Pairs naming unknown block ids are ignored.
func (bc *BlogController) ReorderContentBlocks(c *gin.Context) {
	_, ok := requireEditor(c, bc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "blogId", "blog")
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

	blog, err := bc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to reorder content blocks",
			"error":   err.Error(),
		})
		return
	}

	reorderBlockList(blog.ContentBlocks, req.Blocks)

	if err := bc.repo.Save(blog); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to reorder content blocks",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

func (bc *BlogController) UpdateContentBlock(c *gin.Context) {
	_, ok := requireEditor(c, bc.policy)
	if !ok {
		return
	}

	id, ok := parseID(c, "blogId", "blog")
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

	blog, err := bc.repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update content block",
			"error":   err.Error(),
		})
		return
	}

	if !applyBlockUpdate(blog.ContentBlocks, req) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Content block not found"})
		return
	}

	if err := bc.repo.Save(blog); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update content block",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}
