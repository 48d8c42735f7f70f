package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"avercms/internal/auth"
	"avercms/internal/controllers"
	"avercms/internal/models"
	"avercms/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Test helper functions
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

func addAuthMiddleware(userID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

func testPolicy() auth.Policy {
	return auth.NewPolicy(auth.DefaultEditorRoles)
}

func setupBlogController() (*controllers.BlogController, *mocks.MockContentRepository[models.Blog]) {
	mockRepo := new(mocks.MockContentRepository[models.Blog])
	controller := controllers.NewBlogController(mockRepo, testPolicy())
	return controller, mockRepo
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(v)
	assert.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestCreateBlog(t *testing.T) {
	tests := []struct {
		name           string
		role           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockContentRepository[models.Blog])
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful creation",
			role: "admin",
			requestBody: map[string]interface{}{
				"title":       "Hello World",
				"description": "First post",
			},
			setupMock: func(m *mocks.MockContentRepository[models.Blog]) {
				m.On("SlugExists", "hello-world", uint(0)).Return(false, nil)
				m.On("Create", mock.AnythingOfType("*models.Blog")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing title",
			role: "admin",
			requestBody: map[string]interface{}{
				"description": "No title here",
			},
			setupMock:      func(m *mocks.MockContentRepository[models.Blog]) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Title is required",
		},
		{
			name: "role not allowed",
			role: "viewer",
			requestBody: map[string]interface{}{
				"title": "Hello World",
			},
			setupMock:      func(m *mocks.MockContentRepository[models.Blog]) {},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "You do not have permission for this action",
		},
		{
			name: "repository error",
			role: "editör",
			requestBody: map[string]interface{}{
				"title": "Hello World",
			},
			setupMock: func(m *mocks.MockContentRepository[models.Blog]) {
				m.On("SlugExists", "hello-world", uint(0)).Return(false, nil)
				m.On("Create", mock.AnythingOfType("*models.Blog")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to create blog post",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupBlogController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1, tt.role))
			router.POST("/blog/create", controller.CreateBlog)

			req := httptest.NewRequest("POST", "/blog/create", jsonBody(t, tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, response["message"])
			}
			if tt.expectedStatus == http.StatusCreated {
				blog := response["blog"].(map[string]interface{})
				assert.Equal(t, "hello-world", blog["slug"])
				assert.Equal(t, true, blog["isActive"])
				assert.Equal(t, float64(1), blog["user"])
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCreateBlogSlugCollision(t *testing.T) {
	controller, mockRepo := setupBlogController()
	mockRepo.On("SlugExists", "hello-world", uint(0)).Return(true, nil)
	mockRepo.On("Create", mock.AnythingOfType("*models.Blog")).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1, "admin"))
	router.POST("/blog/create", controller.CreateBlog)

	req := httptest.NewRequest("POST", "/blog/create",
		jsonBody(t, map[string]interface{}{"title": "Hello World"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	slug := response["blog"].(map[string]interface{})["slug"].(string)
	assert.True(t, strings.HasPrefix(slug, "hello-world-"))
	assert.Greater(t, len(slug), len("hello-world-"))
}

func TestCreateBlogRequiresAuth(t *testing.T) {
	controller, mockRepo := setupBlogController()

	router := setupTestRouter()
	// No auth middleware: the request carries no identity.
	router.POST("/blog/create", controller.CreateBlog)

	req := httptest.NewRequest("POST", "/blog/create",
		jsonBody(t, map[string]interface{}{"title": "Hello World"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Authentication required", response["message"])
	mockRepo.AssertNotCalled(t, "Create")
}

func TestGetAllBlogs(t *testing.T) {
	controller, mockRepo := setupBlogController()
	mockRepo.On("FindAllActive").Return([]models.Blog{
		{ID: 1, Title: "First", Slug: "first", IsActive: true},
		{ID: 2, Title: "Second", Slug: "second", IsActive: true},
	}, nil)

	router := setupTestRouter()
	router.GET("/blog", controller.GetAllBlogs)

	req := httptest.NewRequest("GET", "/blog", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response["blogs"], 2)
	assert.Equal(t, float64(2), response["totalBlogs"])
	assert.Equal(t, float64(1), response["currentPage"])
	assert.Equal(t, float64(1), response["totalPages"])
	mockRepo.AssertExpectations(t)
}

func TestGetBlogBySlugMarkdownShim(t *testing.T) {
	controller, mockRepo := setupBlogController()
	mockRepo.On("FindActiveBySlug", "legacy-post").Return(&models.Blog{
		ID:              3,
		Title:           "Legacy Post",
		Slug:            "legacy-post",
		MarkdownContent: "# Old body",
		ContentBlocks:   models.BlockList{},
		IsActive:        true,
	}, nil)

	router := setupTestRouter()
	router.GET("/blog/:slug", controller.GetBlogBySlug)

	req := httptest.NewRequest("GET", "/blog/legacy-post", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	blog := response["blog"].(map[string]interface{})
	blocks := blog["contentBlocks"].([]interface{})
	assert.Len(t, blocks, 1)
	block := blocks[0].(map[string]interface{})
	assert.Equal(t, "text", block["type"])
	assert.Equal(t, "# Old body", block["content"])
	assert.Equal(t, float64(0), block["order"])
	// The shim is response-only, so nothing is written back.
	mockRepo.AssertNotCalled(t, "Save")
}

func TestGetBlogByID(t *testing.T) {
	tests := []struct {
		name           string
		blogID         string
		setupMock      func(*mocks.MockContentRepository[models.Blog])
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "found",
			blogID: "1",
			setupMock: func(m *mocks.MockContentRepository[models.Blog]) {
				m.On("FindByID", uint(1)).Return(&models.Blog{ID: 1, Slug: "first", IsActive: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed id",
			blogID:         "not-a-number",
			setupMock:      func(m *mocks.MockContentRepository[models.Blog]) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid blog ID format",
		},
		{
			name:   "not found",
			blogID: "99",
			setupMock: func(m *mocks.MockContentRepository[models.Blog]) {
				m.On("FindByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Blog post not found",
		},
		{
			name:   "soft deleted reads as missing",
			blogID: "7",
			setupMock: func(m *mocks.MockContentRepository[models.Blog]) {
				m.On("FindByID", uint(7)).Return(&models.Blog{ID: 7, Slug: "gone", IsActive: false}, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Blog post not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupBlogController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.GET("/blog/id/:blogId", controller.GetBlogByID)

			req := httptest.NewRequest("GET", "/blog/id/"+tt.blogID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMsg != "" {
				var response map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedMsg, response["message"])
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateBlogReachesSoftDeleted(t *testing.T) {
	controller, mockRepo := setupBlogController()
	mockRepo.On("FindByID", uint(4)).Return(&models.Blog{
		ID:       4,
		Title:    "Archived",
		Slug:     "archived",
		IsActive: false,
	}, nil)
	mockRepo.On("Save", mock.AnythingOfType("*models.Blog")).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1, "admin"))
	router.PUT("/blog/:blogId", controller.UpdateBlog)

	req := httptest.NewRequest("PUT", "/blog/4",
		jsonBody(t, map[string]interface{}{"isActive": true}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	blog := response["blog"].(map[string]interface{})
	assert.Equal(t, true, blog["isActive"])
	mockRepo.AssertExpectations(t)
}

func TestUpdateBlogTitleRegeneratesSlug(t *testing.T) {
	controller, mockRepo := setupBlogController()
	mockRepo.On("FindByID", uint(5)).Return(&models.Blog{
		ID:       5,
		Title:    "Old Title",
		Slug:     "old-title",
		IsActive: true,
	}, nil)
	mockRepo.On("SlugExists", "new-title", uint(5)).Return(false, nil)
	mockRepo.On("Save", mock.AnythingOfType("*models.Blog")).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1, "admin"))
	router.PUT("/blog/:blogId", controller.UpdateBlog)

	req := httptest.NewRequest("PUT", "/blog/5",
		jsonBody(t, map[string]interface{}{"title": "New Title"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	blog := response["blog"].(map[string]interface{})
	assert.Equal(t, "new-title", blog["slug"])
	mockRepo.AssertExpectations(t)
}

func TestDeleteBlogSoftDeletes(t *testing.T) {
	controller, mockRepo := setupBlogController()
	blog := &models.Blog{ID: 6, Title: "Doomed", Slug: "doomed", IsActive: true}
	mockRepo.On("FindByID", uint(6)).Return(blog, nil)
	mockRepo.On("Save", mock.AnythingOfType("*models.Blog")).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1, "admin"))
	router.DELETE("/blog/:blogId", controller.DeleteBlog)

	req := httptest.NewRequest("DELETE", "/blog/6", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, blog.IsActive)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Blog post deleted successfully", response["message"])
	assert.NotContains(t, response, "blog")
	mockRepo.AssertExpectations(t)
}

func TestAddContentBlock(t *testing.T) {
	controller, mockRepo := setupBlogController()
	mockRepo.On("FindByID", uint(1)).Return(&models.Blog{
		ID:       1,
		Slug:     "first",
		IsActive: true,
		ContentBlocks: models.BlockList{
			{ID: "a", Type: "text", Content: "one", Order: 0},
			{ID: "b", Type: "text", Content: "two", Order: 2},
			{ID: "c", Type: "text", Content: "three", Order: 2},
		},
	}, nil)
	mockRepo.On("Save", mock.AnythingOfType("*models.Blog")).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1, "admin"))
	router.POST("/blog/:blogId/blocks", controller.AddContentBlock)

	req := httptest.NewRequest("POST", "/blog/1/blocks",
		jsonBody(t, map[string]interface{}{"type": "quote", "content": "four"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	blocks := response["blog"].(map[string]interface{})["contentBlocks"].([]interface{})
	assert.Len(t, blocks, 4)
	added := blocks[3].(map[string]interface{})
	// Appending after orders [0,2,2] lands at max+1.
	assert.Equal(t, float64(3), added["order"])
	assert.NotEmpty(t, added["id"])
	mockRepo.AssertExpectations(t)
}

func TestAddContentBlockValidation(t *testing.T) {
	tests := []struct {
		name        string
		requestBody map[string]interface{}
		expectedMsg string
	}{
		{
			name:        "missing content",
			requestBody: map[string]interface{}{"type": "text"},
			expectedMsg: "Type and content fields are required",
		},
		{
			name:        "unknown block type",
			requestBody: map[string]interface{}{"type": "carousel", "content": "x"},
			expectedMsg: "Unknown content block type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupBlogController()

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1, "admin"))
			router.POST("/blog/:blogId/blocks", controller.AddContentBlock)

			req := httptest.NewRequest("POST", "/blog/1/blocks", jsonBody(t, tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedMsg, response["message"])
			mockRepo.AssertNotCalled(t, "FindByID")
		})
	}
}

func TestRemoveContentBlockUnknownIDIsNoop(t *testing.T) {
	controller, mockRepo := setupBlogController()
	mockRepo.On("FindByID", uint(1)).Return(&models.Blog{
		ID:       1,
		Slug:     "first",
		IsActive: true,
		ContentBlocks: models.BlockList{
			{ID: "a", Type: "text", Content: "one", Order: 0},
		},
	}, nil)
	mockRepo.On("Save", mock.AnythingOfType("*models.Blog")).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1, "admin"))
	router.DELETE("/blog/:blogId/blocks", controller.RemoveContentBlock)

	req := httptest.NewRequest("DELETE", "/blog/1/blocks",
		jsonBody(t, map[string]interface{}{"blockId": "no-such-block"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	blocks := response["blog"].(map[string]interface{})["contentBlocks"].([]interface{})
	assert.Len(t, blocks, 1)
	mockRepo.AssertExpectations(t)
}

func TestReorderContentBlocks(t *testing.T) {
	controller, mockRepo := setupBlogController()
	mockRepo.On("FindByID", uint(1)).Return(&models.Blog{
		ID:       1,
		Slug:     "first",
		IsActive: true,
		ContentBlocks: models.BlockList{
			{ID: "a", Type: "text", Content: "one", Order: 0},
			{ID: "b", Type: "text", Content: "two", Order: 1},
			{ID: "c", Type: "text", Content: "three", Order: 2},
		},
	}, nil)
	mockRepo.On("Save", mock.AnythingOfType("*models.Blog")).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1, "admin"))
	router.PUT("/blog/:blogId/blocks/reorder", controller.ReorderContentBlocks)

	req := httptest.NewRequest("PUT", "/blog/1/blocks/reorder",
		jsonBody(t, map[string]interface{}{
			"blocks": []map[string]interface{}{
				{"id": "a", "order": 2},
				{"id": "c", "order": 0},
				{"id": "ghost", "order": 9},
			},
		}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	blocks := response["blog"].(map[string]interface{})["contentBlocks"].([]interface{})
	assert.Len(t, blocks, 3)
	assert.Equal(t, "c", blocks[0].(map[string]interface{})["id"])
	assert.Equal(t, "b", blocks[1].(map[string]interface{})["id"])
	assert.Equal(t, "a", blocks[2].(map[string]interface{})["id"])
	mockRepo.AssertExpectations(t)
}

func TestUpdateContentBlock(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockContentRepository[models.Blog])
		expectedStatus int
		checkBlock     func(*testing.T, map[string]interface{})
	}{
		{
			name: "empty fields are skipped",
			requestBody: map[string]interface{}{
				"blockId": "a",
				"type":    "quote",
				"content": "",
			},
			setupMock: func(m *mocks.MockContentRepository[models.Blog]) {
				m.On("FindByID", uint(1)).Return(&models.Blog{
					ID:       1,
					Slug:     "first",
					IsActive: true,
					ContentBlocks: models.BlockList{
						{ID: "a", Type: "text", Content: "keep me", Order: 0},
					},
				}, nil)
				m.On("Save", mock.AnythingOfType("*models.Blog")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			checkBlock: func(t *testing.T, block map[string]interface{}) {
				assert.Equal(t, "quote", block["type"])
				assert.Equal(t, "keep me", block["content"])
			},
		},
		{
			name: "unknown block id",
			requestBody: map[string]interface{}{
				"blockId": "ghost",
				"content": "new",
			},
			setupMock: func(m *mocks.MockContentRepository[models.Blog]) {
				m.On("FindByID", uint(1)).Return(&models.Blog{
					ID:            1,
					Slug:          "first",
					IsActive:      true,
					ContentBlocks: models.BlockList{{ID: "a", Type: "text", Content: "x", Order: 0}},
				}, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "missing block id",
			requestBody: map[string]interface{}{
				"content": "new",
			},
			setupMock:      func(m *mocks.MockContentRepository[models.Blog]) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupBlogController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1, "admin"))
			router.PUT("/blog/:blogId/blocks/update", controller.UpdateContentBlock)

			req := httptest.NewRequest("PUT", "/blog/1/blocks/update", jsonBody(t, tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkBlock != nil {
				var response map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				blocks := response["blog"].(map[string]interface{})["contentBlocks"].([]interface{})
				tt.checkBlock(t, blocks[0].(map[string]interface{}))
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
