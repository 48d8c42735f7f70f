package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"avercms/internal/controllers"
	"avercms/internal/models"
	"avercms/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupGlossaryController() (*controllers.GlossaryController, *mocks.MockContentRepository[models.GlossaryTerm]) {
	mockRepo := new(mocks.MockContentRepository[models.GlossaryTerm])
	controller := controllers.NewGlossaryController(mockRepo, testPolicy())
	return controller, mockRepo
}

func TestCreateGlossaryTerm(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockContentRepository[models.GlossaryTerm])
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful creation",
			requestBody: map[string]interface{}{
				"title":       "Responsive Design",
				"description": "Layouts that adapt to the viewport.",
			},
			setupMock: func(m *mocks.MockContentRepository[models.GlossaryTerm]) {
				m.On("SlugExists", "responsive-design", uint(0)).Return(false, nil)
				m.On("Create", mock.AnythingOfType("*models.GlossaryTerm")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing description",
			requestBody: map[string]interface{}{
				"title": "Responsive Design",
			},
			setupMock:      func(m *mocks.MockContentRepository[models.GlossaryTerm]) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Title and description are required",
		},
		{
			name: "missing title",
			requestBody: map[string]interface{}{
				"description": "An orphaned definition.",
			},
			setupMock:      func(m *mocks.MockContentRepository[models.GlossaryTerm]) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Title and description are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupGlossaryController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1, "admin"))
			router.POST("/glossary/create", controller.CreateTerm)

			req := httptest.NewRequest("POST", "/glossary/create", jsonBody(t, tt.requestBody))
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
				term := response["glossaryTerm"].(map[string]interface{})
				assert.Equal(t, "responsive-design", term["slug"])
				assert.Equal(t, true, term["isActive"])
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetAllGlossaryTerms(t *testing.T) {
	controller, mockRepo := setupGlossaryController()
	mockRepo.On("FindAllActive").Return([]models.GlossaryTerm{
		{ID: 1, Title: "API", Slug: "api", IsActive: true},
		{ID: 2, Title: "CDN", Slug: "cdn", IsActive: true},
		{ID: 3, Title: "DNS", Slug: "dns", IsActive: true},
	}, nil)

	router := setupTestRouter()
	router.GET("/glossary", controller.GetAllTerms)

	req := httptest.NewRequest("GET", "/glossary", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response["glossaryTerms"], 3)
	assert.Equal(t, float64(3), response["totalTerms"])
	assert.NotContains(t, response, "currentPage")
	assert.NotContains(t, response, "totalPages")
	mockRepo.AssertExpectations(t)
}

func TestGetGlossaryTermBySlug(t *testing.T) {
	controller, mockRepo := setupGlossaryController()
	mockRepo.On("FindActiveBySlug", "api").Return(&models.GlossaryTerm{
		ID: 1, Title: "API", Slug: "api", Description: "Application Programming Interface", IsActive: true,
	}, nil)

	router := setupTestRouter()
	router.GET("/glossary/:slug", controller.GetTermBySlug)

	req := httptest.NewRequest("GET", "/glossary/api", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	term := response["glossaryTerm"].(map[string]interface{})
	assert.Equal(t, "API", term["title"])
	mockRepo.AssertExpectations(t)
}

func TestDeleteGlossaryTerm(t *testing.T) {
	controller, mockRepo := setupGlossaryController()
	term := &models.GlossaryTerm{ID: 2, Title: "CDN", Slug: "cdn", IsActive: true}
	mockRepo.On("FindByID", uint(2)).Return(term, nil)
	mockRepo.On("Save", mock.AnythingOfType("*models.GlossaryTerm")).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1, "admin"))
	router.DELETE("/glossary/:termId", controller.DeleteTerm)

	req := httptest.NewRequest("DELETE", "/glossary/2", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, term.IsActive)
	mockRepo.AssertExpectations(t)
}

func TestDeleteGlossaryTermNotFound(t *testing.T) {
	controller, mockRepo := setupGlossaryController()
	mockRepo.On("FindByID", uint(404)).Return(nil, gorm.ErrRecordNotFound)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1, "admin"))
	router.DELETE("/glossary/:termId", controller.DeleteTerm)

	req := httptest.NewRequest("DELETE", "/glossary/404", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRepo.AssertNotCalled(t, "Save")
}
