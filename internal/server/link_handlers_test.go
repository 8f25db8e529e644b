package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"folio/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLinkRepository is a mock of the LinkRepository interface
type MockLinkRepository struct {
	mock.Mock
}

func (m *MockLinkRepository) ListByOwner(ctx context.Context, userID uint) ([]models.SocialLink, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SocialLink), args.Error(1)
}

func (m *MockLinkRepository) Create(ctx context.Context, link *models.SocialLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockLinkRepository) Delete(ctx context.Context, id, ownerID uint) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func TestCreateLink(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(repo *MockLinkRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{
				"platform": "github",
				"url":      "https://github.com/ada",
			},
			mockSetup: func(repo *MockLinkRepository) {
				repo.On("Create", mock.Anything, mock.MatchedBy(func(l *models.SocialLink) bool {
					return l.UserID == 1 && l.Platform == models.PlatformGitHub
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Unknown platform",
			body: map[string]string{
				"platform": "myspace",
				"url":      "https://myspace.com/ada",
			},
			mockSetup:      func(repo *MockLinkRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid URL scheme",
			body: map[string]string{
				"platform": "twitter",
				"url":      "javascript:alert(1)",
			},
			mockSetup:      func(repo *MockLinkRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			mockRepo := new(MockLinkRepository)
			s := &Server{config: testConfig(), linkRepo: mockRepo}
			app.Post("/links", setUserID(1), s.CreateLink)

			tt.mockSetup(mockRepo)

			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/links", tt.body))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestDeleteLinkScopedToOwner(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockLinkRepository)
	s := &Server{config: testConfig(), linkRepo: mockRepo}
	app.Delete("/links/:id", setUserID(1), s.DeleteLink)

	mockRepo.On("Delete", mock.Anything, uint(3), uint(1)).
		Return(models.NewNotFoundError("Social link", 3))

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/links/3", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockRepo.AssertExpectations(t)
}
