package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"folio/internal/config"
	"folio/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test_secret"}
}

// setUserID stands in for AuthRequired in handler behavior tests.
func setUserID(id uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", id)
		return c.Next()
	}
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(repo *MockUserRepository)
		expectedStatus int
	}{
		{
			name: "Success persists username and display name",
			body: map[string]string{
				"username":     "testuser",
				"email":        "test@example.com",
				"password":     "Password123!",
				"display_name": "Test User",
			},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "test@example.com").Return(nil, nil)
				repo.On("GetByUsername", mock.Anything, "testuser").Return(nil, nil)
				repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
					return u.Username == "testuser" && u.DisplayName == "Test User"
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Display name defaults to username",
			body: map[string]string{
				"username": "testuser",
				"email":    "test@example.com",
				"password": "Password123!",
			},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "test@example.com").Return(nil, nil)
				repo.On("GetByUsername", mock.Anything, "testuser").Return(nil, nil)
				repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
					return u.DisplayName == "testuser"
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate email",
			body: map[string]string{
				"username": "testuser",
				"email":    "exists@example.com",
				"password": "Password123!",
			},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "exists@example.com").Return(&models.User{ID: 1}, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Duplicate username",
			body: map[string]string{
				"username": "taken",
				"email":    "new@example.com",
				"password": "Password123!",
			},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)
				repo.On("GetByUsername", mock.Anything, "taken").Return(&models.User{ID: 2}, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Weak password",
			body: map[string]string{
				"username": "testuser",
				"email":    "test@example.com",
				"password": "short",
			},
			mockSetup:      func(repo *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Reserved username",
			body: map[string]string{
				"username": "admin",
				"email":    "test@example.com",
				"password": "Password123!",
			},
			mockSetup:      func(repo *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			mockRepo := new(MockUserRepository)
			s := &Server{config: testConfig(), userRepo: mockRepo}
			app.Post("/signup", s.Signup)

			tt.mockSetup(mockRepo)

			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/signup", tt.body))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestLogin(t *testing.T) {
	s := &Server{config: testConfig()}
	hashed := func(t *testing.T, pw string) string {
		t.Helper()
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
		require.NoError(t, err)
		return string(h)
	}

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(t *testing.T, repo *MockUserRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{"email": "test@example.com", "password": "Password123!"},
			mockSetup: func(t *testing.T, repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "test@example.com").Return(&models.User{
					ID: 1, Username: "testuser", Email: "test@example.com",
					Password: hashed(t, "Password123!"),
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Wrong password",
			body: map[string]string{"email": "test@example.com", "password": "WrongPassword1!"},
			mockSetup: func(t *testing.T, repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "test@example.com").Return(&models.User{
					ID: 1, Username: "testuser", Email: "test@example.com",
					Password: hashed(t, "Password123!"),
				}, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Unknown email",
			body: map[string]string{"email": "ghost@example.com", "password": "Password123!"},
			mockSetup: func(t *testing.T, repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			mockRepo := new(MockUserRepository)
			s.userRepo = mockRepo
			app.Post("/login", s.Login)

			tt.mockSetup(t, mockRepo)

			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/login", tt.body))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestGetSessionRequiresAuth(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockUserRepository)
	s := &Server{config: testConfig(), userRepo: mockRepo}
	app.Get("/session", s.AuthRequired(), s.GetSession)

	// No token at all
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/session", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Valid token returns the current user
	mockRepo.On("GetByID", mock.Anything, uint(7)).Return(&models.User{
		ID: 7, Username: "ada", Email: "ada@example.com",
	}, nil)

	token, err := s.generateToken(7, "ada")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp2, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp2.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)

	var body struct {
		User models.User `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&body))
	assert.Equal(t, "ada", body.User.Username)
}

func TestAuthRequiredRejectsForeignToken(t *testing.T) {
	app := fiber.New()
	s := &Server{config: testConfig()}
	app.Get("/ping", s.AuthRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	// Token signed with a different secret
	other := &Server{config: &config.Config{JWTSecret: "other_secret"}}
	token, err := other.generateToken(1, "ada")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
