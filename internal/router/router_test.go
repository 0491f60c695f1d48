package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"devfolio/internal/auth"
	"devfolio/internal/config"
	"devfolio/internal/handler"
	"devfolio/internal/model"
	"devfolio/internal/repository"
	"devfolio/internal/router"
	"devfolio/internal/service"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, update service.ProfileUpdate) (*model.User, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockPortfolioService is a mock implementation of service.PortfolioService.
type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) List(ctx context.Context, filter repository.PortfolioFilter) ([]model.PortfolioItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioService) Get(ctx context.Context, id uuid.UUID) (*model.PortfolioItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioService) Create(ctx context.Context, input service.PortfolioInput) (*model.PortfolioItem, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioService) Update(ctx context.Context, id uuid.UUID, patch service.PortfolioPatch) (*model.PortfolioItem, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContactService is a mock implementation of service.ContactService.
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Create(ctx context.Context, input service.ContactInput, meta service.RequestMeta) (*model.ContactMessage, error) {
	args := m.Called(ctx, input, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactMessage), args.Error(1)
}

func (m *MockContactService) List(ctx context.Context, status model.ContactStatus) ([]model.ContactMessage, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContactMessage), args.Error(1)
}

func (m *MockContactService) Get(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactMessage), args.Error(1)
}

func (m *MockContactService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ContactStatus) (*model.ContactMessage, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactMessage), args.Error(1)
}

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id uuid.UUID, update service.UserUpdate) (*model.User, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type testDeps struct {
	userRepo     *MockUserRepository
	authSvc      *MockAuthService
	portfolioSvc *MockPortfolioService
	contactSvc   *MockContactService
	userSvc      *MockUserService
	jwtService   *auth.JWTService
}

func testConfig() *config.Config {
	return &config.Config{
		Env:             "test",
		CORSOrigin:      "http://localhost:5173",
		JWTSecret:       "test-secret",
		RateLimitWindow: 15 * time.Minute,
		RateLimitMax:    1000,
	}
}

func newTestServer(cfg *config.Config) (*echo.Echo, *testDeps) {
	deps := &testDeps{
		userRepo:     new(MockUserRepository),
		authSvc:      new(MockAuthService),
		portfolioSvc: new(MockPortfolioService),
		contactSvc:   new(MockContactService),
		userSvc:      new(MockUserService),
		jwtService:   auth.NewJWTService(cfg.JWTSecret),
	}

	e := echo.New()
	router.Register(
		e,
		cfg,
		deps.jwtService,
		deps.userRepo,
		handler.NewAuthHandler(deps.authSvc),
		handler.NewPortfolioHandler(deps.portfolioSvc),
		handler.NewContactHandler(deps.contactSvc),
		handler.NewUserHandler(deps.userSvc),
	)
	return e, deps
}

func doJSON(e *echo.Echo, method, path, body, token string) (*httptest.ResponseRecorder, handler.Response) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp handler.Response
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec, resp
}

func bearerFor(t *testing.T, deps *testDeps, user *model.User) string {
	t.Helper()
	token, err := deps.jwtService.IssueToken(user.ID)
	assert.NoError(t, err)
	deps.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	return token
}

func TestHealth(t *testing.T) {
	e, _ := newTestServer(testConfig())

	rec, resp := doJSON(e, http.MethodGet, "/api/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Server is running", resp.Message)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "OK", data["status"])
	assert.NotEmpty(t, data["timestamp"])
}

func TestRouteNotFound(t *testing.T) {
	e, _ := newTestServer(testConfig())

	rec, resp := doJSON(e, http.MethodGet, "/api/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Route not found", resp.Error)
}

func TestRateLimiter(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitMax = 2
	e, _ := newTestServer(cfg)

	rec1, _ := doJSON(e, http.MethodGet, "/api/health", "", "")
	rec2, _ := doJSON(e, http.MethodGet, "/api/health", "", "")
	rec3, resp3 := doJSON(e, http.MethodGet, "/api/health", "", "")

	assert.Equal(t, http.StatusOK, rec1.Code)
	assert.Equal(t, http.StatusOK, rec2.Code)
	assert.Equal(t, http.StatusTooManyRequests, rec3.Code)
	assert.False(t, resp3.Success)
	assert.Contains(t, resp3.Error, "Too many requests")
}

func TestAdminRoute_NoToken(t *testing.T) {
	e, _ := newTestServer(testConfig())

	rec, resp := doJSON(e, http.MethodGet, "/api/users", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, resp.Success)
}

func TestAdminRoute_GarbageToken(t *testing.T) {
	e, _ := newTestServer(testConfig())

	rec, resp := doJSON(e, http.MethodGet, "/api/users", "", "not-a-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, resp.Success)
}

func TestAdminRoute_NonAdminForbidden(t *testing.T) {
	e, deps := newTestServer(testConfig())

	member := &model.User{ID: uuid.New(), Role: model.RoleUser, IsActive: true}
	token := bearerFor(t, deps, member)

	body := `{"title":"X","description":"Y","image":"https://example.com/x.png","category":"web","technologies":["Go"]}`
	rec, resp := doJSON(e, http.MethodPost, "/api/portfolio", body, token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, resp.Success)
	deps.portfolioSvc.AssertNotCalled(t, "Create")
}

func TestAdminRoute_InactiveAccountRejected(t *testing.T) {
	e, deps := newTestServer(testConfig())

	suspended := &model.User{ID: uuid.New(), Role: model.RoleAdmin, IsActive: false}
	token := bearerFor(t, deps, suspended)

	rec, resp := doJSON(e, http.MethodGet, "/api/users", "", token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, resp.Success)
}

func TestAdminRoute_ListUsersExcludesPassword(t *testing.T) {
	e, deps := newTestServer(testConfig())

	admin := &model.User{ID: uuid.New(), Role: model.RoleAdmin, IsActive: true}
	token := bearerFor(t, deps, admin)

	deps.userSvc.On("List", mock.Anything).Return([]model.User{
		{ID: uuid.New(), Name: "A", Email: "a@example.com", PasswordHash: "hash-a"},
		{ID: uuid.New(), Name: "B", Email: "b@example.com", PasswordHash: "hash-b"},
	}, nil)

	rec, resp := doJSON(e, http.MethodGet, "/api/users", "", token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Count)
	assert.Equal(t, 2, *resp.Count)
	assert.NotContains(t, strings.ToLower(rec.Body.String()), "password")
	assert.NotContains(t, rec.Body.String(), "hash-a")
}

func TestContactSubmission_Public(t *testing.T) {
	e, deps := newTestServer(testConfig())

	deps.contactSvc.On("Create", mock.Anything, service.ContactInput{
		Name:    "Jamie",
		Email:   "jamie@example.com",
		Subject: "Hello",
		Message: "Nice site",
	}, mock.MatchedBy(func(meta service.RequestMeta) bool {
		// Echo resolves an IP for httptest requests; the handler must have
		// captured it rather than trusting the payload.
		return meta.IPAddress != ""
	})).Return(&model.ContactMessage{
		ID:     uuid.New(),
		Name:   "Jamie",
		Status: model.ContactStatusNew,
	}, nil)

	body := `{"name":"Jamie","email":"jamie@example.com","subject":"Hello","message":"Nice site","ip_address":"1.2.3.4"}`
	rec, resp := doJSON(e, http.MethodPost, "/api/contact", body, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Message sent successfully", resp.Message)
	deps.contactSvc.AssertExpectations(t)
}

func TestContactList_RequiresAdmin(t *testing.T) {
	e, _ := newTestServer(testConfig())

	rec, resp := doJSON(e, http.MethodGet, "/api/contact", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, resp.Success)
}

func TestRegister_ValidationEnvelope(t *testing.T) {
	e, deps := newTestServer(testConfig())

	body := `{"name":"","email":"not-an-email","password":"123"}`
	rec, resp := doJSON(e, http.MethodPost, "/api/auth/register", body, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Errors)
	deps.authSvc.AssertNotCalled(t, "Register")
}

func TestAuthMe(t *testing.T) {
	e, deps := newTestServer(testConfig())

	user := &model.User{ID: uuid.New(), Name: "Me", Email: "me@example.com", Role: model.RoleUser, IsActive: true}
	token := bearerFor(t, deps, user)

	rec, resp := doJSON(e, http.MethodGet, "/api/auth/me", "", token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "me@example.com", data["email"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestPortfolioGet_NotFoundEnvelope(t *testing.T) {
	e, deps := newTestServer(testConfig())

	id := uuid.New()
	deps.portfolioSvc.On("Get", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	// The service normally maps storage errors itself; an unmapped storage
	// error must surface as a withheld 500, not leak detail.
	rec, resp := doJSON(e, http.MethodGet, "/api/portfolio/"+id.String(), "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Server error", resp.Error)
}

func TestLogout_StatelessAck(t *testing.T) {
	e, deps := newTestServer(testConfig())

	user := &model.User{ID: uuid.New(), Role: model.RoleUser, IsActive: true}
	token := bearerFor(t, deps, user)

	rec, resp := doJSON(e, http.MethodPost, "/api/auth/logout", "", token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Logged out successfully", resp.Message)
}
