package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/repositories"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/security"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupUsers(t *testing.T) repositories.UserRepository {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return repositories.NewUserRepository(db)
}

func saveUser(t *testing.T, users repositories.UserRepository, username, role string) models.User {
	user, err := users.Save(context.Background(), models.User{Username: username, Password: "x", Role: role})
	require.NoError(t, err)
	return user
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == SessionCookie {
			return cookie
		}
	}
	return nil
}

type failingStore struct{}

func (failingStore) Order(context.Context, string) (*models.Order, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) AddDesign(context.Context, string, models.Pizza) error {
	return errors.New("connection refused")
}

func (failingStore) Clear(context.Context, string) error {
	return errors.New("connection refused")
}

func (failingStore) Close() error {
	return nil
}

func sessionRouter(store session.Store) *gin.Engine {
	router := gin.New()
	router.Use(Session(store, time.Hour))
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"session": SessionID(c), "designs": len(CurrentOrder(c).Designs)})
	})
	return router
}

func TestSessionIssuesCookie(t *testing.T) {
	router := sessionRouter(session.NewMemoryStore(time.Hour))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.NoError(t, uuid.Validate(cookie.Value))
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.Contains(t, w.Body.String(), cookie.Value)
}

func TestSessionReusesValidCookie(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	sessionID := uuid.New().String()
	require.NoError(t, store.AddDesign(context.Background(), sessionID, models.Pizza{Name: "Margherita"}))
	router := sessionRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sessionID})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sessionID, sessionCookie(w).Value)
	assert.JSONEq(t, `{"session":"`+sessionID+`","designs":1}`, w.Body.String())
}

func TestSessionReplacesMalformedCookie(t *testing.T) {
	router := sessionRouter(session.NewMemoryStore(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not-a-uuid"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.NotEqual(t, "not-a-uuid", cookie.Value)
	assert.NoError(t, uuid.Validate(cookie.Value))
}

func TestSessionStoreUnavailable(t *testing.T) {
	router := sessionRouter(failingStore{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), models.ErrSessionUnavailable)
}

func TestCurrentOrderWithoutSession(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	order := CurrentOrder(c)
	require.NotNil(t, order)
	assert.Empty(t, order.Designs)
}

func authRouter(tokens *security.TokenIssuer, users repositories.UserRepository, guards ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(Authenticate(tokens, users))
	handlers := append(guards, func(c *gin.Context) {
		user, ok := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok, "username": user.Username})
	})
	router.GET("/", handlers...)
	return router
}

func TestAuthenticate(t *testing.T) {
	users := setupUsers(t)
	tokens := security.NewTokenIssuer("test-secret", time.Hour)
	alice := saveUser(t, users, "alice", models.RoleUser)
	token, err := tokens.Issue(alice)
	require.NoError(t, err)

	ghostToken, err := tokens.Issue(models.User{ID: 999, Role: models.RoleUser})
	require.NoError(t, err)
	foreignToken, err := security.NewTokenIssuer("other-secret", time.Hour).Issue(alice)
	require.NoError(t, err)

	tests := []struct {
		name     string
		prepare  func(req *http.Request)
		expected string
	}{
		{
			name:     "bearer header",
			prepare:  func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+token) },
			expected: `{"authenticated":true,"username":"alice"}`,
		},
		{
			name:     "cookie",
			prepare:  func(req *http.Request) { req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token}) },
			expected: `{"authenticated":true,"username":"alice"}`,
		},
		{
			name:     "no token",
			prepare:  func(req *http.Request) {},
			expected: `{"authenticated":false,"username":""}`,
		},
		{
			name:     "wrong signature",
			prepare:  func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+foreignToken) },
			expected: `{"authenticated":false,"username":""}`,
		},
		{
			name:     "deleted user",
			prepare:  func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+ghostToken) },
			expected: `{"authenticated":false,"username":""}`,
		},
		{
			name:     "malformed header",
			prepare:  func(req *http.Request) { req.Header.Set("Authorization", "Token "+token) },
			expected: `{"authenticated":false,"username":""}`,
		},
	}

	router := authRouter(tokens, users)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(req)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.expected, w.Body.String())
		})
	}
}

func TestAuthenticateUsesStoredRole(t *testing.T) {
	users := setupUsers(t)
	tokens := security.NewTokenIssuer("test-secret", time.Hour)
	bob := saveUser(t, users, "bob", models.RoleUser)

	// A token minted while bob was an admin no longer grants admin access
	stale := bob
	stale.Role = models.RoleAdmin
	token, err := tokens.Issue(stale)
	require.NoError(t, err)

	router := authRouter(tokens, users, RequireRole(models.RoleAdmin))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireUser(t *testing.T) {
	users := setupUsers(t)
	tokens := security.NewTokenIssuer("test-secret", time.Hour)
	token, err := tokens.Issue(saveUser(t, users, "carol", models.RoleUser))
	require.NoError(t, err)
	router := authRouter(tokens, users, RequireUser())

	t.Run("browser is sent to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?x=1", nil)
		req.Header.Set("Accept", "text/html")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login?redirect=%2F%3Fx%3D1", w.Header().Get("Location"))
	})

	t.Run("api client gets 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), models.ErrUnauthorized)
	})

	t.Run("authenticated user passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":true,"username":"carol"}`, w.Body.String())
	})
}

func TestRequireRole(t *testing.T) {
	users := setupUsers(t)
	tokens := security.NewTokenIssuer("test-secret", time.Hour)
	adminToken, err := tokens.Issue(saveUser(t, users, "admin", models.RoleAdmin))
	require.NoError(t, err)
	userToken, err := tokens.Issue(saveUser(t, users, "dave", models.RoleUser))
	require.NoError(t, err)
	router := authRouter(tokens, users, RequireRole(models.RoleAdmin))

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{name: "anonymous", token: "", status: http.StatusUnauthorized},
		{name: "user", token: userToken, status: http.StatusForbidden},
		{name: "admin", token: adminToken, status: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
