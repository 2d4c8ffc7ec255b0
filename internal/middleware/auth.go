package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/repositories"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/security"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AccessTokenCookie is the cookie holding the browser's access token
const AccessTokenCookie = "access_token"

const (
	userKey     = "user"
	userIDKey   = "userID"
	userRoleKey = "userRole"
)

// Authenticate resolves the current user from the access token cookie or a
// Bearer Authorization header. Requests without a usable token continue
// anonymously; use RequireUser or RequireRole to reject them.
func Authenticate(tokens *security.TokenIssuer, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			log.WithError(err).Debug("Ignoring invalid access token")
			c.Next()
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				log.WithError(err).WithField("user_id", claims.UserID).Error("Failed to load authenticated user")
			}
			c.Next()
			return
		}

		c.Set(userKey, user)
		c.Set(userIDKey, user.ID)
		// The role stored with the user wins over the one in the token
		c.Set(userRoleKey, user.Role)
		c.Next()
	}
}

// extractToken reads the RFC 6750 Bearer header first, then the cookie
func extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie
	}
	return ""
}

// CurrentUser returns the authenticated user, if any
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(userKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}

// RequireUser rejects anonymous requests. Browsers are sent to the login
// page, API clients get a 401.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); ok {
			c.Next()
			return
		}

		if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEHTML {
			c.Redirect(http.StatusFound, "/login?redirect="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized,
			"Authentication required. Log in or send a valid Bearer token."))
	}
}
