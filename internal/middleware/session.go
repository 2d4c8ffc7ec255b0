package middleware

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// SessionCookie names the cookie carrying the session id
const SessionCookie = "PIZZASESSION"

const (
	sessionIDKey = "sessionID"
	orderKey     = "order"
)

// Session makes sure every request carries a session id and attaches the
// session's current order to the context. The cookie is refreshed on every
// request so it outlives the store entry by at most ttl.
func Session(store session.Store, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(sessionID) != nil {
			sessionID = uuid.New().String()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sessionID, int(ttl.Seconds()), "/", "", false, true)
		c.Set(sessionIDKey, sessionID)

		order, err := store.Order(c.Request.Context(), sessionID)
		if err != nil {
			log.WithError(err).WithField("session_id", sessionID).Error("Failed to load session order")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, models.NewAPIError(models.ErrSessionUnavailable, "Session storage is unavailable"))
			return
		}
		c.Set(orderKey, order)

		c.Next()
	}
}

// SessionID returns the id assigned by the Session middleware
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}

// CurrentOrder returns the order loaded by the Session middleware, or an empty one
func CurrentOrder(c *gin.Context) *models.Order {
	if value, exists := c.Get(orderKey); exists {
		if order, ok := value.(*models.Order); ok {
			return order
		}
	}
	return models.NewOrder()
}
