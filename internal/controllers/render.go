package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/middleware"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// render writes the named view as HTML, or the bare view model as JSON when the
// client prefers application/json
func render(ctx *gin.Context, status int, view string, model gin.H) {
	ctx.Negotiate(status, gin.Negotiate{
		Offered:  []string{gin.MIMEHTML, gin.MIMEJSON},
		HTMLName: view,
		Data:     model,
	})
}

// viewModel starts a model carrying what every page needs
func viewModel(ctx *gin.Context) gin.H {
	model := gin.H{}
	if user, ok := middleware.CurrentUser(ctx); ok {
		model["user"] = user
	}
	return model
}

// wantsJSON reports whether the client negotiated JSON over HTML
func wantsJSON(ctx *gin.Context) bool {
	return ctx.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

// internalError logs err and aborts with the standard API error envelope
func internalError(ctx *gin.Context, err error, message string) {
	log.WithError(err).WithFields(log.Fields{
		"method": ctx.Request.Method,
		"path":   ctx.Request.URL.Path,
	}).Error(message)
	ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, message))
}
