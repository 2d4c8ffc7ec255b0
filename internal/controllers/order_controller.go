package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/middleware"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/session"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// OrderController shows and resets the order collected in the current session
type OrderController struct {
	orders session.Store
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(orders session.Store) *OrderController {
	return &OrderController{orders: orders}
}

// ShowCurrentOrder godoc
// @Summary Show the current order
// @Description Shows the pizza designs collected in the current session
// @Tags orders
// @Produce html
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /orders/current [get]
func (oc *OrderController) ShowCurrentOrder(ctx *gin.Context) {
	model := viewModel(ctx)
	model["order"] = middleware.CurrentOrder(ctx)
	render(ctx, http.StatusOK, "order", model)
}

// ClearCurrentOrder godoc
// @Summary Discard the current order
// @Description Empties the session order and redirects back to the design form
// @Tags orders
// @Success 302 "Redirect to /design"
// @Failure 500 {object} models.APIError
// @Router /orders/current/clear [post]
func (oc *OrderController) ClearCurrentOrder(ctx *gin.Context) {
	sessionID := middleware.SessionID(ctx)
	if err := oc.orders.Clear(ctx.Request.Context(), sessionID); err != nil {
		internalError(ctx, err, "Failed to clear order")
		return
	}
	log.WithField("session_id", sessionID).Info("Cleared order")
	ctx.Redirect(http.StatusFound, "/design")
}
