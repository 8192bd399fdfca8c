package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"academia-backend/internal/auth"
	"academia-backend/internal/config"
	"academia-backend/internal/database"
)

// Handlers bundles the dependencies the route handlers need. Everything is
// injected at startup; there is no package state.
type Handlers struct {
	cfg     config.Config
	members *database.MemberRepo
	auth    *auth.Service
}

// NewHandlers creates the handler set
func NewHandlers(cfg config.Config, members *database.MemberRepo, authSvc *auth.Service) *Handlers {
	return &Handlers{cfg: cfg, members: members, auth: authSvc}
}

// Health check
func (h *Handlers) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
