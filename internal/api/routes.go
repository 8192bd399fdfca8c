package api

import (
	"github.com/labstack/echo/v4"

	"academia-backend/internal/auth"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api *echo.Group, h *Handlers) {
	// Health check (public)
	api.GET("/health", h.healthCheck)

	// Public enrollment
	api.POST("/alunos/cadastrar", h.enrollMember)

	// Auth routes (public - no auth required for login)
	api.POST("/login", h.login)
	api.POST("/logout", h.logout)
	api.GET("/verificar-login", h.checkLogin)

	// Admin routes behind the session gate
	admin := api.Group("/admin")
	admin.Use(auth.RequireAuth(h.auth))
	admin.GET("/alunos", h.listMembers)
	admin.DELETE("/alunos/:id", h.deleteMember)
}
