package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"academia-backend/internal/auth"
	"academia-backend/internal/models"
)

// login handles POST /api/login. Unknown usernames and wrong passwords get
// the identical response.
func (h *Handlers) login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"erro": "Requisição inválida",
		})
	}

	token, session, err := h.auth.Login(c.Request().Context(), req.Usuario, req.Senha)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"erro": "Usuário ou senha incorretos",
			})
		}
		c.Logger().Error("login error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"erro": "Erro no servidor",
		})
	}

	// Set token in cookie (HttpOnly; Secure only behind TLS in production)
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.Production,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
	})

	return c.JSON(http.StatusOK, map[string]bool{"sucesso": true})
}

// logout handles POST /api/logout. Always succeeds, even without a session.
func (h *Handlers) logout(c echo.Context) error {
	if token := auth.TokenFromRequest(c); token != "" {
		if err := h.auth.Logout(c.Request().Context(), token); err != nil {
			c.Logger().Error("logout error: ", err)
		}
	}

	// Clear cookie
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	return c.JSON(http.StatusOK, map[string]bool{"sucesso": true})
}

// checkLogin handles GET /api/verificar-login
func (h *Handlers) checkLogin(c echo.Context) error {
	logado := false
	if token := auth.TokenFromRequest(c); token != "" {
		if _, err := h.auth.Validate(c.Request().Context(), token); err == nil {
			logado = true
		}
	}

	return c.JSON(http.StatusOK, map[string]bool{"logado": logado})
}
