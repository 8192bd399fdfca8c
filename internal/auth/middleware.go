package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CookieName is the cookie carrying the session token.
const CookieName = "session_token"

// ContextKeySession is where RequireAuth stores the resolved session.
const ContextKeySession = "session"

// RequireAuth guards protected routes: a request without a live session is
// answered with 401 and never reaches the handler body.
func RequireAuth(svc *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"erro": "Não autorizado",
				})
			}

			session, err := svc.Validate(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"erro": "Não autorizado",
				})
			}

			c.Set(ContextKeySession, session)

			return next(c)
		}
	}
}

// TokenFromRequest extracts the session token cookie, if any
func TokenFromRequest(c echo.Context) string {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return cookie.Value
}
