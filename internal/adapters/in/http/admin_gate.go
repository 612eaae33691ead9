package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminTokenHeader carries the back-office token on admin requests.
const AdminTokenHeader = "X-Admin-Token"

// NewAdminGate returns middleware rejecting requests whose admin token the
// verify function does not accept.
func NewAdminGate(verify func(token string) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !verify(ctx.Request().Header.Get(AdminTokenHeader)) {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing or invalid admin token",
				})
			}
			return next(ctx)
		}
	}
}

// TokenVerifier builds a constant-time comparison against the configured
// admin token. An empty configured token rejects everything.
func TokenVerifier(configured string) func(token string) bool {
	return func(token string) bool {
		if configured == "" || token == "" {
			return false
		}
		return subtle.ConstantTimeCompare([]byte(configured), []byte(token)) == 1
	}
}
