package middleware // reusable HTTP middleware for the board backend

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gossipboard/gossip-client/internal/utils"
)

// JWTAuth returns an Echo middleware that requires a valid HS256 bearer
// token signed with secret. The token's subject is stored in the context
// under "user_id" as an int64; handlers read it with UserID.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			uid, err := utils.ParseAccessToken(secret, strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set(userIDKey, uid)
			return next(c)
		}
	}
}

// OptionalJWT is JWTAuth for public routes: a valid token sets "user_id",
// a missing or bad one is ignored.
func OptionalJWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if raw, ok := strings.CutPrefix(auth, "Bearer "); ok {
				if uid, err := utils.ParseAccessToken(secret, raw); err == nil {
					c.Set(userIDKey, uid)
				}
			}
			return next(c)
		}
	}
}
