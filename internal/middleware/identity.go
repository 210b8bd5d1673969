package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const userIDKey = "user_id"

// UserID returns the authenticated user's id set by JWTAuth or
// OptionalJWT. ok is false for guests.
func UserID(c echo.Context) (id int64, ok bool) {
	id, ok = c.Get(userIDKey).(int64)
	return id, ok && id > 0
}

// rateSubject names the caller for rate-limit keys; guests share "anon".
func rateSubject(c echo.Context) string {
	if id, ok := UserID(c); ok {
		return strconv.FormatInt(id, 10)
	}
	return "anon"
}
