package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/pawtracks/training-system/internal/core/domain"
)

// UserContextKey is where the decoded identity is stored in the echo context.
const UserContextKey = "user"

// Auth is a hard gate: no downstream handler runs unless the bearer token
// verifies. The decoded user record is attached to the request context.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token set")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token set")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			user, ok := userFromClaims(claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// userFromClaims rebuilds the user record embedded under the "user" claim.
func userFromClaims(claims jwt.MapClaims) (*domain.User, bool) {
	raw, ok := claims["user"].(map[string]any)
	if !ok {
		return nil, false
	}

	id, _ := raw["_id"].(string)
	if id == "" {
		return nil, false
	}

	user := &domain.User{ID: id}
	user.FirstName, _ = raw["firstName"].(string)
	user.LastName, _ = raw["lastName"].(string)
	user.Email, _ = raw["email"].(string)
	user.ProfilePicture, _ = raw["profilePicture"].(string)
	return user, true
}
