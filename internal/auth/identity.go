package auth

import (
	"github.com/labstack/echo/v4"
)

const (
	identityContextKey = "identity"
	// ClaimsContextKey holds the verified *Claims of a token request.
	ClaimsContextKey = "user"
)

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID  uint   `json:"user_id"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

// SetIdentity attaches the identity to the request context.
func SetIdentity(c echo.Context, id Identity) {
	c.Set(identityContextKey, id)
}

// IdentityFrom returns the identity attached by a guard middleware.
func IdentityFrom(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityContextKey).(Identity)
	return id, ok
}
