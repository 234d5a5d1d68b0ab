package router

import (
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"hugely/internal/auth"
	apperrors "hugely/internal/errors"
	"hugely/internal/service"
)

// AdminSession lets a request through only when its session belongs to an
// administrator. Others are redirected to fallback. Paths in public are
// always let through.
func AdminSession(sm *scs.SessionManager, fallback string, public ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := strings.TrimSuffix(c.Request().URL.Path, "/")
			for _, p := range public {
				if path == p {
					return next(c)
				}
			}

			id, ok := auth.SessionIdentity(c.Request().Context(), sm)
			if !ok {
				return c.Redirect(http.StatusFound, fallback)
			}
			auth.SetIdentity(c, id)
			return next(c)
		}
	}
}

// TokenGuard accepts bearer tokens issued by authService that have not been
// revoked.
func TokenGuard(authService service.AuthService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  auth.ClaimsContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return authService.VerifyToken(c.Request().Context(), token)
		},
		SuccessHandler: func(c echo.Context) {
			if claims, ok := c.Get(auth.ClaimsContextKey).(*auth.Claims); ok {
				auth.SetIdentity(c, claims.Identity())
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, apperrors.Response{
				Errno:  apperrors.SESSIONERR,
				Errmsg: "invalid or expired token",
			})
		},
	})
}

// RequireAdmin rejects callers whose identity lacks the admin flag.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := auth.IdentityFrom(c)
			if !ok || !id.IsAdmin {
				return c.JSON(http.StatusForbidden, apperrors.Response{
					Errno:  apperrors.ROLEERR,
					Errmsg: "insufficient privilege",
				})
			}
			return next(c)
		}
	}
}
