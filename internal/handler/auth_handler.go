package handler

import (
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"hugely/internal/auth"
	apperrors "hugely/internal/errors"
	"hugely/internal/service"
)

const (
	loginPath      = "/admin/login"
	adminIndexPath = "/admin/index"
	loginTemplate  = "admin/login.html"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	sessions    *scs.SessionManager
	log         zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions *scs.SessionManager, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, log: log}
}

// TokenResponse represents an API login response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Admin sends the bare /admin path to the login page.
func (h *AuthHandler) Admin(c echo.Context) error {
	return c.Redirect(http.StatusFound, loginPath)
}

// LoginPage shows the login form, or goes straight to the console when an
// admin session already exists.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if _, ok := auth.SessionIdentity(c.Request().Context(), h.sessions); ok {
		return c.Redirect(http.StatusFound, adminIndexPath)
	}
	return render(c, loginTemplate, nil)
}

// Login checks the posted credentials and opens an admin session.
func (h *AuthHandler) Login(c echo.Context) error {
	var in service.LoginInput
	if err := c.Bind(&in); err != nil {
		return renderError(c, loginTemplate, apperrors.ErrValidation)
	}

	id, err := h.authService.Login(c.Request().Context(), in)
	if err != nil {
		return c.JSON(loginFailure(err))
	}

	if err := auth.StartSession(c.Request().Context(), h.sessions, id); err != nil {
		h.log.Error().Err(err).Uint("user_id", id.UserID).Msg("start session")
		return renderError(c, loginTemplate, err)
	}
	return c.Redirect(http.StatusFound, adminIndexPath)
}

// Logout clears the admin session and returns to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	auth.EndSession(c.Request().Context(), h.sessions)
	return c.Redirect(http.StatusFound, loginPath)
}

// TokenLogin godoc
// @Summary Obtain an API access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginInput true "Administrator credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 403 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /auth/login [post]
func (h *AuthHandler) TokenLogin(c echo.Context) error {
	var in service.LoginInput
	if err := c.Bind(&in); err != nil {
		return fail(c, apperrors.ErrValidation)
	}

	id, err := h.authService.Login(c.Request().Context(), in)
	if err != nil {
		status, page := loginFailure(err)
		errno := apperrors.MapErrorToHTTP(err).Errno
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			errno = apperrors.PWDERR
		case errors.Is(err, service.ErrNotAdmin):
			errno = apperrors.ROLEERR
		}
		return c.JSON(status, apperrors.Response{Errno: errno, Errmsg: page.Errmsg})
	}

	token, err := h.authService.IssueToken(c.Request().Context(), id)
	if err != nil {
		h.log.Error().Err(err).Uint("user_id", id.UserID).Msg("issue token")
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(auth.AccessTokenExpiry.Seconds()),
	})
}

// TokenLogout godoc
// @Summary Revoke the current API access token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Router /auth/logout [post]
func (h *AuthHandler) TokenLogout(c echo.Context) error {
	claims, ok := c.Get(auth.ClaimsContextKey).(*auth.Claims)
	if !ok {
		return failSession(c)
	}
	if err := h.authService.RevokeToken(c.Request().Context(), claims); err != nil {
		h.log.Error().Err(err).Str("jti", claims.ID).Msg("revoke token")
		return fail(c, err)
	}
	return done(c, "logged out")
}

// loginFailure picks the status and message shown on the login form.
func loginFailure(err error) (int, Page) {
	httpErr := apperrors.MapErrorToHTTP(err)
	status := httpErr.StatusCode
	msg := httpErr.Message
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		msg = "username and password are required"
	case errors.Is(err, apperrors.ErrNotFound):
		msg = "unknown username"
	case errors.Is(err, service.ErrWrongPassword):
		msg = "wrong password"
	case errors.Is(err, service.ErrNotAdmin):
		status = http.StatusForbidden
		msg = "insufficient privilege"
	}
	return status, Page{Template: loginTemplate, Errmsg: msg}
}
