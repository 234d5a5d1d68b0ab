package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hugely/internal/auth"
	apperrors "hugely/internal/errors"
	"hugely/internal/service"
)

// Page is returned by page routes: the template to render and its data.
type Page struct {
	Template string      `json:"template"`
	Data     interface{} `json:"data,omitempty"`
	Errmsg   string      `json:"errmsg,omitempty"`
}

// Created is the envelope returned when a record is created.
type Created struct {
	apperrors.Response
	ID uint `json:"id"`
}

func render(c echo.Context, template string, data interface{}) error {
	return c.JSON(http.StatusOK, Page{Template: template, Data: data})
}

// renderError renders template with the message of err, using the status of
// its error class.
func renderError(c echo.Context, template string, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, Page{Template: template, Errmsg: httpErr.Message})
}

func done(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, apperrors.Response{Errno: apperrors.OK, Errmsg: msg})
}

func fail(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
}

func failSession(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, apperrors.Response{Errno: apperrors.SESSIONERR, Errmsg: "not signed in"})
}

// identity returns the caller attached by the route guard.
func identity(c echo.Context) (auth.Identity, bool) {
	id, ok := auth.IdentityFrom(c)
	if !ok || id.UserID == 0 {
		return auth.Identity{}, false
	}
	return id, true
}

func pathID(c echo.Context) (uint, error) {
	return service.ParseID(c.Param("id"))
}
