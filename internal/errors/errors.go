package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation is returned when input is missing or malformed.
	ErrValidation = errors.New("invalid parameters")
	// ErrAuth is returned on bad credentials or insufficient privilege.
	ErrAuth = errors.New("authentication failed")
	// ErrNotFound is returned when an id does not resolve.
	ErrNotFound = errors.New("record not found")
	// ErrDatabase is returned when a write fails and was rolled back.
	ErrDatabase = errors.New("database error")
	// ErrMail is returned when the outbound mail could not be delivered.
	ErrMail = errors.New("mail delivery failed")
	// ErrDataIntegrity is returned when stored data cannot be serialized.
	ErrDataIntegrity = errors.New("inconsistent data")
)

// Errno is the code carried by the JSON envelope.
type Errno string

const (
	OK         Errno = "0"
	DBERR      Errno = "4001"
	NODATA     Errno = "4002"
	DATAERR    Errno = "4004"
	SESSIONERR Errno = "4101"
	LOGINERR   Errno = "4102"
	PARAMERR   Errno = "4103"
	ROLEERR    Errno = "4105"
	PWDERR     Errno = "4106"
	THIRDERR   Errno = "4301"
	SERVERERR  Errno = "4500"
)

// Response is the {errno, errmsg} envelope returned by action endpoints.
type Response struct {
	Errno  Errno  `json:"errno"`
	Errmsg string `json:"errmsg"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Errno      Errno
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, errno Errno, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Errno:      errno,
		Message:    message,
	}
}

// ToResponse converts an HTTPError to the JSON envelope.
func (e *HTTPError) ToResponse() Response {
	return Response{
		Errno:  e.Errno,
		Errmsg: e.Message,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, PARAMERR, err.Error())
	case errors.Is(err, ErrAuth):
		return NewHTTPError(http.StatusUnauthorized, LOGINERR, err.Error())
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, NODATA, err.Error())
	case errors.Is(err, ErrDatabase):
		return NewHTTPError(http.StatusInternalServerError, DBERR, err.Error())
	case errors.Is(err, ErrMail):
		return NewHTTPError(http.StatusBadGateway, THIRDERR, err.Error())
	case errors.Is(err, ErrDataIntegrity):
		return NewHTTPError(http.StatusInternalServerError, DATAERR, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, SERVERERR, "internal server error")
	}
}
