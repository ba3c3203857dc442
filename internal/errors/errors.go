package errors

import (
	"errors"
	"net/http"
)

// Messages are part of the client contract and must not change.
const (
	MsgServerError       = "Server error"
	MsgEmailTaken        = "Email is already registered"
	MsgUserNotFound      = "User not found"
	MsgIncorrectPassword = "Incorrect password"
)

var (
	// ErrEmailTaken is returned when signing up with a registered email.
	ErrEmailTaken = errors.New(MsgEmailTaken)
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New(MsgUserNotFound)
	// ErrIncorrectPassword is returned when the password does not match.
	ErrIncorrectPassword = errors.New(MsgIncorrectPassword)
	// ErrUploadFolderNotConfigured is returned by the generic image upload
	// while IMAGE_UPLOAD_FOLDER is unset.
	ErrUploadFolderNotConfigured = errors.New("upload folder is not configured")
	// ErrInvalidCart is returned when a checkout cart fails validation.
	ErrInvalidCart = errors.New("invalid cart")
)

// Response is the {message, alert} body the storefront client expects.
type Response struct {
	Message string `json:"message"`
	Alert   bool   `json:"alert"`
}

// ServerError is the generic failure body.
func ServerError() Response {
	return Response{Message: MsgServerError, Alert: false}
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToResponse converts an HTTPError to the client body.
func (e *HTTPError) ToResponse() Response {
	return Response{Message: e.Message, Alert: false}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, MsgEmailTaken)
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusUnauthorized, MsgUserNotFound)
	case errors.Is(err, ErrIncorrectPassword):
		return NewHTTPError(http.StatusUnauthorized, MsgIncorrectPassword)
	case errors.Is(err, ErrInvalidCart):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, MsgServerError)
	}
}
