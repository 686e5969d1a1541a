package models

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrMissingUserLogin = errors.New("Missing user_login")

// AuthError is returned when the client credentials exchange is rejected.
type AuthError struct {
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("token error: %d %s", e.StatusCode, e.Body)
}

// UpstreamError is returned when helix answers with a non-success status.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("helix error: %d %s", e.StatusCode, e.Body)
}

// IsSuccessStatus reports a 2xx status code.
func IsSuccessStatus(code int) bool {
	return code >= 200 && code < 300
}
