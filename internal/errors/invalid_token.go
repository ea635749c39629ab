package errors

import "net/http"

var ErrInvalidToken = &Exception{
	Message:    "invalid token",
	StatusCode: http.StatusForbidden,
}
