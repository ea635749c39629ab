package errors

import "net/http"

var ErrMissingToken = &Exception{
	Message:    "no token provided",
	StatusCode: http.StatusUnauthorized,
}
