package httpserver

import (
	"net/http"

	apperrors "carlygage/pkg/errors"
)

// StatusFor maps an application error to an HTTP status code
func StatusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeValidation, apperrors.ErrCodeBadRequest:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeConfiguration:
		return http.StatusServiceUnavailable
	case apperrors.ErrCodeDelivery:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
