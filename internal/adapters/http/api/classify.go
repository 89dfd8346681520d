package api

import (
	"errors"
	"net/http"

	"github.com/okian/regista/internal/adapters/repository"
	"github.com/okian/regista/internal/domain/analysis"
	"github.com/okian/regista/internal/domain/league"
)

// classify maps service errors to an HTTP status and a stable error code.
func classify(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusOK, "ok"
	case analysis.IsSchemaError(err):
		return http.StatusUnprocessableEntity, "invalid_schema"
	case errors.Is(err, analysis.ErrBadParams):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, league.ErrUnknown):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "not_found"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
