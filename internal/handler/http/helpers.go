package http

import (
	"net/http"
	"strconv"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// callerFrom returns the Caller placed in the context by middleware.AuthRequired.
func callerFrom(w http.ResponseWriter, r *http.Request) (auth.Caller, bool) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
	}
	return caller, ok
}

// idParam parses the {id} path segment; a malformed id cannot name a record.
func idParam(w http.ResponseWriter, r *http.Request, notFound string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.NotFound(w, notFound)
		return 0, false
	}
	return id, true
}
