package server

import (
	"encoding/json"
	"net/http"

	apperrors "foliopress/pkg/errors"
	"foliopress/pkg/store"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// respondError maps domain errors to HTTP status codes. Store misses and
// unknown-resource codes become 404, validation codes 400, everything
// else 500 with a generic message so internals never leak.
func respondError(w http.ResponseWriter, err error) {
	if err == store.ErrNotFound {
		respondJSON(w, http.StatusNotFound, errorBody{Error: "catalog not found"})
		return
	}

	code := apperrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidTemplate,
		apperrors.ErrCodeInvalidCatalog, apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeInvalidPage:
		status = http.StatusBadRequest
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeCatalogNotFound,
		apperrors.ErrCodeTemplateNotFound, apperrors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}

	respondJSON(w, status, errorBody{Error: apperrors.UserMessage(err), Code: string(code)})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}
