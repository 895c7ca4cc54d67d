package rest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/heartmarshall/gametime-api/internal/domain"
)

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Error  string               `json:"error"`
	Fields []fieldErrorResponse `json:"fields"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeValidationError answers 400 with every field message joined into
// "error" and the individual field errors listed under "fields".
func writeValidationError(w http.ResponseWriter, verr *domain.ValidationError) {
	resp := validationErrorResponse{Fields: make([]fieldErrorResponse, 0, len(verr.Errors))}
	msgs := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		resp.Fields = append(resp.Fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	resp.Error = strings.Join(msgs, "; ")
	writeJSON(w, http.StatusBadRequest, resp)
}
