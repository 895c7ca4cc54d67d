package rest

import (
	"net/http"

	"github.com/heartmarshall/gametime-api/internal/domain"
)

type vocabularyEntry struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	StoredValue string `json:"storedValue"`
}

type vocabularyResponse struct {
	Platforms       []vocabularyEntry `json:"platforms"`
	CompletionTypes []vocabularyEntry `json:"completionTypes"`
}

// Vocabulary handles GET /vocabulary: the accepted platforms and
// completion types in presentation order.
func Vocabulary(w http.ResponseWriter, _ *http.Request) {
	resp := vocabularyResponse{}
	for _, p := range domain.Platforms() {
		resp.Platforms = append(resp.Platforms, vocabularyEntry{
			ID:          p.String(),
			DisplayName: p.DisplayName(),
			StoredValue: p.StoredValue(),
		})
	}
	for _, c := range domain.CompletionTypes() {
		resp.CompletionTypes = append(resp.CompletionTypes, vocabularyEntry{
			ID:          c.String(),
			DisplayName: c.DisplayName(),
			StoredValue: c.Key(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
