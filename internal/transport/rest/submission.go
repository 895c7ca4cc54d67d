package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/gametime-api/internal/domain"
	"github.com/heartmarshall/gametime-api/internal/service/submission"
	"github.com/heartmarshall/gametime-api/pkg/optional"
)

// submissionService defines the minimal interface needed by SubmissionHandler.
type submissionService interface {
	Create(ctx context.Context, input submission.CreateInput) (*domain.Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Submission, error)
	ListByGame(ctx context.Context, gameTitle string) ([]*domain.Submission, error)
	Update(ctx context.Context, input submission.UpdateInput) (*domain.Submission, error)
	Delete(ctx context.Context, input submission.DeleteInput) (uuid.UUID, error)
	GameStats(ctx context.Context, gameTitle string) (*domain.GameStats, error)
}

// SubmissionHandler serves submission and stats REST endpoints.
type SubmissionHandler struct {
	svc submissionService
	log *slog.Logger
}

// NewSubmissionHandler creates a SubmissionHandler.
func NewSubmissionHandler(svc submissionService, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, log: logger.With("handler", "submission")}
}

type createSubmissionRequest struct {
	UserID         string   `json:"userId"`
	GameTitle      string   `json:"gameTitle"`
	HoursPlayed    *float64 `json:"hoursPlayed"`
	Platform       string   `json:"platform"`
	CompletionType string   `json:"completionType"`
	Difficulty     string   `json:"difficulty"`
	Notes          *string  `json:"notes"`
}

// updateSubmissionRequest distinguishes absent keys from explicit nulls:
// "notes": null clears the notes, a missing key leaves them unchanged.
type updateSubmissionRequest struct {
	HoursPlayed    optional.Value[float64] `json:"hoursPlayed"`
	Platform       optional.Value[string]  `json:"platform"`
	CompletionType optional.Value[string]  `json:"completionType"`
	Notes          optional.Value[*string] `json:"notes"`
}

type submissionResponse struct {
	SubmissionID   string    `json:"submissionId"`
	UserID         string    `json:"userId"`
	GameTitle      string    `json:"gameTitle"`
	Platform       string    `json:"platform"`
	CompletionType string    `json:"completionType"`
	HoursPlayed    float64   `json:"hoursPlayed"`
	Difficulty     string    `json:"difficulty"`
	Notes          *string   `json:"notes"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type submissionListResponse struct {
	Count       int                  `json:"count"`
	Submissions []submissionResponse `json:"submissions"`
}

type deleteSubmissionResponse struct {
	Message      string `json:"message"`
	SubmissionID string `json:"submissionId"`
}

type hoursStatsResponse struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

type overallStatsResponse struct {
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

type gameStatsResponse struct {
	GameTitle        string                        `json:"gameTitle"`
	TotalSubmissions int                           `json:"totalSubmissions"`
	Overall          overallStatsResponse          `json:"overall"`
	ByCompletionType map[string]hoursStatsResponse `json:"byCompletionType"`
	ByPlatform       map[string]hoursStatsResponse `json:"byPlatform"`
}

type statsNotFoundResponse struct {
	Error     string `json:"error"`
	GameTitle string `json:"gameTitle"`
}

// Create handles POST /submissions.
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), submission.CreateInput{
		UserID:         req.UserID,
		GameTitle:      req.GameTitle,
		HoursPlayed:    req.HoursPlayed,
		Platform:       req.Platform,
		CompletionType: req.CompletionType,
		Difficulty:     req.Difficulty,
		Notes:          req.Notes,
	})
	if err != nil {
		h.handleError(w, r, err, "Submission not found")
		return
	}

	writeJSON(w, http.StatusCreated, toSubmissionResponse(created))
}

// Get handles GET /submissions/{id}.
func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := submissionIDParam(w, r)
	if !ok {
		return
	}

	found, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err, "Submission not found")
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionResponse(found))
}

// List handles GET /submissions?userId=… and GET /submissions?gameTitle=….
// userId wins when both are given.
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		subs []*domain.Submission
		err  error
	)
	switch {
	case query.Get("userId") != "":
		subs, err = h.svc.ListByUser(r.Context(), query.Get("userId"))
	case query.Get("gameTitle") != "":
		subs, err = h.svc.ListByGame(r.Context(), query.Get("gameTitle"))
	default:
		writeError(w, http.StatusBadRequest,
			"Please provide either an id in the path or userId/gameTitle as query parameters")
		return
	}
	if err != nil {
		h.handleError(w, r, err, "Submission not found")
		return
	}

	resp := submissionListResponse{
		Count:       len(subs),
		Submissions: make([]submissionResponse, 0, len(subs)),
	}
	for _, s := range subs {
		resp.Submissions = append(resp.Submissions, toSubmissionResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PATCH and PUT /submissions/{id}.
func (h *SubmissionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := submissionIDParam(w, r)
	if !ok {
		return
	}

	var req updateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), submission.UpdateInput{
		SubmissionID:   id,
		HoursPlayed:    req.HoursPlayed,
		Platform:       req.Platform,
		CompletionType: req.CompletionType,
		Notes:          req.Notes,
	})
	if err != nil {
		h.handleError(w, r, err, "Submission to update not found")
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionResponse(updated))
}

// Delete handles DELETE /submissions/{id}.
func (h *SubmissionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := submissionIDParam(w, r)
	if !ok {
		return
	}

	deleted, err := h.svc.Delete(r.Context(), submission.DeleteInput{SubmissionID: id})
	if err != nil {
		h.handleError(w, r, err, "Submission not found")
		return
	}

	writeJSON(w, http.StatusOK, deleteSubmissionResponse{
		Message:      "Submission deleted successfully",
		SubmissionID: deleted.String(),
	})
}

// GameStats handles GET /games/{gameTitle}/stats.
func (h *SubmissionHandler) GameStats(w http.ResponseWriter, r *http.Request) {
	// chi matches against RawPath when the request has one, which leaves
	// escapes in the param. Otherwise the param is already decoded.
	title := chi.URLParam(r, "gameTitle")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(title); err == nil {
			title = unescaped
		}
	}

	stats, err := h.svc.GameStats(r.Context(), title)
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, statsNotFoundResponse{
			Error:     "No submissions found for this game",
			GameTitle: domain.NormalizeText(title),
		})
		return
	}
	if err != nil {
		h.handleError(w, r, err, "No submissions found for this game")
		return
	}

	writeJSON(w, http.StatusOK, toGameStatsResponse(stats))
}

func (h *SubmissionHandler) handleError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeValidationError(w, verr)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	default:
		h.log.ErrorContext(r.Context(), "submission handler error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func submissionIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "submissionId is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid submissionId")
		return uuid.Nil, false
	}
	return id, true
}

func toSubmissionResponse(s *domain.Submission) submissionResponse {
	return submissionResponse{
		SubmissionID:   s.ID.String(),
		UserID:         s.UserID,
		GameTitle:      s.GameTitle,
		Platform:       s.Platform,
		CompletionType: s.CompletionType,
		HoursPlayed:    s.HoursPlayed,
		Difficulty:     s.Difficulty,
		Notes:          s.Notes,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func toGameStatsResponse(s *domain.GameStats) gameStatsResponse {
	return gameStatsResponse{
		GameTitle:        s.GameTitle,
		TotalSubmissions: s.TotalSubmissions,
		Overall: overallStatsResponse{
			Average: s.Overall.Average,
			Min:     s.Overall.Min,
			Max:     s.Overall.Max,
		},
		ByCompletionType: toBucketResponses(s.ByCompletionType),
		ByPlatform:       toBucketResponses(s.ByPlatform),
	}
}

func toBucketResponses(buckets map[string]domain.HoursStats) map[string]hoursStatsResponse {
	out := make(map[string]hoursStatsResponse, len(buckets))
	for key, b := range buckets {
		out[key] = hoursStatsResponse(b)
	}
	return out
}
