package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
	"github.com/heartmarshall/aip-review-backend/internal/service/review"
	"github.com/heartmarshall/aip-review-backend/pkg/ctxutil"
)

// reviewService defines the review workflow operations used by ReviewHandler.
type reviewService interface {
	Claim(ctx context.Context, aipID uuid.UUID) (*domain.ReviewState, error)
	RequestRevision(ctx context.Context, aipID uuid.UUID, note string) (*domain.ReviewState, error)
	Publish(ctx context.Context, aipID uuid.UUID, note *string) (*domain.ReviewState, error)
	GetReviewState(ctx context.Context, aipID uuid.UUID) (*domain.ReviewState, error)
	ListSubmissions(ctx context.Context, cityID uuid.UUID) (*review.SubmissionList, error)
}

// ReviewHandler serves the AIP review endpoints.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

type revisionRequest struct {
	Note string `json:"note"`
}

type publishRequest struct {
	Note *string `json:"note"`
}

type reviewResponse struct {
	actionResponse
	Review reviewStateDTO `json:"review"`
}

type reviewStateDTO struct {
	AIPID           string          `json:"aipId"`
	Status          string          `json:"status"`
	StatusUpdatedAt time.Time       `json:"statusUpdatedAt"`
	Owner           *reviewOwnerDTO `json:"owner"`
	LatestEvent     *reviewEventDTO `json:"latestEvent"`
}

type reviewOwnerDTO struct {
	ReviewerID   string    `json:"reviewerId"`
	ReviewerName string    `json:"reviewerName"`
	ClaimedAt    time.Time `json:"claimedAt"`
}

type reviewEventDTO struct {
	ID           string    `json:"id"`
	ReviewerID   string    `json:"reviewerId"`
	ReviewerName string    `json:"reviewerName"`
	Action       string    `json:"action"`
	Note         *string   `json:"note"`
	CreatedAt    time.Time `json:"createdAt"`
}

type submissionsResponse struct {
	actionResponse
	Submissions []submissionDTO `json:"submissions"`
	Counts      countsDTO       `json:"counts"`
}

type submissionDTO struct {
	AIPID           string    `json:"aipId"`
	FiscalYear      int       `json:"fiscalYear"`
	Title           string    `json:"title"`
	Status          string    `json:"status"`
	StatusUpdatedAt time.Time `json:"statusUpdatedAt"`
	BarangayName    *string   `json:"barangayName"`
	ReviewerName    *string   `json:"reviewerName"`
}

type countsDTO struct {
	Total         int `json:"total"`
	PendingReview int `json:"pendingReview"`
	UnderReview   int `json:"underReview"`
	ForRevision   int `json:"forRevision"`
	Published     int `json:"published"`
}

// Claim handles POST /api/v1/aips/{aipID}/claim.
func (h *ReviewHandler) Claim(w http.ResponseWriter, r *http.Request) {
	aipID, ok := aipIDParam(w, r)
	if !ok {
		return
	}

	state, err := h.svc.Claim(r.Context(), aipID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewResponse("Review claimed.", state))
}

// RequestRevision handles POST /api/v1/aips/{aipID}/request-revision.
func (h *ReviewHandler) RequestRevision(w http.ResponseWriter, r *http.Request) {
	aipID, ok := aipIDParam(w, r)
	if !ok {
		return
	}

	var req revisionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	state, err := h.svc.RequestRevision(r.Context(), aipID, req.Note)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewResponse("Revision requested.", state))
}

// Publish handles POST /api/v1/aips/{aipID}/publish. The note is optional.
func (h *ReviewHandler) Publish(w http.ResponseWriter, r *http.Request) {
	aipID, ok := aipIDParam(w, r)
	if !ok {
		return
	}

	var req publishRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	state, err := h.svc.Publish(r.Context(), aipID, req.Note)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewResponse("AIP published.", state))
}

// State handles GET /api/v1/aips/{aipID}/review.
func (h *ReviewHandler) State(w http.ResponseWriter, r *http.Request) {
	aipID, ok := aipIDParam(w, r)
	if !ok {
		return
	}

	state, err := h.svc.GetReviewState(r.Context(), aipID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewResponse("OK", state))
}

// Submissions handles GET /api/v1/city/submissions. City officials list
// their own city; admins pass ?city_id=.
func (h *ReviewHandler) Submissions(w http.ResponseWriter, r *http.Request) {
	actor, ok := ctxutil.ActorFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	cityID := actor.Scope.ID
	if raw := r.URL.Query().Get("city_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid city id.")
			return
		}
		cityID = id
	} else if actor.Scope.Kind != domain.ScopeKindCity {
		writeError(w, http.StatusBadRequest, "City id is required.")
		return
	}

	list, err := h.svc.ListSubmissions(r.Context(), cityID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := submissionsResponse{
		actionResponse: actionResponse{OK: true, Message: "OK"},
		Submissions:    make([]submissionDTO, 0, len(list.Rows)),
		Counts: countsDTO{
			Total:         list.Counts.Total,
			PendingReview: list.Counts.PendingReview,
			UnderReview:   list.Counts.UnderReview,
			ForRevision:   list.Counts.ForRevision,
			Published:     list.Counts.Published,
		},
	}
	for _, row := range list.Rows {
		resp.Submissions = append(resp.Submissions, submissionDTO{
			AIPID:           row.AIP.ID.String(),
			FiscalYear:      row.AIP.FiscalYear,
			Title:           row.AIP.Title,
			Status:          row.AIP.Status.String(),
			StatusUpdatedAt: row.AIP.StatusUpdatedAt,
			BarangayName:    row.AIP.BarangayName,
			ReviewerName:    row.ReviewerName,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func aipIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "aipID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "AIP not found.")
		return uuid.Nil, false
	}
	return id, true
}

// decodeJSON reads an optional JSON body. An empty body leaves v untouched.
// maxJSONBytes bounds review action bodies, which carry at most a note.
const maxJSONBytes = 64 << 10

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBytes)
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "Request body is too large.")
		return false
	}
	writeError(w, http.StatusBadRequest, "Invalid request body.")
	return false
}

func toReviewResponse(message string, state *domain.ReviewState) reviewResponse {
	dto := reviewStateDTO{
		AIPID:           state.AIP.ID.String(),
		Status:          state.AIP.Status.String(),
		StatusUpdatedAt: state.AIP.StatusUpdatedAt,
	}
	if o := state.Owner; o != nil {
		dto.Owner = &reviewOwnerDTO{
			ReviewerID:   o.ReviewerID.String(),
			ReviewerName: o.ReviewerName,
			ClaimedAt:    o.ClaimedAt,
		}
	}
	if e := state.LatestEvent; e != nil {
		dto.LatestEvent = &reviewEventDTO{
			ID:           e.ID.String(),
			ReviewerID:   e.ReviewerID.String(),
			ReviewerName: e.ReviewerName,
			Action:       e.Action.String(),
			Note:         e.Note,
			CreatedAt:    e.CreatedAt,
		}
	}
	return reviewResponse{
		actionResponse: actionResponse{OK: true, Message: message},
		Review:         dto,
	}
}
