package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
	"github.com/heartmarshall/aip-review-backend/internal/service/submission"
)

// submissionService defines the project write operations used by ProjectHandler.
type submissionService interface {
	SubmitProjectDetails(ctx context.Context, in submission.DetailsInput) (*submission.DetailsResult, error)
	PostProjectUpdate(ctx context.Context, in submission.UpdateInput) (*submission.UpdateResult, error)
}

// ProjectHandler serves the project submission endpoints of barangay and city scopes.
type ProjectHandler struct {
	svc          submissionService
	maxFormBytes int64
	log          *slog.Logger
}

// formOverhead is the allowance for non-file fields on top of the image budget.
const formOverhead = 1 << 20

// NewProjectHandler creates a ProjectHandler. Request bodies are capped at
// maxPhotos+1 images of maxImageBytes each plus field overhead.
func NewProjectHandler(svc submissionService, maxImageBytes int64, maxPhotos int, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		svc:          svc,
		maxFormBytes: int64(maxPhotos+1)*maxImageBytes + formOverhead,
		log:          logger.With("handler", "project"),
	}
}

type detailsResponse struct {
	actionResponse
	ProjectID string  `json:"projectId"`
	Kind      string  `json:"kind"`
	CoverKey  *string `json:"coverKey,omitempty"`
}

type updateResponse struct {
	actionResponse
	Update updateDTO `json:"update"`
}

type updateDTO struct {
	ID              string    `json:"id"`
	ProjectID       string    `json:"projectId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ProgressPercent int       `json:"progressPercent"`
	AttendanceCount *int      `json:"attendanceCount"`
	MediaURLs       []string  `json:"mediaUrls"`
	CreatedAt       time.Time `json:"createdAt"`
}

// AddInformation handles POST /api/v1/{scope}/projects/{projectIDOrRef}/add-information.
func (h *ProjectHandler) AddInformation(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeParam(w, r)
	if !ok {
		return
	}
	form, ok := h.parseForm(w, r)
	if !ok {
		return
	}

	in := submission.DetailsInput{
		Scope:                   scope,
		ProjectRef:              chi.URLParam(r, "projectIDOrRef"),
		Kind:                    form.value("kind"),
		Status:                  form.value("status"),
		ImplementingOffice:      form.value("implementingOffice"),
		ProjectName:             form.value("projectName"),
		Description:             form.value("description"),
		TargetParticipants:      form.value("targetParticipants"),
		TotalTargetParticipants: form.value("totalTargetParticipants"),
		BudgetAllocated:         form.value("budgetAllocated"),
		StartDate:               form.value("startDate"),
		TargetCompletionDate:    form.value("targetCompletionDate"),
		ContractorName:          form.value("contractorName"),
		ContractCost:            form.value("contractCost"),
		FundingSource:           form.value("fundingSource"),
	}
	if files := form.files("photoFile"); len(files) > 0 {
		in.Cover = &files[0]
	}

	result, err := h.svc.SubmitProjectDetails(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, detailsResponse{
		actionResponse: actionResponse{OK: true, Message: "Project information saved."},
		ProjectID:      result.ProjectID.String(),
		Kind:           result.Kind.String(),
		CoverKey:       result.CoverKey,
	})
}

// PostUpdate handles POST /api/v1/{scope}/projects/{projectIDOrRef}/updates.
func (h *ProjectHandler) PostUpdate(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeParam(w, r)
	if !ok {
		return
	}
	form, ok := h.parseForm(w, r)
	if !ok {
		return
	}

	result, err := h.svc.PostProjectUpdate(r.Context(), submission.UpdateInput{
		Scope:           scope,
		ProjectRef:      chi.URLParam(r, "projectIDOrRef"),
		Title:           form.value("title"),
		Description:     form.value("description"),
		ProgressPercent: form.value("progressPercent"),
		AttendanceCount: form.value("attendanceCount"),
		Photos:          form.files("photos"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u := result.Update
	writeJSON(w, http.StatusCreated, updateResponse{
		actionResponse: actionResponse{OK: true, Message: "Project update posted."},
		Update: updateDTO{
			ID:              u.ID.String(),
			ProjectID:       u.ProjectID.String(),
			Title:           u.Title,
			Description:     u.Description,
			ProgressPercent: u.ProgressPercent,
			AttendanceCount: u.AttendanceCount,
			MediaURLs:       result.MediaURLs,
			CreatedAt:       u.CreatedAt,
		},
	})
}

func scopeParam(w http.ResponseWriter, r *http.Request) (domain.ScopeKind, bool) {
	kind := domain.ScopeKind(chi.URLParam(r, "scope"))
	if kind != domain.ScopeKindBarangay && kind != domain.ScopeKindCity {
		writeError(w, http.StatusNotFound, "Not found.")
		return "", false
	}
	return kind, true
}

// multipartForm is a parsed request form.
type multipartForm struct {
	*multipart.Form
}

func (h *ProjectHandler) parseForm(w http.ResponseWriter, r *http.Request) (multipartForm, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFormBytes)
	if err := r.ParseMultipartForm(formOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Upload is too large.")
			return multipartForm{}, false
		}
		writeError(w, http.StatusBadRequest, "Invalid form data.")
		return multipartForm{}, false
	}
	return multipartForm{r.MultipartForm}, true
}

func (f multipartForm) value(key string) string {
	if vs := f.Value[key]; len(vs) > 0 {
		return strings.TrimSpace(vs[0])
	}
	return ""
}

func (f multipartForm) files(key string) []submission.ImageFile {
	headers := f.File[key]
	files := make([]submission.ImageFile, 0, len(headers))
	for _, fh := range headers {
		fh := fh
		files = append(files, submission.ImageFile{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	return files
}
