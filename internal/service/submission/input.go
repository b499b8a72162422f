package submission

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

// ImageFile is one uploaded image part of a multipart form.
type ImageFile struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// DetailsInput holds the raw form of a project detail edit.
// Empty strings are treated as absent.
type DetailsInput struct {
	Scope              domain.ScopeKind
	ProjectRef         string
	Kind               string
	Status             string
	ImplementingOffice string
	Cover              *ImageFile

	// Shared by both kinds.
	ProjectName string

	// Health.
	Description             string
	TargetParticipants      string
	TotalTargetParticipants string
	BudgetAllocated         string

	// Infrastructure.
	StartDate            string
	TargetCompletionDate string
	ContractorName       string
	ContractCost         string
	FundingSource        string
}

// UpdateInput holds the raw form of a progress update.
type UpdateInput struct {
	Scope           domain.ScopeKind
	ProjectRef      string
	Title           string
	Description     string
	ProgressPercent string
	AttendanceCount string
	Photos          []ImageFile
}

type detailsForm struct {
	kind               domain.ProjectCategory
	status             domain.ProjectStatus
	implementingOffice *string
	cover              *imageUpload
	total              decimal.Decimal

	health *domain.HealthDetails
	infra  *domain.InfrastructureDetails
	// Infrastructure only.
	fundingSource *string
}

type updateForm struct {
	title           string
	description     string
	progressPercent int
	attendanceCount *int
	photos          []imageUpload
}

// parse validates the detail form and reports the first failing field.
func (i DetailsInput) parse(limits Limits) (detailsForm, error) {
	var f detailsForm

	kind, err := required("kind", i.Kind, "Project kind")
	if err != nil {
		return f, err
	}
	f.kind = domain.ProjectCategory(kind)
	if !f.kind.AcceptsSubmissions() {
		return f, domain.NewValidationError("kind", "Invalid project kind.")
	}

	status, err := required("status", i.Status, "Status")
	if err != nil {
		return f, err
	}
	f.status = domain.ProjectStatus(status)
	if !f.status.IsValid() {
		return f, domain.NewValidationError("status", "Invalid project status.")
	}
	f.implementingOffice = optional(i.ImplementingOffice)

	if i.Cover != nil && i.Cover.Size > 0 {
		cover, err := checkImage("photoFile", "Project photo", *i.Cover, limits.MaxImageBytes)
		if err != nil {
			return f, err
		}
		f.cover = &cover
	}

	projectName, err := required("projectName", i.ProjectName, "Project name")
	if err != nil {
		return f, err
	}

	if f.kind == domain.ProjectCategoryHealth {
		target, err := required("targetParticipants", i.TargetParticipants, "Target participants")
		if err != nil {
			return f, err
		}
		total, err := requiredNonNegativeInt("totalTargetParticipants", i.TotalTargetParticipants, "Total target participants")
		if err != nil {
			return f, err
		}
		f.total, err = requiredMoney("budgetAllocated", i.BudgetAllocated, "Budget allocated")
		if err != nil {
			return f, err
		}
		f.health = &domain.HealthDetails{
			ProgramName:             projectName,
			Description:             optional(i.Description),
			TargetParticipants:      target,
			TotalTargetParticipants: total,
		}
		return f, nil
	}

	startDate, err := requiredDate("startDate", i.StartDate, "Start date")
	if err != nil {
		return f, err
	}
	completion, err := requiredDate("targetCompletionDate", i.TargetCompletionDate, "Target completion date")
	if err != nil {
		return f, err
	}
	contractor, err := required("contractorName", i.ContractorName, "Contractor name")
	if err != nil {
		return f, err
	}
	f.total, err = requiredMoney("contractCost", i.ContractCost, "Contract cost")
	if err != nil {
		return f, err
	}
	f.fundingSource = optional(i.FundingSource)
	f.infra = &domain.InfrastructureDetails{
		ProjectName:          projectName,
		ContractorName:       contractor,
		ContractCost:         f.total,
		StartDate:            startDate,
		TargetCompletionDate: completion,
	}
	return f, nil
}

// parse validates the update form and reports the first failing field.
func (i UpdateInput) parse(limits Limits) (updateForm, error) {
	var f updateForm

	title, err := required("title", i.Title, "Update title")
	if err != nil {
		return f, err
	}
	description, err := required("description", i.Description, "Description")
	if err != nil {
		return f, err
	}
	progressRaw, err := required("progressPercent", i.ProgressPercent, "Progress percentage")
	if err != nil {
		return f, err
	}

	if utf8.RuneCountInString(title) < 3 {
		return f, domain.NewValidationError("title", "Update title must be at least 3 characters.")
	}
	if utf8.RuneCountInString(description) < 10 {
		return f, domain.NewValidationError("description", "Description must be at least 10 characters.")
	}

	progress, err := nonNegativeInt("progressPercent", progressRaw, "Progress percentage")
	if err != nil {
		return f, err
	}
	if progress > 100 {
		return f, domain.NewValidationError("progressPercent", "Progress percentage must not exceed 100.")
	}

	if raw := optional(i.AttendanceCount); raw != nil {
		attendance, err := nonNegativeInt("attendanceCount", *raw, "Attendance count")
		if err != nil {
			return f, err
		}
		f.attendanceCount = &attendance
	}

	photos := make([]ImageFile, 0, len(i.Photos))
	for _, p := range i.Photos {
		if p.Size > 0 {
			photos = append(photos, p)
		}
	}
	if len(photos) > limits.MaxUpdatePhotos {
		return f, domain.NewValidationError("photos",
			fmt.Sprintf("You can upload at most %d photos.", limits.MaxUpdatePhotos))
	}
	for _, p := range photos {
		photo, err := checkImage("photos", "Update photo", p, limits.MaxImageBytes)
		if err != nil {
			return f, err
		}
		f.photos = append(f.photos, photo)
	}

	f.title = title
	f.description = description
	f.progressPercent = progress
	return f, nil
}

// ---------------------------------------------------------------------------
// Field parsers
// ---------------------------------------------------------------------------

var (
	digitsOnly     = regexp.MustCompile(`^\d+$`)
	moneyStripChar = regexp.MustCompile(`[^0-9.\-]`)
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04",
	"01/02/2006",
}

func optional(value string) *string {
	return domain.TrimOptional(&value)
}

func required(field, value, label string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", domain.NewValidationError(field, label+" is required.")
	}
	return v, nil
}

func nonNegativeInt(field, value, label string) (int, error) {
	if !digitsOnly.MatchString(value) {
		return 0, domain.NewValidationError(field, label+" must be a non-negative integer.")
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, domain.NewValidationError(field, label+" must be a non-negative integer.")
	}
	return n, nil
}

func requiredNonNegativeInt(field, value, label string) (int, error) {
	v, err := required(field, value, label)
	if err != nil {
		return 0, err
	}
	return nonNegativeInt(field, v, label)
}

// requiredMoney accepts amounts like "₱1,250,000.50": everything except
// digits, dots and minus signs is dropped before parsing.
func requiredMoney(field, value, label string) (decimal.Decimal, error) {
	v, err := required(field, value, label)
	if err != nil {
		return decimal.Decimal{}, err
	}
	amount, err := decimal.NewFromString(moneyStripChar.ReplaceAllString(v, ""))
	if err != nil || amount.IsNegative() {
		return decimal.Decimal{}, domain.NewValidationError(field, label+" must be a non-negative number.")
	}
	return amount, nil
}

// requiredDate normalizes a date to YYYY-MM-DD.
func requiredDate(field, value, label string) (string, error) {
	v, err := required(field, value, label)
	if err != nil {
		return "", err
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", domain.NewValidationError(field, label+" must be a valid date.")
}
