package domain

// AIPStatus is the lifecycle state of an Annual Investment Plan.
type AIPStatus string

const (
	AIPStatusDraft         AIPStatus = "draft"
	AIPStatusPendingReview AIPStatus = "pending_review"
	AIPStatusUnderReview   AIPStatus = "under_review"
	AIPStatusForRevision   AIPStatus = "for_revision"
	AIPStatusPublished     AIPStatus = "published"
)

func (s AIPStatus) String() string { return string(s) }

func (s AIPStatus) IsValid() bool {
	switch s {
	case AIPStatusDraft, AIPStatusPendingReview, AIPStatusUnderReview,
		AIPStatusForRevision, AIPStatusPublished:
		return true
	}
	return false
}

// ReviewAction is the kind of reviewer decision recorded in the review log.
type ReviewAction string

const (
	ReviewActionClaim           ReviewAction = "claim_review"
	ReviewActionRequestRevision ReviewAction = "request_revision"
	ReviewActionPublish         ReviewAction = "publish"
)

func (a ReviewAction) String() string { return string(a) }

func (a ReviewAction) IsValid() bool {
	switch a {
	case ReviewActionClaim, ReviewActionRequestRevision, ReviewActionPublish:
		return true
	}
	return false
}

// ProjectCategory classifies a project within an AIP.
type ProjectCategory string

const (
	ProjectCategoryHealth         ProjectCategory = "health"
	ProjectCategoryInfrastructure ProjectCategory = "infrastructure"
	ProjectCategoryOther          ProjectCategory = "other"
)

func (c ProjectCategory) String() string { return string(c) }

func (c ProjectCategory) IsValid() bool {
	switch c {
	case ProjectCategoryHealth, ProjectCategoryInfrastructure, ProjectCategoryOther:
		return true
	}
	return false
}

// AcceptsSubmissions reports whether detail edits and progress updates are
// allowed for projects of this category.
func (c ProjectCategory) AcceptsSubmissions() bool {
	return c == ProjectCategoryHealth || c == ProjectCategoryInfrastructure
}

// ProjectStatus is the implementation status of a project.
type ProjectStatus string

const (
	ProjectStatusProposed  ProjectStatus = "proposed"
	ProjectStatusOngoing   ProjectStatus = "ongoing"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
)

func (s ProjectStatus) String() string { return string(s) }

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusProposed, ProjectStatusOngoing, ProjectStatusCompleted, ProjectStatusOnHold:
		return true
	}
	return false
}

// UpdateStatus is the moderation status of a project update.
type UpdateStatus string

const (
	UpdateStatusActive UpdateStatus = "active"
	UpdateStatusHidden UpdateStatus = "hidden"
)

func (s UpdateStatus) String() string { return string(s) }

// UserRole represents the authorization level of an actor.
type UserRole string

const (
	UserRoleCitizen           UserRole = "citizen"
	UserRoleBarangayOfficial  UserRole = "barangay_official"
	UserRoleCityOfficial      UserRole = "city_official"
	UserRoleMunicipalOfficial UserRole = "municipal_official"
	UserRoleAdmin             UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleCitizen, UserRoleBarangayOfficial, UserRoleCityOfficial,
		UserRoleMunicipalOfficial, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// IsReviewer reports whether the role may act on the review workflow.
func (r UserRole) IsReviewer() bool {
	return r == UserRoleAdmin || r == UserRoleCityOfficial
}

// Label returns the display label used in activity metadata.
func (r UserRole) Label() string {
	switch r {
	case UserRoleBarangayOfficial:
		return "Barangay Official"
	case UserRoleCityOfficial:
		return "City Official"
	case UserRoleMunicipalOfficial:
		return "Municipal Official"
	case UserRoleAdmin:
		return "Admin"
	case UserRoleCitizen:
		return "Citizen"
	}
	return ""
}

// ScopeKind is the kind of administrative unit a scope refers to.
type ScopeKind string

const (
	ScopeKindNone     ScopeKind = "none"
	ScopeKindBarangay ScopeKind = "barangay"
	ScopeKindCity     ScopeKind = "city"
)

func (k ScopeKind) String() string { return string(k) }

func (k ScopeKind) IsValid() bool {
	switch k {
	case ScopeKindNone, ScopeKindBarangay, ScopeKindCity:
		return true
	}
	return false
}

// ActivityAction identifies an entry in the activity log.
type ActivityAction string

const (
	ActivityActionReviewClaimed     ActivityAction = "review_claimed"
	ActivityActionRevisionRequested ActivityAction = "revision_requested"
	ActivityActionAIPPublished      ActivityAction = "aip_published"
	ActivityActionProjectInfoAdded  ActivityAction = "project_info_updated"
	ActivityActionProjectUpdated    ActivityAction = "project_updated"
)

func (a ActivityAction) String() string { return string(a) }
