package domain

import (
	"context"
	"time"
)

// ============================================================================
// Onboarding shapes
// ============================================================================

// RecruiterOnboardingData is the full payload accepted on completion.
type RecruiterOnboardingData struct {
	// Step 1
	OrganizationName string `json:"organizationName" validate:"required,min=2,max=200,valid_name"`
	OrganizationSize string `json:"organizationSize" validate:"required,max=50"`
	Industry         string `json:"industry" validate:"required,max=100"`
	CountryCode      string `json:"countryCode" validate:"required,max=8"`

	// Step 2
	HiringDomains          []string `json:"hiringDomains" validate:"required,min=1,dive,tag_name"`
	ExperienceLevelsHiring []string `json:"experienceLevelsHiring" validate:"required,min=1,dive,tag_name"`
	CompanyWebsite         string   `json:"companyWebsite" validate:"url_or_empty"`

	// Step 3 - LLM setup
	LLMProvider  string `json:"llmProvider" validate:"required,max=50"`
	LLMAPIKey    string `json:"llmApiKey" validate:"required,min=10,max=512"`
	DefaultModel string `json:"defaultModel" validate:"max=100"`
}

// RecruiterOnboardingDraft is the partial shape. LLMAPIKey is validated when
// present but is never written to the stored draft.
type RecruiterOnboardingDraft struct {
	OrganizationName       *string  `json:"organizationName,omitempty" validate:"omitempty,min=2,max=200,valid_name"`
	OrganizationSize       *string  `json:"organizationSize,omitempty" validate:"omitempty,min=1,max=50"`
	Industry               *string  `json:"industry,omitempty" validate:"omitempty,min=1,max=100"`
	CountryCode            *string  `json:"countryCode,omitempty" validate:"omitempty,min=1,max=8"`
	HiringDomains          []string `json:"hiringDomains,omitempty" validate:"omitempty,min=1,dive,tag_name"`
	ExperienceLevelsHiring []string `json:"experienceLevelsHiring,omitempty" validate:"omitempty,min=1,dive,tag_name"`
	CompanyWebsite         *string  `json:"companyWebsite,omitempty" validate:"omitempty,url_or_empty"`
	LLMProvider            *string  `json:"llmProvider,omitempty" validate:"omitempty,min=1,max=50"`
	LLMAPIKey              *string  `json:"llmApiKey,omitempty" validate:"omitempty,min=10,max=512"`
	DefaultModel           *string  `json:"defaultModel,omitempty" validate:"omitempty,max=100"`
}

// WithoutCredential returns a copy safe to persist.
func (d RecruiterOnboardingDraft) WithoutCredential() RecruiterOnboardingDraft {
	d.LLMAPIKey = nil
	return d
}

// ============================================================================
// Profile
// ============================================================================

// RecruiterProfile holds the organization and LLM settings of a recruiter.
// LLMAPIKey is ciphertext and is never serialized.
type RecruiterProfile struct {
	UserID              string    `json:"userId"`
	OrganizationName    string    `json:"organizationName"`
	OrganizationSize    string    `json:"organizationSize"`
	Industry            string    `json:"industry"`
	CountryCode         string    `json:"countryCode"`
	OrganizationWebsite *string   `json:"organizationWebsite"`
	LLMProvider         string    `json:"llmProvider"`
	LLMAPIKey           string    `json:"-"`
	DefaultModel        *string   `json:"defaultModel"`
	HiringDomains       []string  `json:"hiringDomains"`
	ExperienceLevels    []string  `json:"experienceLevels"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// OrganizationUpdate is the sparse PATCH /recruiter/organization payload. Nil
// fields are left untouched. An empty OrganizationWebsite or DefaultModel
// clears the column. Present tag lists replace that category.
type OrganizationUpdate struct {
	OrganizationName    *string  `json:"organizationName,omitempty" validate:"omitempty,min=2,max=200,valid_name"`
	OrganizationSize    *string  `json:"organizationSize,omitempty" validate:"omitempty,min=1,max=50"`
	Industry            *string  `json:"industry,omitempty" validate:"omitempty,min=1,max=100"`
	CountryCode         *string  `json:"countryCode,omitempty" validate:"omitempty,min=1,max=8"`
	OrganizationWebsite *string  `json:"organizationWebsite,omitempty" validate:"omitempty,url_or_empty"`
	LLMProvider         *string  `json:"llmProvider,omitempty" validate:"omitempty,min=1,max=50"`
	LLMAPIKey           *string  `json:"llmApiKey,omitempty" validate:"omitempty,min=10,max=512"`
	DefaultModel        *string  `json:"defaultModel,omitempty" validate:"omitempty,max=100"`
	HiringDomains       []string `json:"hiringDomains,omitempty" validate:"omitempty,min=1,dive,tag_name"`
	ExperienceLevels    []string `json:"experienceLevels,omitempty" validate:"omitempty,min=1,dive,tag_name"`
}

// HasScalars reports whether any column of recruiter_profile changes.
func (u *OrganizationUpdate) HasScalars() bool {
	return u.OrganizationName != nil || u.OrganizationSize != nil || u.Industry != nil ||
		u.CountryCode != nil || u.OrganizationWebsite != nil || u.LLMProvider != nil ||
		u.LLMAPIKey != nil || u.DefaultModel != nil
}

type RecruiterProfileRepository interface {
	Exists(ctx context.Context, userID string) (bool, error)
	// Create returns ErrProfileExists on a primary key conflict.
	Create(ctx context.Context, profile *RecruiterProfile) error
	LinkTags(ctx context.Context, profileID string, tagIDs []int64) error
	UnlinkTagsOfType(ctx context.Context, userID string, tagType TagType) error
	// UpdateOrganization applies the scalar fields of u. u.LLMAPIKey must
	// already be ciphertext. Returns ErrNotFound when no row was updated.
	UpdateOrganization(ctx context.Context, userID string, u *OrganizationUpdate) error
	GetByUserID(ctx context.Context, userID string) (*RecruiterProfile, error)
}

type RecruiterProfileUsecase interface {
	GetProfile(ctx context.Context, p Principal) (*RecruiterProfile, error)
	UpdateOrganization(ctx context.Context, p Principal, u *OrganizationUpdate) (*RecruiterProfile, error)
}
