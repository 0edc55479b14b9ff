package domain

import (
	"context"
	"time"
)

// Years-of-experience buckets accepted by onboarding. The oneof lists in the
// validate tags below must stay in sync with experienceRanges.
const (
	ExperienceFresher     = "fresher"
	ExperienceUpToOne     = "0-1"
	ExperienceOneToTwo    = "1-2"
	ExperienceTwoToThree  = "2-3"
	ExperienceThreeToFive = "3-5"
	ExperienceFiveToSeven = "5-7"
	ExperienceSevenToTen  = "7-10"
	ExperienceTenPlus     = "10+"
)

// ExperienceRange is the numeric form persisted for a bucket. Max is nil for
// the open-ended bucket.
type ExperienceRange struct {
	Min int  `json:"min"`
	Max *int `json:"max"`
}

func years(n int) *int { return &n }

var experienceRanges = map[string]ExperienceRange{
	ExperienceFresher:     {Min: 0, Max: years(0)},
	ExperienceUpToOne:     {Min: 0, Max: years(1)},
	ExperienceOneToTwo:    {Min: 1, Max: years(2)},
	ExperienceTwoToThree:  {Min: 2, Max: years(3)},
	ExperienceThreeToFive: {Min: 3, Max: years(5)},
	ExperienceFiveToSeven: {Min: 5, Max: years(7)},
	ExperienceSevenToTen:  {Min: 7, Max: years(10)},
	ExperienceTenPlus:     {Min: 10, Max: nil},
}

// ExperienceBuckets lists the buckets in display order.
func ExperienceBuckets() []string {
	return []string{
		ExperienceFresher, ExperienceUpToOne, ExperienceOneToTwo, ExperienceTwoToThree,
		ExperienceThreeToFive, ExperienceFiveToSeven, ExperienceSevenToTen, ExperienceTenPlus,
	}
}

// ExperienceRangeFor translates a validated bucket label.
func ExperienceRangeFor(bucket string) (ExperienceRange, bool) {
	r, ok := experienceRanges[bucket]
	if !ok {
		return ExperienceRange{}, false
	}
	if r.Max != nil {
		r.Max = years(*r.Max)
	}
	return r, true
}

// ============================================================================
// Onboarding shapes
// ============================================================================

// CandidateOnboardingData is the full payload accepted on completion.
type CandidateOnboardingData struct {
	// step 1 - basic info
	Domain           string `json:"domain" validate:"required,max=100"`
	PrimaryRole      string `json:"primaryRole" validate:"required,max=100"`
	HighestEducation string `json:"highestEducation" validate:"required,max=100"`
	CurrentStatus    string `json:"currentStatus" validate:"required,max=100"`

	// step 2 - skills & experience
	TopSkills         []string `json:"topSkills" validate:"required,min=1,dive,tag_name"`
	YearsOfExperience string   `json:"yearsOfExperience" validate:"required,oneof=fresher 0-1 1-2 2-3 3-5 5-7 7-10 10+"`
	ProfessionalBio   string   `json:"professionalBio" validate:"required,min=20,max=2000,no_emoji"`

	// step 3 - location & presence
	CountryCode  string `json:"countryCode" validate:"required,max=8"`
	PortfolioURL string `json:"portfolioUrl" validate:"url_or_empty"`
	GithubURL    string `json:"githubUrl" validate:"url_or_empty"`
	LinkedinURL  string `json:"linkedinUrl" validate:"url_or_empty"`
}

// CandidateOnboardingDraft is the partial shape: every field optional, every
// present field validated like the full shape.
type CandidateOnboardingDraft struct {
	Domain            *string  `json:"domain,omitempty" validate:"omitempty,min=1,max=100"`
	PrimaryRole       *string  `json:"primaryRole,omitempty" validate:"omitempty,min=1,max=100"`
	HighestEducation  *string  `json:"highestEducation,omitempty" validate:"omitempty,min=1,max=100"`
	CurrentStatus     *string  `json:"currentStatus,omitempty" validate:"omitempty,min=1,max=100"`
	TopSkills         []string `json:"topSkills,omitempty" validate:"omitempty,min=1,dive,tag_name"`
	YearsOfExperience *string  `json:"yearsOfExperience,omitempty" validate:"omitempty,oneof=fresher 0-1 1-2 2-3 3-5 5-7 7-10 10+"`
	ProfessionalBio   *string  `json:"professionalBio,omitempty" validate:"omitempty,min=20,max=2000,no_emoji"`
	CountryCode       *string  `json:"countryCode,omitempty" validate:"omitempty,min=1,max=8"`
	PortfolioURL      *string  `json:"portfolioUrl,omitempty" validate:"omitempty,url_or_empty"`
	GithubURL         *string  `json:"githubUrl,omitempty" validate:"omitempty,url_or_empty"`
	LinkedinURL       *string  `json:"linkedinUrl,omitempty" validate:"omitempty,url_or_empty"`
}

// ============================================================================
// Profile
// ============================================================================

// CandidateProfile is created once, on completion, and never updated.
type CandidateProfile struct {
	UserID               string    `json:"userId"`
	Domain               string    `json:"domain"`
	PrimaryRole          string    `json:"primaryRole"`
	HighestEducation     string    `json:"highestEducation"`
	CurrentStatus        string    `json:"currentStatus"`
	YearsOfExperienceMin int       `json:"yearsOfExperienceMin"`
	YearsOfExperienceMax *int      `json:"yearsOfExperienceMax"`
	ProfessionalBio      string    `json:"professionalBio"`
	CountryCode          string    `json:"countryCode"`
	PortfolioURL         *string   `json:"portfolioUrl"`
	GithubURL            *string   `json:"githubUrl"`
	LinkedinURL          *string   `json:"linkedinUrl"`
	TopSkills            []string  `json:"topSkills"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

type CandidateRepository interface {
	Exists(ctx context.Context, userID string) (bool, error)
	// Create returns ErrProfileExists on a primary key conflict.
	Create(ctx context.Context, profile *CandidateProfile) error
	LinkTags(ctx context.Context, profileID string, tagIDs []int64) error
	GetByUserID(ctx context.Context, userID string) (*CandidateProfile, error)
}

type CandidateUsecase interface {
	GetProfile(ctx context.Context, p Principal) (*CandidateProfile, error)
}
