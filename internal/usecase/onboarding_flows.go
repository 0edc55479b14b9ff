package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"smartassess-backend/internal/domain"
	"smartassess-backend/pkg/apperror"
	"smartassess-backend/pkg/crypto"
	"smartassess-backend/pkg/validation"
)

// profileWriter persists a validated profile inside the caller's tenant
// transaction.
type profileWriter func(ctx context.Context) error

// onboardingFlow is the role-specific half of the workflow: partial and full
// validation plus the profile writer.
type onboardingFlow interface {
	// prepareDraft validates a partial payload and returns what to persist.
	prepareDraft(raw json.RawMessage) (json.RawMessage, error)
	// projectDraft re-reads a stored draft; nil when it no longer decodes.
	projectDraft(stored json.RawMessage) json.RawMessage
	// prepareProfile validates a full payload and returns its writer.
	prepareProfile(principalID string, raw json.RawMessage) (profileWriter, error)
	profileExists(ctx context.Context, userID string) (bool, error)
}

const draftField = "draft"

// decodeAndValidate decodes raw into T and runs v on it. Unknown keys are
// dropped. Failures are reported as validation errors keyed under prefix.
func decodeAndValidate[T any](v *validator.Validate, raw json.RawMessage, message, prefix string) (*T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, apperror.Validation(message, map[string][]string{prefix: {"Required"}})
	}

	var out T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, apperror.Validation(message, decodeDetails(err, prefix))
	}
	if err := v.Struct(&out); err != nil {
		return nil, apperror.Validation(message, validation.FieldErrors(err, prefix))
	}
	return &out, nil
}

func decodeDetails(err error, prefix string) map[string][]string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return map[string][]string{prefix: {"Must be an object"}}
		}
		return map[string][]string{prefix + "." + typeErr.Field: {fmt.Sprintf("Must be of type %s", typeErr.Type)}}
	}
	return map[string][]string{prefix: {"Malformed JSON"}}
}

func projectAs[T any](stored json.RawMessage) json.RawMessage {
	if len(stored) == 0 {
		return nil
	}
	var draft T
	if err := json.Unmarshal(stored, &draft); err != nil {
		return nil
	}
	out, err := json.Marshal(draft)
	if err != nil {
		return nil
	}
	return out
}

func optionalText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ============================================================================
// Candidate
// ============================================================================

type candidateFlow struct {
	validate *validator.Validate
	profiles domain.CandidateRepository
	tags     domain.TagRepository
}

func (f *candidateFlow) prepareDraft(raw json.RawMessage) (json.RawMessage, error) {
	draft, err := decodeAndValidate[domain.CandidateOnboardingDraft](f.validate, raw, "Invalid onboarding data", draftField)
	if err != nil {
		return nil, err
	}
	return json.Marshal(draft)
}

func (f *candidateFlow) projectDraft(stored json.RawMessage) json.RawMessage {
	return projectAs[domain.CandidateOnboardingDraft](stored)
}

func (f *candidateFlow) prepareProfile(principalID string, raw json.RawMessage) (profileWriter, error) {
	data, err := decodeAndValidate[domain.CandidateOnboardingData](f.validate, raw, "Invalid candidate onboarding data", draftField)
	if err != nil {
		return nil, err
	}

	experience, ok := domain.ExperienceRangeFor(data.YearsOfExperience)
	if !ok {
		return nil, apperror.Validation("Invalid candidate onboarding data", map[string][]string{
			draftField + ".yearsOfExperience": {"Unknown experience range"},
		})
	}

	profile := &domain.CandidateProfile{
		UserID:               principalID,
		Domain:               data.Domain,
		PrimaryRole:          data.PrimaryRole,
		HighestEducation:     data.HighestEducation,
		CurrentStatus:        data.CurrentStatus,
		YearsOfExperienceMin: experience.Min,
		YearsOfExperienceMax: experience.Max,
		ProfessionalBio:      data.ProfessionalBio,
		CountryCode:          data.CountryCode,
		PortfolioURL:         optionalText(data.PortfolioURL),
		GithubURL:            optionalText(data.GithubURL),
		LinkedinURL:          optionalText(data.LinkedinURL),
	}

	return func(ctx context.Context) error {
		if err := f.profiles.Create(ctx, profile); err != nil {
			return err
		}
		return f.tags.EnsureAndLink(ctx, principalID, data.TopSkills, domain.TagTypeSkill, f.profiles.LinkTags)
	}, nil
}

func (f *candidateFlow) profileExists(ctx context.Context, userID string) (bool, error) {
	return f.profiles.Exists(ctx, userID)
}

// ============================================================================
// Recruiter
// ============================================================================

type recruiterFlow struct {
	validate  *validator.Validate
	profiles  domain.RecruiterProfileRepository
	tags      domain.TagRepository
	encryptor crypto.Encryptor
}

func (f *recruiterFlow) prepareDraft(raw json.RawMessage) (json.RawMessage, error) {
	draft, err := decodeAndValidate[domain.RecruiterOnboardingDraft](f.validate, raw, "Invalid onboarding data", draftField)
	if err != nil {
		return nil, err
	}
	return json.Marshal(draft.WithoutCredential())
}

func (f *recruiterFlow) projectDraft(stored json.RawMessage) json.RawMessage {
	return projectAs[domain.RecruiterOnboardingDraft](stored)
}

func (f *recruiterFlow) prepareProfile(principalID string, raw json.RawMessage) (profileWriter, error) {
	data, err := decodeAndValidate[domain.RecruiterOnboardingData](f.validate, raw, "Invalid recruiter onboarding data", draftField)
	if err != nil {
		return nil, err
	}

	sealed, err := f.encryptor.Encrypt(data.LLMAPIKey)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("encrypt llm api key: %w", err))
	}

	profile := &domain.RecruiterProfile{
		UserID:              principalID,
		OrganizationName:    data.OrganizationName,
		OrganizationSize:    data.OrganizationSize,
		Industry:            data.Industry,
		CountryCode:         data.CountryCode,
		OrganizationWebsite: optionalText(data.CompanyWebsite),
		LLMProvider:         data.LLMProvider,
		LLMAPIKey:           sealed,
		DefaultModel:        optionalText(data.DefaultModel),
	}

	return func(ctx context.Context) error {
		if err := f.profiles.Create(ctx, profile); err != nil {
			return err
		}
		if err := f.tags.EnsureAndLink(ctx, principalID, data.HiringDomains, domain.TagTypeDomain, f.profiles.LinkTags); err != nil {
			return err
		}
		return f.tags.EnsureAndLink(ctx, principalID, data.ExperienceLevelsHiring, domain.TagTypeExperienceLevel, f.profiles.LinkTags)
	}, nil
}

func (f *recruiterFlow) profileExists(ctx context.Context, userID string) (bool, error) {
	return f.profiles.Exists(ctx, userID)
}
