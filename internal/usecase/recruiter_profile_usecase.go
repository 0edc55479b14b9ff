package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"smartassess-backend/internal/domain"
	"smartassess-backend/pkg/apperror"
	"smartassess-backend/pkg/crypto"
	"smartassess-backend/pkg/database"
	"smartassess-backend/pkg/validation"
)

type recruiterProfileUsecase struct {
	scoper    database.TenantScoper
	profiles  domain.RecruiterProfileRepository
	tags      domain.TagRepository
	encryptor crypto.Encryptor
	validate  *validator.Validate
}

// NewRecruiterProfileUsecase creates a new recruiter profile usecase
func NewRecruiterProfileUsecase(
	scoper database.TenantScoper,
	profiles domain.RecruiterProfileRepository,
	tags domain.TagRepository,
	encryptor crypto.Encryptor,
	validate *validator.Validate,
) domain.RecruiterProfileUsecase {
	return &recruiterProfileUsecase{
		scoper:    scoper,
		profiles:  profiles,
		tags:      tags,
		encryptor: encryptor,
		validate:  validate,
	}
}

// GetProfile retrieves the recruiter's own profile
func (uc *recruiterProfileUsecase) GetProfile(ctx context.Context, p domain.Principal) (*domain.RecruiterProfile, error) {
	if p.Role != domain.RoleRecruiter {
		return nil, apperror.Forbidden("Recruiter access required")
	}
	return uc.load(ctx, p.ID)
}

// UpdateOrganization applies a sparse organization patch. Scalars and tag
// categories change in one transaction.
func (uc *recruiterProfileUsecase) UpdateOrganization(ctx context.Context, p domain.Principal, req *domain.OrganizationUpdate) (*domain.RecruiterProfile, error) {
	if p.Role != domain.RoleRecruiter {
		return nil, apperror.Forbidden("Recruiter access required")
	}
	if err := uc.validate.Struct(req); err != nil {
		return nil, apperror.Validation("Invalid organization data", validation.FieldErrors(err, ""))
	}

	update := *req
	if update.LLMAPIKey != nil {
		sealed, err := uc.encryptor.Encrypt(*update.LLMAPIKey)
		if err != nil {
			return nil, apperror.Internal(fmt.Errorf("encrypt llm api key: %w", err))
		}
		update.LLMAPIKey = &sealed
	}

	err := uc.scoper.Scoped(p.ID).Run(ctx, func(ctx context.Context) error {
		exists, err := uc.profiles.Exists(ctx, p.ID)
		if err != nil {
			return err
		}
		if !exists {
			return apperror.NotFound("Recruiter profile not found")
		}

		if update.HasScalars() {
			if err := uc.profiles.UpdateOrganization(ctx, p.ID, &update); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return apperror.NotFound("Recruiter profile not found")
				}
				return err
			}
		}

		if update.HiringDomains != nil {
			if err := uc.replaceTags(ctx, p.ID, update.HiringDomains, domain.TagTypeDomain); err != nil {
				return err
			}
		}
		if update.ExperienceLevels != nil {
			if err := uc.replaceTags(ctx, p.ID, update.ExperienceLevels, domain.TagTypeExperienceLevel); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, storageError(err)
	}

	return uc.load(ctx, p.ID)
}

func (uc *recruiterProfileUsecase) replaceTags(ctx context.Context, userID string, names []string, tagType domain.TagType) error {
	if err := uc.profiles.UnlinkTagsOfType(ctx, userID, tagType); err != nil {
		return err
	}
	return uc.tags.EnsureAndLink(ctx, userID, names, tagType, uc.profiles.LinkTags)
}

func (uc *recruiterProfileUsecase) load(ctx context.Context, userID string) (*domain.RecruiterProfile, error) {
	var profile *domain.RecruiterProfile
	err := uc.scoper.Scoped(userID).Run(ctx, func(ctx context.Context) error {
		var err error
		profile, err = uc.profiles.GetByUserID(ctx, userID)
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Recruiter profile not found")
		}
		return err
	})
	if err != nil {
		return nil, storageError(err)
	}
	return profile, nil
}
