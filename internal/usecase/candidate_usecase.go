package usecase

import (
	"context"
	"errors"

	"smartassess-backend/internal/domain"
	"smartassess-backend/pkg/apperror"
	"smartassess-backend/pkg/database"
)

type candidateUsecase struct {
	scoper database.TenantScoper
	repo   domain.CandidateRepository
}

func NewCandidateUsecase(scoper database.TenantScoper, repo domain.CandidateRepository) domain.CandidateUsecase {
	return &candidateUsecase{
		scoper: scoper,
		repo:   repo,
	}
}

// GetProfile returns the caller's own profile. There is no way to ask for
// another user's profile; the scope is always the principal.
func (u *candidateUsecase) GetProfile(ctx context.Context, p domain.Principal) (*domain.CandidateProfile, error) {
	if p.Role != domain.RoleCandidate {
		return nil, apperror.Forbidden("Candidate access required")
	}

	var profile *domain.CandidateProfile
	err := u.scoper.Scoped(p.ID).Run(ctx, func(ctx context.Context) error {
		var err error
		profile, err = u.repo.GetByUserID(ctx, p.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Candidate profile not found")
		}
		return err
	})
	if err != nil {
		return nil, storageError(err)
	}
	return profile, nil
}
