package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"smartassess-backend/internal/domain"
	"smartassess-backend/pkg/apperror"
	"smartassess-backend/pkg/crypto"
	"smartassess-backend/pkg/database"
	"smartassess-backend/pkg/validation"
)

type onboardingUsecase struct {
	scoper   database.TenantScoper
	repo     domain.OnboardingRepository
	flows    map[domain.Role]onboardingFlow
	validate *validator.Validate
}

func NewOnboardingUsecase(
	scoper database.TenantScoper,
	repo domain.OnboardingRepository,
	candidates domain.CandidateRepository,
	recruiters domain.RecruiterProfileRepository,
	tags domain.TagRepository,
	encryptor crypto.Encryptor,
	validate *validator.Validate,
) domain.OnboardingUsecase {
	return &onboardingUsecase{
		scoper: scoper,
		repo:   repo,
		flows: map[domain.Role]onboardingFlow{
			domain.RoleCandidate: &candidateFlow{validate: validate, profiles: candidates, tags: tags},
			domain.RoleRecruiter: &recruiterFlow{validate: validate, profiles: recruiters, tags: tags, encryptor: encryptor},
		},
		validate: validate,
	}
}

// ============================================================================
// Status
// ============================================================================

func (u *onboardingUsecase) GetStatus(ctx context.Context, p domain.Principal) (*domain.OnboardingStatus, error) {
	var rec *domain.OnboardingRecord
	err := u.scoper.Scoped(p.ID).Run(ctx, func(ctx context.Context) error {
		r, err := u.repo.Get(ctx, p.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		rec = r
		return err
	})
	if err != nil {
		return nil, storageError(err)
	}

	status := &domain.OnboardingStatus{
		Status:         rec.State(),
		OnboardingType: p.Role,
	}
	if status.Status == domain.OnboardingInProgress {
		step := rec.CurrentStep
		status.CurrentStep = &step
		if flow, ok := u.flows[p.Role]; ok {
			status.Draft = flow.projectDraft(rec.Draft)
		}
	}
	return status, nil
}

func (u *onboardingUsecase) InitializeIfAbsent(ctx context.Context, p domain.Principal) (bool, error) {
	var created bool
	err := u.scoper.Scoped(p.ID).Run(ctx, func(ctx context.Context) error {
		var err error
		created, err = u.repo.InsertIfAbsent(ctx, p.ID)
		return err
	})
	if err != nil {
		return false, storageError(err)
	}
	return created, nil
}

// ============================================================================
// Save Draft
// ============================================================================

func (u *onboardingUsecase) SaveDraft(ctx context.Context, p domain.Principal, req *domain.SaveDraftRequest) (*domain.OnboardingResult, error) {
	flow, err := u.flowFor(p)
	if err != nil {
		return nil, err
	}

	// Role checks come before anything is written, including the bootstrap.
	if req.OnboardingType == "" {
		return nil, apperror.Validation("Invalid onboarding data", map[string][]string{
			"onboardingType": {"Required"},
		})
	}
	if req.OnboardingType != p.Role {
		return nil, apperror.Conflict("Onboarding type does not match your role")
	}
	if req.IsCompleted != nil && *req.IsCompleted {
		return nil, apperror.Validation("Invalid onboarding data", map[string][]string{
			"isCompleted": {"Must be false; use the complete endpoint to finish onboarding"},
		})
	}
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.Validation("Invalid onboarding data", validation.FieldErrors(err, ""))
	}

	draft, err := flow.prepareDraft(req.Draft)
	if err != nil {
		return nil, err
	}

	if _, err := u.InitializeIfAbsent(ctx, p); err != nil {
		return nil, err
	}

	err = u.scoper.Scoped(p.ID).Run(ctx, func(ctx context.Context) error {
		rec, err := u.repo.GetForUpdate(ctx, p.ID)
		if err != nil {
			return err
		}
		if rec.IsCompleted {
			return apperror.Conflict("Onboarding already completed")
		}
		return u.repo.SaveDraft(ctx, p.ID, req.CurrentStep, draft)
	})
	if err != nil {
		return nil, storageError(err)
	}

	return &domain.OnboardingResult{
		Type:        domain.ResultDraftSaved,
		CurrentStep: req.CurrentStep,
		IsCompleted: false,
	}, nil
}

// ============================================================================
// Complete
// ============================================================================

func (u *onboardingUsecase) Complete(ctx context.Context, p domain.Principal, req *domain.CompleteRequest) (*domain.OnboardingResult, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.Validation("Invalid onboarding data", validation.FieldErrors(err, ""))
	}

	flow, err := u.flowFor(p)
	if err != nil {
		return nil, err
	}
	if req.OnboardingType != "" && req.OnboardingType != p.Role {
		return nil, apperror.Conflict("Onboarding type does not match your role")
	}

	writeProfile, err := flow.prepareProfile(p.ID, req.Draft)
	if err != nil {
		return nil, err
	}

	if _, err := u.InitializeIfAbsent(ctx, p); err != nil {
		return nil, err
	}

	// The row lock serializes concurrent completions; the profile primary key
	// still rejects a second insert if the lock is ever bypassed.
	err = u.scoper.Scoped(p.ID).Run(ctx, func(ctx context.Context) error {
		rec, err := u.repo.GetForUpdate(ctx, p.ID)
		if err != nil {
			return err
		}
		if rec.IsCompleted {
			return apperror.Conflict("Onboarding already completed")
		}

		exists, err := flow.profileExists(ctx, p.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperror.Conflict("Profile already exists")
		}

		if err := writeProfile(ctx); err != nil {
			if errors.Is(err, domain.ErrProfileExists) {
				return apperror.Conflict("Profile already exists")
			}
			return err
		}

		err = u.repo.MarkCompleted(ctx, p.ID, req.CurrentStep)
		if errors.Is(err, domain.ErrOnboardingCompleted) {
			return apperror.Conflict("Onboarding already completed")
		}
		return err
	})
	if err != nil {
		return nil, storageError(err)
	}

	return &domain.OnboardingResult{
		Type:        domain.ResultCompleted,
		CurrentStep: req.CurrentStep,
		IsCompleted: true,
	}, nil
}

func (u *onboardingUsecase) flowFor(p domain.Principal) (onboardingFlow, error) {
	flow, ok := u.flows[p.Role]
	if !ok {
		return nil, apperror.Forbidden("Onboarding is not available for this role")
	}
	return flow, nil
}
