package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartassess-backend/internal/domain"
	"smartassess-backend/internal/repository/postgres"
	"smartassess-backend/internal/usecase"
	"smartassess-backend/pkg/apperror"
	"smartassess-backend/pkg/crypto"
	"smartassess-backend/pkg/testhelpers"
	"smartassess-backend/pkg/validation"
)

func newIntegrationUsecases(t *testing.T, db *testhelpers.TestDB) (domain.OnboardingUsecase, domain.RecruiterProfileUsecase) {
	t.Helper()
	enc, err := crypto.NewCredentialEncryptor("integration-test-secret-0123456789abcdef")
	require.NoError(t, err)

	v := validation.New()
	tags := postgres.NewTagRepository()
	recruiters := postgres.NewRecruiterProfileRepository()
	onboarding := usecase.NewOnboardingUsecase(db.App, postgres.NewOnboardingRepository(), postgres.NewCandidateRepository(), recruiters, tags, enc, v)
	profiles := usecase.NewRecruiterProfileUsecase(db.App, recruiters, tags, enc, v)
	return onboarding, profiles
}

func TestOnboardingIntegration_ConcurrentCompleteCreatesOneProfile(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	uc, _ := newIntegrationUsecases(t, db)
	p := domain.Principal{ID: db.CreateUser(t, "candidate"), Role: domain.RoleCandidate}

	const workers = 5
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Complete(context.Background(), p, &domain.CompleteRequest{CurrentStep: 3, Draft: validCandidateDraft()})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, apperror.IsCode(err, http.StatusConflict), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, db.Count(t, `SELECT COUNT(*) FROM candidate_profile WHERE user_id = $1`, p.ID))
	assert.Equal(t, 2, db.Count(t, `SELECT COUNT(*) FROM candidate_profile_tag WHERE candidate_user_id = $1`, p.ID))
	assert.Equal(t, 1, db.Count(t, `SELECT COUNT(*) FROM user_onboarding WHERE user_id = $1 AND is_completed AND draft IS NULL`, p.ID))
}

func TestOnboardingIntegration_DraftThenComplete(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	uc, _ := newIntegrationUsecases(t, db)
	ctx := context.Background()
	p := domain.Principal{ID: db.CreateUser(t, "candidate"), Role: domain.RoleCandidate}

	_, err := uc.SaveDraft(ctx, p, &domain.SaveDraftRequest{
		OnboardingType: domain.RoleCandidate,
		CurrentStep:    2,
		Draft:          json.RawMessage(`{"topSkills":["Go"],"yearsOfExperience":"10+"}`),
	})
	require.NoError(t, err)

	status, err := uc.GetStatus(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, domain.OnboardingInProgress, status.Status)
	assert.JSONEq(t, `{"topSkills":["Go"],"yearsOfExperience":"10+"}`, string(status.Draft))

	_, err = uc.Complete(ctx, p, &domain.CompleteRequest{CurrentStep: 3, Draft: validCandidateDraft()})
	require.NoError(t, err)

	status, err = uc.GetStatus(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, domain.OnboardingCompleted, status.Status)
}

func TestOnboardingIntegration_SecondCompleteLeavesProfileUntouched(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	uc, _ := newIntegrationUsecases(t, db)
	p := domain.Principal{ID: db.CreateUser(t, "recruiter"), Role: domain.RoleRecruiter}

	_, err := uc.Complete(context.Background(), p, &domain.CompleteRequest{CurrentStep: 3, Draft: validRecruiterDraft()})
	require.NoError(t, err)

	_, err = uc.Complete(context.Background(), p, &domain.CompleteRequest{CurrentStep: 3, Draft: validRecruiterDraft()})
	assert.True(t, apperror.IsCode(err, http.StatusConflict))
	assert.Equal(t, 1, db.Count(t, `SELECT COUNT(*) FROM recruiter_profile WHERE user_id = $1`, p.ID))
	assert.Equal(t, 3, db.Count(t, `SELECT COUNT(*) FROM recruiter_profile_tag WHERE recruiter_user_id = $1`, p.ID))
}

func TestOnboardingIntegration_CredentialStoredEncrypted(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	uc, profiles := newIntegrationUsecases(t, db)
	ctx := context.Background()
	p := domain.Principal{ID: db.CreateUser(t, "recruiter"), Role: domain.RoleRecruiter}

	_, err := uc.Complete(ctx, p, &domain.CompleteRequest{CurrentStep: 3, Draft: validRecruiterDraft()})
	require.NoError(t, err)

	assert.Zero(t, db.Count(t, `SELECT COUNT(*) FROM recruiter_profile WHERE user_id = $1 AND llm_api_key LIKE '%sk-test%'`, p.ID))

	website := ""
	profile, err := profiles.UpdateOrganization(ctx, p, &domain.OrganizationUpdate{
		OrganizationWebsite: &website,
		ExperienceLevels:    []string{"Junior", "Mid"},
	})
	require.NoError(t, err)
	assert.Nil(t, profile.OrganizationWebsite)
	assert.ElementsMatch(t, []string{"Junior", "Mid"}, profile.ExperienceLevels)
	assert.ElementsMatch(t, []string{"Backend", "Data"}, profile.HiringDomains)
}
