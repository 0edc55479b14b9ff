package postgres

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartassess-backend/internal/domain"
	"smartassess-backend/pkg/database"
	"smartassess-backend/pkg/testhelpers"
)

func run(t *testing.T, db *testhelpers.TestDB, principalID string, fn database.TxFunc) error {
	t.Helper()
	return db.App.Scoped(principalID).Run(context.Background(), fn)
}

func TestRepositories_FailClosedWithoutScope(t *testing.T) {
	ctx := context.Background()

	_, err := NewOnboardingRepository().Get(ctx, "anyone")
	assert.ErrorIs(t, err, database.ErrNoTenantScope)

	_, err = NewTagRepository().EnsureTags(ctx, []string{"go"}, domain.TagTypeSkill)
	assert.ErrorIs(t, err, database.ErrNoTenantScope)

	_, err = NewUserRepository().GetByID(ctx, "anyone")
	assert.ErrorIs(t, err, database.ErrNoTenantScope)
}

func TestOnboardingRepository_RowSecurityIsolation(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := NewOnboardingRepository()

	alice := db.CreateUser(t, "candidate")
	bob := db.CreateUser(t, "candidate")

	require.NoError(t, run(t, db, alice, func(ctx context.Context) error {
		created, err := repo.InsertIfAbsent(ctx, alice)
		require.NoError(t, err)
		assert.True(t, created)
		return repo.SaveDraft(ctx, alice, 2, json.RawMessage(`{"domain":"fintech"}`))
	}))

	// Bob cannot see Alice's row even when asking for it by id.
	err := run(t, db, bob, func(ctx context.Context) error {
		_, err := repo.Get(ctx, alice)
		return err
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Bob cannot create a row on Alice's behalf.
	err = run(t, db, bob, func(ctx context.Context) error {
		_, err := repo.InsertIfAbsent(ctx, bob+"-spoof")
		return err
	})
	require.Error(t, err)

	// Nor overwrite it.
	err = run(t, db, bob, func(ctx context.Context) error {
		return repo.SaveDraft(ctx, alice, 3, json.RawMessage(`{}`))
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, run(t, db, alice, func(ctx context.Context) error {
		rec, err := repo.Get(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, 2, rec.CurrentStep)
		assert.JSONEq(t, `{"domain":"fintech"}`, string(rec.Draft))
		return nil
	}))
}

func TestOnboardingRepository_InsertIfAbsentIsIdempotent(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := NewOnboardingRepository()
	user := db.CreateUser(t, "recruiter")

	for i, want := range []bool{true, false} {
		require.NoError(t, run(t, db, user, func(ctx context.Context) error {
			created, err := repo.InsertIfAbsent(ctx, user)
			require.NoError(t, err)
			assert.Equal(t, want, created, "call %d", i)
			return nil
		}))
	}

	assert.Equal(t, 1, db.Count(t, `SELECT COUNT(*) FROM user_onboarding WHERE user_id = $1`, user))
}

func TestOnboardingRepository_MarkCompletedClearsDraft(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := NewOnboardingRepository()
	user := db.CreateUser(t, "candidate")

	require.NoError(t, run(t, db, user, func(ctx context.Context) error {
		if _, err := repo.InsertIfAbsent(ctx, user); err != nil {
			return err
		}
		if err := repo.SaveDraft(ctx, user, 3, json.RawMessage(`{"topSkills":["go"]}`)); err != nil {
			return err
		}
		return repo.MarkCompleted(ctx, user, 3)
	}))

	require.NoError(t, run(t, db, user, func(ctx context.Context) error {
		rec, err := repo.GetForUpdate(ctx, user)
		require.NoError(t, err)
		assert.True(t, rec.IsCompleted)
		assert.Nil(t, rec.Draft)

		assert.ErrorIs(t, repo.MarkCompleted(ctx, user, 3), domain.ErrOnboardingCompleted)
		return nil
	}))
}

func TestTagRepository_EnsureAndLinkReusesTags(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	tags := NewTagRepository()
	recruiters := NewRecruiterProfileRepository()

	first := db.CreateUser(t, "recruiter")
	second := db.CreateUser(t, "recruiter")

	for _, user := range []string{first, second} {
		user := user
		require.NoError(t, run(t, db, user, func(ctx context.Context) error {
			if err := recruiters.Create(ctx, &domain.RecruiterProfile{
				UserID: user, OrganizationName: "Acme", OrganizationSize: "11-50",
				Industry: "Software", CountryCode: "US", LLMProvider: "openai", LLMAPIKey: "ciphertext",
			}); err != nil {
				return err
			}
			return tags.EnsureAndLink(ctx, user, []string{"fintech", "ml", "fintech"}, domain.TagTypeDomain, recruiters.LinkTags)
		}))
	}

	assert.Equal(t, 2, db.Count(t, `SELECT COUNT(*) FROM tag WHERE type = 'domain' AND name IN ('fintech', 'ml')`))
	assert.Equal(t, 2, db.Count(t, `SELECT COUNT(*) FROM recruiter_profile_tag WHERE recruiter_user_id = $1`, first))
	assert.Equal(t, 2, db.Count(t, `SELECT COUNT(*) FROM recruiter_profile_tag WHERE recruiter_user_id = $1`, second))
}

func TestTagRepository_EmptyNamesIsNoop(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	user := db.CreateUser(t, "candidate")

	called := false
	require.NoError(t, run(t, db, user, func(ctx context.Context) error {
		return NewTagRepository().EnsureAndLink(ctx, user, []string{" "}, domain.TagTypeSkill,
			func(context.Context, string, []int64) error {
				called = true
				return nil
			})
	}))
	assert.False(t, called)
}

func TestTagRepository_SkipsNameRegisteredUnderOtherType(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	user := db.CreateUser(t, "candidate")
	repo := NewTagRepository()

	require.NoError(t, run(t, db, user, func(ctx context.Context) error {
		_, err := repo.EnsureTags(ctx, []string{"data-engineering"}, domain.TagTypeDomain)
		return err
	}))

	require.NoError(t, run(t, db, user, func(ctx context.Context) error {
		got, err := repo.EnsureTags(ctx, []string{"data-engineering", "sql"}, domain.TagTypeSkill)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "sql", got[0].Name)
		assert.Equal(t, domain.TagTypeSkill, got[0].Type)
		return nil
	}))
}

func TestCandidateRepository_CreateAndRead(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := NewCandidateRepository()
	user := db.CreateUser(t, "candidate")
	maxYears := 5

	require.NoError(t, run(t, db, user, func(ctx context.Context) error {
		if err := repo.Create(ctx, &domain.CandidateProfile{
			UserID: user, Domain: "fintech", PrimaryRole: "backend", HighestEducation: "bachelor",
			CurrentStatus: "employed", YearsOfExperienceMin: 3, YearsOfExperienceMax: &maxYears,
			ProfessionalBio: "Ten years of shipping things.", CountryCode: "DE",
		}); err != nil {
			return err
		}
		return NewTagRepository().EnsureAndLink(ctx, user, []string{"go", "postgres"}, domain.TagTypeSkill, repo.LinkTags)
	}))

	require.NoError(t, run(t, db, user, func(ctx context.Context) error {
		exists, err := repo.Exists(ctx, user)
		require.NoError(t, err)
		assert.True(t, exists)

		p, err := repo.GetByUserID(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, 3, p.YearsOfExperienceMin)
		require.NotNil(t, p.YearsOfExperienceMax)
		assert.Equal(t, 5, *p.YearsOfExperienceMax)
		assert.ElementsMatch(t, []string{"go", "postgres"}, p.TopSkills)
		assert.Nil(t, p.PortfolioURL)
		return nil
	}))

	err := run(t, db, user, func(ctx context.Context) error {
		return repo.Create(ctx, &domain.CandidateProfile{
			UserID: user, Domain: "x", PrimaryRole: "x", HighestEducation: "x",
			CurrentStatus: "x", ProfessionalBio: "a long enough biography", CountryCode: "DE",
		})
	})
	assert.ErrorIs(t, err, domain.ErrProfileExists)
}

func TestCandidateRepository_CannotCreateForAnotherPrincipal(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	alice := db.CreateUser(t, "candidate")
	mallory := db.CreateUser(t, "candidate")

	err := run(t, db, mallory, func(ctx context.Context) error {
		return NewCandidateRepository().Create(ctx, &domain.CandidateProfile{
			UserID: alice, Domain: "x", PrimaryRole: "x", HighestEducation: "x",
			CurrentStatus: "x", ProfessionalBio: "a long enough biography", CountryCode: "DE",
		})
	})
	require.Error(t, err)
	assert.True(t, database.IsInsufficientPrivilege(err))
	assert.Equal(t, 0, db.Count(t, `SELECT COUNT(*) FROM candidate_profile WHERE user_id = $1`, alice))
}

func TestRecruiterProfileRepository_UpdateOrganization(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := NewRecruiterProfileRepository()
	tags := NewTagRepository()
	user := db.CreateUser(t, "recruiter")
	site := "https://acme.io"

	require.NoError(t, run(t, db, user, func(ctx context.Context) error {
		if err := repo.Create(ctx, &domain.RecruiterProfile{
			UserID: user, OrganizationName: "Acme", OrganizationSize: "11-50",
			Industry: "Software", CountryCode: "US", OrganizationWebsite: &site,
			LLMProvider: "openai", LLMAPIKey: "ciphertext",
		}); err != nil {
			return err
		}
		if err := tags.EnsureAndLink(ctx, user, []string{"fintech", "ml"}, domain.TagTypeDomain, repo.LinkTags); err != nil {
			return err
		}
		return tags.EnsureAndLink(ctx, user, []string{"senior"}, domain.TagTypeExperienceLevel, repo.LinkTags)
	}))

	name, empty := "Acme Corp", ""
	require.NoError(t, run(t, db, user, func(ctx context.Context) error {
		if err := repo.UpdateOrganization(ctx, user, &domain.OrganizationUpdate{
			OrganizationName:    &name,
			OrganizationWebsite: &empty,
		}); err != nil {
			return err
		}
		if err := repo.UnlinkTagsOfType(ctx, user, domain.TagTypeDomain); err != nil {
			return err
		}
		return tags.EnsureAndLink(ctx, user, []string{"ai"}, domain.TagTypeDomain, repo.LinkTags)
	}))

	require.NoError(t, run(t, db, user, func(ctx context.Context) error {
		p, err := repo.GetByUserID(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", p.OrganizationName)
		assert.Nil(t, p.OrganizationWebsite)
		assert.Equal(t, "Software", p.Industry)
		assert.Equal(t, []string{"ai"}, p.HiringDomains)
		assert.Equal(t, []string{"senior"}, p.ExperienceLevels)
		return nil
	}))
}

func TestOnboardingRepository_ConcurrentLocksSerialize(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := NewOnboardingRepository()
	user := db.CreateUser(t, "candidate")

	require.NoError(t, run(t, db, user, func(ctx context.Context) error {
		_, err := repo.InsertIfAbsent(ctx, user)
		return err
	}))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = run(t, db, user, func(ctx context.Context) error {
				rec, err := repo.GetForUpdate(ctx, user)
				if err != nil {
					return err
				}
				if rec.IsCompleted {
					return domain.ErrOnboardingCompleted
				}
				return repo.MarkCompleted(ctx, user, 3)
			})
		}(i)
	}
	wg.Wait()

	var failures int
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, domain.ErrOnboardingCompleted)
			failures++
		}
	}
	assert.Equal(t, 1, failures)
}
