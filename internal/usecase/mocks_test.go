package usecase_test

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/stretchr/testify/mock"

	"smartassess-backend/internal/domain"
	"smartassess-backend/pkg/database"
)

// ============================================================================
// Tenant scope
// ============================================================================

// fakeScoper runs units of work without a database and records the principal
// of every scope it opened.
type fakeScoper struct {
	mu     sync.Mutex
	scopes []string
}

func (s *fakeScoper) Scoped(principalID string) database.UnitOfWork {
	s.mu.Lock()
	s.scopes = append(s.scopes, principalID)
	s.mu.Unlock()
	return fakeUnit{principalID: principalID}
}

func (s *fakeScoper) Scopes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.scopes...)
}

type fakeUnit struct {
	principalID string
}

func (u fakeUnit) Run(ctx context.Context, fn database.TxFunc) error {
	if u.principalID == "" {
		return database.ErrNoPrincipal
	}
	return fn(ctx)
}

// ============================================================================
// Onboarding repository
// ============================================================================

// memOnboardingRepo mirrors the guarded updates of the postgres repository.
type memOnboardingRepo struct {
	mu      sync.Mutex
	records map[string]*domain.OnboardingRecord
	inserts int
}

func newMemOnboardingRepo() *memOnboardingRepo {
	return &memOnboardingRepo{records: map[string]*domain.OnboardingRecord{}}
}

func (r *memOnboardingRepo) Get(_ context.Context, userID string) (*domain.OnboardingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *memOnboardingRepo) GetForUpdate(ctx context.Context, userID string) (*domain.OnboardingRecord, error) {
	return r.Get(ctx, userID)
}

func (r *memOnboardingRepo) InsertIfAbsent(_ context.Context, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[userID]; ok {
		return false, nil
	}
	r.inserts++
	r.records[userID] = &domain.OnboardingRecord{UserID: userID, CurrentStep: domain.MinOnboardingStep}
	return true, nil
}

func (r *memOnboardingRepo) SaveDraft(_ context.Context, userID string, step int, draft json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[userID]
	if !ok || rec.IsCompleted {
		return domain.ErrNotFound
	}
	rec.CurrentStep = step
	rec.Draft = draft
	return nil
}

func (r *memOnboardingRepo) MarkCompleted(_ context.Context, userID string, step int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[userID]
	if !ok || rec.IsCompleted {
		return domain.ErrOnboardingCompleted
	}
	rec.IsCompleted = true
	rec.CurrentStep = step
	rec.Draft = nil
	return nil
}

func (r *memOnboardingRepo) record(userID string) *domain.OnboardingRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records[userID]
}

// ============================================================================
// Mock Repositories
// ============================================================================

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Exists(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCandidateRepo) Create(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockCandidateRepo) LinkTags(ctx context.Context, profileID string, tagIDs []int64) error {
	return m.Called(ctx, profileID, tagIDs).Error(0)
}

func (m *MockCandidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

type MockRecruiterRepo struct {
	mock.Mock
}

func (m *MockRecruiterRepo) Exists(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecruiterRepo) Create(ctx context.Context, profile *domain.RecruiterProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockRecruiterRepo) LinkTags(ctx context.Context, profileID string, tagIDs []int64) error {
	return m.Called(ctx, profileID, tagIDs).Error(0)
}

func (m *MockRecruiterRepo) UnlinkTagsOfType(ctx context.Context, userID string, tagType domain.TagType) error {
	return m.Called(ctx, userID, tagType).Error(0)
}

func (m *MockRecruiterRepo) UpdateOrganization(ctx context.Context, userID string, u *domain.OrganizationUpdate) error {
	return m.Called(ctx, userID, u).Error(0)
}

func (m *MockRecruiterRepo) GetByUserID(ctx context.Context, userID string) (*domain.RecruiterProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruiterProfile), args.Error(1)
}

// MockTagRepo leaves the link callback out of the recorded arguments.
type MockTagRepo struct {
	mock.Mock
}

func (m *MockTagRepo) EnsureAndLink(ctx context.Context, profileID string, names []string, tagType domain.TagType, link domain.LinkInserter) error {
	return m.Called(ctx, profileID, names, tagType).Error(0)
}

func (m *MockTagRepo) EnsureTags(ctx context.Context, names []string, tagType domain.TagType) ([]domain.Tag, error) {
	args := m.Called(ctx, names, tagType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockTagRepo) FindByNames(ctx context.Context, names []string, tagType domain.TagType) ([]domain.Tag, error) {
	args := m.Called(ctx, names, tagType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockPrincipalCache struct {
	mock.Mock
}

func (m *MockPrincipalCache) Get(ctx context.Context, id string) (*domain.Principal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Principal), args.Error(1)
}

func (m *MockPrincipalCache) Set(ctx context.Context, p *domain.Principal) error {
	return m.Called(ctx, p).Error(0)
}

// prefixEncryptor marks values as sealed without real cryptography.
type prefixEncryptor struct{}

func (prefixEncryptor) Encrypt(plaintext string) (string, error) {
	return "sealed:" + plaintext, nil
}
