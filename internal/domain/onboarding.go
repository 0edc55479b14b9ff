package domain

import (
	"context"
	"encoding/json"
	"time"
)

// ============================================================================
// Onboarding Record
// ============================================================================

type OnboardingState string

const (
	OnboardingNotStarted OnboardingState = "not_started"
	OnboardingInProgress OnboardingState = "in_progress"
	OnboardingCompleted  OnboardingState = "completed"
)

const (
	MinOnboardingStep = 1
	MaxOnboardingStep = 3
)

// OnboardingRecord is the per-principal progress row. A completed record
// never carries a draft.
type OnboardingRecord struct {
	UserID      string          `json:"userId"`
	IsCompleted bool            `json:"isCompleted"`
	CurrentStep int             `json:"currentStep"`
	Draft       json.RawMessage `json:"draft"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (r *OnboardingRecord) State() OnboardingState {
	switch {
	case r == nil:
		return OnboardingNotStarted
	case r.IsCompleted:
		return OnboardingCompleted
	default:
		return OnboardingInProgress
	}
}

// ============================================================================
// Onboarding Data Transfer Objects
// ============================================================================

// OnboardingStatus is the GET /onboarding projection. CurrentStep and Draft
// are null unless the record is in progress.
type OnboardingStatus struct {
	Status         OnboardingState `json:"status"`
	OnboardingType Role            `json:"onboardingType"`
	CurrentStep    *int            `json:"currentStep"`
	Draft          json.RawMessage `json:"draft" swaggertype:"object"`
}

// SaveDraftRequest is the PATCH /onboarding payload. Draft is decoded with
// the caller's role-specific partial shape.
type SaveDraftRequest struct {
	OnboardingType Role            `json:"onboardingType" validate:"required"`
	CurrentStep    int             `json:"currentStep" validate:"min=1,max=3"`
	IsCompleted    *bool           `json:"isCompleted,omitempty"`
	Draft          json.RawMessage `json:"draft" swaggertype:"object"`
}

// CompleteRequest is the POST /onboarding/complete payload. Draft must satisfy
// the role's full shape.
type CompleteRequest struct {
	OnboardingType Role            `json:"onboardingType,omitempty"`
	CurrentStep    int             `json:"currentStep" validate:"min=1,max=3"`
	Draft          json.RawMessage `json:"draft" swaggertype:"object"`
}

type OnboardingResultType string

const (
	ResultInitialized OnboardingResultType = "initialized"
	ResultDraftSaved  OnboardingResultType = "draft_saved"
	ResultCompleted   OnboardingResultType = "completed"
)

type OnboardingResult struct {
	Type        OnboardingResultType `json:"type"`
	CurrentStep int                  `json:"currentStep"`
	IsCompleted bool                 `json:"isCompleted"`
}

// ============================================================================
// Repository Interface
// ============================================================================

// OnboardingRepository methods must be called inside a tenant unit of work.
type OnboardingRepository interface {
	// Get returns ErrNotFound when the principal has no record.
	Get(ctx context.Context, userID string) (*OnboardingRecord, error)
	// GetForUpdate locks the row until the transaction ends.
	GetForUpdate(ctx context.Context, userID string) (*OnboardingRecord, error)
	// InsertIfAbsent creates {step 1, not completed, no draft}; false when a
	// record already existed.
	InsertIfAbsent(ctx context.Context, userID string) (bool, error)
	SaveDraft(ctx context.Context, userID string, step int, draft json.RawMessage) error
	MarkCompleted(ctx context.Context, userID string, step int) error
}

// ============================================================================
// Usecase Interface
// ============================================================================

type OnboardingUsecase interface {
	GetStatus(ctx context.Context, p Principal) (*OnboardingStatus, error)
	// InitializeIfAbsent is the idempotent bootstrap run before every mutation.
	InitializeIfAbsent(ctx context.Context, p Principal) (bool, error)
	SaveDraft(ctx context.Context, p Principal, req *SaveDraftRequest) (*OnboardingResult, error)
	Complete(ctx context.Context, p Principal, req *CompleteRequest) (*OnboardingResult, error)
}
