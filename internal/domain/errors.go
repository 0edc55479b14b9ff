package domain

import "errors"

// Sentinels returned by repositories. Usecases translate them into
// apperror values where they are detected.
var (
	ErrNotFound            = errors.New("record not found")
	ErrProfileExists       = errors.New("profile already exists")
	ErrOnboardingCompleted = errors.New("onboarding already completed")
)
