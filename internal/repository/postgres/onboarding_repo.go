package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"smartassess-backend/internal/domain"
)

type onboardingRepo struct{}

func NewOnboardingRepository() domain.OnboardingRepository {
	return &onboardingRepo{}
}

const selectOnboarding = `
	SELECT user_id, is_completed, current_step, draft, created_at, updated_at
	FROM user_onboarding
	WHERE user_id = $1`

func (r *onboardingRepo) Get(ctx context.Context, userID string) (*domain.OnboardingRecord, error) {
	return r.get(ctx, selectOnboarding, userID)
}

func (r *onboardingRepo) GetForUpdate(ctx context.Context, userID string) (*domain.OnboardingRecord, error) {
	return r.get(ctx, selectOnboarding+` FOR UPDATE`, userID)
}

func (r *onboardingRepo) get(ctx context.Context, query, userID string) (*domain.OnboardingRecord, error) {
	tx, err := txFrom(ctx)
	if err != nil {
		return nil, err
	}

	var rec domain.OnboardingRecord
	var draft []byte
	err = tx.QueryRow(ctx, query, userID).Scan(
		&rec.UserID, &rec.IsCompleted, &rec.CurrentStep, &draft, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get onboarding: %w", err)
	}
	if len(draft) > 0 {
		rec.Draft = json.RawMessage(draft)
	}
	return &rec, nil
}

func (r *onboardingRepo) InsertIfAbsent(ctx context.Context, userID string) (bool, error) {
	tx, err := txFrom(ctx)
	if err != nil {
		return false, err
	}

	query := `
		INSERT INTO user_onboarding (user_id, current_step, is_completed, draft)
		VALUES ($1, $2, FALSE, NULL)
		ON CONFLICT (user_id) DO NOTHING`
	tag, err := tx.Exec(ctx, query, userID, domain.MinOnboardingStep)
	if err != nil {
		return false, fmt.Errorf("insert onboarding: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *onboardingRepo) SaveDraft(ctx context.Context, userID string, step int, draft json.RawMessage) error {
	tx, err := txFrom(ctx)
	if err != nil {
		return err
	}

	query := `
		UPDATE user_onboarding
		SET current_step = $2, draft = $3::jsonb
		WHERE user_id = $1 AND is_completed = FALSE`
	tag, err := tx.Exec(ctx, query, userID, step, jsonbArg(draft))
	if err != nil {
		return fmt.Errorf("save onboarding draft: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *onboardingRepo) MarkCompleted(ctx context.Context, userID string, step int) error {
	tx, err := txFrom(ctx)
	if err != nil {
		return err
	}

	query := `
		UPDATE user_onboarding
		SET is_completed = TRUE, current_step = $2, draft = NULL
		WHERE user_id = $1 AND is_completed = FALSE`
	tag, err := tx.Exec(ctx, query, userID, step)
	if err != nil {
		return fmt.Errorf("complete onboarding: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOnboardingCompleted
	}
	return nil
}
