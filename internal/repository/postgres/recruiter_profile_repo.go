package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"smartassess-backend/internal/domain"
	"smartassess-backend/pkg/database"
)

type recruiterProfileRepo struct{}

// NewRecruiterProfileRepository creates a new recruiter profile repository
func NewRecruiterProfileRepository() domain.RecruiterProfileRepository {
	return &recruiterProfileRepo{}
}

func (r *recruiterProfileRepo) Exists(ctx context.Context, userID string) (bool, error) {
	tx, err := txFrom(ctx)
	if err != nil {
		return false, err
	}

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM recruiter_profile WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check recruiter profile: %w", err)
	}
	return exists, nil
}

// Create inserts the profile. LLMAPIKey must already be ciphertext.
func (r *recruiterProfileRepo) Create(ctx context.Context, p *domain.RecruiterProfile) error {
	tx, err := txFrom(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO recruiter_profile (
			user_id, organization_name, organization_size, industry, country_code,
			organization_website, llm_provider, llm_api_key, default_model
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	err = tx.QueryRow(ctx, query,
		p.UserID, p.OrganizationName, p.OrganizationSize, p.Industry, p.CountryCode,
		p.OrganizationWebsite, p.LLMProvider, p.LLMAPIKey, p.DefaultModel,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrProfileExists
		}
		return fmt.Errorf("insert recruiter profile: %w", err)
	}
	return nil
}

func (r *recruiterProfileRepo) LinkTags(ctx context.Context, profileID string, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	tx, err := txFrom(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO recruiter_profile_tag (recruiter_user_id, tag_id)
		SELECT $1, unnest($2::int[])`
	if _, err := tx.Exec(ctx, query, profileID, tagIDs); err != nil {
		return fmt.Errorf("insert recruiter tags: %w", err)
	}
	return nil
}

func (r *recruiterProfileRepo) UnlinkTagsOfType(ctx context.Context, userID string, tagType domain.TagType) error {
	tx, err := txFrom(ctx)
	if err != nil {
		return err
	}

	query := `
		DELETE FROM recruiter_profile_tag pt
		USING tag t
		WHERE pt.tag_id = t.id AND pt.recruiter_user_id = $1 AND t.type = $2`
	if _, err := tx.Exec(ctx, query, userID, string(tagType)); err != nil {
		return fmt.Errorf("delete recruiter %s tags: %w", tagType, err)
	}
	return nil
}

// UpdateOrganization builds the SET clause from the present fields only.
func (r *recruiterProfileRepo) UpdateOrganization(ctx context.Context, userID string, u *domain.OrganizationUpdate) error {
	if !u.HasScalars() {
		return nil
	}
	tx, err := txFrom(ctx)
	if err != nil {
		return err
	}

	sets := make([]string, 0, 8)
	args := []any{userID}
	add := func(column string, value any, nullIfEmpty bool) {
		args = append(args, value)
		placeholder := fmt.Sprintf("$%d", len(args))
		if nullIfEmpty {
			placeholder = fmt.Sprintf("NULLIF($%d::text, '')", len(args))
		}
		sets = append(sets, column+" = "+placeholder)
	}

	if u.OrganizationName != nil {
		add("organization_name", *u.OrganizationName, false)
	}
	if u.OrganizationSize != nil {
		add("organization_size", *u.OrganizationSize, false)
	}
	if u.Industry != nil {
		add("industry", *u.Industry, false)
	}
	if u.CountryCode != nil {
		add("country_code", *u.CountryCode, false)
	}
	if u.OrganizationWebsite != nil {
		add("organization_website", *u.OrganizationWebsite, true)
	}
	if u.LLMProvider != nil {
		add("llm_provider", *u.LLMProvider, false)
	}
	if u.LLMAPIKey != nil {
		add("llm_api_key", *u.LLMAPIKey, false)
	}
	if u.DefaultModel != nil {
		add("default_model", *u.DefaultModel, true)
	}

	query := `UPDATE recruiter_profile SET ` + strings.Join(sets, ", ") + ` WHERE user_id = $1`
	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update recruiter organization: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *recruiterProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.RecruiterProfile, error) {
	tx, err := txFrom(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT user_id, organization_name, organization_size, industry, country_code,
		       organization_website, llm_provider, llm_api_key, default_model,
		       created_at, updated_at
		FROM recruiter_profile
		WHERE user_id = $1`

	var p domain.RecruiterProfile
	err = tx.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.OrganizationName, &p.OrganizationSize, &p.Industry, &p.CountryCode,
		&p.OrganizationWebsite, &p.LLMProvider, &p.LLMAPIKey, &p.DefaultModel,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get recruiter profile: %w", err)
	}

	tagQuery := `
		SELECT t.name, t.type
		FROM recruiter_profile_tag pt
		JOIN tag t ON t.id = pt.tag_id
		WHERE pt.recruiter_user_id = $1
		ORDER BY pt.created_at, t.id`
	rows, err := tx.Query(ctx, tagQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("get recruiter tags: %w", err)
	}
	defer rows.Close()

	p.HiringDomains = []string{}
	p.ExperienceLevels = []string{}
	for rows.Next() {
		var name string
		var tagType domain.TagType
		if err := rows.Scan(&name, &tagType); err != nil {
			return nil, fmt.Errorf("scan recruiter tag: %w", err)
		}
		switch tagType {
		case domain.TagTypeDomain:
			p.HiringDomains = append(p.HiringDomains, name)
		case domain.TagTypeExperienceLevel:
			p.ExperienceLevels = append(p.ExperienceLevels, name)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recruiter tags: %w", err)
	}
	return &p, nil
}
