package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"smartassess-backend/internal/domain"
	"smartassess-backend/pkg/database"
)

type candidateRepository struct{}

func NewCandidateRepository() domain.CandidateRepository {
	return &candidateRepository{}
}

func (r *candidateRepository) Exists(ctx context.Context, userID string) (bool, error) {
	tx, err := txFrom(ctx)
	if err != nil {
		return false, err
	}

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM candidate_profile WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check candidate profile: %w", err)
	}
	return exists, nil
}

func (r *candidateRepository) Create(ctx context.Context, p *domain.CandidateProfile) error {
	tx, err := txFrom(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO candidate_profile (
			user_id, domain, primary_role, highest_education, current_status,
			years_of_experience_min, years_of_experience_max, professional_bio,
			country_code, portfolio_url, github_url, linkedin_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`

	err = tx.QueryRow(ctx, query,
		p.UserID, p.Domain, p.PrimaryRole, p.HighestEducation, p.CurrentStatus,
		p.YearsOfExperienceMin, p.YearsOfExperienceMax, p.ProfessionalBio,
		p.CountryCode, p.PortfolioURL, p.GithubURL, p.LinkedinURL,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrProfileExists
		}
		return fmt.Errorf("insert candidate profile: %w", err)
	}
	return nil
}

// LinkTags relies on the composite primary key; it does not skip links that
// already exist.
func (r *candidateRepository) LinkTags(ctx context.Context, profileID string, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	tx, err := txFrom(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO candidate_profile_tag (candidate_user_id, tag_id)
		SELECT $1, unnest($2::int[])`
	if _, err := tx.Exec(ctx, query, profileID, tagIDs); err != nil {
		return fmt.Errorf("insert candidate tags: %w", err)
	}
	return nil
}

func (r *candidateRepository) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	tx, err := txFrom(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			user_id, domain, primary_role, highest_education, current_status,
			years_of_experience_min, years_of_experience_max, professional_bio,
			country_code, portfolio_url, github_url, linkedin_url,
			created_at, updated_at
		FROM candidate_profile
		WHERE user_id = $1`

	var p domain.CandidateProfile
	err = tx.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.Domain, &p.PrimaryRole, &p.HighestEducation, &p.CurrentStatus,
		&p.YearsOfExperienceMin, &p.YearsOfExperienceMax, &p.ProfessionalBio,
		&p.CountryCode, &p.PortfolioURL, &p.GithubURL, &p.LinkedinURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get candidate profile: %w", err)
	}

	skills, err := r.skillNames(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	p.TopSkills = skills
	return &p, nil
}

func (r *candidateRepository) skillNames(ctx context.Context, tx pgx.Tx, userID string) ([]string, error) {
	query := `
		SELECT t.name
		FROM candidate_profile_tag pt
		JOIN tag t ON t.id = pt.tag_id
		WHERE pt.candidate_user_id = $1 AND t.type = $2
		ORDER BY pt.created_at, t.id`

	rows, err := tx.Query(ctx, query, userID, string(domain.TagTypeSkill))
	if err != nil {
		return nil, fmt.Errorf("get candidate skills: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan candidate skills: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
