package postgres

import (
	"context"
	"fmt"

	"smartassess-backend/internal/domain"
)

type tagRepo struct{}

func NewTagRepository() domain.TagRepository {
	return &tagRepo{}
}

// EnsureAndLink inserts missing tags and then re-selects by (type, name): the
// insert skips conflicts silently, so its result cannot supply the ids. A name
// already registered under another type is not linked.
func (r *tagRepo) EnsureAndLink(ctx context.Context, profileID string, names []string, tagType domain.TagType, link domain.LinkInserter) error {
	tags, err := r.EnsureTags(ctx, names, tagType)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		return nil
	}

	ids := make([]int64, len(tags))
	for i, t := range tags {
		ids[i] = t.ID
	}
	if err := link(ctx, profileID, ids); err != nil {
		return fmt.Errorf("link %s tags: %w", tagType, err)
	}
	return nil
}

func (r *tagRepo) EnsureTags(ctx context.Context, names []string, tagType domain.TagType) ([]domain.Tag, error) {
	names = domain.NormalizeTagNames(names)
	if len(names) == 0 {
		return nil, nil
	}

	tx, err := txFrom(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO tag (name, type)
		SELECT unnest($1::text[]), $2::text
		ON CONFLICT (name) DO NOTHING`
	if _, err := tx.Exec(ctx, query, names, string(tagType)); err != nil {
		return nil, fmt.Errorf("insert tags: %w", err)
	}

	return r.FindByNames(ctx, names, tagType)
}

func (r *tagRepo) FindByNames(ctx context.Context, names []string, tagType domain.TagType) ([]domain.Tag, error) {
	names = domain.NormalizeTagNames(names)
	if len(names) == 0 {
		return nil, nil
	}

	tx, err := txFrom(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, name, type FROM tag WHERE type = $1 AND name = ANY($2::text[]) ORDER BY id`
	rows, err := tx.Query(ctx, query, string(tagType), names)
	if err != nil {
		return nil, fmt.Errorf("find tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Type); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return tags, nil
}
