package domain

import (
	"context"
	"strings"
)

type TagType string

const (
	TagTypeSkill           TagType = "skill"
	TagTypeDomain          TagType = "domain"
	TagTypeExperienceLevel TagType = "experience_level"
)

type Tag struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Type TagType `json:"type"`
}

// LinkInserter writes association rows between a profile and tags. It runs in
// the same tenant transaction as the caller.
type LinkInserter func(ctx context.Context, profileID string, tagIDs []int64) error

// TagRepository is the shared tag vocabulary. Tags are never updated or
// deleted by the application.
type TagRepository interface {
	// EnsureAndLink inserts missing names, re-reads the canonical ids for
	// (tagType, names) and passes them to link. Empty names is a no-op.
	EnsureAndLink(ctx context.Context, profileID string, names []string, tagType TagType, link LinkInserter) error
	EnsureTags(ctx context.Context, names []string, tagType TagType) ([]Tag, error)
	FindByNames(ctx context.Context, names []string, tagType TagType) ([]Tag, error)
}

// NormalizeTagNames trims names, drops blanks and removes duplicates while
// keeping first-seen order.
func NormalizeTagNames(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
