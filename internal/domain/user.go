package domain

import (
	"context"
	"time"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleCandidate, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

// Principal is the authenticated caller. Every data access is scoped to ID.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role"`
}

// User is a row of the users table, owned by the auth subsystem.
type User struct {
	ID        string    `json:"id"` // Supabase UUID
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserRepository is read-only: users are provisioned by the auth subsystem.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
}

// PrincipalCache memoizes principal lookups. Get returns (nil, nil) on a miss.
type PrincipalCache interface {
	Get(ctx context.Context, id string) (*Principal, error)
	Set(ctx context.Context, p *Principal) error
}

type AuthUsecase interface {
	// ResolvePrincipal maps a verified token subject to a principal with the
	// role stored in the users table.
	ResolvePrincipal(ctx context.Context, subject, email string) (*Principal, error)
}
