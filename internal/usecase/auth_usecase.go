package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"smartassess-backend/internal/domain"
	"smartassess-backend/pkg/apperror"
	"smartassess-backend/pkg/database"
	"smartassess-backend/pkg/logger"
)

type authUsecase struct {
	scoper   database.TenantScoper
	userRepo domain.UserRepository
	cache    domain.PrincipalCache
}

// NewAuthUsecase creates the principal resolver. cache may be nil.
func NewAuthUsecase(scoper database.TenantScoper, userRepo domain.UserRepository, cache domain.PrincipalCache) domain.AuthUsecase {
	return &authUsecase{scoper: scoper, userRepo: userRepo, cache: cache}
}

// ResolvePrincipal loads the caller's role. Users are provisioned by the auth
// subsystem, so an unknown subject is rejected rather than created.
func (u *authUsecase) ResolvePrincipal(ctx context.Context, subject, email string) (*domain.Principal, error) {
	if _, err := uuid.Parse(subject); err != nil {
		return nil, apperror.Unauthorized("Invalid token subject")
	}

	if u.cache != nil {
		cached, err := u.cache.Get(ctx, subject)
		if err != nil {
			logger.Log.Warn("principal cache read failed", zap.String("user_id", subject), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	var user *domain.User
	err := u.scoper.Scoped(subject).Run(ctx, func(ctx context.Context) error {
		var err error
		user, err = u.userRepo.GetByID(ctx, subject)
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.Unauthorized("User not found")
		}
		return err
	})
	if err != nil {
		return nil, storageError(err)
	}
	if !user.Role.IsValid() {
		logger.Log.Warn("user has unknown role", zap.String("user_id", subject), zap.String("role", string(user.Role)))
		return nil, apperror.Forbidden("Unknown role")
	}

	if email == "" {
		email = user.Email
	}
	p := &domain.Principal{ID: user.ID, Email: email, Role: user.Role}

	if u.cache != nil {
		if err := u.cache.Set(ctx, p); err != nil {
			logger.Log.Warn("principal cache write failed", zap.String("user_id", subject), zap.Error(err))
		}
	}
	return p, nil
}
