package usecase

import (
	"errors"

	"go.uber.org/zap"

	"smartassess-backend/pkg/apperror"
	"smartassess-backend/pkg/database"
	"smartassess-backend/pkg/logger"
)

// storageError maps errors leaving a unit of work. AppErrors raised inside the
// transaction pass through unchanged.
func storageError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperror.As(err); ok {
		return err
	}
	switch {
	case errors.Is(err, database.ErrNoPrincipal):
		return apperror.Unauthorized("User not authenticated")
	case database.IsInsufficientPrivilege(err):
		logger.Log.Warn("row security rejected statement", zap.Error(err))
		return apperror.Forbidden("Access denied")
	}
	return apperror.Internal(err)
}
