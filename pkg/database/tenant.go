package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// CurrentUserSetting is the transaction-local setting read by the row-security
// policies: current_setting('app.current_user_id', true).
const CurrentUserSetting = "app.current_user_id"

var (
	// ErrNoPrincipal is returned when a scope is requested for an empty principal id.
	ErrNoPrincipal = errors.New("tenant scope requires a principal id")
	// ErrScopeNotEstablished is returned when the principal marker could not be set.
	ErrScopeNotEstablished = errors.New("failed to establish tenant scope")
)

// TxFunc runs inside a tenant transaction. The transaction is reachable through
// TxFromContext(ctx).
type TxFunc func(ctx context.Context) error

// UnitOfWork runs a function inside one transaction bound to a principal.
type UnitOfWork interface {
	Run(ctx context.Context, fn TxFunc) error
}

// TenantScoper hands out units of work for a principal.
type TenantScoper interface {
	Scoped(principalID string) UnitOfWork
}

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type tenantUnit struct {
	beginner    TxBeginner
	principalID string
}

// Scoped returns a unit of work whose statements are evaluated by the storage
// engine as principalID.
func (db *DB) Scoped(principalID string) UnitOfWork {
	return NewUnitOfWork(db.Pool, principalID)
}

func NewUnitOfWork(beginner TxBeginner, principalID string) UnitOfWork {
	return &tenantUnit{beginner: beginner, principalID: principalID}
}

// Run opens a transaction, sets the principal marker, and runs fn. Any error or
// panic from fn rolls the whole transaction back. If the marker cannot be set
// fn is never called.
func (u *tenantUnit) Run(ctx context.Context, fn TxFunc) (err error) {
	if u.principalID == "" {
		return ErrNoPrincipal
	}

	tx, err := u.beginner.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		// Rollback uses a fresh context so a cancelled request still releases the connection.
		_ = tx.Rollback(context.WithoutCancel(ctx))
		if p := recover(); p != nil {
			panic(p)
		}
	}()

	if _, err := tx.Exec(ctx, "SELECT set_config($1, $2, true)", CurrentUserSetting, u.principalID); err != nil {
		return fmt.Errorf("%w: %v", ErrScopeNotEstablished, err)
	}

	scoped := withTenantTx(ctx, &TenantTx{Tx: tx, PrincipalID: u.principalID})
	if err := fn(scoped); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true
	return nil
}
