package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

type contextKey string

const tenantTxKey contextKey = "tenantTx"

// ErrNoTenantScope is returned by repositories called outside UnitOfWork.Run.
var ErrNoTenantScope = errors.New("no tenant scope in context")

// TenantTx is a transaction that has app.current_user_id set.
type TenantTx struct {
	Tx          pgx.Tx
	PrincipalID string
}

func withTenantTx(ctx context.Context, ttx *TenantTx) context.Context {
	return context.WithValue(ctx, tenantTxKey, ttx)
}

// TxFromContext returns the tenant transaction opened by UnitOfWork.Run.
func TxFromContext(ctx context.Context) (*TenantTx, error) {
	ttx, ok := ctx.Value(tenantTxKey).(*TenantTx)
	if !ok || ttx == nil || ttx.Tx == nil {
		return nil, ErrNoTenantScope
	}
	return ttx, nil
}
