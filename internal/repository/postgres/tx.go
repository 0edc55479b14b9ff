package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"smartassess-backend/pkg/database"
)

// txFrom returns the tenant transaction for ctx. Repositories have no
// unscoped path: without a scope they fail before issuing any statement.
func txFrom(ctx context.Context) (pgx.Tx, error) {
	ttx, err := database.TxFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return ttx.Tx, nil
}

// jsonbArg renders raw JSON as a text parameter; with the simple protocol a
// []byte argument would be sent as bytea.
func jsonbArg(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
