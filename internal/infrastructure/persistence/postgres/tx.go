package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/casaflow/underwriting-service/internal/domain/port"
	pkgpostgres "github.com/casaflow/underwriting-service/pkg/postgres"
)

// Compile-time interface check.
var _ port.TxRunner = (*TxManager)(nil)

// TxManager implements port.TxRunner over a pgx connection pool. Repository
// calls made with the context handed to fn join the same transaction.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a transaction runner for the given pool.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunInTx executes fn inside a single database transaction.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return pkgpostgres.WithTransaction(ctx, m.pool, fn)
}
