package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/contactsapp/contacts-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryProvider exposes pool-bound repositories plus a transaction
// runner. It implements portsrepo.TxManager.
type RepositoryProvider struct {
	pool *pgxpool.Pool
	portsrepo.Repositories
}

var _ portsrepo.TxManager = (*RepositoryProvider)(nil)

func NewRepositoryProvider(pool *pgxpool.Pool) *RepositoryProvider {
	return &RepositoryProvider{
		pool:         pool,
		Repositories: newRepositories(pool),
	}
}

func newRepositories(db Querier) portsrepo.Repositories {
	return portsrepo.Repositories{
		User:         NewUserRepository(db),
		Contact:      NewContactRepository(db),
		Favorite:     NewFavoriteRepository(db),
		Group:        NewGroupRepository(db),
		RefreshToken: NewRefreshTokenRepository(db),
	}
}

// WithinTx runs fn against repositories bound to one transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (p *RepositoryProvider) WithinTx(ctx context.Context, fn func(repos portsrepo.Repositories) error) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Rollback is a no-op once the transaction has committed.
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(newRepositories(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
