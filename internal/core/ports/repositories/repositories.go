package repositories

import "context"

// Repositories bundles every repository interface. A bundle is either bound
// to the connection pool or, inside WithinTx, to a single transaction.
type Repositories struct {
	User         UserRepository
	Contact      ContactRepository
	Favorite     FavoriteRepository
	Group        GroupRepository
	RefreshToken RefreshTokenRepository
}

// TxManager runs a function against a transaction-bound repository bundle.
// The transaction commits when fn returns nil and rolls back otherwise.
// Multi-write service operations (registration, login's lazy contact link,
// the account deletion cascade) run under this to avoid partial states.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(repos Repositories) error) error
}
