package accounts

import (
	"context"
	"errors"
	"log/slog"
)

// EmailCache remembers emails that are known to be registered.
type EmailCache interface {
	IsEmailRegistered(ctx context.Context, email string) (bool, error)
	MarkEmailRegistered(ctx context.Context, email string) error
}

// CachedStore answers email lookups from a cache before hitting the
// underlying store. Accounts are never deleted, so a cache hit is final;
// a miss or a cache error falls through to the store.
type CachedStore struct {
	Store
	cache  EmailCache
	logger *slog.Logger
}

// NewCachedStore wraps store with cache.
func NewCachedStore(store Store, cache EmailCache, logger *slog.Logger) *CachedStore {
	return &CachedStore{Store: store, cache: cache, logger: logger}
}

func (s *CachedStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	hit, err := s.cache.IsEmailRegistered(ctx, email)
	if err != nil {
		s.logger.Warn("email cache lookup failed", "error", err)
	} else if hit {
		return true, nil
	}

	exists, err := s.Store.ExistsByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if exists {
		s.remember(ctx, email)
	}
	return exists, nil
}

func (s *CachedStore) Insert(ctx context.Context, a *Account) error {
	if err := s.Store.Insert(ctx, a); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			s.remember(ctx, a.Email)
		}
		return err
	}
	s.remember(ctx, a.Email)
	return nil
}

func (s *CachedStore) remember(ctx context.Context, email string) {
	if err := s.cache.MarkEmailRegistered(ctx, email); err != nil {
		s.logger.Warn("email cache update failed", "error", err)
	}
}
