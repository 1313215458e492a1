package repository

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/domain/auth"
)

// DefaultCacheSize is the number of identities remembered in process
const DefaultCacheSize = 1024

type cachedStore struct {
	store auth.Store
	known *lru.Cache[string, struct{}]
}

// NewCachedStore remembers positive answers of store. Grants are never revoked,
// so a cached identity stays valid.
func NewCachedStore(store auth.Store, size int) (auth.Store, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	known, err := lru.New[string, struct{}](size)
	if err != nil {
		return nil, err
	}
	return &cachedStore{store: store, known: known}, nil
}

func (s *cachedStore) IsAuthorized(c ctx.Ctx, identity string) (bool, error) {
	if s.known.Contains(identity) {
		return true, nil
	}
	ok, err := s.store.IsAuthorized(c, identity)
	if err != nil {
		return false, err
	}
	if ok {
		s.known.Add(identity, struct{}{})
	}
	return ok, nil
}

func (s *cachedStore) Grant(c ctx.Ctx, identity string) error {
	if err := s.store.Grant(c, identity); err != nil {
		return err
	}
	s.known.Add(identity, struct{}{})
	return nil
}
