// Package memory keeps the credential in process memory. It is meant for tests
// and for running without durable storage.
package memory

import (
	"context"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

var _ repository.CredentialRepository = (*CredentialRepository)(nil)

type CredentialRepository struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewCredentialRepository() *CredentialRepository {
	return &CredentialRepository{entries: make(map[string]string)}
}

func (r *CredentialRepository) Load(_ context.Context) (*entity.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	access, ok := r.entries[repository.AccessTokenKey]
	if !ok || access == "" {
		return nil, nil
	}

	return &entity.Credential{AccessToken: access, RefreshToken: r.entries[repository.RefreshTokenKey]}, nil
}

func (r *CredentialRepository) Save(_ context.Context, credential entity.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[repository.AccessTokenKey] = credential.AccessToken
	r.entries[repository.RefreshTokenKey] = credential.RefreshToken

	return nil
}

func (r *CredentialRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, repository.AccessTokenKey)
	delete(r.entries, repository.RefreshTokenKey)

	return nil
}

// Entries returns a copy of the raw stored entries.
func (r *CredentialRepository) Entries() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.entries))
	for k, v := range r.entries {
		out[k] = v
	}

	return out
}

func (r *CredentialRepository) Close() error {
	return nil
}
