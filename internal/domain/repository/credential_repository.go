// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// Names of the two durable entries holding the credential.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// CredentialRepository persists the credential outside process memory.
type CredentialRepository interface {
	// Load returns the persisted credential, or nil when none is stored.
	Load(ctx context.Context) (*entity.Credential, error)

	// Save writes both entries together.
	Save(ctx context.Context, credential entity.Credential) error

	// Clear removes both entries together. Clearing an empty store is not an error.
	Clear(ctx context.Context) error

	// Close releases the underlying storage.
	Close() error
}
