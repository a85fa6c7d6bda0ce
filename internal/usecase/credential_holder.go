package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CredentialHolder owns the process-wide credential. The in-memory copy and
// the persisted copy are written together before Set or Clear return.
type CredentialHolder interface {
	// Get returns a copy of the credential, or nil when anonymous.
	Get() *entity.Credential
	// Set persists the credential and then makes it current. On a persistence
	// error the previous credential stays current.
	Set(ctx context.Context, credential entity.Credential) error
	// Clear drops the in-memory credential unconditionally and then removes the
	// persisted copy, returning any persistence error.
	Clear(ctx context.Context) error
}
