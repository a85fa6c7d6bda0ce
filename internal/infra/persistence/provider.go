// Package persistence selects the credential storage backend.
package persistence

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/blob"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/sqlite"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RepositoryParams holds dependencies for the credential repository, injected by Fx
type RepositoryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewCredentialRepository creates a CredentialRepository based on configuration
func NewCredentialRepository(params RepositoryParams) (repository.CredentialRepository, error) {
	cfg := params.Config.Credential
	logger := params.Logger

	var repo repository.CredentialRepository
	var err error

	switch cfg.Driver {
	case config.CredentialDriverSQLite:
		logger.Debug("Using SQLite credential storage", slog.String("path", cfg.Path))
		repo, err = sqlite.NewCredentialRepository(params.Ctx, cfg.Path)

	case config.CredentialDriverBlob:
		logger.Debug("Using blob credential storage", slog.String("bucket_url", cfg.BucketURL))
		repo, err = blob.NewCredentialRepository(params.Ctx, cfg.BucketURL)

	case config.CredentialDriverMemory:
		logger.Debug("Using in-memory credential storage")
		repo = memory.NewCredentialRepository()

	default:
		return nil, errors.Errorf("unknown credential driver: %s", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Debug("Closing credential storage")

			return repo.Close()
		},
	})

	return repo, nil
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCredentialRepository),
)
