package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type credentialHolder struct {
	repo   repository.CredentialRepository
	logger *slog.Logger

	// writeMu orders writes so memory and storage always see them in the same order.
	writeMu sync.Mutex

	mu         sync.RWMutex
	credential *entity.Credential
}

// CredentialHolderParams holds dependencies for the CredentialHolder, injected by Fx.
type CredentialHolderParams struct {
	fx.In

	Ctx    context.Context
	Repo   repository.CredentialRepository
	Logger *slog.Logger
}

// NewCredentialHolderFx adapts NewCredentialHolder to Fx.
func NewCredentialHolderFx(params CredentialHolderParams) (usecase.CredentialHolder, error) {
	return NewCredentialHolder(params.Ctx, params.Repo, params.Logger)
}

// NewCredentialHolder loads the persisted credential, if any.
func NewCredentialHolder(ctx context.Context, repo repository.CredentialRepository, logger *slog.Logger) (usecase.CredentialHolder, error) {
	credential, err := repo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load persisted credential")
	}

	logger.Debug("Credential holder initialized", slog.Bool("authenticated", credential != nil))

	return &credentialHolder{
		repo:       repo,
		logger:     logger,
		credential: credential,
	}, nil
}

func (h *credentialHolder) Get() *entity.Credential {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.credential == nil {
		return nil
	}
	c := *h.credential

	return &c
}

func (h *credentialHolder) Set(ctx context.Context, credential entity.Credential) error {
	h.writeMu.Lock()
	defer h.writeMu.Unlock()

	if err := h.repo.Save(ctx, credential); err != nil {
		return errors.Wrap(err, "failed to persist credential")
	}

	h.mu.Lock()
	h.credential = &credential
	h.mu.Unlock()

	return nil
}

func (h *credentialHolder) Clear(ctx context.Context) error {
	h.writeMu.Lock()
	defer h.writeMu.Unlock()

	h.mu.Lock()
	h.credential = nil
	h.mu.Unlock()

	if err := h.repo.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear persisted credential")
	}

	return nil
}

// accessToken returns the current access token or "" when anonymous.
func accessToken(h usecase.CredentialHolder) string {
	if c := h.Get(); c != nil {
		return c.AccessToken
	}

	return ""
}
