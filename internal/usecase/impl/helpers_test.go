package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func guarded() StoreOptions {
	return StoreOptions{DiscardStaleResults: true, PageSize: entity.PageSize}
}

func legacy() StoreOptions {
	return StoreOptions{DiscardStaleResults: false, PageSize: entity.PageSize}
}

// newTestHolder returns a holder backed by memory storage, optionally pre-populated.
func newTestHolder(t *testing.T, credential *entity.Credential) (usecase.CredentialHolder, *memory.CredentialRepository) {
	t.Helper()

	repo := memory.NewCredentialRepository()
	if credential != nil {
		require.NoError(t, repo.Save(context.Background(), *credential))
	}

	holder, err := NewCredentialHolder(context.Background(), repo, testLogger())
	require.NoError(t, err)

	return holder, repo
}

// recorder collects every snapshot a store publishes.
type recorder[S any] struct {
	snapshots chan usecase.Snapshot[S]
}

func record[S any](t *testing.T, store usecase.Observable[S]) *recorder[S] {
	t.Helper()

	r := &recorder[S]{snapshots: make(chan usecase.Snapshot[S], 64)}
	t.Cleanup(store.Subscribe(func(s usecase.Snapshot[S]) { r.snapshots <- s }))

	return r
}

func (r *recorder[S]) versions() []uint64 {
	var out []uint64
	for {
		select {
		case s := <-r.snapshots:
			out = append(out, s.Version)
		default:
			return out
		}
	}
}
