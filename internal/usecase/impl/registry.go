package impl

import (
	"context"
	"log/slog"
	"slices"

	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Registry composes the four stores into one state tree.
type Registry struct {
	Session     usecase.SessionStore
	Catalog     usecase.CatalogStore
	Marketplace usecase.MarketplaceStore
	Messaging   usecase.MessagingStore

	logger *slog.Logger
}

// NewRegistry is the constructor for Registry.
func NewRegistry(
	session usecase.SessionStore,
	catalog usecase.CatalogStore,
	marketplace usecase.MarketplaceStore,
	messaging usecase.MessagingStore,
	logger *slog.Logger,
) *Registry {
	return &Registry{
		Session:     session,
		Catalog:     catalog,
		Marketplace: marketplace,
		Messaging:   messaging,
		logger:      logger,
	}
}

// State returns the current snapshot of every store.
func (r *Registry) State() usecase.AppState {
	return usecase.AppState{
		Session:     r.Session.Snapshot(),
		Catalog:     r.Catalog.Snapshot(),
		Marketplace: r.Marketplace.Snapshot(),
		Messaging:   r.Messaging.Snapshot(),
	}
}

// Subscribe calls fn with the combined state after every change of one of the
// given slices, or of any slice when none is given.
func (r *Registry) Subscribe(fn func(usecase.AppState), names ...usecase.Slice) (unsubscribe func()) {
	if len(names) == 0 {
		names = usecase.AllSlices
	}

	var unsubscribers []func()
	for _, slice := range uniqueSlices(names) {
		switch slice {
		case usecase.SliceSession:
			unsubscribers = append(unsubscribers, r.Session.Subscribe(func(usecase.Snapshot[usecase.SessionState]) {
				fn(r.State())
			}))
		case usecase.SliceCatalog:
			unsubscribers = append(unsubscribers, r.Catalog.Subscribe(func(usecase.Snapshot[usecase.CatalogState]) {
				fn(r.State())
			}))
		case usecase.SliceMarketplace:
			unsubscribers = append(unsubscribers, r.Marketplace.Subscribe(func(usecase.Snapshot[usecase.MarketplaceState]) {
				fn(r.State())
			}))
		case usecase.SliceMessaging:
			unsubscribers = append(unsubscribers, r.Messaging.Subscribe(func(usecase.Snapshot[usecase.MessagingState]) {
				fn(r.State())
			}))
		default:
			r.logger.Warn("Ignoring unknown state slice", slog.String("slice", string(slice)))
		}
	}

	return func() {
		for _, u := range unsubscribers {
			u()
		}
	}
}

// Bootstrap loads the reference data every screen needs, and the profile when
// a credential is held. All operations run to settlement; the first failure is
// returned.
func (r *Registry) Bootstrap(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error { return r.Catalog.ListCategories(ctx) })
	g.Go(func() error { return r.Catalog.ListFeatured(ctx) })
	g.Go(func() error { return r.Catalog.ListDailyEssentials(ctx) })
	g.Go(func() error { return r.Catalog.ListBrands(ctx) })
	g.Go(func() error { return r.Catalog.ListFeaturedBrands(ctx) })
	if r.Session.Snapshot().State.IsAuthenticated {
		g.Go(func() error { return r.Session.FetchProfile(ctx) })
	}

	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "bootstrap failed")
	}

	return nil
}

func uniqueSlices(in []usecase.Slice) []usecase.Slice {
	out := make([]usecase.Slice, 0, len(in))
	for _, s := range in {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}

	return out
}
