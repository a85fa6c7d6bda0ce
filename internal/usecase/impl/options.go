package impl

import (
	"storefront/config"
	"storefront/internal/domain/entity"
)

// StoreOptions tunes the behavior shared by every store.
type StoreOptions struct {
	// DiscardStaleResults drops the settlement of a replacing operation when a
	// newer invocation of the same operation already settled.
	DiscardStaleResults bool
	PageSize            int
}

// NewStoreOptions reads StoreOptions from the configuration.
func NewStoreOptions(cfg *config.Config) StoreOptions {
	return StoreOptions{
		DiscardStaleResults: cfg.Store.DiscardStaleResults,
		PageSize:            cfg.API.PageSize,
	}
}

func (o StoreOptions) totalPages(count int) int {
	return entity.TotalPages(count, o.PageSize)
}
