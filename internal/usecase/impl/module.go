package impl

import "go.uber.org/fx"

// Module provides the credential holder, the four stores and the Registry.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewStoreOptions,
		NewCredentialHolderFx,
		NewSessionStore,
		NewCatalogStore,
		NewMarketplaceStore,
		NewMessagingStore,
		NewRegistry,
	),
)
