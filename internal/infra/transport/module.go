package transport

import "go.uber.org/fx"

// Module provides the HTTP implementations of the storefront API contracts
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClient,
		NewSessionAPI,
		NewCatalogAPI,
		NewMarketplaceAPI,
		NewMessagingAPI,
	),
)
