package usecase

// Slice names one store inside AppState.
type Slice string

const (
	SliceSession     Slice = "session"
	SliceCatalog     Slice = "catalog"
	SliceMarketplace Slice = "marketplace"
	SliceMessaging   Slice = "messaging"
)

// AllSlices lists every slice in AppState order.
var AllSlices = []Slice{SliceSession, SliceCatalog, SliceMarketplace, SliceMessaging}

// AppState is the combined view of every store.
type AppState struct {
	Session     Snapshot[SessionState]     `json:"session"`
	Catalog     Snapshot[CatalogState]     `json:"catalog"`
	Marketplace Snapshot[MarketplaceState] `json:"marketplace"`
	Messaging   Snapshot[MessagingState]   `json:"messaging"`
}
