// Package usecase contains the contracts of the state stores.
package usecase

import (
	domainerrors "storefront/internal/domain/errors"
)

// Status is the loading/error pair of a store or of one of its operations.
type Status struct {
	Loading bool                     `json:"loading"`
	Error   *domainerrors.StoreError `json:"error"`
}

// Snapshot is an immutable copy of a store. Version increases by one on
// every state change, so a consumer can tell two snapshots apart cheaply.
type Snapshot[S any] struct {
	State      S                 `json:"state"`
	Status     Status            `json:"status"`
	Operations map[string]Status `json:"operations,omitempty"`
	Version    uint64            `json:"version"`
}

// Listener receives every snapshot a store publishes, in version order.
// Listeners must not invoke operations of the same store synchronously.
type Listener[S any] func(Snapshot[S])

// Observable is the read side shared by every store.
type Observable[S any] interface {
	Snapshot() Snapshot[S]
	// Subscribe registers l and returns the function that removes it.
	Subscribe(l Listener[S]) (unsubscribe func())
	// ClearError resets the store error and every per-operation error.
	ClearError()
}

// Operation names, used as keys of Snapshot.Operations.
const (
	OpSignIn        = "signIn"
	OpRegister      = "register"
	OpFetchProfile  = "fetchProfile"
	OpUpdateProfile = "updateProfile"
	OpSignOut       = "signOut"

	OpList                = "list"
	OpGetByID             = "getById"
	OpCreate              = "create"
	OpUpdate              = "update"
	OpRemove              = "remove"
	OpListCategories      = "listCategories"
	OpListFeatured        = "listFeatured"
	OpListDailyEssentials = "listDailyEssentials"
	OpListBrands          = "listBrands"
	OpListFeaturedBrands  = "listFeaturedBrands"
	OpListReviews         = "listReviews"
	OpCreateReview        = "createReview"

	OpListRooms    = "listRooms"
	OpGetRoomByID  = "getRoomById"
	OpCreateRoom   = "createRoom"
	OpListMessages = "listMessages"
	OpSendMessage  = "sendMessage"
)
