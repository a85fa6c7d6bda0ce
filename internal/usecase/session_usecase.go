package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// SessionState is the session slice. IsAuthenticated is true iff a credential
// is held, whether or not User has been fetched.
type SessionState struct {
	User            *entity.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	TokenExpiresAt  *time.Time   `json:"tokenExpiresAt,omitempty"`
}

// SessionStore signs users in and out and holds their profile.
//
// Every operation returns the error it also records in the store status;
// callers may ignore the return value and observe the store instead.
type SessionStore interface {
	Observable[SessionState]

	// SignIn stores the credential but does not fetch the profile.
	SignIn(ctx context.Context, input entity.SignIn) error
	// Register creates an account without signing in.
	Register(ctx context.Context, input entity.Registration) error
	FetchProfile(ctx context.Context) error
	// UpdateProfile merges the keys returned by the server into User.
	UpdateProfile(ctx context.Context, fields map[string]any) error
	// SignOut clears the local session first and never fails.
	SignOut(ctx context.Context) error
}
