package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

type sessionStore struct {
	*baseStore[usecase.SessionState]

	api    service.SessionAPI
	holder usecase.CredentialHolder
}

// NewSessionStore creates the session store. The initial state reflects the
// credential the holder loaded from storage.
func NewSessionStore(
	api service.SessionAPI,
	holder usecase.CredentialHolder,
	opts StoreOptions,
	logger *slog.Logger,
) usecase.SessionStore {
	initial := usecase.SessionState{}
	if c := holder.Get(); c != nil {
		initial.IsAuthenticated = true
		initial.TokenExpiresAt = expiresAt(*c)
	}

	return &sessionStore{
		baseStore: newBaseStore("session", initial, cloneSessionState, opts.DiscardStaleResults, logger),
		api:       api,
		holder:    holder,
	}
}

func (s *sessionStore) SignIn(ctx context.Context, input entity.SignIn) error {
	return run(ctx, s.baseStore, usecase.OpSignIn, false, "Login failed",
		func(ctx context.Context) (entity.Credential, error) {
			if err := validateInput(input); err != nil {
				return entity.Credential{}, err
			}
			credential, err := s.api.ObtainToken(ctx, input)
			if err != nil {
				return entity.Credential{}, err
			}
			if err := s.holder.Set(ctx, *credential); err != nil {
				return entity.Credential{}, err
			}

			return *credential, nil
		},
		func(state *usecase.SessionState, credential entity.Credential) {
			state.IsAuthenticated = true
			state.User = nil
			state.TokenExpiresAt = expiresAt(credential)
		},
	)
}

func (s *sessionStore) Register(ctx context.Context, input entity.Registration) error {
	return run(ctx, s.baseStore, usecase.OpRegister, false, "Registration failed",
		func(ctx context.Context) (*entity.User, error) {
			if err := validateInput(input); err != nil {
				return nil, err
			}

			return s.api.Register(ctx, input)
		},
		func(*usecase.SessionState, *entity.User) {},
	)
}

func (s *sessionStore) FetchProfile(ctx context.Context) error {
	token := accessToken(s.holder)

	return run(ctx, s.baseStore, usecase.OpFetchProfile, true, "Failed to fetch profile",
		func(ctx context.Context) (*entity.User, error) {
			return s.api.GetProfile(ctx, token)
		},
		func(state *usecase.SessionState, user *entity.User) {
			// The session may have ended while the request was in flight.
			if !s.holds(token) {
				return
			}
			state.User = user
		},
	)
}

func (s *sessionStore) UpdateProfile(ctx context.Context, fields map[string]any) error {
	token := accessToken(s.holder)

	return run(ctx, s.baseStore, usecase.OpUpdateProfile, false, "Profile update failed",
		func(ctx context.Context) (map[string]any, error) {
			return s.api.UpdateProfile(ctx, token, fields)
		},
		func(state *usecase.SessionState, returned map[string]any) {
			if !s.holds(token) {
				return
			}
			merged, err := mergeUser(state.User, returned)
			if err != nil {
				s.logger.Warn("Failed to merge profile update", slog.Any("error", err))

				return
			}
			state.User = merged
		},
	)
}

// SignOut clears the credential and the session before the remote token is
// revoked. A failed revocation is logged and never reported.
func (s *sessionStore) SignOut(ctx context.Context) error {
	t := s.begin(usecase.OpSignOut, false)

	credential := s.holder.Get()
	if err := s.holder.Clear(ctx); err != nil {
		s.logger.Error("Failed to clear persisted credential", slog.Any("error", err))
	}
	s.update(func(state *usecase.SessionState) {
		*state = usecase.SessionState{}
	})

	if credential != nil {
		if err := s.api.RevokeToken(ctx, credential.AccessToken, credential.RefreshToken); err != nil {
			s.logger.Warn("Failed to revoke refresh token", slog.Any("error", err))
		}
	}

	s.settle(t, nil, nil)

	return nil
}

func (s *sessionStore) holds(token string) bool {
	return token != "" && accessToken(s.holder) == token
}

func expiresAt(c entity.Credential) *time.Time {
	claims, ok := c.Claims()
	if !ok {
		return nil
	}

	return claims.ExpiresAt
}

// mergeUser overlays the returned keys onto user. Keys the server did not
// return keep their previous value.
func mergeUser(user *entity.User, returned map[string]any) (*entity.User, error) {
	current := map[string]any{}
	if user != nil {
		raw, err := json.Marshal(user)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode user")
		}
		if err := json.Unmarshal(raw, &current); err != nil {
			return nil, errors.Wrap(err, "failed to decode user")
		}
	}
	for k, v := range returned {
		current[k] = v
	}

	raw, err := json.Marshal(current)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode merged user")
	}
	var merged entity.User
	if err := json.Unmarshal(raw, &merged); err != nil {
		return nil, errors.Wrap(err, "failed to decode merged user")
	}

	return &merged, nil
}
