package impl

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/transport"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, sub string, exp time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	return token
}

func TestSessionStore_SignIn_Success(t *testing.T) {
	api := mockService.NewMockSessionAPI(t)
	holder, repo := newTestHolder(t, nil)
	store := NewSessionStore(api, holder, guarded(), testLogger())

	exp := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	credential := &entity.Credential{AccessToken: signedToken(t, "1", exp), RefreshToken: "refresh"}
	input := entity.SignIn{Username: "alice", Password: "secret"}

	api.EXPECT().ObtainToken(mock.Anything, input).Return(credential, nil)

	require.NoError(t, store.SignIn(context.Background(), input))

	snap := store.Snapshot()
	assert.True(t, snap.State.IsAuthenticated)
	assert.Nil(t, snap.State.User, "the profile is fetched separately")
	require.NotNil(t, snap.State.TokenExpiresAt)
	assert.True(t, exp.Equal(*snap.State.TokenExpiresAt))
	assert.Equal(t, credential, holder.Get())
	assert.Equal(t, map[string]string{
		repository.AccessTokenKey:  credential.AccessToken,
		repository.RefreshTokenKey: "refresh",
	}, repo.Entries())
}

func TestSessionStore_SignIn_MissingFieldsFailLocally(t *testing.T) {
	api := mockService.NewMockSessionAPI(t)
	holder, _ := newTestHolder(t, nil)
	store := NewSessionStore(api, holder, guarded(), testLogger())

	err := store.SignIn(context.Background(), entity.SignIn{Username: "alice"})

	var se *domainerrors.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, domainerrors.KindValidation, se.Kind())
	assert.Equal(t, []string{"This field is required."}, se.Fields()["password"])
	assert.False(t, store.Snapshot().State.IsAuthenticated)
	api.AssertNotCalled(t, "ObtainToken", mock.Anything, mock.Anything)
}

func TestSessionStore_SignIn_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/token/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"detail":"Invalid credentials"}`)
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.API.BaseURL = srv.URL + "/api"
	client := transport.NewClient(transport.ClientParams{Config: cfg, Logger: testLogger()})

	holder, repo := newTestHolder(t, nil)
	store := NewSessionStore(transport.NewSessionAPI(client), holder, guarded(), testLogger())

	err := store.SignIn(context.Background(), entity.SignIn{Username: "alice", Password: "bad"})
	require.Error(t, err)

	snap := store.Snapshot()
	assert.False(t, snap.State.IsAuthenticated)
	require.NotNil(t, snap.Status.Error)
	assert.Equal(t, domainerrors.KindValidation, snap.Status.Error.Kind())
	assert.Equal(t, "Invalid credentials", snap.Status.Error.Detail())
	assert.Nil(t, holder.Get())
	assert.Empty(t, repo.Entries())
}

func TestSessionStore_SignInSignOutRoundTrip(t *testing.T) {
	api := mockService.NewMockSessionAPI(t)
	holder, repo := newTestHolder(t, nil)
	store := NewSessionStore(api, holder, guarded(), testLogger())

	before := store.Snapshot().State
	beforeEntries := repo.Entries()

	credential := &entity.Credential{AccessToken: "access", RefreshToken: "refresh"}
	api.EXPECT().ObtainToken(mock.Anything, mock.Anything).Return(credential, nil)
	api.EXPECT().RevokeToken(mock.Anything, "access", "refresh").Return(nil)

	require.NoError(t, store.SignIn(context.Background(), entity.SignIn{Username: "alice", Password: "secret"}))
	require.NoError(t, store.SignOut(context.Background()))

	if diff := cmp.Diff(before, store.Snapshot().State); diff != "" {
		t.Errorf("session state mismatch (-before +after):\n%s", diff)
	}
	assert.Nil(t, holder.Get())
	assert.Equal(t, beforeEntries, repo.Entries())
}

func TestSessionStore_SignOut_RevokeFailureIsIgnored(t *testing.T) {
	api := mockService.NewMockSessionAPI(t)
	holder, repo := newTestHolder(t, &entity.Credential{AccessToken: "access", RefreshToken: "refresh"})
	store := NewSessionStore(api, holder, guarded(), testLogger())
	require.True(t, store.Snapshot().State.IsAuthenticated)

	var duringRevoke usecase.SessionState
	api.EXPECT().RevokeToken(mock.Anything, "access", "refresh").
		Run(func(context.Context, string, string) {
			duringRevoke = store.Snapshot().State
		}).
		Return(errors.New("network down"))

	require.NoError(t, store.SignOut(context.Background()))

	assert.False(t, duringRevoke.IsAuthenticated, "local state clears before the remote call")
	snap := store.Snapshot()
	assert.False(t, snap.State.IsAuthenticated)
	assert.Nil(t, snap.Status.Error)
	assert.False(t, snap.Status.Loading)
	assert.Empty(t, repo.Entries())
}

func TestSessionStore_SignOut_Anonymous(t *testing.T) {
	api := mockService.NewMockSessionAPI(t)
	holder, _ := newTestHolder(t, nil)
	store := NewSessionStore(api, holder, guarded(), testLogger())

	require.NoError(t, store.SignOut(context.Background()))
	api.AssertNotCalled(t, "RevokeToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestSessionStore_FetchProfile_Idempotent(t *testing.T) {
	api := mockService.NewMockSessionAPI(t)
	holder, _ := newTestHolder(t, &entity.Credential{AccessToken: "access", RefreshToken: "refresh"})
	store := NewSessionStore(api, holder, guarded(), testLogger())

	api.EXPECT().GetProfile(mock.Anything, "access").
		Return(&entity.User{ID: 1, Username: "alice", Email: "alice@example.com"}, nil).
		Twice()

	require.NoError(t, store.FetchProfile(context.Background()))
	first := store.Snapshot().State.User
	require.NoError(t, store.FetchProfile(context.Background()))
	second := store.Snapshot().State.User

	require.NotNil(t, first)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("profile changed between fetches (-first +second):\n%s", diff)
	}
}

func TestSessionStore_FetchProfile_DroppedAfterSignOut(t *testing.T) {
	api := mockService.NewMockSessionAPI(t)
	holder, _ := newTestHolder(t, &entity.Credential{AccessToken: "access", RefreshToken: "refresh"})
	store := NewSessionStore(api, holder, guarded(), testLogger())

	api.EXPECT().GetProfile(mock.Anything, "access").
		Run(func(ctx context.Context, _ string) {
			_ = holder.Clear(ctx)
		}).
		Return(&entity.User{ID: 1, Username: "alice"}, nil)

	require.NoError(t, store.FetchProfile(context.Background()))
	assert.Nil(t, store.Snapshot().State.User)
}

func TestSessionStore_FetchProfile_Unauthorized(t *testing.T) {
	api := mockService.NewMockSessionAPI(t)
	holder, _ := newTestHolder(t, nil)
	store := NewSessionStore(api, holder, guarded(), testLogger())

	api.EXPECT().GetProfile(mock.Anything, "").
		Return(nil, domainerrors.NewAuthorizationError(http.StatusUnauthorized, "Authentication credentials were not provided."))

	err := store.FetchProfile(context.Background())

	require.ErrorIs(t, err, domainerrors.ErrAuthorization)
	assert.Equal(t, domainerrors.KindAuthorization, store.Snapshot().Status.Error.Kind())
	assert.Equal(t, domainerrors.KindAuthorization, store.Snapshot().Operations[usecase.OpFetchProfile].Error.Kind())
}

func TestSessionStore_UpdateProfile_MergesReturnedKeys(t *testing.T) {
	api := mockService.NewMockSessionAPI(t)
	holder, _ := newTestHolder(t, &entity.Credential{AccessToken: "access", RefreshToken: "refresh"})
	store := NewSessionStore(api, holder, guarded(), testLogger())

	api.EXPECT().GetProfile(mock.Anything, "access").
		Return(&entity.User{ID: 1, Username: "alice", Email: "alice@example.com", Address: "Old Street"}, nil)
	api.EXPECT().UpdateProfile(mock.Anything, "access", map[string]any{"first_name": "Alice"}).
		Return(map[string]any{"first_name": "Alice", "phone_number": "0912"}, nil)

	require.NoError(t, store.FetchProfile(context.Background()))
	require.NoError(t, store.UpdateProfile(context.Background(), map[string]any{"first_name": "Alice"}))

	user := store.Snapshot().State.User
	require.NotNil(t, user)
	assert.Equal(t, "Alice", user.FirstName)
	assert.Equal(t, "0912", user.PhoneNumber)
	assert.Equal(t, "Old Street", user.Address)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestSessionStore_Register_DoesNotAuthenticate(t *testing.T) {
	api := mockService.NewMockSessionAPI(t)
	holder, _ := newTestHolder(t, nil)
	store := NewSessionStore(api, holder, guarded(), testLogger())

	input := entity.Registration{Username: "bob", Email: "bob@example.com", Password: "pw12345678"}
	api.EXPECT().Register(mock.Anything, input).Return(&entity.User{ID: 2, Username: "bob"}, nil)

	require.NoError(t, store.Register(context.Background(), input))

	snap := store.Snapshot()
	assert.False(t, snap.State.IsAuthenticated)
	assert.Nil(t, snap.State.User)
	assert.Nil(t, holder.Get())
}

func TestSessionStore_Register_InvalidEmail(t *testing.T) {
	api := mockService.NewMockSessionAPI(t)
	holder, _ := newTestHolder(t, nil)
	store := NewSessionStore(api, holder, guarded(), testLogger())

	err := store.Register(context.Background(), entity.Registration{Username: "bob", Email: "nope", Password: "pw"})

	var se *domainerrors.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []string{"Enter a valid email address."}, se.Fields()["email"])
}
