package impl_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/delivery/fakeapi"
	"storefront/internal/delivery/fakeapi/fakeapitest"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/transport"
	"storefront/internal/usecase/impl"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	env      *fakeapitest.Env
	repo     *memory.CredentialRepository
	registry *impl.Registry
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	env := fakeapitest.Start(t, fakeapi.DefaultSeed())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := transport.NewClient(transport.ClientParams{Config: env.Config, Logger: logger})

	repo := memory.NewCredentialRepository()
	holder, err := impl.NewCredentialHolder(context.Background(), repo, logger)
	require.NoError(t, err)

	opts := impl.NewStoreOptions(env.Config)

	return &harness{
		env:  env,
		repo: repo,
		registry: impl.NewRegistry(
			impl.NewSessionStore(transport.NewSessionAPI(client), holder, opts, logger),
			impl.NewCatalogStore(transport.NewCatalogAPI(client), holder, opts, logger),
			impl.NewMarketplaceStore(transport.NewMarketplaceAPI(client), holder, opts, logger),
			impl.NewMessagingStore(transport.NewMessagingAPI(client), holder, opts, logger),
			logger,
		),
	}
}

func TestStorefront_SessionLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	session := h.registry.Session

	require.NoError(t, session.Register(ctx, entity.Registration{
		Username: "alice", Email: "alice@example.com", Password: "wonderland42", Password2: "wonderland42",
	}))
	assert.False(t, session.Snapshot().State.IsAuthenticated)

	err := session.SignIn(ctx, entity.SignIn{Username: "alice", Password: "bad"})
	require.ErrorIs(t, err, domainerrors.ErrValidation)
	assert.Empty(t, h.repo.Entries())

	require.NoError(t, session.SignIn(ctx, entity.SignIn{Username: "alice@example.com", Password: "wonderland42"}))
	snap := session.Snapshot()
	assert.True(t, snap.State.IsAuthenticated)
	assert.NotNil(t, snap.State.TokenExpiresAt)
	assert.Len(t, h.repo.Entries(), 2)
	assert.NotEmpty(t, h.repo.Entries()[repository.AccessTokenKey])

	require.NoError(t, session.FetchProfile(ctx))
	assert.Equal(t, "alice", session.Snapshot().State.User.Username)

	require.NoError(t, session.UpdateProfile(ctx, map[string]any{"first_name": "Alice"}))
	user := session.Snapshot().State.User
	assert.Equal(t, "Alice", user.FirstName)
	assert.Equal(t, "alice@example.com", user.Email)

	refresh := h.repo.Entries()[repository.RefreshTokenKey]
	require.NoError(t, session.SignOut(ctx))
	assert.False(t, session.Snapshot().State.IsAuthenticated)
	assert.Nil(t, session.Snapshot().State.User)
	assert.Empty(t, h.repo.Entries())
	claims := jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(refresh, &claims)
	require.NoError(t, err)
	assert.True(t, h.env.API.Blacklisted(claims.ID), "sign-out revokes the refresh token")

	err = session.FetchProfile(ctx)
	require.ErrorIs(t, err, domainerrors.ErrAuthorization)
}

func TestStorefront_CatalogFlow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.env.MustCreateUser(t, "seller", "sellerpass1")

	require.NoError(t, h.registry.Bootstrap(ctx))
	catalog := h.registry.Catalog
	state := catalog.Snapshot().State
	assert.Len(t, state.Categories, 3)
	assert.Len(t, state.FeaturedBrands, 1)
	assert.Len(t, state.Featured, 1)
	assert.Len(t, state.DailyEssentials, 1)

	require.NoError(t, catalog.List(ctx, entity.ProductFilter{Page: 1}))
	state = catalog.Snapshot().State
	assert.Len(t, state.Products, 3)
	assert.Equal(t, 1, state.TotalPages)

	input := entity.ProductInput{Category: 1, Title: "Phone case", Price: "15.00", Condition: entity.ConditionNew}
	err := catalog.Create(ctx, input, nil)
	require.ErrorIs(t, err, domainerrors.ErrAuthorization, "creating requires a credential")

	require.NoError(t, h.registry.Session.SignIn(ctx, entity.SignIn{Username: "seller", Password: "sellerpass1"}))
	require.NoError(t, catalog.Create(ctx, input, nil))
	state = catalog.Snapshot().State
	require.Len(t, state.Products, 4)
	created := state.Products[0]
	assert.Equal(t, "Phone case", created.Title)

	require.NoError(t, catalog.Update(ctx, created.ID, entity.ProductInput{Price: "12.00"}, nil))
	state = catalog.Snapshot().State
	assert.Equal(t, "12.00", state.Products[0].Price)
	assert.Equal(t, created.ID, state.Current.ID)

	require.NoError(t, catalog.Remove(ctx, created.ID))
	state = catalog.Snapshot().State
	assert.Len(t, state.Products, 3)
	assert.Nil(t, state.Current)

	err = catalog.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestStorefront_Messaging(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.env.MustCreateUser(t, "alice", "alicepass1")
	bob := h.env.MustCreateUser(t, "bob", "bobpass123")

	require.NoError(t, h.registry.Session.SignIn(ctx, entity.SignIn{Username: "alice", Password: "alicepass1"}))

	messaging := h.registry.Messaging
	require.NoError(t, messaging.CreateRoom(ctx, bob))
	room := messaging.Snapshot().State.CurrentRoom
	require.NotNil(t, room)

	require.NoError(t, messaging.SendMessage(ctx, room.ID, "hello bob"))
	require.NoError(t, messaging.SendMessage(ctx, room.ID, "hi"))

	_, ok := h.env.API.PostMessage(room.ID, bob, "hey alice")
	require.True(t, ok)

	require.NoError(t, messaging.ListMessages(ctx, room.ID))
	msgs := messaging.Snapshot().State.Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, "hello bob", msgs[0].Content)
	assert.Equal(t, "hey alice", msgs[2].Content)

	require.NoError(t, messaging.ListRooms(ctx))
	assert.Len(t, messaging.Snapshot().State.Rooms, 1)
}
