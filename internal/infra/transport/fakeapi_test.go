package transport_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"storefront/internal/delivery/fakeapi"
	"storefront/internal/delivery/fakeapi/fakeapitest"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(env *fakeapitest.Env) *transport.Client {
	return transport.NewClient(transport.ClientParams{
		Config: env.Config,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestAgainstFakeAPI_SessionFlow(t *testing.T) {
	ctx := context.Background()
	env := fakeapitest.Start(t, fakeapi.Seed{})
	session := transport.NewSessionAPI(newClient(env))

	user, err := session.Register(ctx, entity.Registration{Username: "alice", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = session.ObtainToken(ctx, entity.SignIn{Username: "alice", Password: "bad"})
	var se *domainerrors.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, domainerrors.KindValidation, se.Kind())

	cred, err := session.ObtainToken(ctx, entity.SignIn{Username: "alice@example.com", Password: "pw"})
	require.NoError(t, err)

	updated, err := session.UpdateProfile(ctx, cred.AccessToken, map[string]any{"first_name": "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated["first_name"])

	profile, err := session.GetProfile(ctx, cred.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.FirstName)

	require.NoError(t, session.RevokeToken(ctx, cred.AccessToken, cred.RefreshToken))
	claims, ok := cred.Claims()
	require.True(t, ok)
	assert.NotEmpty(t, claims.Subject)
}

func TestAgainstFakeAPI_CatalogMultipart(t *testing.T) {
	ctx := context.Background()
	env := fakeapitest.Start(t, fakeapi.DefaultSeed())
	env.MustCreateUser(t, "seller", "pw")
	client := newClient(env)

	cred, err := transport.NewSessionAPI(client).ObtainToken(ctx, entity.SignIn{Username: "seller", Password: "pw"})
	require.NoError(t, err)

	catalog := transport.NewCatalogAPI(client)
	negotiable := false
	created, err := catalog.CreateProduct(ctx, cred.AccessToken, entity.ProductInput{
		Category:       1,
		Title:          "Phone",
		Price:          "10",
		Condition:      entity.ConditionNew,
		Specifications: map[string]any{"ram": "8GB"},
		IsNegotiable:   &negotiable,
	}, []entity.Upload{{FileName: "a.png", Content: strings.NewReader("png")}})
	require.NoError(t, err)
	assert.Equal(t, "10.00", created.Price)
	assert.False(t, created.IsNegotiable)
	assert.Equal(t, "8GB", created.Specifications["ram"])
	require.Len(t, created.Images, 1)

	updated, err := catalog.UpdateProduct(ctx, cred.AccessToken, created.ID, entity.ProductInput{Title: "Phone 2"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Phone 2", updated.Title)
	assert.Equal(t, "10.00", updated.Price)

	_, err = catalog.CreateProduct(ctx, cred.AccessToken, entity.ProductInput{Title: "no price"}, nil)
	var se *domainerrors.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, domainerrors.KindValidation, se.Kind())
	assert.Contains(t, se.Fields(), "price")

	categories, err := catalog.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 3)

	featured, err := catalog.ListFeaturedBrands(ctx)
	require.NoError(t, err)
	assert.Len(t, featured, 1)

	review, err := catalog.CreateProductReview(ctx, cred.AccessToken, created.ID, entity.ReviewInput{Rating: 5, Comment: "great"})
	require.NoError(t, err)
	assert.Equal(t, "seller", review.ReviewerName)

	reviews, err := catalog.ListProductReviews(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	require.NoError(t, catalog.DeleteProduct(ctx, cred.AccessToken, created.ID))
	_, err = catalog.GetProduct(ctx, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAgainstFakeAPI_ShopMultipart(t *testing.T) {
	ctx := context.Background()
	env := fakeapitest.Start(t, fakeapi.Seed{})
	env.MustCreateUser(t, "owner", "pw")
	client := newClient(env)

	cred, err := transport.NewSessionAPI(client).ObtainToken(ctx, entity.SignIn{Username: "owner", Password: "pw"})
	require.NoError(t, err)

	shops := transport.NewMarketplaceAPI(client)
	shop, err := shops.CreateShop(ctx, cred.AccessToken, entity.ShopInput{
		Name:    "Corner",
		Address: "1 Main St",
		Logo:    &entity.Upload{FileName: "logo.png", Content: strings.NewReader("png")},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "/media/shop_logos/logo.png", shop.Logo)

	page, err := shops.ListShops(ctx, entity.ShopFilter{Search: "corner"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Count)
	assert.Equal(t, 1, page.CurrentPage)
}

func TestAgainstFakeAPI_Messaging(t *testing.T) {
	ctx := context.Background()
	env := fakeapitest.Start(t, fakeapi.Seed{})
	env.MustCreateUser(t, "alice", "pw")
	bob := env.MustCreateUser(t, "bob", "pw")
	client := newClient(env)

	cred, err := transport.NewSessionAPI(client).ObtainToken(ctx, entity.SignIn{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	chat := transport.NewMessagingAPI(client)
	room, err := chat.CreateRoom(ctx, cred.AccessToken, bob)
	require.NoError(t, err)

	msg, err := chat.SendMessage(ctx, cred.AccessToken, room.ID, "hi")
	require.NoError(t, err)
	assert.Equal(t, "hi", msg.Content)

	rooms, err := chat.ListRooms(ctx, cred.AccessToken)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	require.NotNil(t, rooms[0].LastMessage)
	assert.Equal(t, msg.ID, rooms[0].LastMessage.ID)

	_, err = chat.ListRooms(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrAuthorization)
}
