package transport

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.API.BaseURL = srv.URL + "/api/"
	cfg.API.Timeout = 5 * time.Second

	return NewClient(ClientParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestClient_Headers(t *testing.T) {
	var got *http.Request
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		_, _ = w.Write([]byte(`{"id": 1, "username": "alice"}`))
	})

	user, err := NewSessionAPI(client).GetProfile(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	require.NotNil(t, got)
	assert.Equal(t, "/api/users/profile/", got.URL.Path)
	assert.Equal(t, "Bearer tok", got.Header.Get("Authorization"))
	_, err = uuid.Parse(got.Header.Get("X-Request-Id"))
	assert.NoError(t, err)
}

func TestClient_PropagatesRequestID(t *testing.T) {
	var got string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(deliverycontext.HeaderXRequestID)
		_, _ = w.Write([]byte(`[]`))
	})

	ctx := deliverycontext.WithRequestID(context.Background(), "cli-42")
	_, err := NewCatalogAPI(client).ListCategories(ctx)

	require.NoError(t, err)
	assert.Equal(t, "cli-42", got)
}

func TestClient_NoAuthorizationWithoutToken(t *testing.T) {
	var header string
	var present bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("Authorization")
		_, present = r.Header["Authorization"]
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Authentication credentials were not provided."}`))
	})

	err := NewCatalogAPI(client).DeleteProduct(context.Background(), "", 3)
	assert.Empty(t, header)
	assert.False(t, present)

	var se *domainerrors.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, domainerrors.KindAuthorization, se.Kind())
	assert.Equal(t, "Authentication credentials were not provided.", se.Detail())
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   domainerrors.Kind
		detail string
		fields map[string][]string
	}{
		{name: "validation", status: 400, body: `{"title":["This field is required."]}`, kind: domainerrors.KindValidation, fields: map[string][]string{"title": {"This field is required."}}},
		{name: "forbidden", status: 403, body: `{"detail":"nope"}`, kind: domainerrors.KindAuthorization, detail: "nope"},
		{name: "not found", status: 404, body: `{"detail":"Not found."}`, kind: domainerrors.KindNotFound, detail: "Not found."},
		{name: "server error html", status: 500, body: `<html>boom</html>`, kind: domainerrors.KindTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := NewCatalogAPI(client).GetProduct(context.Background(), 1)

			var se *domainerrors.StoreError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.kind, se.Kind())
			assert.Equal(t, tt.detail, se.Detail())
			assert.Equal(t, tt.fields, se.Fields())
			assert.Equal(t, tt.status, se.HTTPCode())
		})
	}
}

func TestClient_UndecodableBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := NewCatalogAPI(client).GetProduct(context.Background(), 1)
	require.Error(t, err)

	se := domainerrors.Normalize(err, "Request failed")
	assert.Equal(t, domainerrors.KindTransport, se.Kind())
}

func TestSessionAPI_ObtainTokenRejectedIsValidation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid credentials"}`))
	})

	cred, err := NewSessionAPI(client).ObtainToken(context.Background(), entity.SignIn{Username: "alice", Password: "bad"})
	assert.Nil(t, cred)

	var se *domainerrors.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, domainerrors.KindValidation, se.Kind())
	assert.Equal(t, "Invalid credentials", se.Detail())
}

func TestSessionAPI_RevokeDisabled(t *testing.T) {
	called := false
	client := newTestClient(t, func(http.ResponseWriter, *http.Request) { called = true })
	client.signOutPath = ""

	require.NoError(t, NewSessionAPI(client).RevokeToken(context.Background(), "a", "r"))
	assert.False(t, called)
}

func TestCatalogAPI_ListQueryAndPageDefault(t *testing.T) {
	var query map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		_, _ = w.Write([]byte(`{"results":[{"id":1},{"id":2}],"count":12}`))
	})

	available := true
	page, err := NewCatalogAPI(client).ListProducts(context.Background(), entity.ProductFilter{
		Page: 2, Search: "phone", Category: 3, Condition: entity.ConditionGood, IsAvailable: &available,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 12, page.Count)
	assert.Len(t, page.Results, 2)

	assert.Equal(t, []string{"2"}, query["page"])
	assert.Equal(t, []string{"phone"}, query["search"])
	assert.Equal(t, []string{"3"}, query["category"])
	assert.Equal(t, []string{"good"}, query["condition"])
	assert.Equal(t, []string{"true"}, query["is_available"])
	assert.NotContains(t, query, "brand")
}

func TestDecodeList(t *testing.T) {
	bare, err := decodeList[entity.Category](json.RawMessage(`[{"id":1,"name":"a"}]`))
	require.NoError(t, err)
	assert.Len(t, bare, 1)

	wrapped, err := decodeList[entity.Category](json.RawMessage(` {"results":[{"id":1},{"id":2}],"count":2}`))
	require.NoError(t, err)
	assert.Len(t, wrapped, 2)

	_, err = decodeList[entity.Category](json.RawMessage(`"x"`))
	assert.Error(t, err)
}

func TestClient_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMessagingAPI(client).ListRooms(ctx, "tok")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	se := domainerrors.Normalize(err, "Failed")
	assert.Equal(t, domainerrors.KindTransport, se.Kind())
	assert.Equal(t, "REQUEST_CANCELLED", se.ErrorCode())
}
