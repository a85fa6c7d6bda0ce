// Package fakeapitest starts the fake storefront API on an httptest server.
package fakeapitest

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/delivery/fakeapi"
	"storefront/internal/infra/auth"

	"golang.org/x/crypto/bcrypt"
)

// Env is a running fake API plus a client config pointing at it.
type Env struct {
	API    *fakeapi.Server
	HTTP   *httptest.Server
	Config *config.Config
}

// Start serves a fake API seeded with seed until the test ends.
func Start(tb testing.TB, seed fakeapi.Seed) *Env {
	tb.Helper()

	cfg := config.Default()
	cfg.Credential.Driver = config.CredentialDriverMemory
	cfg.API.Timeout = 5 * time.Second
	cfg.FakeAPI.AccessSecret = "test-access-secret"
	cfg.FakeAPI.RefreshSecret = "test-refresh-secret"

	tokens, err := auth.NewJWTService(cfg)
	if err != nil {
		tb.Fatalf("jwt service: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := fakeapi.New(cfg, logger, tokens, auth.NewBcryptHasher(bcrypt.MinCost), fakeapi.Options{Seed: seed})

	srv := httptest.NewServer(api)
	tb.Cleanup(srv.Close)

	cfg.API.BaseURL = srv.URL + "/api"

	return &Env{API: api, HTTP: srv, Config: cfg}
}

// MustCreateUser registers an account directly on the fake API.
func (e *Env) MustCreateUser(tb testing.TB, username, password string) int64 {
	tb.Helper()

	user, err := e.API.CreateUser(username, username+"@example.com", password)
	if err != nil {
		tb.Fatalf("create user %s: %v", username, err)
	}

	return user.ID
}
