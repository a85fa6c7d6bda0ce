package errors

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromResponse_Classification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   Kind
		detail string
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"title":["This field is required."]}`, kind: KindValidation},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"detail":"Invalid credentials"}`, kind: KindAuthorization, detail: "Invalid credentials"},
		{name: "forbidden", status: http.StatusForbidden, body: `{"detail":"You do not have permission"}`, kind: KindAuthorization, detail: "You do not have permission"},
		{name: "not found", status: http.StatusNotFound, body: `{"detail":"Not found."}`, kind: KindNotFound, detail: "Not found."},
		{name: "not found html", status: http.StatusNotFound, body: `<html></html>`, kind: KindNotFound},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, kind: KindTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			se := FromResponse(tt.status, []byte(tt.body))

			require.NotNil(t, se)
			assert.Equal(t, tt.kind, se.Kind())
			assert.Equal(t, tt.detail, se.Detail())
			assert.Equal(t, tt.status, se.HTTPCode())
		})
	}
}

func TestFromResponse_FieldMessages(t *testing.T) {
	body := `{"price":["A valid number is required."],"non_field_errors":"Duplicate listing","detail":"Bad input","nested":{"a":1}}`

	se := FromResponse(http.StatusBadRequest, []byte(body))

	require.Equal(t, KindValidation, se.Kind())
	assert.Equal(t, "Bad input", se.Detail())
	fields := se.Fields()
	assert.Equal(t, []string{"A valid number is required."}, fields["price"])
	assert.Equal(t, []string{"Duplicate listing"}, fields["non_field_errors"])
	assert.Equal(t, []string{`{"a":1}`}, fields["nested"])

	fields["price"][0] = "mutated"
	assert.Equal(t, []string{"A valid number is required."}, se.Fields()["price"])
}

func TestNormalize(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, Normalize(nil, "x"))
	})

	t.Run("store error is kept through wrapping", func(t *testing.T) {
		orig := NewNotFoundError("gone")
		se := Normalize(pkgerrors.Wrap(orig, "get product"), "fallback")

		assert.Same(t, orig, se)
	})

	t.Run("plain error becomes transport with fallback", func(t *testing.T) {
		se := Normalize(stderrors.New("dial tcp: refused"), "Login failed")

		assert.Equal(t, KindTransport, se.Kind())
		assert.Equal(t, "Login failed", se.Message())
		assert.Contains(t, se.Details(), "refused")
	})

	t.Run("context cancellation", func(t *testing.T) {
		se := Normalize(context.Canceled, "Failed")

		assert.Equal(t, KindTransport, se.Kind())
		assert.Equal(t, "REQUEST_CANCELLED", se.ErrorCode())
		assert.ErrorIs(t, se, context.Canceled)
	})
}

func TestStoreError_IsSentinel(t *testing.T) {
	se := NewAuthorizationError(http.StatusUnauthorized, "Token expired")

	assert.ErrorIs(t, se, ErrAuthorization)
	assert.NotErrorIs(t, se, ErrNotFound)
	assert.ErrorIs(t, pkgerrors.WithStack(se), ErrAuthorization)
}

func TestPayload_MarshalJSON(t *testing.T) {
	data, err := Payload{Detail: "Invalid credentials", Fields: map[string][]string{"username": {"required"}}}.MarshalJSON()

	require.NoError(t, err)
	assert.JSONEq(t, `{"detail":"Invalid credentials","username":["required"]}`, string(data))
}
