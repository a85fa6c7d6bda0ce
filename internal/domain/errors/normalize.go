package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"sort"
)

// Payload is the DRF-shaped error body: an optional "detail" plus field messages.
type Payload struct {
	Detail string              `json:"detail,omitempty"`
	Fields map[string][]string `json:"-"`
}

// MarshalJSON flattens Fields next to detail, the way the API renders them.
func (p Payload) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Fields)+1)
	for k, v := range p.Fields {
		out[k] = v
	}
	if p.Detail != "" {
		out["detail"] = p.Detail
	}

	return json.Marshal(out)
}

// FromResponse classifies a non-2xx response. Bodies that are not a JSON object
// leave detail empty; statuses outside 400/401/403/404 become transport errors.
func FromResponse(status int, body []byte) *StoreError {
	payload, structured := parsePayload(body)

	switch status {
	case http.StatusBadRequest:
		return NewValidationError(status, payload.Detail, payload.Fields)
	case http.StatusUnauthorized, http.StatusForbidden:
		return NewAuthorizationError(status, payload.Detail)
	case http.StatusNotFound:
		return NewNotFoundError(payload.Detail)
	}

	se := NewTransportError(status, http.StatusText(status), fmt.Errorf("unexpected status %d", status))
	if structured {
		se.detail = payload.Detail
	}

	return se
}

// Normalize converts any error into a StoreError. Errors that already are
// StoreErrors are returned as is; everything else becomes a transport error
// carrying fallback as its message.
func Normalize(err error, fallback string) *StoreError {
	if err == nil {
		return nil
	}

	var se *StoreError
	if stderrors.As(err, &se) {
		return se
	}

	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		se = NewTransportError(0, fallback, err)
		se.errorCode = "REQUEST_CANCELLED"

		return se
	}

	return NewTransportError(0, fallback, err)
}

func parsePayload(body []byte) (Payload, bool) {
	var raw map[string]json.RawMessage
	if len(body) == 0 || json.Unmarshal(body, &raw) != nil {
		return Payload{}, false
	}

	var p Payload
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := raw[k]
		if k == "detail" {
			_ = json.Unmarshal(v, &p.Detail)
			continue
		}
		msgs := decodeMessages(v)
		if len(msgs) == 0 {
			continue
		}
		if p.Fields == nil {
			p.Fields = make(map[string][]string)
		}
		p.Fields[k] = msgs
	}

	return p, true
}

// decodeMessages accepts either a string or a list of strings; anything else is
// kept as its raw JSON text so no server message is lost.
func decodeMessages(v json.RawMessage) []string {
	var one string
	if json.Unmarshal(v, &one) == nil {
		return []string{one}
	}
	var many []string
	if json.Unmarshal(v, &many) == nil {
		return many
	}

	return []string{string(v)}
}
