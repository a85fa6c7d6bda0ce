package fakeapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"storefront/internal/delivery/fakeapi"
	"storefront/internal/delivery/fakeapi/fakeapitest"
	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, out
}

func signIn(t *testing.T, env *fakeapitest.Env, username, password string) entity.Credential {
	t.Helper()

	resp, body := doJSON(t, http.MethodPost, env.Config.API.BaseURL+"/users/token/", "", entity.SignIn{Username: username, Password: password})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var cred entity.Credential
	require.NoError(t, json.Unmarshal(body, &cred))

	return cred
}

func TestToken_InvalidCredentials(t *testing.T) {
	env := fakeapitest.Start(t, fakeapi.Seed{})
	env.MustCreateUser(t, "alice", "secret")

	resp, body := doJSON(t, http.MethodPost, env.Config.API.BaseURL+"/users/token/", "", entity.SignIn{Username: "alice", Password: "bad"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"No active account found with the given credentials"}`, string(body))

	resp, body = doJSON(t, http.MethodPost, env.Config.API.BaseURL+"/users/token/", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"username":["This field is required."],"password":["This field is required."]}`, string(body))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	env := fakeapitest.Start(t, fakeapi.Seed{})
	env.MustCreateUser(t, "alice", "secret")

	resp, body := doJSON(t, http.MethodPost, env.Config.API.BaseURL+"/users/register/", "", entity.Registration{
		Username: "alice", Email: "other@example.com", Password: "secret",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"username":["A user with that username already exists."]}`, string(body))
}

func TestProfile_RequiresToken(t *testing.T) {
	env := fakeapitest.Start(t, fakeapi.Seed{})

	resp, body := doJSON(t, http.MethodGet, env.Config.API.BaseURL+"/users/profile/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(body), "Authentication credentials were not provided.")

	resp, _ = doJSON(t, http.MethodGet, env.Config.API.BaseURL+"/users/profile/", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProducts_PaginationAndFilters(t *testing.T) {
	seed := fakeapi.Seed{Categories: []entity.Category{{ID: 1, Name: "Phones", Slug: "phones"}}}
	for range 12 {
		seed.Products = append(seed.Products, entity.Product{Title: "Phone", Category: 1, Price: "10.00", IsAvailable: true})
	}
	seed.Products = append(seed.Products, entity.Product{Title: "Tablet", Category: 1, Price: "99.00", IsNegotiable: true})
	env := fakeapitest.Start(t, seed)

	resp, body := doJSON(t, http.MethodGet, env.Config.API.BaseURL+"/products/?page=2", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page entity.Page[entity.Product]
	require.NoError(t, json.Unmarshal(body, &page))
	assert.Equal(t, 13, page.Count)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Len(t, page.Results, 3)

	resp, _ = doJSON(t, http.MethodGet, env.Config.API.BaseURL+"/products/?page=3", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	_, body = doJSON(t, http.MethodGet, env.Config.API.BaseURL+"/products/?search=tab&is_negotiable=true", "", nil)
	require.NoError(t, json.Unmarshal(body, &page))
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Tablet", page.Results[0].Title)
}

func TestProducts_CreateAndOwnership(t *testing.T) {
	env := fakeapitest.Start(t, fakeapi.Seed{Categories: []entity.Category{{ID: 1, Name: "Phones", Slug: "phones"}}})
	env.MustCreateUser(t, "seller", "pw")
	env.MustCreateUser(t, "other", "pw")
	seller := signIn(t, env, "seller", "pw")
	other := signIn(t, env, "other", "pw")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("title", "Phone"))
	require.NoError(t, w.WriteField("category", "1"))
	require.NoError(t, w.WriteField("price", "120"))
	require.NoError(t, w.WriteField("original_price", "150"))
	require.NoError(t, w.WriteField("condition", "good"))
	part, err := w.CreateFormFile("images", "front.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, env.Config.API.BaseURL+"/products/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+seller.AccessToken)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var product entity.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&product))
	assert.Equal(t, "120.00", product.Price)
	assert.Equal(t, 20, product.DiscountPercentage)
	require.Len(t, product.Images, 1)
	assert.True(t, strings.HasSuffix(product.Images[0].Image, "front.jpg"))

	url := env.Config.API.BaseURL + "/products/" + jsonID(product.ID) + "/"
	resp2, _ := doJSON(t, http.MethodDelete, url, other.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, resp2.StatusCode)

	resp2, _ = doJSON(t, http.MethodDelete, url, seller.AccessToken, nil)
	assert.Equal(t, http.StatusNoContent, resp2.StatusCode)

	resp2, body := doJSON(t, http.MethodGet, url, "", nil)
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
	assert.JSONEq(t, `{"detail":"No Product matches the given query."}`, string(body))
}

func TestChat_RoomsAndMessages(t *testing.T) {
	env := fakeapitest.Start(t, fakeapi.Seed{})
	env.MustCreateUser(t, "alice", "pw")
	bob := env.MustCreateUser(t, "bob", "pw")
	env.MustCreateUser(t, "eve", "pw")
	alice := signIn(t, env, "alice", "pw")
	eve := signIn(t, env, "eve", "pw")

	resp, body := doJSON(t, http.MethodPost, env.Config.API.BaseURL+"/chat/rooms/", alice.AccessToken, map[string]int64{"participant": bob})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var room entity.ChatRoom
	require.NoError(t, json.Unmarshal(body, &room))
	assert.Len(t, room.Participants, 2)

	base := env.Config.API.BaseURL + "/chat/rooms/" + jsonID(room.ID)
	resp, body = doJSON(t, http.MethodPost, base+"/messages/create/", alice.AccessToken, map[string]string{"content": "hi"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	_, ok := env.API.PostMessage(room.ID, bob, "hello back")
	require.True(t, ok)

	_, body = doJSON(t, http.MethodGet, base+"/messages/", alice.AccessToken, nil)
	var msgs []entity.Message
	require.NoError(t, json.Unmarshal(body, &msgs))
	require.Len(t, msgs, 2)
	assert.Equal(t, "hi", msgs[0].Content)
	assert.Equal(t, "hello back", msgs[1].Content)

	_, body = doJSON(t, http.MethodGet, base+"/messages/", eve.AccessToken, nil)
	assert.JSONEq(t, `[]`, string(body))

	resp, _ = doJSON(t, http.MethodGet, base+"/", eve.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBlacklist(t *testing.T) {
	env := fakeapitest.Start(t, fakeapi.Seed{})
	env.MustCreateUser(t, "alice", "pw")
	cred := signIn(t, env, "alice", "pw")

	resp, _ := doJSON(t, http.MethodPost, env.Config.API.BaseURL+"/users/token/blacklist/", cred.AccessToken, map[string]string{"refresh": cred.RefreshToken})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, env.Config.API.BaseURL+"/users/token/blacklist/", cred.AccessToken, map[string]string{"refresh": cred.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func jsonID(id int64) string {
	data, _ := json.Marshal(id)

	return string(data)
}
