package transport

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

type sessionAPI struct {
	client *Client
}

// NewSessionAPI creates the /users endpoints client
func NewSessionAPI(client *Client) service.SessionAPI {
	return &sessionAPI{client: client}
}

// ObtainToken posts the credentials. No credential is presented on this call,
// so a rejection (400 or 401) is reported as a validation failure.
func (a *sessionAPI) ObtainToken(ctx context.Context, input entity.SignIn) (*entity.Credential, error) {
	cl, err := jsonCall(http.MethodPost, "/users/token/", "", input)
	if err != nil {
		return nil, err
	}

	var cred entity.Credential
	if err := a.client.do(ctx, cl, &cred); err != nil {
		var se *domainerrors.StoreError
		if errors.As(err, &se) && se.Kind() == domainerrors.KindAuthorization {
			return nil, domainerrors.NewValidationError(se.HTTPCode(), se.Detail(), nil)
		}

		return nil, err
	}
	if cred.IsZero() {
		return nil, errors.New("token response carries no access token")
	}

	return &cred, nil
}

func (a *sessionAPI) Register(ctx context.Context, input entity.Registration) (*entity.User, error) {
	cl, err := jsonCall(http.MethodPost, "/users/register/", "", input)
	if err != nil {
		return nil, err
	}

	var user entity.User
	if err := a.client.do(ctx, cl, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (a *sessionAPI) GetProfile(ctx context.Context, accessToken string) (*entity.User, error) {
	var user entity.User
	if err := a.client.do(ctx, call{method: http.MethodGet, path: "/users/profile/", accessToken: accessToken}, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (a *sessionAPI) UpdateProfile(ctx context.Context, accessToken string, fields map[string]any) (map[string]any, error) {
	cl, err := jsonCall(http.MethodPatch, "/users/profile/", accessToken, fields)
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := a.client.do(ctx, cl, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// RevokeToken blacklists the refresh token. An empty sign-out path disables the call.
func (a *sessionAPI) RevokeToken(ctx context.Context, accessToken, refreshToken string) error {
	if a.client.signOutPath == "" {
		return nil
	}

	cl, err := jsonCall(http.MethodPost, a.client.signOutPath, accessToken, map[string]string{"refresh": refreshToken})
	if err != nil {
		return err
	}

	return a.client.do(ctx, cl, nil)
}
