package fakeapi

import (
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/util"

	"github.com/labstack/echo/v4"
)

// bindValid binds the JSON body into v and validates it, writing the 400 response itself.
// handled is true when a response has already been written.
func (s *Server) bindValid(c echo.Context, v any) (handled bool, err error) {
	if err := c.Bind(v); err != nil {
		return true, detail(c, http.StatusBadRequest, msgBadRequest)
	}
	if err := s.validate.Struct(v); err != nil {
		if fields, ok := util.FieldErrors(err); ok {
			return true, invalid(c, fields)
		}

		return true, err
	}

	return false, nil
}

func (s *Server) obtainToken(c echo.Context) error {
	var input entity.SignIn
	if handled, err := s.bindValid(c, &input); handled {
		return err
	}

	s.db.mu.RLock()
	user := s.db.userByLogin(input.Username)
	s.db.mu.RUnlock()

	if user == nil || !s.hasher.Check(input.Password, user.passwordHash) {
		return detail(c, http.StatusUnauthorized, "No active account found with the given credentials")
	}

	access, refresh, err := s.tokens.GenerateTokens(user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, entity.Credential{AccessToken: access, RefreshToken: refresh})
}

func (s *Server) blacklistToken(c echo.Context) error {
	var body struct {
		Refresh string `json:"refresh" validate:"required"`
	}
	if handled, err := s.bindValid(c, &body); handled {
		return err
	}

	claims, err := s.tokens.ValidateToken(body.Refresh, service.TokenTypeRefresh)
	if err != nil {
		return detail(c, http.StatusUnauthorized, "Token is invalid or expired")
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.blacklist[claims.ID]; ok {
		return detail(c, http.StatusUnauthorized, "Token is blacklisted")
	}
	s.db.blacklist[claims.ID] = struct{}{}

	return c.JSON(http.StatusOK, map[string]any{})
}

// Blacklisted reports whether the refresh token with the given jti was revoked.
func (s *Server) Blacklisted(jti string) bool {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	_, ok := s.db.blacklist[jti]

	return ok
}

func (s *Server) register(c echo.Context) error {
	var input entity.Registration
	if handled, err := s.bindValid(c, &input); handled {
		return err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if s.db.userByLogin(input.Username) != nil {
		return invalid(c, map[string][]string{"username": {"A user with that username already exists."}})
	}
	if s.db.userByLogin(input.Email) != nil {
		return invalid(c, map[string][]string{"email": {"A user with that email already exists."}})
	}

	userType := input.UserType
	if userType == "" {
		userType = entity.UserTypeBuyer
	}

	now := s.db.now()
	user := &userRecord{
		User: entity.User{
			ID:          s.db.id(),
			Username:    input.Username,
			Email:       input.Email,
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			UserType:    userType,
			PhoneNumber: input.PhoneNumber,
			Address:     input.Address,
			Rating:      "0.00",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		passwordHash: hash,
	}
	s.db.users[user.ID] = user

	return c.JSON(http.StatusCreated, user.User)
}

func (s *Server) getProfile(c echo.Context) error {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	return c.JSON(http.StatusOK, s.db.users[currentUser(c)].User)
}

func (s *Server) updateProfile(c echo.Context) error {
	var body struct {
		Email       *string `json:"email" validate:"omitempty,email"`
		FirstName   *string `json:"first_name"`
		LastName    *string `json:"last_name"`
		PhoneNumber *string `json:"phone_number" validate:"omitempty,max=15"`
		Address     *string `json:"address"`
	}
	if handled, err := s.bindValid(c, &body); handled {
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	user := s.db.users[currentUser(c)]
	assign(&user.Email, body.Email)
	assign(&user.FirstName, body.FirstName)
	assign(&user.LastName, body.LastName)
	assign(&user.PhoneNumber, body.PhoneNumber)
	assign(&user.Address, body.Address)
	user.UpdatedAt = s.db.now()

	return c.JSON(http.StatusOK, user.User)
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// CreateUser registers an account directly, bypassing the HTTP layer.
func (s *Server) CreateUser(username, email, password string) (entity.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return entity.User{}, err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	now := s.db.now()
	user := &userRecord{
		User: entity.User{
			ID:        s.db.id(),
			Username:  username,
			Email:     email,
			UserType:  entity.UserTypeBuyer,
			Rating:    "0.00",
			CreatedAt: now,
			UpdatedAt: now,
		},
		passwordHash: hash,
	}
	s.db.users[user.ID] = user

	return user.User, nil
}
