// Package entity contains the records exchanged with the storefront API,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// UserType is the account role chosen at registration.
type UserType string

const (
	UserTypeBuyer  UserType = "buyer"
	UserTypeSeller UserType = "seller"
	UserTypeShop   UserType = "shop"
)

// User is the profile of the signed-in account as returned by /users/profile/.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name,omitempty"`
	LastName       string    `json:"last_name,omitempty"`
	UserType       UserType  `json:"user_type,omitempty"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	Address        string    `json:"address,omitempty"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	Rating         string    `json:"rating,omitempty"` // decimal string, e.g. "4.50"
	TotalRatings   int       `json:"total_ratings,omitempty"`
	IsVerified     bool      `json:"is_verified"`
	CreatedAt      time.Time `json:"created_at,omitzero"`
	UpdatedAt      time.Time `json:"updated_at,omitzero"`
}

// Registration holds the fields needed to create an account.
// Creating an account never authenticates the caller.
type Registration struct {
	Username    string   `json:"username" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required"`
	Password2   string   `json:"password2,omitempty" validate:"omitempty,eqfield=Password"`
	FirstName   string   `json:"first_name,omitempty"`
	LastName    string   `json:"last_name,omitempty"`
	UserType    UserType `json:"user_type,omitempty" validate:"omitempty,oneof=buyer seller shop"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	Address     string   `json:"address,omitempty"`
}

// SignIn is the body of the token endpoint. The username field accepts an email as well.
type SignIn struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
