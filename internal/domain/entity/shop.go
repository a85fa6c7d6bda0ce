package entity

import "time"

// Shop is a storefront listed in the marketplace directory.
type Shop struct {
	ID            int64          `json:"id"`
	Owner         int64          `json:"owner"`
	OwnerName     string         `json:"owner_name,omitempty"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Logo          string         `json:"logo,omitempty"`
	CoverImage    string         `json:"cover_image,omitempty"`
	Address       string         `json:"address"`
	PhoneNumber   string         `json:"phone_number,omitempty"`
	Email         string         `json:"email,omitempty"`
	Website       string         `json:"website,omitempty"`
	BusinessHours map[string]any `json:"business_hours,omitempty"`
	IsVerified    bool           `json:"is_verified"`
	Rating        string         `json:"rating,omitempty"`
	TotalRatings  int            `json:"total_ratings"`
	Images        []Image        `json:"images,omitempty"`
	Reviews       []Review       `json:"reviews,omitempty"`
	AverageRating float64        `json:"average_rating"`
	CreatedAt     time.Time      `json:"created_at,omitzero"`
	UpdatedAt     time.Time      `json:"updated_at,omitzero"`
}

// ShopInput is the multipart payload of shop create/update. Logo and CoverImage
// are sent as file parts when set.
type ShopInput struct {
	Name          string         `form:"name" validate:"omitempty,max=200"`
	Description   string         `form:"description"`
	Address       string         `form:"address"`
	PhoneNumber   string         `form:"phone_number" validate:"omitempty,max=15"`
	Email         string         `form:"email" validate:"omitempty,email"`
	Website       string         `form:"website" validate:"omitempty,url"`
	BusinessHours map[string]any `form:"business_hours"`
	Logo          *Upload        `form:"-"`
	CoverImage    *Upload        `form:"-"`
}

// ShopFilter maps onto the shop list endpoint's query parameters.
type ShopFilter struct {
	Page     int
	Search   string
	Ordering string
}
