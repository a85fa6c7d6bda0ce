package entity

import (
	"io"
	"time"
)

// Condition is the listed state of a product.
type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionLikeNew Condition = "like_new"
	ConditionGood    Condition = "good"
	ConditionFair    Condition = "fair"
	ConditionPoor    Condition = "poor"
)

// Category is a read-only reference record. ParentID is nil for top-level categories.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ParentID *int64 `json:"parent,omitempty"`
	Icon     string `json:"icon,omitempty"`
}

// Brand is a read-only reference record.
type Brand struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Logo        string `json:"logo,omitempty"`
	Description string `json:"description,omitempty"`
	IsFeatured  bool   `json:"is_featured"`
}

// Image is an uploaded picture attached to a product or a shop.
type Image struct {
	ID        int64  `json:"id"`
	Image     string `json:"image"`
	IsPrimary bool   `json:"is_primary"`
}

// Review is a rating left on a product or a shop.
type Review struct {
	ID           int64     `json:"id"`
	Reviewer     int64     `json:"reviewer"`
	ReviewerName string    `json:"reviewer_name,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
	UpdatedAt    time.Time `json:"updated_at,omitzero"`
}

// ReviewInput is the body of a review creation.
type ReviewInput struct {
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

// Product is a catalog listing. Prices are decimal strings as served by the API.
type Product struct {
	ID                 int64          `json:"id"`
	Seller             int64          `json:"seller"`
	SellerName         string         `json:"seller_name,omitempty"`
	Category           int64          `json:"category"`
	CategoryName       string         `json:"category_name,omitempty"`
	Brand              *int64         `json:"brand,omitempty"`
	BrandName          string         `json:"brand_name,omitempty"`
	BrandLogo          string         `json:"brand_logo,omitempty"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Price              string         `json:"price"`
	OriginalPrice      string         `json:"original_price,omitempty"`
	DiscountPercentage int            `json:"discount_percentage"`
	Condition          Condition      `json:"condition"`
	Model              string         `json:"model"`
	Specifications     map[string]any `json:"specifications,omitempty"`
	Location           string         `json:"location"`
	IsNegotiable       bool           `json:"is_negotiable"`
	IsAvailable        bool           `json:"is_available"`
	IsFeatured         bool           `json:"is_featured"`
	IsDailyEssential   bool           `json:"is_daily_essential"`
	Views              int            `json:"views"`
	Images             []Image        `json:"images,omitempty"`
	Reviews            []Review       `json:"reviews,omitempty"`
	AverageRating      float64        `json:"average_rating"`
	CreatedAt          time.Time      `json:"created_at,omitzero"`
	UpdatedAt          time.Time      `json:"updated_at,omitzero"`
}

// ProductInput is the multipart payload of product create/update. Empty strings,
// zero ids and nil pointers are left out of the request, which makes the same
// type usable for partial updates.
type ProductInput struct {
	Category         int64             `form:"category" validate:"omitempty,gt=0"`
	Brand            int64             `form:"brand" validate:"omitempty,gt=0"`
	Title            string            `form:"title" validate:"omitempty,max=200"`
	Description      string            `form:"description"`
	Price            string            `form:"price" validate:"omitempty,numeric"`
	OriginalPrice    string            `form:"original_price" validate:"omitempty,numeric"`
	Condition        Condition         `form:"condition" validate:"omitempty,oneof=new like_new good fair poor"`
	Model            string            `form:"model"`
	Specifications   map[string]any    `form:"specifications"`
	Location         string            `form:"location"`
	IsNegotiable     *bool             `form:"is_negotiable"`
	IsFeatured       *bool             `form:"is_featured"`
	IsDailyEssential *bool             `form:"is_daily_essential"`
	Extra            map[string]string `form:"-"`
}

// ProductFilter maps onto the list endpoint's query parameters.
type ProductFilter struct {
	Page         int
	Search       string
	Category     int64
	Brand        int64
	Condition    Condition
	Ordering     string
	IsAvailable  *bool
	IsNegotiable *bool
}

// Upload is a file part of a multipart request.
type Upload struct {
	FileName string
	Content  io.Reader
}
