package fakeapi

import (
	"cmp"
	"net/http"
	"net/mail"
	"net/url"
	"slices"
	"strings"

	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func (s *Server) listShops(c echo.Context) error {
	search := strings.ToLower(c.QueryParam("search"))

	s.db.mu.RLock()
	items := make([]entity.Shop, 0, len(s.db.shops))
	for _, shop := range s.db.shops {
		if search == "" ||
			strings.Contains(strings.ToLower(shop.Name), search) ||
			strings.Contains(strings.ToLower(shop.Description), search) ||
			strings.Contains(strings.ToLower(shop.Address), search) {
			items = append(items, s.db.shopView(shop))
		}
	}
	s.db.mu.RUnlock()

	ordering := c.QueryParam("ordering")
	desc := strings.HasPrefix(ordering, "-")
	var compare func(a, b entity.Shop) int
	switch strings.TrimPrefix(ordering, "-") {
	case "name":
		compare = func(a, b entity.Shop) int { return cmp.Compare(a.Name, b.Name) }
	case "rating":
		compare = func(a, b entity.Shop) int { return cmp.Compare(decimal(a.Rating), decimal(b.Rating)) }
	case "created_at":
		compare = func(a, b entity.Shop) int { return cmp.Compare(a.ID, b.ID) }
	default:
		compare = func(a, b entity.Shop) int { return cmp.Compare(a.ID, b.ID) }
		desc = true
	}
	slices.SortStableFunc(items, func(a, b entity.Shop) int {
		if desc {
			return compare(b, a)
		}

		return compare(a, b)
	})

	return paginate(c, items)
}

func (s *Server) getShop(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c, "Shop")
	}

	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	shop, ok := s.db.shops[id]
	if !ok {
		return notFound(c, "Shop")
	}

	return c.JSON(http.StatusOK, s.db.shopView(shop))
}

func (s *Server) createShop(c echo.Context) error {
	form, err := parseForm(c)
	if err != nil {
		return detail(c, http.StatusBadRequest, msgBadRequest)
	}
	form.require("name", "address")

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	owner := currentUser(c)
	for _, existing := range s.db.shops {
		if existing.Owner == owner {
			return invalid(c, map[string][]string{"owner": {"shop with this owner already exists."}})
		}
	}

	now := s.db.now()
	shop := &entity.Shop{
		Owner:     owner,
		Rating:    "0.00",
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyShopForm(shop, form)
	if form.errs != nil {
		return invalid(c, form.errs)
	}

	shop.ID = s.db.id()
	shop.Images = form.images("shop_images", s.db.id)
	s.db.shops[shop.ID] = shop

	return c.JSON(http.StatusCreated, s.db.shopView(shop))
}

func (s *Server) updateShop(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c, "Shop")
	}
	form, err := parseForm(c)
	if err != nil {
		return detail(c, http.StatusBadRequest, msgBadRequest)
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	current, ok := s.db.shops[id]
	if !ok {
		return notFound(c, "Shop")
	}
	if current.Owner != currentUser(c) {
		return detail(c, http.StatusForbidden, msgForbidden)
	}

	updated := *current
	applyShopForm(&updated, form)
	if form.errs != nil {
		return invalid(c, form.errs)
	}
	updated.Images = append(slices.Clone(current.Images), form.images("shop_images", s.db.id)...)
	updated.UpdatedAt = s.db.now()
	*current = updated

	return c.JSON(http.StatusOK, s.db.shopView(current))
}

func applyShopForm(shop *entity.Shop, form *formValues) {
	form.setString(&shop.Name, "name", 200)
	form.setString(&shop.Description, "description", 0)
	form.setString(&shop.Address, "address", 0)
	form.setString(&shop.PhoneNumber, "phone_number", 15)

	if v, ok := form.str("email"); ok {
		if _, err := mail.ParseAddress(v); v != "" && err != nil {
			form.fail("email", "Enter a valid email address.")
		} else {
			shop.Email = v
		}
	}
	if v, ok := form.str("website"); ok {
		if u, err := url.Parse(v); v != "" && (err != nil || u.Scheme == "" || u.Host == "") {
			form.fail("website", "Enter a valid URL.")
		} else {
			shop.Website = v
		}
	}

	form.setObject(&shop.BusinessHours, "business_hours")
	form.setFile(&shop.Logo, "logo", "shop_logos")
	form.setFile(&shop.CoverImage, "cover_image", "shop_covers")
}

func (s *Server) deleteShop(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c, "Shop")
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	shop, ok := s.db.shops[id]
	if !ok {
		return notFound(c, "Shop")
	}
	if shop.Owner != currentUser(c) {
		return detail(c, http.StatusForbidden, msgForbidden)
	}
	delete(s.db.shops, id)
	delete(s.db.shopReviews, id)

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listShopReviews(c echo.Context) error {
	id, _ := pathID(c)

	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	return c.JSON(http.StatusOK, newestFirst(s.db.shopReviews[id]))
}

func (s *Server) createShopReview(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c, "Shop")
	}

	var input entity.ReviewInput
	if handled, err := s.bindValid(c, &input); handled {
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	shop, ok := s.db.shops[id]
	if !ok {
		return notFound(c, "Shop")
	}

	review, ok := s.db.addReview(s.db.shopReviews, id, currentUser(c), input)
	if !ok {
		return invalid(c, map[string][]string{"non_field_errors": {"The fields shop, reviewer must make a unique set."}})
	}

	shop.TotalRatings = len(s.db.shopReviews[id])
	shop.Rating = formatRating(averageRating(s.db.shopReviews[id]))

	return c.JSON(http.StatusCreated, review)
}
