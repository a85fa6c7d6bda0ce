package fakeapi

import (
	"cmp"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func (s *Server) listProducts(c echo.Context) error {
	s.db.mu.RLock()
	items := make([]entity.Product, 0, len(s.db.products))
	for _, p := range s.db.products {
		if productMatches(p, s.db.brands, c) {
			items = append(items, s.db.productView(p))
		}
	}
	s.db.mu.RUnlock()

	sortProducts(items, c.QueryParam("ordering"))

	return paginate(c, items)
}

func productMatches(p *entity.Product, brands []entity.Brand, c echo.Context) bool {
	if v := c.QueryParam("category"); v != "" && v != strconv.FormatInt(p.Category, 10) {
		return false
	}
	if v := c.QueryParam("brand"); v != "" && (p.Brand == nil || v != strconv.FormatInt(*p.Brand, 10)) {
		return false
	}
	if v := c.QueryParam("condition"); v != "" && v != string(p.Condition) {
		return false
	}
	if v := c.QueryParam("is_available"); v != "" && v != strconv.FormatBool(p.IsAvailable) {
		return false
	}
	if v := c.QueryParam("is_negotiable"); v != "" && v != strconv.FormatBool(p.IsNegotiable) {
		return false
	}

	search := strings.ToLower(c.QueryParam("search"))
	if search == "" {
		return true
	}
	haystack := []string{p.Title, p.Description, p.Model}
	if p.Brand != nil {
		for _, b := range brands {
			if b.ID == *p.Brand {
				haystack = append(haystack, b.Name)
			}
		}
	}
	for _, h := range haystack {
		if strings.Contains(strings.ToLower(h), search) {
			return true
		}
	}

	return false
}

// sortProducts applies ?ordering=price|created_at|views (optionally prefixed
// with "-"); the default is newest first.
func sortProducts(items []entity.Product, ordering string) {
	desc := strings.HasPrefix(ordering, "-")
	field := strings.TrimPrefix(ordering, "-")

	var compare func(a, b entity.Product) int
	switch field {
	case "price":
		compare = func(a, b entity.Product) int { return cmp.Compare(decimal(a.Price), decimal(b.Price)) }
	case "views":
		compare = func(a, b entity.Product) int { return cmp.Compare(a.Views, b.Views) }
	case "created_at":
		compare = func(a, b entity.Product) int { return cmp.Compare(a.ID, b.ID) }
	default:
		compare = func(a, b entity.Product) int { return cmp.Compare(a.ID, b.ID) }
		desc = true
	}

	slices.SortStableFunc(items, func(a, b entity.Product) int {
		if desc {
			return compare(b, a)
		}

		return compare(a, b)
	})
}

func decimal(v string) float64 {
	n, _ := strconv.ParseFloat(v, 64)

	return n
}

func (s *Server) getProduct(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c, "Product")
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	p, ok := s.db.products[id]
	if !ok {
		return notFound(c, "Product")
	}
	p.Views++

	return c.JSON(http.StatusOK, s.db.productView(p))
}

func (s *Server) createProduct(c echo.Context) error {
	form, err := parseForm(c)
	if err != nil {
		return detail(c, http.StatusBadRequest, msgBadRequest)
	}
	form.require("category", "title", "price", "condition")

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	now := s.db.now()
	p := &entity.Product{
		Seller:       currentUser(c),
		IsNegotiable: true,
		IsAvailable:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.applyProductForm(p, form)
	if form.errs != nil {
		return invalid(c, form.errs)
	}

	p.ID = s.db.id()
	p.Images = form.images("product_images", s.db.id)
	s.db.products[p.ID] = p

	return c.JSON(http.StatusCreated, s.db.productView(p))
}

func (s *Server) updateProduct(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c, "Product")
	}
	form, err := parseForm(c)
	if err != nil {
		return detail(c, http.StatusBadRequest, msgBadRequest)
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	current, ok := s.db.products[id]
	if !ok {
		return notFound(c, "Product")
	}
	if current.Seller != currentUser(c) {
		return detail(c, http.StatusForbidden, msgForbidden)
	}

	updated := *current
	s.applyProductForm(&updated, form)
	if form.errs != nil {
		return invalid(c, form.errs)
	}
	updated.Images = append(slices.Clone(current.Images), form.images("product_images", s.db.id)...)
	updated.UpdatedAt = s.db.now()
	*current = updated

	return c.JSON(http.StatusOK, s.db.productView(current))
}

// applyProductForm copies every present form field onto p. Callers hold mu.
func (s *Server) applyProductForm(p *entity.Product, form *formValues) {
	form.setID(&p.Category, "category")
	if _, ok := form.str("category"); ok && form.errs["category"] == nil && !slices.ContainsFunc(s.db.categories, func(c entity.Category) bool { return c.ID == p.Category }) {
		form.fail("category", `Invalid pk "`+strconv.FormatInt(p.Category, 10)+`" - object does not exist.`)
	}

	var brand int64
	form.setID(&brand, "brand")
	if brand > 0 {
		if slices.ContainsFunc(s.db.brands, func(b entity.Brand) bool { return b.ID == brand }) {
			p.Brand = &brand
		} else {
			form.fail("brand", `Invalid pk "`+strconv.FormatInt(brand, 10)+`" - object does not exist.`)
		}
	}

	form.setString(&p.Title, "title", 200)
	form.setString(&p.Description, "description", 0)
	form.setDecimal(&p.Price, "price")
	form.setDecimal(&p.OriginalPrice, "original_price")

	var condition string
	form.setString(&condition, "condition", 10)
	switch entity.Condition(condition) {
	case "":
	case entity.ConditionNew, entity.ConditionLikeNew, entity.ConditionGood, entity.ConditionFair, entity.ConditionPoor:
		p.Condition = entity.Condition(condition)
	default:
		form.fail("condition", `"`+condition+`" is not a valid choice.`)
	}

	form.setString(&p.Model, "model", 100)
	form.setObject(&p.Specifications, "specifications")
	form.setString(&p.Location, "location", 200)
	form.setBool(&p.IsNegotiable, "is_negotiable")
	form.setBool(&p.IsAvailable, "is_available")
	form.setBool(&p.IsFeatured, "is_featured")
	form.setBool(&p.IsDailyEssential, "is_daily_essential")

	p.DiscountPercentage = 0
	if price, original := decimal(p.Price), decimal(p.OriginalPrice); original > price {
		p.DiscountPercentage = int((original - price) / original * 100)
	}
}

func (s *Server) deleteProduct(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c, "Product")
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	p, ok := s.db.products[id]
	if !ok {
		return notFound(c, "Product")
	}
	if p.Seller != currentUser(c) {
		return detail(c, http.StatusForbidden, msgForbidden)
	}
	delete(s.db.products, id)
	delete(s.db.productReviews, id)

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listCategories(c echo.Context) error {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	return c.JSON(http.StatusOK, append([]entity.Category{}, s.db.categories...))
}

func (s *Server) listBrands(c echo.Context) error {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	return c.JSON(http.StatusOK, append([]entity.Brand{}, s.db.brands...))
}

func (s *Server) listFeaturedBrands(c echo.Context) error {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := []entity.Brand{}
	for _, b := range s.db.brands {
		if b.IsFeatured {
			out = append(out, b)
		}
	}

	return c.JSON(http.StatusOK, out)
}

func (s *Server) listFeaturedProducts(c echo.Context) error {
	return s.listProductsWhere(c, func(p *entity.Product) bool { return p.IsFeatured && p.IsAvailable })
}

func (s *Server) listDailyEssentials(c echo.Context) error {
	return s.listProductsWhere(c, func(p *entity.Product) bool { return p.IsDailyEssential && p.IsAvailable })
}

func (s *Server) listProductsWhere(c echo.Context, keep func(*entity.Product) bool) error {
	s.db.mu.RLock()
	out := []entity.Product{}
	for _, p := range s.db.products {
		if keep(p) {
			out = append(out, s.db.productView(p))
		}
	}
	s.db.mu.RUnlock()

	sortProducts(out, "")

	return c.JSON(http.StatusOK, out)
}

func (s *Server) listProductReviews(c echo.Context) error {
	id, _ := pathID(c)

	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	return c.JSON(http.StatusOK, newestFirst(s.db.productReviews[id]))
}

func (s *Server) createProductReview(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c, "Product")
	}

	var input entity.ReviewInput
	if handled, err := s.bindValid(c, &input); handled {
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.products[id]; !ok {
		return notFound(c, "Product")
	}

	review, ok := s.db.addReview(s.db.productReviews, id, currentUser(c), input)
	if !ok {
		return invalid(c, map[string][]string{"non_field_errors": {"The fields product, reviewer must make a unique set."}})
	}

	return c.JSON(http.StatusCreated, review)
}

// addReview appends a review unless the reviewer already left one. Callers hold mu.
func (t *tables) addReview(reviews map[int64][]entity.Review, target, reviewer int64, input entity.ReviewInput) (entity.Review, bool) {
	if slices.ContainsFunc(reviews[target], func(r entity.Review) bool { return r.Reviewer == reviewer }) {
		return entity.Review{}, false
	}

	now := t.now()
	review := entity.Review{
		ID:        t.id(),
		Reviewer:  reviewer,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if u, ok := t.users[reviewer]; ok {
		review.ReviewerName = u.Username
	}
	reviews[target] = append(reviews[target], review)

	return review, true
}

func newestFirst(reviews []entity.Review) []entity.Review {
	out := make([]entity.Review, len(reviews))
	for i, r := range reviews {
		out[len(reviews)-1-i] = r
	}

	return out
}
