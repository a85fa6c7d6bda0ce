package fakeapi

import (
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"storefront/internal/domain/entity"
)

type userRecord struct {
	entity.User
	passwordHash string
}

type roomRecord struct {
	id           int64
	participants []int64
	createdAt    time.Time
}

// tables is the in-memory database behind the fake API.
type tables struct {
	mu sync.RWMutex

	nextID int64
	now    func() time.Time

	users          map[int64]*userRecord
	categories     []entity.Category
	brands         []entity.Brand
	products       map[int64]*entity.Product
	productReviews map[int64][]entity.Review
	shops          map[int64]*entity.Shop
	shopReviews    map[int64][]entity.Review
	rooms          map[int64]*roomRecord
	messages       map[int64][]entity.Message
	blacklist      map[string]struct{}
}

func newTables(now func() time.Time) *tables {
	return &tables{
		now:            now,
		users:          make(map[int64]*userRecord),
		products:       make(map[int64]*entity.Product),
		productReviews: make(map[int64][]entity.Review),
		shops:          make(map[int64]*entity.Shop),
		shopReviews:    make(map[int64][]entity.Review),
		rooms:          make(map[int64]*roomRecord),
		messages:       make(map[int64][]entity.Message),
		blacklist:      make(map[string]struct{}),
	}
}

// id hands out the next identifier. Callers hold mu.
func (t *tables) id() int64 {
	t.nextID++

	return t.nextID
}

// userByLogin matches a username or an email, case-insensitively. Callers hold mu.
func (t *tables) userByLogin(login string) *userRecord {
	for _, u := range t.users {
		if strings.EqualFold(u.Username, login) || strings.EqualFold(u.Email, login) {
			return u
		}
	}

	return nil
}

func (t *tables) participant(id int64) entity.Participant {
	u, ok := t.users[id]
	if !ok {
		return entity.Participant{ID: id}
	}

	return entity.Participant{ID: u.ID, Username: u.Username, Email: u.Email}
}

// room renders a room with its participants and last message. Callers hold mu.
func (t *tables) room(r *roomRecord) entity.ChatRoom {
	out := entity.ChatRoom{ID: r.id, CreatedAt: r.createdAt}
	for _, id := range r.participants {
		out.Participants = append(out.Participants, t.participant(id))
	}
	if msgs := t.messages[r.id]; len(msgs) > 0 {
		last := msgs[len(msgs)-1]
		out.LastMessage = &last
	}

	return out
}

func averageRating(reviews []entity.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}

	return float64(sum) / float64(len(reviews))
}

func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// productView returns a copy of the product with its reviews attached. Callers hold mu.
func (t *tables) productView(p *entity.Product) entity.Product {
	out := *p
	out.Images = slices.Clone(p.Images)
	out.Reviews = slices.Clone(t.productReviews[p.ID])
	out.AverageRating = averageRating(out.Reviews)
	if u, ok := t.users[p.Seller]; ok {
		out.SellerName = u.Username
	}
	for _, c := range t.categories {
		if c.ID == p.Category {
			out.CategoryName = c.Name
		}
	}
	if p.Brand != nil {
		for _, b := range t.brands {
			if b.ID == *p.Brand {
				out.BrandName = b.Name
				out.BrandLogo = b.Logo
			}
		}
	}

	return out
}

// shopView returns a copy of the shop with its reviews attached. Callers hold mu.
func (t *tables) shopView(s *entity.Shop) entity.Shop {
	out := *s
	out.Images = slices.Clone(s.Images)
	out.Reviews = slices.Clone(t.shopReviews[s.ID])
	out.AverageRating = averageRating(out.Reviews)
	if u, ok := t.users[s.Owner]; ok {
		out.OwnerName = u.Username
	}

	return out
}

// Seed is the reference data a fresh fake API starts with.
type Seed struct {
	Categories []entity.Category
	Brands     []entity.Brand
	Products   []entity.Product
	Shops      []entity.Shop
}

// DefaultSeed returns a small catalog used by `storefront fake-api`.
func DefaultSeed() Seed {
	phones := int64(1)
	acme := int64(1)

	return Seed{
		Categories: []entity.Category{
			{ID: 1, Name: "Phones", Slug: "phones"},
			{ID: 2, Name: "Laptops", Slug: "laptops"},
			{ID: 3, Name: "Accessories", Slug: "accessories", ParentID: &phones},
		},
		Brands: []entity.Brand{
			{ID: 1, Name: "Acme", Slug: "acme", IsFeatured: true},
			{ID: 2, Name: "Globex", Slug: "globex"},
		},
		Products: []entity.Product{
			{Title: "Acme One", Category: 1, Brand: &acme, Price: "499.00", Condition: entity.ConditionNew, IsAvailable: true, IsFeatured: true},
			{Title: "USB-C cable", Category: 3, Price: "9.99", Condition: entity.ConditionNew, IsAvailable: true, IsDailyEssential: true},
			{Title: "Globex Book 13", Category: 2, Price: "899.00", Condition: entity.ConditionLikeNew, IsAvailable: true, IsNegotiable: true},
		},
		Shops: []entity.Shop{
			{Name: "Corner Tech", Address: "1 Main St", IsVerified: true},
		},
	}
}

// apply loads the seed. Seeded products and shops get fresh identifiers.
func (t *tables) apply(seed Seed) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.categories = slices.Clone(seed.Categories)
	t.brands = slices.Clone(seed.Brands)
	for _, c := range t.categories {
		t.nextID = max(t.nextID, c.ID)
	}
	for _, b := range t.brands {
		t.nextID = max(t.nextID, b.ID)
	}

	for _, p := range seed.Products {
		p.ID = t.id()
		p.CreatedAt = t.now()
		p.UpdatedAt = p.CreatedAt
		t.products[p.ID] = &p
	}
	for _, s := range seed.Shops {
		s.ID = t.id()
		s.CreatedAt = t.now()
		s.UpdatedAt = s.CreatedAt
		t.shops[s.ID] = &s
	}
}
