package impl

import (
	"maps"
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

// The clone helpers copy every slice, map and pointer a snapshot exposes so
// that consumers can never reach store internals.

func ptrCopy[T any](p *T, deep func(T) T) *T {
	if p == nil {
		return nil
	}
	v := deep(*p)

	return &v
}

func same[T any](v T) T { return v }

func cloneEach[T any](in []T, deep func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = deep(v)
	}

	return out
}

func cloneUser(u entity.User) entity.User { return u }

func cloneCategory(c entity.Category) entity.Category {
	c.ParentID = ptrCopy(c.ParentID, same[int64])

	return c
}

func cloneProduct(p entity.Product) entity.Product {
	p.Brand = ptrCopy(p.Brand, same[int64])
	p.Specifications = maps.Clone(p.Specifications)
	p.Images = slices.Clone(p.Images)
	p.Reviews = slices.Clone(p.Reviews)

	return p
}

func cloneShop(s entity.Shop) entity.Shop {
	s.BusinessHours = maps.Clone(s.BusinessHours)
	s.Images = slices.Clone(s.Images)
	s.Reviews = slices.Clone(s.Reviews)

	return s
}

func cloneMessage(m entity.Message) entity.Message {
	m.Sender = ptrCopy(m.Sender, same[entity.Participant])

	return m
}

func cloneRoom(r entity.ChatRoom) entity.ChatRoom {
	r.Participants = slices.Clone(r.Participants)
	r.LastMessage = ptrCopy(r.LastMessage, cloneMessage)

	return r
}

func cloneSessionState(s usecase.SessionState) usecase.SessionState {
	s.User = ptrCopy(s.User, cloneUser)
	s.TokenExpiresAt = ptrCopy(s.TokenExpiresAt, same)

	return s
}

func cloneCatalogState(s usecase.CatalogState) usecase.CatalogState {
	s.Products = cloneEach(s.Products, cloneProduct)
	s.Current = ptrCopy(s.Current, cloneProduct)
	s.Reviews = slices.Clone(s.Reviews)
	s.Featured = cloneEach(s.Featured, cloneProduct)
	s.DailyEssentials = cloneEach(s.DailyEssentials, cloneProduct)
	s.Categories = cloneEach(s.Categories, cloneCategory)
	s.Brands = slices.Clone(s.Brands)
	s.FeaturedBrands = slices.Clone(s.FeaturedBrands)

	return s
}

func cloneMarketplaceState(s usecase.MarketplaceState) usecase.MarketplaceState {
	s.Shops = cloneEach(s.Shops, cloneShop)
	s.Current = ptrCopy(s.Current, cloneShop)
	s.Reviews = slices.Clone(s.Reviews)

	return s
}

func cloneMessagingState(s usecase.MessagingState) usecase.MessagingState {
	s.Rooms = cloneEach(s.Rooms, cloneRoom)
	s.CurrentRoom = ptrCopy(s.CurrentRoom, cloneRoom)
	s.Messages = cloneEach(s.Messages, cloneMessage)

	return s
}
