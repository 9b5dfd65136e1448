package listings

import (
	"context"
	"fmt"

	"github.com/Drobyshev1988/staybooking/internal/domain"
	"github.com/Drobyshev1988/staybooking/internal/repository"
	"github.com/google/uuid"
)

type ListingUseCase interface {
	Create(ctx context.Context, hostID string, input CreateListingInput) (*domain.Listing, error)
	Update(ctx context.Context, listingID, callerID string, patch UpdateListingInput) (*domain.Listing, error)
	Delete(ctx context.Context, listingID, callerID string) error
	Get(ctx context.Context, listingID string) (*domain.Listing, error)
	List(ctx context.Context) ([]domain.Listing, error)
}

type Cache interface {
	GetListings(ctx context.Context) ([]domain.Listing, error)
	SetListings(ctx context.Context, listings []domain.Listing) error
	InvalidateListings(ctx context.Context) error
}

type ListingService struct {
	listings repository.ListingRepository
	cache    Cache
}

type CreateListingInput struct {
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	Address            string              `json:"address"`
	PropertyType       domain.PropertyType `json:"property_type"`
	PricePerNightCents int64               `json:"price_per_night_cents"`
	Bedrooms           int                 `json:"bedrooms"`
	Bathrooms          int                 `json:"bathrooms"`
	MaxGuests          int                 `json:"max_guests"`
	Amenities          []string            `json:"amenities"`
}

type UpdateListingInput struct {
	Title              *string              `json:"title"`
	Description        *string              `json:"description"`
	Address            *string              `json:"address"`
	PropertyType       *domain.PropertyType `json:"property_type"`
	PricePerNightCents *int64               `json:"price_per_night_cents"`
	Bedrooms           *int                 `json:"bedrooms"`
	Bathrooms          *int                 `json:"bathrooms"`
	MaxGuests          *int                 `json:"max_guests"`
	Amenities          *[]string            `json:"amenities"`
	IsActive           *bool                `json:"is_active"`
}

func NewListingService(listings repository.ListingRepository, cache Cache) *ListingService {
	return &ListingService{listings: listings, cache: cache}
}

func (s *ListingService) Create(ctx context.Context, hostID string, input CreateListingInput) (*domain.Listing, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if !input.PropertyType.Valid() {
		return nil, fmt.Errorf("%w: unknown property type %q", domain.ErrInvalidInput, input.PropertyType)
	}
	if input.PricePerNightCents < 0 || input.Bedrooms < 0 || input.Bathrooms < 0 || input.MaxGuests < 0 {
		return nil, fmt.Errorf("%w: numeric fields must not be negative", domain.ErrInvalidInput)
	}

	amenities := input.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	listing := &domain.Listing{
		ID:                 uuid.NewString(),
		HostID:             hostID,
		Title:              input.Title,
		Description:        input.Description,
		Address:            input.Address,
		PropertyType:       input.PropertyType,
		PricePerNightCents: input.PricePerNightCents,
		Bedrooms:           input.Bedrooms,
		Bathrooms:          input.Bathrooms,
		MaxGuests:          input.MaxGuests,
		Amenities:          amenities,
		IsActive:           true,
	}
	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateListings(ctx)
	}
	return listing, nil
}

func (s *ListingService) Update(ctx context.Context, listingID, callerID string, patch UpdateListingInput) (*domain.Listing, error) {
	current, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if current.HostID != callerID {
		return nil, fmt.Errorf("%w: you can only update your own listings", domain.ErrForbidden)
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
		}
		current.Title = *patch.Title
	}
	if patch.Description != nil {
		current.Description = *patch.Description
	}
	if patch.Address != nil {
		current.Address = *patch.Address
	}
	if patch.PropertyType != nil {
		if !patch.PropertyType.Valid() {
			return nil, fmt.Errorf("%w: unknown property type %q", domain.ErrInvalidInput, *patch.PropertyType)
		}
		current.PropertyType = *patch.PropertyType
	}
	if patch.PricePerNightCents != nil {
		if *patch.PricePerNightCents < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
		}
		current.PricePerNightCents = *patch.PricePerNightCents
	}
	if patch.Bedrooms != nil {
		if *patch.Bedrooms < 0 {
			return nil, fmt.Errorf("%w: bedrooms must not be negative", domain.ErrInvalidInput)
		}
		current.Bedrooms = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		if *patch.Bathrooms < 0 {
			return nil, fmt.Errorf("%w: bathrooms must not be negative", domain.ErrInvalidInput)
		}
		current.Bathrooms = *patch.Bathrooms
	}
	if patch.MaxGuests != nil {
		if *patch.MaxGuests < 0 {
			return nil, fmt.Errorf("%w: max guests must not be negative", domain.ErrInvalidInput)
		}
		current.MaxGuests = *patch.MaxGuests
	}
	if patch.Amenities != nil {
		current.Amenities = *patch.Amenities
	}
	if patch.IsActive != nil {
		current.IsActive = *patch.IsActive
	}

	updated, err := s.listings.Update(ctx, current)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateListings(ctx)
	}
	return updated, nil
}

func (s *ListingService) Delete(ctx context.Context, listingID, callerID string) error {
	current, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return err
	}
	if current.HostID != callerID {
		return fmt.Errorf("%w: you can only delete your own listings", domain.ErrForbidden)
	}

	if err := s.listings.Delete(ctx, listingID); err != nil {
		return err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateListings(ctx)
	}
	return nil
}

func (s *ListingService) Get(ctx context.Context, listingID string) (*domain.Listing, error) {
	return s.listings.GetByID(ctx, listingID)
}

func (s *ListingService) List(ctx context.Context) ([]domain.Listing, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetListings(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	listings, err := s.listings.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetListings(ctx, listings)
	}
	return listings, nil
}

var _ ListingUseCase = (*ListingService)(nil)
