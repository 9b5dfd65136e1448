package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Drobyshev1988/staybooking/internal/domain"
	"github.com/Drobyshev1988/staybooking/internal/kafka"
	"github.com/Drobyshev1988/staybooking/internal/repository"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type BookingUseCase interface {
	CreateBooking(ctx context.Context, guestID string, input CreateBookingInput) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, bookingID, callerID string, patch UpdateBookingInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID, callerID string) (*domain.Booking, error)
	GetBooking(ctx context.Context, bookingID, callerID string) (*domain.Booking, error)
	ListBookingsFor(ctx context.Context, userID string) ([]domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	listings           repository.ListingRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type CreateBookingInput struct {
	ListingID string `json:"listing_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type UpdateBookingInput struct {
	StartDate *string               `json:"start_date"`
	EndDate   *string               `json:"end_date"`
	Status    *domain.BookingStatus `json:"status"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	listings repository.ListingRepository,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		listings:     listings,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// TotalPriceCents prices a stay as whole nights times the nightly rate.
// Missing or malformed dates price the stay at zero instead of failing;
// the create path rejects malformed dates before pricing, so the zero
// branch only fires for callers that skip validation.
func TotalPriceCents(startDate, endDate string, rateCents int64) int64 {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0
	}
	nights := int64(end.Sub(start).Hours() / 24)
	return nights * rateCents
}

func (s *BookingService) CreateBooking(ctx context.Context, guestID string, input CreateBookingInput) (*domain.Booking, error) {
	listing, err := s.listings.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	if !listing.IsActive {
		return nil, fmt.Errorf("%w: listing inactive", domain.ErrConflict)
	}

	start, err := time.Parse(dateLayout, input.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	end, err := time.Parse(dateLayout, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end_date must be after start_date", domain.ErrInvalidInput)
	}

	// No overlap check against existing bookings: double-booking the same
	// dates on one listing is allowed, matching the upstream behavior.
	booking := &domain.Booking{
		ID:              uuid.NewString(),
		GuestID:         guestID,
		ListingID:       listing.ID,
		StartDate:       start,
		EndDate:         end,
		TotalPriceCents: TotalPriceCents(input.StartDate, input.EndDate, listing.PricePerNightCents),
		Status:          domain.BookingStatusPending,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "booking_created", booking); err != nil {
		log.Printf("WARNING: failed to publish booking_created event for booking %s: %v", booking.ID, err)
	}
	return booking, nil
}

func (s *BookingService) UpdateBooking(ctx context.Context, bookingID, callerID string, patch UpdateBookingInput) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if current.GuestID != callerID {
		return nil, fmt.Errorf("%w: you can only update your own bookings", domain.ErrForbidden)
	}

	if patch.StartDate != nil {
		start, err := time.Parse(dateLayout, *patch.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		current.StartDate = start
	}
	if patch.EndDate != nil {
		end, err := time.Parse(dateLayout, *patch.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: end_date must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		current.EndDate = end
	}
	if !current.EndDate.After(current.StartDate) {
		return nil, fmt.Errorf("%w: end_date must be after start_date", domain.ErrInvalidInput)
	}
	if patch.Status != nil {
		switch *patch.Status {
		case domain.BookingStatusPending, domain.BookingStatusConfirmed, domain.BookingStatusCancelled, domain.BookingStatusCompleted:
			current.Status = *patch.Status
		default:
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, *patch.Status)
		}
	}

	// guest and total price never change; the repository does not write them
	return s.bookings.Update(ctx, current)
}

func (s *BookingService) CancelBooking(ctx context.Context, bookingID, callerID string) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if current.GuestID != callerID {
		return nil, fmt.Errorf("%w: you can only cancel your own bookings", domain.ErrForbidden)
	}
	if current.Status == domain.BookingStatusCancelled {
		return current, nil
	}

	updated, err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	if err := s.publish(ctx, "booking_cancelled", updated); err != nil {
		log.Printf("WARNING: failed to publish booking_cancelled event for booking %s: %v", updated.ID, err)
	}
	return updated, nil
}

func (s *BookingService) GetBooking(ctx context.Context, bookingID, callerID string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.GuestID == callerID {
		return booking, nil
	}

	listing, err := s.listings.GetByID(ctx, booking.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.HostID != callerID {
		return nil, fmt.Errorf("%w: only the guest or the listing's host can view this booking", domain.ErrForbidden)
	}
	return booking, nil
}

func (s *BookingService) ListBookingsFor(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.ListForUser(ctx, userID)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:            eventType,
		BookingID:       booking.ID,
		ListingID:       booking.ListingID,
		GuestID:         booking.GuestID,
		Status:          string(booking.Status),
		StartDate:       booking.StartDate.Format(dateLayout),
		EndDate:         booking.EndDate.Format(dateLayout),
		TotalPriceCents: booking.TotalPriceCents,
		OccurredAt:      time.Now(),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
