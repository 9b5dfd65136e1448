package reviews

import (
	"context"
	"fmt"

	"github.com/Drobyshev1988/staybooking/internal/domain"
	"github.com/Drobyshev1988/staybooking/internal/repository"
	"github.com/google/uuid"
)

type ReviewUseCase interface {
	Create(ctx context.Context, bookingID, authorID string, input CreateReviewInput) (*domain.Review, error)
	GetByBooking(ctx context.Context, bookingID string) (*domain.Review, error)
}

type ReviewService struct {
	reviews  repository.ReviewRepository
	bookings repository.BookingRepository
}

type CreateReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func NewReviewService(reviews repository.ReviewRepository, bookings repository.BookingRepository) *ReviewService {
	return &ReviewService{reviews: reviews, bookings: bookings}
}

// Create attaches a review to a booking. The author is not checked
// against the booking's guest and the booking does not have to be
// completed; any authenticated user can review any existing booking.
func (s *ReviewService) Create(ctx context.Context, bookingID, authorID string, input CreateReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalidInput)
	}

	if _, err := s.bookings.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) GetByBooking(ctx context.Context, bookingID string) (*domain.Review, error) {
	return s.reviews.GetByBooking(ctx, bookingID)
}

var _ ReviewUseCase = (*ReviewService)(nil)
