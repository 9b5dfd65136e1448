package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Drobyshev1988/staybooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByBooking(ctx context.Context, bookingID string) (*domain.Review, error)
}

type PGReviewRepository struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) ReviewRepository {
	return &PGReviewRepository{db: db}
}

const uniqueViolation = "23505"

func (r *PGReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	err := r.db.QueryRow(ctx, `INSERT INTO reviews (id, booking_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		review.ID, review.BookingID, review.Rating, review.Comment).
		Scan(&review.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: booking already reviewed", domain.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *PGReviewRepository) GetByBooking(ctx context.Context, bookingID string) (*domain.Review, error) {
	row := r.db.QueryRow(ctx, `SELECT id, booking_id, rating, comment, created_at FROM reviews WHERE booking_id=$1`, bookingID)
	var rev domain.Review
	if err := row.Scan(&rev.ID, &rev.BookingID, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rev, nil
}

var _ ReviewRepository = (*PGReviewRepository)(nil)
