package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Drobyshev1988/staybooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, guest_id, listing_id, start_date, end_date, total_price_cents, status, created_at, updated_at`

// Create re-checks the target listing inside the transaction so a
// concurrent deactivation or delete cannot slip in between the service's
// read and the insert.
func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var active bool
	if err := tx.QueryRow(ctx, `SELECT is_active FROM listings WHERE id=$1 FOR SHARE`, booking.ListingID).Scan(&active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	if !active {
		return fmt.Errorf("%w: listing inactive", domain.ErrConflict)
	}

	booking.Status = domain.BookingStatusPending
	if err := tx.QueryRow(ctx, `INSERT INTO bookings (id, guest_id, listing_id, start_date, end_date, total_price_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		booking.ID, booking.GuestID, booking.ListingID, booking.StartDate, booking.EndDate, booking.TotalPriceCents, booking.Status).
		Scan(&booking.CreatedAt, &booking.UpdatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	return scanBooking(row)
}

// ListForUser returns the bookings where the user is the guest together
// with the bookings against the user's own listings. The join keeps the
// result duplicate-free.
func (r *PGBookingRepository) ListForUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT b.id, b.guest_id, b.listing_id, b.start_date, b.end_date, b.total_price_cents, b.status, b.created_at, b.updated_at
		FROM bookings b
		JOIN listings l ON l.id = b.listing_id
		WHERE b.guest_id = $1 OR l.host_id = $1
		ORDER BY b.created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// Update rewrites the mutable fields only; guest and total price never
// appear in the SET list. Guarded on guest_id so the write races cleanly
// with a concurrent cancel or delete.
func (r *PGBookingRepository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings
		SET start_date=$1, end_date=$2, status=$3, updated_at=now()
		WHERE id=$4 AND guest_id=$5
		RETURNING `+bookingColumns,
		booking.StartDate, booking.EndDate, booking.Status, booking.ID, booking.GuestID)
	return scanBooking(row)
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 RETURNING `+bookingColumns, status, id)
	return scanBooking(row)
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.GuestID, &b.ListingID, &b.StartDate, &b.EndDate, &b.TotalPriceCents, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
