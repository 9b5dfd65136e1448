package repository

import (
	"context"
	"errors"

	"github.com/Drobyshev1988/staybooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context) ([]domain.Listing, error)
	Update(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	Delete(ctx context.Context, id string) error
}

type PGListingRepository struct {
	db *pgxpool.Pool
}

func NewListingRepository(db *pgxpool.Pool) ListingRepository {
	return &PGListingRepository{db: db}
}

const listingColumns = `id, host_id, title, description, address, property_type, price_per_night_cents, bedrooms, bathrooms, max_guests, amenities, is_active, created_at, updated_at`

func (r *PGListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	return r.db.QueryRow(ctx, `INSERT INTO listings (id, host_id, title, description, address, property_type, price_per_night_cents, bedrooms, bathrooms, max_guests, amenities, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`,
		listing.ID, listing.HostID, listing.Title, listing.Description, listing.Address, listing.PropertyType,
		listing.PricePerNightCents, listing.Bedrooms, listing.Bathrooms, listing.MaxGuests, listing.Amenities, listing.IsActive).
		Scan(&listing.CreatedAt, &listing.UpdatedAt)
}

func (r *PGListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	row := r.db.QueryRow(ctx, `SELECT `+listingColumns+` FROM listings WHERE id=$1`, id)
	return scanListing(row)
}

func (r *PGListingRepository) List(ctx context.Context) ([]domain.Listing, error) {
	rows, err := r.db.Query(ctx, `SELECT `+listingColumns+` FROM listings ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]domain.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, *l)
	}
	return listings, rows.Err()
}

// Update writes every mutable field in one guarded statement so a stale
// read cannot resurrect a deleted row or move the listing to another host.
func (r *PGListingRepository) Update(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	row := r.db.QueryRow(ctx, `UPDATE listings
		SET title=$1, description=$2, address=$3, property_type=$4, price_per_night_cents=$5,
		    bedrooms=$6, bathrooms=$7, max_guests=$8, amenities=$9, is_active=$10, updated_at=now()
		WHERE id=$11 AND host_id=$12
		RETURNING `+listingColumns,
		listing.Title, listing.Description, listing.Address, listing.PropertyType, listing.PricePerNightCents,
		listing.Bedrooms, listing.Bathrooms, listing.MaxGuests, listing.Amenities, listing.IsActive,
		listing.ID, listing.HostID)
	return scanListing(row)
}

func (r *PGListingRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM listings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	// bookings and their reviews go with the listing via ON DELETE CASCADE
	return nil
}

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var l domain.Listing
	if err := row.Scan(&l.ID, &l.HostID, &l.Title, &l.Description, &l.Address, &l.PropertyType,
		&l.PricePerNightCents, &l.Bedrooms, &l.Bathrooms, &l.MaxGuests, &l.Amenities, &l.IsActive,
		&l.CreatedAt, &l.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

var _ ListingRepository = (*PGListingRepository)(nil)
