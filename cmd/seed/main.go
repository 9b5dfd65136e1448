package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/Drobyshev1988/staybooking/config"
	"github.com/Drobyshev1988/staybooking/internal/auth"
	"github.com/Drobyshev1988/staybooking/internal/domain"
	"github.com/Drobyshev1988/staybooking/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

var propertyTypes = []domain.PropertyType{
	domain.PropertyTypeApartment,
	domain.PropertyTypeHouse,
	domain.PropertyTypeVilla,
	domain.PropertyTypeCondo,
	domain.PropertyTypeCabin,
}

var amenityPool = []string{"WiFi", "Pool", "Kitchen", "Parking", "Air Conditioning", "TV", "Washer"}

var sampleTitles = []string{
	"Sunny downtown studio",
	"Quiet garden house",
	"Seaside villa with terrace",
	"Modern condo near the park",
	"Cozy cabin in the woods",
	"Bright loft over the market",
	"Family house with backyard",
	"Riverside apartment",
	"Hilltop villa with a view",
	"Compact studio by the station",
}

// seed fills an empty database with a sample host, a sample guest and ten
// listings, and prints dev tokens for both users.
func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	listingRepo := repository.NewListingRepository(pool)

	existing, err := listingRepo.List(ctx)
	if err != nil {
		log.Fatalf("list listings: %v", err)
	}
	if len(existing) > 0 {
		log.Println("listings already exist, skipping seed")
		return
	}

	hostID := uuid.NewString()
	guestID := uuid.NewString()

	for i, title := range sampleTitles {
		listing := &domain.Listing{
			ID:                 uuid.NewString(),
			HostID:             hostID,
			Title:              title,
			Description:        "Seeded sample listing.",
			Address:            "1 Sample Street",
			PropertyType:       propertyTypes[i%len(propertyTypes)],
			PricePerNightCents: int64(5000 + rand.Intn(45)*500),
			Bedrooms:           1 + rand.Intn(4),
			Bathrooms:          1 + rand.Intn(2),
			MaxGuests:          2 + rand.Intn(6),
			Amenities:          sampleAmenities(),
			IsActive:           true,
		}
		if err := listingRepo.Create(ctx, listing); err != nil {
			log.Fatalf("create listing %q: %v", title, err)
		}
	}
	log.Printf("seeded %d listings for host %s", len(sampleTitles), hostID)

	for name, id := range map[string]string{"host": hostID, "guest": guestID} {
		token, err := auth.IssueToken(cfg.Auth.JWTSecret, id, 24*time.Hour)
		if err != nil {
			log.Fatalf("issue %s token: %v", name, err)
		}
		log.Printf("%s token: %s", name, token)
	}
}

func sampleAmenities() []string {
	n := 2 + rand.Intn(4)
	picked := rand.Perm(len(amenityPool))[:n]
	out := make([]string, 0, n)
	for _, idx := range picked {
		out = append(out, amenityPool[idx])
	}
	return out
}
