package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Drobyshev1988/staybooking/config"
	"github.com/Drobyshev1988/staybooking/internal/bootstrap"
	"github.com/Drobyshev1988/staybooking/internal/cache"
	"github.com/Drobyshev1988/staybooking/internal/kafka"
	"github.com/Drobyshev1988/staybooking/internal/repository"
	"github.com/Drobyshev1988/staybooking/internal/service/booking"
	"github.com/Drobyshev1988/staybooking/internal/service/listings"
	"github.com/Drobyshev1988/staybooking/internal/service/reviews"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.ListingsTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	listingRepo := repository.NewListingRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)

	listingService := listings.NewListingService(listingRepo, redisCache)
	bookingService := booking.NewBookingService(
		bookingRepo,
		listingRepo,
		producer,
		cfg.Kafka.BookingEventsTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	reviewService := reviews.NewReviewService(reviewRepo, bookingRepo)

	if err := bootstrap.Run(ctx, cfg, listingService, bookingService, reviewService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
