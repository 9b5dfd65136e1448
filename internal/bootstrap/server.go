package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Drobyshev1988/staybooking/api"
	"github.com/Drobyshev1988/staybooking/config"
	"github.com/Drobyshev1988/staybooking/internal/auth"
	"github.com/Drobyshev1988/staybooking/internal/service/booking"
	"github.com/Drobyshev1988/staybooking/internal/service/listings"
	"github.com/Drobyshev1988/staybooking/internal/service/reviews"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, listingSvc listings.ListingUseCase, bookingSvc booking.BookingUseCase, reviewSvc reviews.ReviewUseCase) error {
	router := NewRouter(cfg, listingSvc, bookingSvc, reviewSvc)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func NewRouter(cfg *config.Config, listingSvc listings.ListingUseCase, bookingSvc booking.BookingUseCase, reviewSvc reviews.ReviewUseCase) *gin.Engine {
	router := gin.Default()

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.HTTP.SwaggerURL != "" {
		router.StaticFile("/swagger/openapi.json", "docs/openapi.json")
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL(cfg.HTTP.SwaggerURL))))
	}

	authorized := router.Group("/", auth.Middleware(cfg.Auth.JWTSecret))

	listingHandler := api.NewListingHandler(listingSvc)
	listingHandler.Register(authorized.Group("/listings"))

	bookingsGroup := authorized.Group("/bookings")
	bookingHandler := api.NewBookingHandler(bookingSvc)
	bookingHandler.Register(bookingsGroup)

	reviewHandler := api.NewReviewHandler(reviewSvc)
	reviewHandler.Register(bookingsGroup)

	return router
}
