package api

import (
	"net/http"
	"time"

	"github.com/Drobyshev1988/staybooking/internal/auth"
	"github.com/Drobyshev1988/staybooking/internal/domain"
	"github.com/Drobyshev1988/staybooking/internal/service/listings"
	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	service listings.ListingUseCase
}

type listingResponse struct {
	ID                  string   `json:"id"`
	HostID              string   `json:"host_id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Address             string   `json:"address"`
	PropertyType        string   `json:"property_type"`
	PropertyTypeDisplay string   `json:"property_type_display"`
	PricePerNightCents  int64    `json:"price_per_night_cents"`
	Bedrooms            int      `json:"bedrooms"`
	Bathrooms           int      `json:"bathrooms"`
	MaxGuests           int      `json:"max_guests"`
	Amenities           []string `json:"amenities"`
	IsActive            bool     `json:"is_active"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
}

func NewListingHandler(service listings.ListingUseCase) *ListingHandler {
	return &ListingHandler{service: service}
}

func (h *ListingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *ListingHandler) create(c *gin.Context) {
	callerID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req listings.CreateListingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listing, err := h.service.Create(c.Request.Context(), callerID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toListingResponse(listing))
}

func (h *ListingHandler) list(c *gin.Context) {
	all, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]listingResponse, 0, len(all))
	for i := range all {
		out = append(out, toListingResponse(&all[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ListingHandler) get(c *gin.Context) {
	listing, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toListingResponse(listing))
}

func (h *ListingHandler) update(c *gin.Context) {
	callerID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var patch listings.UpdateListingInput
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listing, err := h.service.Update(c.Request.Context(), c.Param("id"), callerID, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toListingResponse(listing))
}

func (h *ListingHandler) delete(c *gin.Context) {
	callerID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toListingResponse(l *domain.Listing) listingResponse {
	return listingResponse{
		ID:                  l.ID,
		HostID:              l.HostID,
		Title:               l.Title,
		Description:         l.Description,
		Address:             l.Address,
		PropertyType:        string(l.PropertyType),
		PropertyTypeDisplay: l.PropertyType.Display(),
		PricePerNightCents:  l.PricePerNightCents,
		Bedrooms:            l.Bedrooms,
		Bathrooms:           l.Bathrooms,
		MaxGuests:           l.MaxGuests,
		Amenities:           l.Amenities,
		IsActive:            l.IsActive,
		CreatedAt:           l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           l.UpdatedAt.Format(time.RFC3339),
	}
}
