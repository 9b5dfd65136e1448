package api

import (
	"net/http"
	"time"

	"github.com/Drobyshev1988/staybooking/internal/auth"
	"github.com/Drobyshev1988/staybooking/internal/domain"
	"github.com/Drobyshev1988/staybooking/internal/service/reviews"
	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	service reviews.ReviewUseCase
}

type reviewResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

func NewReviewHandler(service reviews.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) Register(router *gin.RouterGroup) {
	router.POST("/:id/review", h.create)
	router.GET("/:id/review", h.get)
}

func (h *ReviewHandler) create(c *gin.Context) {
	callerID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req reviews.CreateReviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.service.Create(c.Request.Context(), c.Param("id"), callerID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toReviewResponse(review))
}

func (h *ReviewHandler) get(c *gin.Context) {
	review, err := h.service.GetByBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReviewResponse(review))
}

func toReviewResponse(r *domain.Review) reviewResponse {
	return reviewResponse{
		ID:        r.ID,
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}
