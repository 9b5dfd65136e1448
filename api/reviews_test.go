package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Drobyshev1988/staybooking/internal/domain"
	"github.com/Drobyshev1988/staybooking/internal/service/reviews"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReviewUseCase is a mock implementation of reviews.ReviewUseCase
type MockReviewUseCase struct {
	mock.Mock
}

func (m *MockReviewUseCase) Create(ctx context.Context, bookingID, authorID string, input reviews.CreateReviewInput) (*domain.Review, error) {
	args := m.Called(ctx, bookingID, authorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewUseCase) GetByBooking(ctx context.Context, bookingID string) (*domain.Review, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func TestReviewHandler_create(t *testing.T) {
	mockService := &MockReviewUseCase{}
	handler := NewReviewHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := reviews.CreateReviewInput{Rating: 5, Comment: "Great stay"}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/bookings/booking-1/review", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "booking-1"}}
	c.Set("user_id", "guest-1")

	review := &domain.Review{ID: "review-1", BookingID: "booking-1", Rating: 5, Comment: "Great stay"}
	mockService.On("Create", c.Request.Context(), "booking-1", "guest-1", input).Return(review, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp reviewResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "review-1", resp.ID)
	assert.Equal(t, 5, resp.Rating)
	mockService.AssertExpectations(t)
}

func TestReviewHandler_create_Duplicate(t *testing.T) {
	mockService := &MockReviewUseCase{}
	handler := NewReviewHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/bookings/booking-1/review", bytes.NewReader([]byte(`{"rating":4}`)))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "booking-1"}}
	c.Set("user_id", "guest-1")

	mockService.On("Create", c.Request.Context(), "booking-1", "guest-1", mock.Anything).
		Return(nil, fmt.Errorf("%w: booking already reviewed", domain.ErrConflict))

	handler.create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestReviewHandler_get(t *testing.T) {
	mockService := &MockReviewUseCase{}
	handler := NewReviewHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/bookings/booking-1/review", nil)
	c.Params = gin.Params{{Key: "id", Value: "booking-1"}}

	review := &domain.Review{ID: "review-1", BookingID: "booking-1", Rating: 4}
	mockService.On("GetByBooking", c.Request.Context(), "booking-1").Return(review, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReviewHandler_get_NotFound(t *testing.T) {
	mockService := &MockReviewUseCase{}
	handler := NewReviewHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/bookings/booking-1/review", nil)
	c.Params = gin.Params{{Key: "id", Value: "booking-1"}}

	mockService.On("GetByBooking", c.Request.Context(), "booking-1").Return(nil, domain.ErrNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
