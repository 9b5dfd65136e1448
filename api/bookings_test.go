package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Drobyshev1988/staybooking/internal/domain"
	"github.com/Drobyshev1988/staybooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, guestID string, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, guestID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) UpdateBooking(ctx context.Context, bookingID, callerID string, patch booking.UpdateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, callerID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) CancelBooking(ctx context.Context, bookingID, callerID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) GetBooking(ctx context.Context, bookingID, callerID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListBookingsFor(ctx context.Context, userID string) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func sampleBooking() *domain.Booking {
	start, _ := time.Parse("2006-01-02", "2024-06-01")
	end, _ := time.Parse("2006-01-02", "2024-06-04")
	return &domain.Booking{
		ID:              "booking-1",
		GuestID:         "guest-1",
		ListingID:       "listing-1",
		StartDate:       start,
		EndDate:         end,
		TotalPriceCents: 30000,
		Status:          domain.BookingStatusPending,
	}
}

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := booking.CreateBookingInput{
		ListingID: "listing-1",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-04",
	}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", "guest-1")

	mockService.On("CreateBooking", c.Request.Context(), "guest-1", input).Return(sampleBooking(), nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp bookingResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, int64(30000), resp.TotalPriceCents)
	assert.Equal(t, "PE", resp.Status)
	assert.Equal(t, "Pending", resp.StatusDisplay)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_Unauthenticated(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader([]byte(`{}`)))

	handler.create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingHandler_create_ErrorMapping(t *testing.T) {
	testCases := []struct {
		err    error
		status int
	}{
		{err: domain.ErrNotFound, status: http.StatusNotFound},
		{err: domain.ErrForbidden, status: http.StatusForbidden},
		{err: fmt.Errorf("%w: end_date must be after start_date", domain.ErrInvalidInput), status: http.StatusBadRequest},
		{err: fmt.Errorf("%w: listing inactive", domain.ErrConflict), status: http.StatusConflict},
	}

	for _, tc := range testCases {
		mockService := &MockBookingUseCase{}
		handler := NewBookingHandler(mockService)

		gin.SetMode(gin.TestMode)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader([]byte(`{"listing_id":"listing-1"}`)))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", "guest-1")

		mockService.On("CreateBooking", mock.Anything, "guest-1", mock.Anything).Return(nil, tc.err)

		handler.create(c)

		assert.Equal(t, tc.status, w.Code)
	}
}

func TestBookingHandler_cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	cancelled := sampleBooking()
	cancelled.Status = domain.BookingStatusCancelled

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/bookings/booking-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "booking-1"}}
	c.Set("user_id", "guest-1")

	mockService.On("CancelBooking", c.Request.Context(), "booking-1", "guest-1").Return(cancelled, nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp bookingResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CA", resp.Status)
	assert.Equal(t, "Cancelled", resp.StatusDisplay)
}

func TestBookingHandler_cancel_Forbidden(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/bookings/booking-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "booking-1"}}
	c.Set("user_id", "host-1")

	mockService.On("CancelBooking", c.Request.Context(), "booking-1", "host-1").Return(nil, domain.ErrForbidden)

	handler.cancel(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBookingHandler_list(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/bookings", nil)
	c.Set("user_id", "user-1")

	mockService.On("ListBookingsFor", c.Request.Context(), "user-1").Return([]domain.Booking{*sampleBooking()}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []bookingResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "2024-06-01", resp[0].StartDate)
}
