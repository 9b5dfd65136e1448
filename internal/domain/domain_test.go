package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatuses(t *testing.T) {
	assert.Equal(t, "Pending", BookingStatusPending.Display())
	assert.Equal(t, "Confirmed", BookingStatusConfirmed.Display())
	assert.Equal(t, "Cancelled", BookingStatusCancelled.Display())
	assert.Equal(t, "Completed", BookingStatusCompleted.Display())
}

func TestPropertyTypes(t *testing.T) {
	assert.Equal(t, "Apartment", PropertyTypeApartment.Display())
	assert.Equal(t, "Cabin", PropertyTypeCabin.Display())
	assert.True(t, PropertyTypeVilla.Valid())
	assert.False(t, PropertyType("ZZ").Valid())
}
