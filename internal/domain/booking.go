package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PE"
	BookingStatusConfirmed BookingStatus = "CN"
	BookingStatusCancelled BookingStatus = "CA"
	BookingStatusCompleted BookingStatus = "CM"
)

func (s BookingStatus) Display() string {
	switch s {
	case BookingStatusPending:
		return "Pending"
	case BookingStatusConfirmed:
		return "Confirmed"
	case BookingStatusCancelled:
		return "Cancelled"
	case BookingStatusCompleted:
		return "Completed"
	}
	return string(s)
}

type Booking struct {
	ID              string
	GuestID         string
	ListingID       string
	StartDate       time.Time
	EndDate         time.Time
	TotalPriceCents int64
	Status          BookingStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
