package domain

import "time"

type Review struct {
	ID        string
	BookingID string
	Rating    int
	Comment   string
	CreatedAt time.Time
}
