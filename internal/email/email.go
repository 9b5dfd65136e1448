package email

import (
	"context"
	"fmt"

	"github.com/Drobyshev1988/staybooking/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("notify guest %s: booking %s is now %s (%s to %s)\n", event.GuestID, event.BookingID, event.Status, event.StartDate, event.EndDate)
	return nil
}
