package domain

import (
	"context"
	"time"
)

// Booking is a customer's reservation of Tickets seats against one showtime.
// Bookings are immutable once created; the only mutation is deletion.
type Booking struct {
	ID         int
	OrderNo    string
	ShowtimeID int
	Customer   string
	Tickets    int
	CreatedAt  time.Time
}

// BookingDetail joins a booking with its showtime and movie for display.
type BookingDetail struct {
	OrderNo    string
	Customer   string
	Tickets    int
	MovieTitle string
	Weekday    string
	StartTime  string
	CreatedAt  time.Time
}

// BookingLedger is the source of truth for booking records and the sole
// authority for computing remaining capacity. Remaining seats is always
// recomputed from the stored bookings, never cached.
//
// InTx runs fn against a ledger bound to a single transaction. Within a
// transaction, RemainingSeats locks the showtime row, so a read-validate-append
// sequence inside fn is serialized per showtime.
type BookingLedger interface {
	InTx(ctx context.Context, fn func(ledger BookingLedger) error) error
	RemainingSeats(ctx context.Context, showtimeID int) (int, error)
	Append(ctx context.Context, booking *Booking) error
	Remove(ctx context.Context, orderNo, customer string) (bool, error)
	OrderNoExists(ctx context.Context, orderNo string) (bool, error)
	FindByOrderNo(ctx context.Context, orderNo string) ([]BookingDetail, error)
	FindByCustomer(ctx context.Context, customer string) ([]BookingDetail, error)
}
