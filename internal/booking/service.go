// Package booking implements the booking service: the only entry point
// allowed to create or cancel bookings. It enforces the capacity invariant
// and coordinates the order number generator with the ledger.
package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/filmhaus/movie-booking/internal/domain"
	"github.com/filmhaus/movie-booking/internal/ordernum"
)

// ErrInvalidTicketCount rejects reservations for zero or negative tickets.
var ErrInvalidTicketCount = errors.New("ticket count must be greater than zero")

// CapacityExceededError reports a reservation that asked for more tickets
// than the showtime has left. Remaining carries the exact count so it can be
// surfaced to the end user.
type CapacityExceededError struct {
	Remaining int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("not enough seats remaining: %d left", e.Remaining)
}

type Service struct {
	ledger    domain.BookingLedger
	showtimes domain.ShowtimeRepository
	orders    *ordernum.Generator
}

func NewService(ledger domain.BookingLedger, showtimes domain.ShowtimeRepository) *Service {
	return &Service{
		ledger:    ledger,
		showtimes: showtimes,
		orders:    ordernum.NewGenerator(),
	}
}

// Reserve books tickets against a showtime and returns the new order number.
// The capacity check and the ledger append run in one transaction holding a
// per-showtime lock, so concurrent reservations cannot oversell. A unique
// constraint violation on the order number means the generator's existence
// check raced with another insert of the same candidate; that is retried once
// with a fresh identifier.
func (s *Service) Reserve(ctx context.Context, showtimeID int, customer string, tickets int) (string, error) {
	if tickets <= 0 {
		return "", ErrInvalidTicketCount
	}

	_, err := s.showtimes.GetById(ctx, showtimeID)
	if err != nil {
		return "", err
	}

	orderNo, err := s.reserve(ctx, showtimeID, customer, tickets)
	if errors.Is(err, domain.ErrDuplicateOrderNo) {
		orderNo, err = s.reserve(ctx, showtimeID, customer, tickets)
	}

	return orderNo, err
}

func (s *Service) reserve(ctx context.Context, showtimeID int, customer string, tickets int) (string, error) {
	var orderNo string

	err := s.ledger.InTx(ctx, func(tx domain.BookingLedger) error {
		remaining, err := tx.RemainingSeats(ctx, showtimeID)
		if err != nil {
			return err
		}

		if tickets > remaining {
			return &CapacityExceededError{Remaining: remaining}
		}

		orderNo, err = s.orders.Unique(ctx, tx.OrderNoExists)
		if err != nil {
			return err
		}

		return tx.Append(ctx, &domain.Booking{
			OrderNo:    orderNo,
			ShowtimeID: showtimeID,
			Customer:   customer,
			Tickets:    tickets,
		})
	})

	if err != nil {
		return "", err
	}

	return orderNo, nil
}

// Cancel deletes the booking with the given order number if it belongs to
// customer. It reports false both when no such order exists and when the
// order belongs to someone else, so callers cannot probe for foreign orders.
func (s *Service) Cancel(ctx context.Context, orderNo, customer string) (bool, error) {
	return s.ledger.Remove(ctx, orderNo, customer)
}

func (s *Service) RemainingSeats(ctx context.Context, showtimeID int) (int, error) {
	return s.ledger.RemainingSeats(ctx, showtimeID)
}

func (s *Service) FindByOrderNo(ctx context.Context, orderNo string) ([]domain.BookingDetail, error) {
	return s.ledger.FindByOrderNo(ctx, orderNo)
}

func (s *Service) FindByCustomer(ctx context.Context, customer string) ([]domain.BookingDetail, error) {
	return s.ledger.FindByCustomer(ctx, customer)
}
