package mocks

import (
	"context"

	"github.com/filmhaus/movie-booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingLedger struct {
	mock.Mock
	domain.BookingLedger
}

// InTx runs fn against the mock itself, so expectations set on the simple
// methods also cover calls made inside a transaction.
func (m *MockBookingLedger) InTx(ctx context.Context, fn func(ledger domain.BookingLedger) error) error {
	return fn(m)
}

func (m *MockBookingLedger) RemainingSeats(ctx context.Context, showtimeID int) (int, error) {
	args := m.Called(ctx, showtimeID)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingLedger) Append(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingLedger) Remove(ctx context.Context, orderNo, customer string) (bool, error) {
	args := m.Called(ctx, orderNo, customer)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingLedger) OrderNoExists(ctx context.Context, orderNo string) (bool, error) {
	args := m.Called(ctx, orderNo)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingLedger) FindByOrderNo(ctx context.Context, orderNo string) ([]domain.BookingDetail, error) {
	args := m.Called(ctx, orderNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingDetail), args.Error(1)
}

func (m *MockBookingLedger) FindByCustomer(ctx context.Context, customer string) ([]domain.BookingDetail, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingDetail), args.Error(1)
}
