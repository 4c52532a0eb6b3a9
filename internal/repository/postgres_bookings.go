package repository

import (
	"context"
	"errors"

	"github.com/filmhaus/movie-booking/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the ledger can
// run the same queries inside or outside a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresBookingLedger stores booking records in the bookings table and
// derives remaining capacity by aggregating over them. When bound to a
// transaction via InTx, RemainingSeats takes a row lock on the showtime, so
// concurrent reservations against the same showtime are serialized and the
// capacity check cannot race with the insert.
type PostgresBookingLedger struct {
	pool *pgxpool.Pool
	db   querier
	inTx bool
}

func NewPostgresBookingLedger(pool *pgxpool.Pool) *PostgresBookingLedger {
	return &PostgresBookingLedger{
		pool: pool,
		db:   pool,
	}
}

// InTx runs fn against a ledger bound to a single transaction. A ledger that
// is already transaction-bound reuses its transaction.
func (p *PostgresBookingLedger) InTx(ctx context.Context, fn func(ledger domain.BookingLedger) error) error {
	if p.inTx {
		return fn(p)
	}

	return runInTx(ctx, p.pool, func(tx pgx.Tx) error {
		return fn(&PostgresBookingLedger{pool: p.pool, db: tx, inTx: true})
	})
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

func (p *PostgresBookingLedger) RemainingSeats(ctx context.Context, showtimeID int) (int, error) {
	query := `SELECT total_seats FROM showtimes WHERE id = $1`
	if p.inTx {
		query += ` FOR UPDATE`
	}

	var totalSeats int

	err := p.db.QueryRow(ctx, query, showtimeID).Scan(&totalSeats)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrShowtimeNotFound
		}

		return 0, err
	}

	query = `SELECT COALESCE(SUM(tickets), 0) FROM bookings WHERE showtime_id = $1`

	var booked int

	err = p.db.QueryRow(ctx, query, showtimeID).Scan(&booked)
	if err != nil {
		return 0, err
	}

	return totalSeats - booked, nil
}

func (p *PostgresBookingLedger) Append(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (order_no, showtime_id, customer, tickets)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		booking.OrderNo,
		booking.ShowtimeID,
		booking.Customer,
		booking.Tickets).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return domain.ErrDuplicateOrderNo
			case pgerrcode.ForeignKeyViolation:
				return domain.ErrShowtimeNotFound
			}
		}

		return err
	}

	return nil
}

func (p *PostgresBookingLedger) Remove(ctx context.Context, orderNo, customer string) (bool, error) {
	query := `DELETE FROM bookings WHERE order_no = $1 AND customer = $2`

	tag, err := p.db.Exec(ctx, query, orderNo, customer)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (p *PostgresBookingLedger) OrderNoExists(ctx context.Context, orderNo string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bookings WHERE order_no = $1)`

	var exists bool

	err := p.db.QueryRow(ctx, query, orderNo).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (p *PostgresBookingLedger) FindByOrderNo(ctx context.Context, orderNo string) ([]domain.BookingDetail, error) {
	query := bookingDetailQuery + ` WHERE b.order_no = $1`

	return p.queryBookingDetails(ctx, query, orderNo)
}

func (p *PostgresBookingLedger) FindByCustomer(ctx context.Context, customer string) ([]domain.BookingDetail, error) {
	query := bookingDetailQuery + ` WHERE b.customer = $1 ORDER BY b.created_at DESC`

	return p.queryBookingDetails(ctx, query, customer)
}

const bookingDetailQuery = `
	SELECT b.order_no, b.customer, b.tickets, m.title, s.weekday, s.start_time, b.created_at
	FROM bookings b
	JOIN showtimes s ON b.showtime_id = s.id
	JOIN movies m ON s.movie_id = m.id
`

func (p *PostgresBookingLedger) queryBookingDetails(ctx context.Context, query string, args ...any) ([]domain.BookingDetail, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]domain.BookingDetail, 0)

	for rows.Next() {
		var detail domain.BookingDetail

		err := rows.Scan(
			&detail.OrderNo,
			&detail.Customer,
			&detail.Tickets,
			&detail.MovieTitle,
			&detail.Weekday,
			&detail.StartTime,
			&detail.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		details = append(details, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}
