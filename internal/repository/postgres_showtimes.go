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

type PostgresShowtimeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeRepository(db *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{
		db: db,
	}
}

func (p *PostgresShowtimeRepository) GetById(ctx context.Context, id int) (*domain.Showtime, error) {
	query := `
		SELECT id, movie_id, weekday, start_time, total_seats, created_at
		FROM showtimes
		WHERE id = $1
	`

	var showtime domain.Showtime

	err := p.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.Weekday,
		&showtime.StartTime,
		&showtime.TotalSeats,
		&showtime.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShowtimeNotFound
		}

		return nil, err
	}

	return &showtime, nil
}

func (p *PostgresShowtimeRepository) GetByMovie(ctx context.Context, movieID int) ([]domain.Showtime, error) {
	query := `
		SELECT id, movie_id, weekday, start_time, total_seats, created_at
		FROM showtimes
		WHERE movie_id = $1
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	showtimes := make([]domain.Showtime, 0)

	for rows.Next() {
		var showtime domain.Showtime

		err := rows.Scan(
			&showtime.ID,
			&showtime.MovieID,
			&showtime.Weekday,
			&showtime.StartTime,
			&showtime.TotalSeats,
			&showtime.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		showtimes = append(showtimes, showtime)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return showtimes, nil
}

func (p *PostgresShowtimeRepository) Create(ctx context.Context, showtime *domain.Showtime) error {
	query := `
		INSERT INTO showtimes (movie_id, weekday, start_time, total_seats)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		showtime.MovieID,
		showtime.Weekday,
		showtime.StartTime,
		showtime.TotalSeats).Scan(&showtime.ID, &showtime.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresShowtimeRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM showtimes WHERE id = $1`

	tag, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrShowtimeNotFound
	}

	return nil
}
