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

// PostgresUserRepository reads customers from the users table and staff from
// the employees table. Employee accounts are seeded out of band; only
// customers register through the API.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

func (p *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := p.db.QueryRow(ctx, query, user.Username, user.Email, user.Password.Hash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrUserAlreadyExists
		}

		return err
	}

	user.Role = domain.RoleCustomer

	return nil
}

func (p *PostgresUserRepository) GetByUsername(
	ctx context.Context,
	username string,
	role domain.Role) (*domain.User, error) {

	query := `SELECT id, username, email, password_hash, created_at FROM users WHERE username = $1`
	if role == domain.RoleEmployee {
		query = `SELECT id, username, '', password_hash, created_at FROM employees WHERE username = $1`
	}

	user := domain.User{Role: role}

	err := p.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password.Hash,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &user, nil
}
