package integration_test

import (
	"log/slog"
	"os"

	"github.com/filmhaus/movie-booking/internal/app"
	"github.com/filmhaus/movie-booking/internal/mailer"
	"github.com/filmhaus/movie-booking/internal/repository"
	appvalidator "github.com/filmhaus/movie-booking/internal/validator"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TestApp struct {
	App    *app.Application
	DB     *pgxpool.Pool
	Mailer *mailer.MockMailer
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	mockMailer := &mailer.MockMailer{}

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	movieRepo := repository.NewPostgresMovieRepository(db)
	showtimeRepo := repository.NewPostgresShowtimeRepository(db)
	userRepo := repository.NewPostgresUserRepository(db)
	ledger := repository.NewPostgresBookingLedger(db)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mockMailer,
		sessionManager,
		movieRepo,
		showtimeRepo,
		userRepo,
		ledger,
	)

	return &TestApp{
		App:    application,
		DB:     db,
		Mailer: mockMailer,
	}, nil
}
