package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/filmhaus/movie-booking/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	return req, nil
}

func newRecorderFor(app *TestApp, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	return rec
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		return k == "timestamp" || k == "requestId" || k == "createdAt" || k == "orderNo"
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func truncateTables(t testing.TB, app *TestApp) {
	_, err := app.DB.Exec(context.Background(),
		`TRUNCATE bookings, showtimes, movies, users, employees RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func createMovie(t testing.TB, app *TestApp, title string) int {
	var id int

	err := app.DB.QueryRow(context.Background(),
		`INSERT INTO movies (title, poster_url) VALUES ($1, $2) RETURNING id`,
		title, "https://example.com/"+strings.ReplaceAll(strings.ToLower(title), " ", "-")+".jpg",
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func createShowtime(t testing.TB, app *TestApp, movieID int, weekday, startTime string, totalSeats int) int {
	var id int

	err := app.DB.QueryRow(context.Background(),
		`INSERT INTO showtimes (movie_id, weekday, start_time, total_seats) VALUES ($1, $2, $3, $4) RETURNING id`,
		movieID, weekday, startTime, totalSeats,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func createEmployee(t testing.TB, app *TestApp, username, password string) {
	var user domain.User
	require.NoError(t, user.Password.Set(password))

	_, err := app.DB.Exec(context.Background(),
		`INSERT INTO employees (username, password_hash) VALUES ($1, $2) ON CONFLICT (username) DO NOTHING`,
		username, user.Password.Hash,
	)
	require.NoError(t, err)
}

// registerAndLogin creates a customer account through the API and returns the
// session cookie of a fresh login.
func registerAndLogin(t testing.TB, app *TestApp, username, password string) *http.Cookie {
	registerBody := fmt.Sprintf(`{"username": %q, "email": %q, "password": %q}`,
		username, username+"@example.com", password)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(registerBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	return login(t, app, "/sessions", username, password)
}

func loginEmployee(t testing.TB, app *TestApp, username, password string) *http.Cookie {
	createEmployee(t, app, username, password)

	return login(t, app, "/employees/sessions", username, password)
}

func login(t testing.TB, app *TestApp, path, username, password string) *http.Cookie {
	loginBody := fmt.Sprintf(`{"username": %q, "password": %q}`, username, password)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(loginBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "login did not set a session cookie")

	for _, cookie := range cookies {
		if cookie.Name == "session_id" {
			return cookie
		}
	}

	t.Fatal("session cookie not found in login response")
	return nil
}
