package app

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/filmhaus/movie-booking/api"
	"github.com/filmhaus/movie-booking/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	pagination, err := paginationFromQuery(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:   toMovieSummaries(movies),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	showtimes, err := app.showtimeRepo.GetByMovie(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieDetailResponse{
		Id:        movie.ID,
		Title:     movie.Title,
		PosterUrl: movie.PosterUrl,
		Showtimes: toApiShowtimes(showtimes),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func paginationFromQuery(r *http.Request) (domain.Pagination, error) {
	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	if page := r.URL.Query().Get("page"); page != "" {
		pageNum, err := strconv.Atoi(page)
		if err != nil || pageNum < 1 {
			return pagination, errors.New("invalid page parameter")
		}
		pagination.Page = pageNum
	}

	if pageSize := r.URL.Query().Get("pageSize"); pageSize != "" {
		pageSizeNum, err := strconv.Atoi(pageSize)
		if err != nil || pageSizeNum < 1 || pageSizeNum > MaxPageSize {
			return pagination, errors.New("invalid pageSize parameter")
		}
		pagination.PageSize = pageSizeNum
	}

	return pagination, nil
}

func toMovieSummaries(movies []*domain.Movie) []api.MovieSummary {
	summaries := make([]api.MovieSummary, len(movies))

	for i, movie := range movies {
		summaries[i] = api.MovieSummary{
			Id:        movie.ID,
			Title:     movie.Title,
			PosterUrl: movie.PosterUrl,
		}
	}

	return summaries
}

func toApiShowtimes(showtimes []domain.Showtime) []api.Showtime {
	apiShowtimes := make([]api.Showtime, len(showtimes))

	for i, showtime := range showtimes {
		apiShowtimes[i] = api.Showtime{
			Id:         showtime.ID,
			MovieId:    showtime.MovieID,
			Weekday:    showtime.Weekday,
			StartTime:  showtime.StartTime,
			TotalSeats: showtime.TotalSeats,
		}
	}

	return apiShowtimes
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
