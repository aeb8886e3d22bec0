package movie

import (
	"context"
	"errors"

	"filmstore/errs"
)

type Service interface {
	AddMovie(ctx context.Context, m Movie) (Movie, error)
	ListMovies(ctx context.Context, f Filter) (Page, error)
	GetMovieByID(ctx context.Context, id int64) (Movie, error)
	UpdateMovie(ctx context.Context, id int64, changes Update) (Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

type Repository interface {
	CreateMovie(ctx context.Context, m Movie) (Movie, error)
	FindMovies(ctx context.Context, f Filter, offset, limit int) ([]Movie, int64, error)
	FindByID(ctx context.Context, id int64) (Movie, error)
	FindByTitle(ctx context.Context, title string) (Movie, error)
	UpdateMovie(ctx context.Context, id int64, changes Update) (Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

// AddMovie creates a movie after checking no live record holds the same
// title. Losing the pre-check race is fine: the repository reports the
// storage-level unique violation as ErrDuplicateTitle and it propagates
// unchanged.
func (uc *Usecase) AddMovie(ctx context.Context, m Movie) (Movie, error) {
	_, err := uc.r.FindByTitle(ctx, m.Title)
	switch {
	case err == nil:
		return Movie{}, ErrDuplicateTitle
	case !errors.Is(err, ErrNotFound):
		return Movie{}, errs.Wrap(err, errs.EDATABASE, "could not create movie")
	}

	created, err := uc.r.CreateMovie(ctx, m)
	if err != nil {
		if errors.Is(err, ErrDuplicateTitle) {
			return Movie{}, ErrDuplicateTitle
		}
		return Movie{}, errs.Wrap(err, errs.EDATABASE, "could not create movie")
	}
	return created, nil
}

// ListMovies returns one page of movies matching the filter, newest first.
func (uc *Usecase) ListMovies(ctx context.Context, f Filter) (Page, error) {
	page := f.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := f.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	offset := (page - 1) * limit

	movies, total, err := uc.r.FindMovies(ctx, f, offset, limit)
	if err != nil {
		return Page{}, errs.Wrap(err, errs.EDATABASE, "could not fetch movies")
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Page{
		Movies: movies,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (uc *Usecase) GetMovieByID(ctx context.Context, id int64) (Movie, error) {
	m, err := uc.r.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Movie{}, ErrNotFound
		}
		return Movie{}, errs.Wrap(err, errs.EDATABASE, "could not fetch movie")
	}
	return m, nil
}

// UpdateMovie applies a partial update. When the title changes, no other
// record may already hold the new title. Not-found or unique violations
// surfaced by the write itself re-map to the same typed failures as the
// pre-checks, so a lost race never turns into a generic database error.
func (uc *Usecase) UpdateMovie(ctx context.Context, id int64, changes Update) (Movie, error) {
	if _, err := uc.r.FindByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Movie{}, ErrNotFound
		}
		return Movie{}, errs.Wrap(err, errs.EDATABASE, "could not update movie")
	}

	if changes.Title != nil {
		other, err := uc.r.FindByTitle(ctx, *changes.Title)
		switch {
		case err == nil && other.ID != id:
			return Movie{}, ErrDuplicateTitle
		case err != nil && !errors.Is(err, ErrNotFound):
			return Movie{}, errs.Wrap(err, errs.EDATABASE, "could not update movie")
		}
	}

	updated, err := uc.r.UpdateMovie(ctx, id, changes)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return Movie{}, ErrNotFound
		case errors.Is(err, ErrDuplicateTitle):
			return Movie{}, ErrDuplicateTitle
		}
		return Movie{}, errs.Wrap(err, errs.EDATABASE, "could not update movie")
	}
	return updated, nil
}

// DeleteMovie verifies the record exists before deleting. Two round-trips,
// but this is not a hot path; a delete racing another delete still reports
// ErrNotFound from the write itself.
func (uc *Usecase) DeleteMovie(ctx context.Context, id int64) error {
	if _, err := uc.r.FindByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return errs.Wrap(err, errs.EDATABASE, "could not delete movie")
	}

	if err := uc.r.DeleteMovie(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return errs.Wrap(err, errs.EDATABASE, "could not delete movie")
	}
	return nil
}
