package movie

import (
	"time"

	"filmstore/errs"
)

var (
	// ErrNotFound is returned whenever an operation targets a movie id
	// that has no live record.
	ErrNotFound = errs.Errorf(errs.ENOTFOUND, "movie not found")

	// ErrDuplicateTitle is returned when a create or update would give two
	// live movies the same title. Titles are compared case-sensitively;
	// the unique index on movies.title is the authority under concurrent
	// writes and the service-level pre-check only buys a better error
	// message on the fast path.
	ErrDuplicateTitle = errs.Errorf(errs.EDUPLICATE, "a movie with this title already exists")
)

type Movie struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Director    string    `json:"director"`
	Genre       string    `json:"genre"`
	ReleaseYear int       `json:"releaseYear"`
	Rating      *float64  `json:"rating"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Update is a partial change set. Nil fields are left untouched; id and
// timestamps are never caller-assignable.
type Update struct {
	Title       *string
	Director    *string
	Genre       *string
	ReleaseYear *int
	Rating      *float64
	Description *string
}

// Filter narrows a listing. Zero-value fields impose no constraint.
type Filter struct {
	Genre     string
	Director  string
	MinYear   *int
	MaxYear   *int
	MinRating *float64
	Page      int
	Limit     int
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Page is one page of a filtered listing.
type Page struct {
	Movies     []Movie    `json:"data"`
	Pagination Pagination `json:"pagination"`
}
