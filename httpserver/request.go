package httpserver

import (
	"filmstore/movie"
)

type CreateMovieRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Director    string   `json:"director" validate:"required,min=1,max=100"`
	Genre       string   `json:"genre" validate:"required,min=1,max=50"`
	ReleaseYear int      `json:"releaseYear" validate:"required,releaseyear"`
	Rating      *float64 `json:"rating" validate:"omitempty,min=0,max=10"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
}

func (r CreateMovieRequest) ToMovie() movie.Movie {
	return movie.Movie{
		Title:       r.Title,
		Director:    r.Director,
		Genre:       r.Genre,
		ReleaseYear: r.ReleaseYear,
		Rating:      r.Rating,
		Description: r.Description,
	}
}

// UpdateMovieRequest carries a partial update: absent fields stay nil and
// are never written. Identifier and timestamps are not accepted here.
type UpdateMovieRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Director    *string  `json:"director" validate:"omitempty,min=1,max=100"`
	Genre       *string  `json:"genre" validate:"omitempty,min=1,max=50"`
	ReleaseYear *int     `json:"releaseYear" validate:"omitempty,releaseyear"`
	Rating      *float64 `json:"rating" validate:"omitempty,min=0,max=10"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
}

func (r UpdateMovieRequest) ToUpdate() movie.Update {
	return movie.Update{
		Title:       r.Title,
		Director:    r.Director,
		Genre:       r.Genre,
		ReleaseYear: r.ReleaseYear,
		Rating:      r.Rating,
		Description: r.Description,
	}
}

// Page and Limit are pointers so an explicit zero in the query string still
// hits the min=1 rule instead of looking like an absent parameter.
type MovieFilterRequest struct {
	Genre     string   `query:"genre" json:"genre" validate:"omitempty,max=50"`
	Director  string   `query:"director" json:"director" validate:"omitempty,max=100"`
	MinYear   *int     `query:"minYear" json:"minYear" validate:"omitempty"`
	MaxYear   *int     `query:"maxYear" json:"maxYear" validate:"omitempty"`
	MinRating *float64 `query:"minRating" json:"minRating" validate:"omitempty,min=0,max=10"`
	Page      *int     `query:"page" json:"page" validate:"omitempty,min=1"`
	Limit     *int     `query:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
}

func (r MovieFilterRequest) ToFilter() movie.Filter {
	f := movie.Filter{
		Genre:     r.Genre,
		Director:  r.Director,
		MinYear:   r.MinYear,
		MaxYear:   r.MaxYear,
		MinRating: r.MinRating,
	}
	if r.Page != nil {
		f.Page = *r.Page
	}
	if r.Limit != nil {
		f.Limit = *r.Limit
	}
	return f
}
