package postgres

import (
	"context"
	"errors"
	"time"

	"filmstore/movie"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// MovieModel represents the database model for movies.
// created_at/updated_at are maintained by GORM; callers never set them.
type MovieModel struct {
	ID          int64    `gorm:"primaryKey"`
	Title       string   `gorm:"size:200;not null;uniqueIndex:idx_movies_title"`
	Director    string   `gorm:"size:100;not null"`
	Genre       string   `gorm:"size:50;not null"`
	ReleaseYear int      `gorm:"column:release_year;not null"`
	Rating      *float64 `gorm:""`
	Description *string  `gorm:"size:1000"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

// MovieRepository implements movie.Repository on PostgreSQL.
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	model := toModel(m)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return movie.Movie{}, movie.ErrDuplicateTitle
		}
		return movie.Movie{}, err
	}
	return fromModel(model), nil
}

// FindMovies returns one page of movies matching the filter together with
// the total count for the same predicate. The page fetch and the count run
// concurrently; ordering is newest first with id as a deterministic
// tie-break so pages never overlap.
func (r *MovieRepository) FindMovies(ctx context.Context, f movie.Filter, offset, limit int) ([]movie.Movie, int64, error) {
	var (
		models []MovieModel
		total  int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.filtered(gctx, f).
			Order("created_at DESC, id DESC").
			Offset(offset).
			Limit(limit).
			Find(&models).Error
	})
	g.Go(func() error {
		return r.filtered(gctx, f).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = fromModel(model)
	}
	return movies, total, nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id int64) (movie.Movie, error) {
	var model MovieModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return movie.Movie{}, movie.ErrNotFound
		}
		return movie.Movie{}, err
	}
	return fromModel(model), nil
}

// FindByTitle matches the title case-sensitively, mirroring the unique
// index that backs the duplicate check.
func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (movie.Movie, error) {
	var model MovieModel
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return movie.Movie{}, movie.ErrNotFound
		}
		return movie.Movie{}, err
	}
	return fromModel(model), nil
}

func (r *MovieRepository) UpdateMovie(ctx context.Context, id int64, changes movie.Update) (movie.Movie, error) {
	updates := map[string]interface{}{}
	if changes.Title != nil {
		updates["title"] = *changes.Title
	}
	if changes.Director != nil {
		updates["director"] = *changes.Director
	}
	if changes.Genre != nil {
		updates["genre"] = *changes.Genre
	}
	if changes.ReleaseYear != nil {
		updates["release_year"] = *changes.ReleaseYear
	}
	if changes.Rating != nil {
		updates["rating"] = *changes.Rating
	}
	if changes.Description != nil {
		updates["description"] = *changes.Description
	}

	if len(updates) > 0 {
		tx := r.db.WithContext(ctx).Model(&MovieModel{}).Where("id = ?", id).Updates(updates)
		if tx.Error != nil {
			if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
				return movie.Movie{}, movie.ErrDuplicateTitle
			}
			return movie.Movie{}, tx.Error
		}
		if tx.RowsAffected == 0 {
			return movie.Movie{}, movie.ErrNotFound
		}
	}

	return r.FindByID(ctx, id)
}

func (r *MovieRepository) DeleteMovie(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&MovieModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return movie.ErrNotFound
	}
	return nil
}

// filtered builds a fresh query with the filter's conjunctive predicate.
// Each caller gets its own chain, so two goroutines can use it safely.
func (r *MovieRepository) filtered(ctx context.Context, f movie.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&MovieModel{})
	if f.Genre != "" {
		q = q.Where("genre ILIKE ?", "%"+f.Genre+"%")
	}
	if f.Director != "" {
		q = q.Where("director ILIKE ?", "%"+f.Director+"%")
	}
	if f.MinYear != nil {
		q = q.Where("release_year >= ?", *f.MinYear)
	}
	if f.MaxYear != nil {
		q = q.Where("release_year <= ?", *f.MaxYear)
	}
	if f.MinRating != nil {
		q = q.Where("rating >= ?", *f.MinRating)
	}
	return q
}

func toModel(m movie.Movie) MovieModel {
	return MovieModel{
		ID:          m.ID,
		Title:       m.Title,
		Director:    m.Director,
		Genre:       m.Genre,
		ReleaseYear: m.ReleaseYear,
		Rating:      m.Rating,
		Description: m.Description,
	}
}

func fromModel(model MovieModel) movie.Movie {
	return movie.Movie{
		ID:          model.ID,
		Title:       model.Title,
		Director:    model.Director,
		Genre:       model.Genre,
		ReleaseYear: model.ReleaseYear,
		Rating:      model.Rating,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
