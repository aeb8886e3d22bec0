// nolint: funlen
package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"filmstore/movie"
	"filmstore/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

func TestMovieRepository_CreateMovie(t *testing.T) {
	dbName, dbUser, dbPass := "movie_create_test", "testuser", "testpass"
	db := CreateConnection(t, dbName, dbUser, dbPass)
	MigrateTestDatabase(t, db, "../migrations")

	t.Run("successfully creates a movie", func(t *testing.T) {
		cleanupMovieDatabase(t, db)
		repo := postgres.NewMovieRepository(db)
		input := movie.Movie{
			Title:       "The Shawshank Redemption",
			Director:    "Frank Darabont",
			Genre:       "Drama",
			ReleaseYear: 1994,
			Rating:      ptr(9.3),
		}

		created, err := repo.CreateMovie(context.Background(), input)

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero(), "created_at should be set by the persistence layer")
		assertMovieExists(t, db, input.Title)
	})

	t.Run("reports a unique violation as duplicate title", func(t *testing.T) {
		cleanupMovieDatabase(t, db)
		repo := postgres.NewMovieRepository(db)
		input := movie.Movie{Title: "Heat", Director: "Michael Mann", Genre: "Crime", ReleaseYear: 1995}

		_, err := repo.CreateMovie(context.Background(), input)
		require.NoError(t, err)

		_, err = repo.CreateMovie(context.Background(), input)
		assert.Equal(t, movie.ErrDuplicateTitle, err)
	})

	t.Run("titles differing only in case are distinct records", func(t *testing.T) {
		cleanupMovieDatabase(t, db)
		repo := postgres.NewMovieRepository(db)

		_, err := repo.CreateMovie(context.Background(), movie.Movie{Title: "Heat", Director: "Michael Mann", Genre: "Crime", ReleaseYear: 1995})
		require.NoError(t, err)

		_, err = repo.CreateMovie(context.Background(), movie.Movie{Title: "heat", Director: "Michael Mann", Genre: "Crime", ReleaseYear: 1995})
		assert.NoError(t, err)
	})
}

func TestMovieRepository_FindByTitle(t *testing.T) {
	dbName, dbUser, dbPass := "movie_title_test", "testuser", "testpass"
	db := CreateConnection(t, dbName, dbUser, dbPass)
	MigrateTestDatabase(t, db, "../migrations")

	cleanupMovieDatabase(t, db)
	repo := postgres.NewMovieRepository(db)
	_, err := repo.CreateMovie(context.Background(), movie.Movie{Title: "Inception", Director: "Christopher Nolan", Genre: "Sci-Fi", ReleaseYear: 2010})
	require.NoError(t, err)

	t.Run("finds an exact match", func(t *testing.T) {
		m, err := repo.FindByTitle(context.Background(), "Inception")

		require.NoError(t, err)
		assert.Equal(t, "Inception", m.Title)
	})

	t.Run("match is case-sensitive", func(t *testing.T) {
		_, err := repo.FindByTitle(context.Background(), "inception")

		assert.Equal(t, movie.ErrNotFound, err)
	})
}

func TestMovieRepository_FindMovies(t *testing.T) {
	dbName, dbUser, dbPass := "movie_list_test", "testuser", "testpass"
	db := CreateConnection(t, dbName, dbUser, dbPass)
	MigrateTestDatabase(t, db, "../migrations")

	repo := postgres.NewMovieRepository(db)
	ctx := context.Background()

	seedCatalog := func(t *testing.T) {
		t.Helper()
		cleanupMovieDatabase(t, db)
		// A, B, C from oldest to newest insertion
		movies := []movie.Movie{
			{Title: "The Shawshank Redemption", Director: "Frank Darabont", Genre: "Drama", ReleaseYear: 1994, Rating: ptr(9.3)},
			{Title: "The Dark Knight", Director: "Christopher Nolan", Genre: "Action", ReleaseYear: 2008, Rating: ptr(9.0)},
			{Title: "Inception", Director: "Christopher Nolan", Genre: "Sci-Fi", ReleaseYear: 2010, Rating: ptr(8.8)},
		}
		for _, m := range movies {
			_, err := repo.CreateMovie(ctx, m)
			require.NoError(t, err)
		}
	}

	t.Run("min year bound", func(t *testing.T) {
		seedCatalog(t)

		movies, total, err := repo.FindMovies(ctx, movie.Filter{MinYear: ptr(2000)}, 0, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.ElementsMatch(t, []string{"The Dark Knight", "Inception"}, titles(movies))
	})

	t.Run("min rating bound is inclusive", func(t *testing.T) {
		seedCatalog(t)

		movies, total, err := repo.FindMovies(ctx, movie.Filter{MinRating: ptr(9.0)}, 0, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.ElementsMatch(t, []string{"The Shawshank Redemption", "The Dark Knight"}, titles(movies))
	})

	t.Run("genre and director substrings are case-insensitive", func(t *testing.T) {
		seedCatalog(t)

		movies, _, err := repo.FindMovies(ctx, movie.Filter{Genre: "sci"}, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"Inception"}, titles(movies))

		movies, _, err = repo.FindMovies(ctx, movie.Filter{Director: "nolan"}, 0, 10)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"The Dark Knight", "Inception"}, titles(movies))
	})

	t.Run("conjunctive filters", func(t *testing.T) {
		seedCatalog(t)

		movies, total, err := repo.FindMovies(ctx, movie.Filter{Director: "Nolan", MaxYear: ptr(2009)}, 0, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, []string{"The Dark Knight"}, titles(movies))
	})

	t.Run("orders newest first and pages without overlap", func(t *testing.T) {
		cleanupMovieDatabase(t, db)
		for i := 1; i <= 7; i++ {
			_, err := repo.CreateMovie(ctx, movie.Movie{
				Title:       fmt.Sprintf("Movie %02d", i),
				Director:    "Someone",
				Genre:       "Drama",
				ReleaseYear: 1990 + i,
			})
			require.NoError(t, err)
		}

		const limit = 2
		seen := map[int64]bool{}
		var collected []movie.Movie
		for page := 1; ; page++ {
			movies, total, err := repo.FindMovies(ctx, movie.Filter{}, (page-1)*limit, limit)
			require.NoError(t, err)
			assert.Equal(t, int64(7), total)
			if len(movies) == 0 {
				break
			}
			for _, m := range movies {
				assert.False(t, seen[m.ID], "movie %d appeared on two pages", m.ID)
				seen[m.ID] = true
			}
			collected = append(collected, movies...)
		}

		require.Len(t, collected, 7, "concatenated pages should yield exactly total records")
		for i := 1; i < len(collected); i++ {
			prev, cur := collected[i-1], collected[i]
			notAfter := cur.CreatedAt.Before(prev.CreatedAt) || cur.CreatedAt.Equal(prev.CreatedAt)
			assert.True(t, notAfter, "expected descending creation time")
			if cur.CreatedAt.Equal(prev.CreatedAt) {
				assert.Less(t, cur.ID, prev.ID, "expected descending id tie-break")
			}
		}
	})
}

func TestMovieRepository_UpdateMovie(t *testing.T) {
	dbName, dbUser, dbPass := "movie_update_test", "testuser", "testpass"
	db := CreateConnection(t, dbName, dbUser, dbPass)
	MigrateTestDatabase(t, db, "../migrations")

	repo := postgres.NewMovieRepository(db)
	ctx := context.Background()

	t.Run("applies only the changed fields", func(t *testing.T) {
		cleanupMovieDatabase(t, db)
		created, err := repo.CreateMovie(ctx, movie.Movie{Title: "Pulp Fiction", Director: "Quentin Tarantino", Genre: "Crime", ReleaseYear: 1994})
		require.NoError(t, err)

		updated, err := repo.UpdateMovie(ctx, created.ID, movie.Update{Rating: ptr(8.9)})

		require.NoError(t, err)
		assert.Equal(t, "Pulp Fiction", updated.Title)
		assert.Equal(t, "Quentin Tarantino", updated.Director)
		require.NotNil(t, updated.Rating)
		assert.Equal(t, 8.9, *updated.Rating)
	})

	t.Run("empty change set returns the current record", func(t *testing.T) {
		cleanupMovieDatabase(t, db)
		created, err := repo.CreateMovie(ctx, movie.Movie{Title: "The Godfather", Director: "Francis Ford Coppola", Genre: "Crime", ReleaseYear: 1972})
		require.NoError(t, err)

		updated, err := repo.UpdateMovie(ctx, created.ID, movie.Update{})

		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "The Godfather", updated.Title)
	})

	t.Run("missing id reports not found", func(t *testing.T) {
		cleanupMovieDatabase(t, db)

		_, err := repo.UpdateMovie(ctx, 424242, movie.Update{Genre: ptr("Drama")})

		assert.Equal(t, movie.ErrNotFound, err)
	})

	t.Run("re-titling onto an existing title reports duplicate", func(t *testing.T) {
		cleanupMovieDatabase(t, db)
		_, err := repo.CreateMovie(ctx, movie.Movie{Title: "Heat", Director: "Michael Mann", Genre: "Crime", ReleaseYear: 1995})
		require.NoError(t, err)
		other, err := repo.CreateMovie(ctx, movie.Movie{Title: "Collateral", Director: "Michael Mann", Genre: "Thriller", ReleaseYear: 2004})
		require.NoError(t, err)

		_, err = repo.UpdateMovie(ctx, other.ID, movie.Update{Title: ptr("Heat")})

		assert.Equal(t, movie.ErrDuplicateTitle, err)
	})
}

func TestMovieRepository_DeleteMovie(t *testing.T) {
	dbName, dbUser, dbPass := "movie_delete_test", "testuser", "testpass"
	db := CreateConnection(t, dbName, dbUser, dbPass)
	MigrateTestDatabase(t, db, "../migrations")

	repo := postgres.NewMovieRepository(db)
	ctx := context.Background()

	t.Run("deletes an existing movie", func(t *testing.T) {
		cleanupMovieDatabase(t, db)
		created, err := repo.CreateMovie(ctx, movie.Movie{Title: "Alien", Director: "Ridley Scott", Genre: "Horror", ReleaseYear: 1979})
		require.NoError(t, err)

		err = repo.DeleteMovie(ctx, created.ID)
		require.NoError(t, err)

		_, err = repo.FindByID(ctx, created.ID)
		assert.Equal(t, movie.ErrNotFound, err)
	})

	t.Run("missing id reports not found", func(t *testing.T) {
		cleanupMovieDatabase(t, db)

		err := repo.DeleteMovie(ctx, 424242)

		assert.Equal(t, movie.ErrNotFound, err)
	})
}

func titles(movies []movie.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

// assertMovieExists verifies that a movie row exists with the given title
func assertMovieExists(t testing.TB, db *gorm.DB, title string) {
	t.Helper()
	var model postgres.MovieModel
	result := db.Where("title = ?", title).First(&model)
	require.NoError(t, result.Error, "movie should exist in database")
	assert.NotZero(t, model.ID)
}

// cleanupMovieDatabase truncates the movies table to ensure test isolation
func cleanupMovieDatabase(t testing.TB, db *gorm.DB) {
	t.Helper()
	err := db.Exec("TRUNCATE TABLE movies RESTART IDENTITY CASCADE").Error
	require.NoError(t, err)
}
