package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"filmstore/pkg/config"
	"filmstore/postgres"

	_ "github.com/lib/pq"
	"gorm.io/gorm"
)

type seedMovie struct {
	Title       string
	Director    string
	Genre       string
	ReleaseYear int
	Rating      float64
	Description string
}

var movies = []seedMovie{
	{
		Title:       "The Shawshank Redemption",
		Director:    "Frank Darabont",
		Genre:       "Drama",
		ReleaseYear: 1994,
		Rating:      9.3,
		Description: "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
	},
	{
		Title:       "The Godfather",
		Director:    "Francis Ford Coppola",
		Genre:       "Crime",
		ReleaseYear: 1972,
		Rating:      9.2,
		Description: "The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son.",
	},
	{
		Title:       "The Dark Knight",
		Director:    "Christopher Nolan",
		Genre:       "Action",
		ReleaseYear: 2008,
		Rating:      9.0,
		Description: "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests.",
	},
	{
		Title:       "Inception",
		Director:    "Christopher Nolan",
		Genre:       "Sci-Fi",
		ReleaseYear: 2010,
		Rating:      8.8,
		Description: "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea.",
	},
	{
		Title:       "Pulp Fiction",
		Director:    "Quentin Tarantino",
		Genre:       "Crime",
		ReleaseYear: 1994,
		Rating:      8.9,
		Description: "The lives of two mob hitmen, a boxer, a gangster and his wife intertwine in four tales of violence and redemption.",
	},
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     fmt.Sprintf("%d", cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		slog.Error("cannot open postgres connection", "error", err)
		os.Exit(1)
	}

	count, err := seedMovies(context.Background(), db)
	if err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}

	slog.Info("database seeded", "movies", count)
}

// seedMovies upserts the sample catalog. Re-running the seeder refreshes the
// rows instead of failing on the unique title index.
func seedMovies(ctx context.Context, db *gorm.DB) (int, error) {
	stmt := `
INSERT INTO movies (title, director, genre, release_year, rating, description)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (title) DO UPDATE SET
	director = EXCLUDED.director,
	genre = EXCLUDED.genre,
	release_year = EXCLUDED.release_year,
	rating = EXCLUDED.rating,
	description = EXCLUDED.description,
	updated_at = NOW()
`

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}

	count := 0
	for _, m := range movies {
		if err := tx.Exec(stmt, m.Title, m.Director, m.Genre, m.ReleaseYear, m.Rating, m.Description).Error; err != nil {
			_ = tx.Rollback()
			return count, err
		}
		count++
	}

	if err := tx.Commit().Error; err != nil {
		return count, err
	}

	return count, nil
}
