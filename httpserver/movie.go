package httpserver

import (
	"net/http"
	"strconv"

	"filmstore/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.POST("", s.handleCreateMovie)
	g.GET("", s.handleListMovies)
	g.GET("/:id", s.handleGetMovie)
	g.PUT("/:id", s.handleUpdateMovie)
	g.DELETE("/:id", s.handleDeleteMovie)
}

// handleCreateMovie godoc
// @Summary Create Movie
// @Description Add a new movie; the title must not already be taken
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body CreateMovieRequest true "Movie Data"
// @Success 201 {object} APIResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/movies [post]
func (s *Server) handleCreateMovie(c echo.Context) error {
	var req CreateMovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := s.MovieService.AddMovie(c.Request().Context(), req.ToMovie())
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusCreated, created)
}

// handleListMovies godoc
// @Summary List Movies
// @Description Filtered, paginated movie listing, newest first
// @Tags movies
// @Produce json
// @Param genre query string false "Genre substring"
// @Param director query string false "Director substring"
// @Param minYear query int false "Earliest release year"
// @Param maxYear query int false "Latest release year"
// @Param minRating query number false "Minimum rating"
// @Param page query int false "Page (1-based), default 1"
// @Param limit query int false "Page size (1-100), default 10"
// @Success 200 {object} APIResponse
// @Failure 400 {object} map[string]string
// @Router /api/movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	var req MovieFilterRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	page, err := s.MovieService.ListMovies(c.Request().Context(), req.ToFilter())
	if err != nil {
		return err
	}

	return writePagedList(c, http.StatusOK, page.Movies, page.Pagination)
}

// handleGetMovie godoc
// @Summary Get Movie
// @Description Fetch one movie by id
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} APIResponse
// @Failure 404 {object} map[string]string
// @Router /api/movies/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return err
	}

	m, err := s.MovieService.GetMovieByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, m)
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Partially update a movie; a changed title must stay unique
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body UpdateMovieRequest true "Changed Fields"
// @Success 200 {object} APIResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/movies/{id} [put]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return err
	}

	var req UpdateMovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := s.MovieService.UpdateMovie(c.Request().Context(), id, req.ToUpdate())
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, updated)
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Description Delete a movie by id
// @Tags movies
// @Param id path int true "Movie ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/movies/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return err
	}

	if err := s.MovieService.DeleteMovie(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func movieID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.Errorf(errs.EVALIDATION, "invalid movie id")
	}
	return id, nil
}
