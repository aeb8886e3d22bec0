package httpserver

import (
	"context"
	"net/http"
	"strings"

	"filmstore/errs"
	"filmstore/movie"
	"filmstore/pkg/config"
	"filmstore/pkg/sentry"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	MovieService movie.Service
}

func Default(cfg *config.Config) *Server {
	s := Server{
		Router:       echo.New(),
		Addr:         ":8080",
		AllowOrigins: []string{"*"},
	}
	if cfg.AllowOrigins != "" {
		s.AllowOrigins = strings.Split(cfg.AllowOrigins, ",")
	}

	s.Router.HTTPErrorHandler = customHTTPErrorHandler
	s.Router.Validator = NewValidator()
	s.RegisterGlobalMiddlewares()

	api := s.Router.Group("/api")
	s.RegisterMovieRoutes(api.Group("/movies"))

	s.RegisterHealthRoutes()
	s.RegisterSwaggerRoutes()
	return &s
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	s.Router.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// customHTTPErrorHandler is the only place a typed failure is serialized.
// Application errors become {code, error} with their bound status; anything
// unclassified becomes a plain 500 {error} without leaking internals.
func customHTTPErrorHandler(err error, c echo.Context) {
	var (
		status int
		body   interface{}
	)

	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		body = map[string]string{"error": http.StatusText(he.Code)}
		if msg, ok := he.Message.(string); ok {
			body = map[string]string{"error": msg}
		}
	} else {
		switch code := errs.ErrorCode(err); code {
		case errs.EVALIDATION:
			status = http.StatusBadRequest
			body = errorBody(code, errs.ErrorMessage(err))
		case errs.ENOTFOUND:
			status = http.StatusNotFound
			body = errorBody(code, errs.ErrorMessage(err))
		case errs.EDUPLICATE:
			status = http.StatusConflict
			body = errorBody(code, errs.ErrorMessage(err))
		case errs.EEXTERNAL:
			status = http.StatusBadGateway
			body = errorBody(code, errs.ErrorMessage(err))
		case errs.EDATABASE:
			status = http.StatusInternalServerError
			body = errorBody(code, errs.ErrorMessage(err))
		case errs.EINTERNAL, errs.EUNKNOWN:
			status = http.StatusInternalServerError
			body = map[string]string{"error": "Internal server error"}
		default:
			status = http.StatusInternalServerError
			body = map[string]string{"error": "Internal server error"}
		}
	}

	if status >= http.StatusInternalServerError {
		c.Logger().Error(err)
		sentry.WithContext(c).Error(err)
	}

	// Don't write response if already committed
	if !c.Response().Committed {
		if err := c.JSON(status, body); err != nil {
			c.Logger().Error(err)
		}
	}
}

func errorBody(code, message string) map[string]string {
	return map[string]string{
		"code":  code,
		"error": message,
	}
}
