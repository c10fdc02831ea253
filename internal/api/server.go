package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"CandleGrid/internal/dashboard"
	"CandleGrid/internal/model"
)

// Service is the pipeline surface the API exposes.
type Service interface {
	Render(p dashboard.Params) (*model.Dashboard, error)
	Catalog() []string
	MaxSelections() int
}

// NewServer builds the HTTP handler for the dashboard API.
func NewServer(svc Service) http.Handler {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(requestLogger)
	router.Use(middleware.Recoverer)

	cfg := huma.DefaultConfig("CandleGrid API", "1.0.0")
	cfg.DocsPath = ""
	api := humachi.New(router, cfg)

	router.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		if _, err := w.Write([]byte(docsHTML)); err != nil {
			slog.Debug("docs response write failed", "error", err)
		}
	})

	registerHandlers(api, svc)

	return router
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var coded *dashboard.CodedError
	if errors.As(err, &coded) {
		switch coded.Code {
		case dashboard.CodeInvalidDateRange, dashboard.CodeValidation:
			return huma.Error400BadRequest(coded.Message)
		default:
			return huma.Error500InternalServerError(coded.Message)
		}
	}
	return huma.Error500InternalServerError(err.Error())
}
