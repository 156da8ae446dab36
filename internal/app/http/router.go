package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"iq-home/quotes_backend/internal/app/config"
	"iq-home/quotes_backend/internal/app/http/handlers"
	"iq-home/quotes_backend/internal/app/http/middleware"
	"iq-home/quotes_backend/internal/logger"
)

func NewRouter(cfg config.Config, h *handlers.Handlers, log logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging(log))
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/quotes/price", h.PriceQuote)
		r.Get("/quotes", h.ListQuotes)
		r.Get("/forms", h.ListForms)
		r.Get("/timeline", h.Timeline)
	})

	return r
}
