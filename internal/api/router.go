package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"acronymer/internal/i18n"
	"acronymer/internal/notify"
	"acronymer/internal/service"
	"acronymer/internal/view"
)

const requestTimeout = 30 * time.Second

func NewRouter(
	acronymService *service.AcronymService,
	translator *i18n.Translator,
	renderer *view.Renderer,
	hub *notify.Hub,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(Language(translator))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	localeHandler := NewLocaleHandler(translator, renderer, logger)
	r.With(chiMiddleware.Timeout(requestTimeout)).Get("/", localeHandler.ServeIndex)

	r.Route("/api/v1", func(v1 chi.Router) {
		// SSE connections outlive the request timeout
		if hub != nil {
			notificationHandler := NewNotificationHandler(hub, translator, logger)
			v1.Get("/notifications", notificationHandler.stream)
		}

		v1.Group(func(timed chi.Router) {
			timed.Use(chiMiddleware.Timeout(requestTimeout))

			acronymHandler := NewAcronymHandler(acronymService, logger)
			timed.Route("/acronyms", acronymHandler.RegisterRoutes)

			localeHandler.RegisterRoutes(timed)
		})
	})

	return r
}
