package handler

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/passgen/passgen-api/internal/middleware"
)

// NewRouter wires the API routes and the middleware stack.
func NewRouter(allowedOrigins []string, gen *GeneratorHandler, val *ValidatorHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(allowedOrigins))
	r.Use(middleware.Preflight)
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	r.Use(tagRequestID)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/password", gen.HandleGenerate)
		r.Post("/passwords", gen.HandleGenerateMany)
		r.Post("/password/validate", val.HandleValidate)
	})

	return r
}

// tagRequestID attaches the chi request ID to events reported for the request.
func tagRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
			hub.Scope().SetTag("request_id", chimw.GetReqID(r.Context()))
		}
		next.ServeHTTP(w, r)
	})
}
