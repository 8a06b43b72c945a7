package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"ms-rsvp/internal/admin/admin_api"
	"ms-rsvp/internal/auth"
	"ms-rsvp/internal/config"
	"ms-rsvp/internal/logger"
	"ms-rsvp/internal/rsvp/rsvp_api"
)

// NewRouter wires the public and admin routes.
func NewRouter(cfg *config.Config, public *rsvp_api.Handler, admin *admin_api.Handler, log *logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, requestLogger(log), middleware.Recoverer)

	r.Get("/health", public.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			AllowedMethods: []string{http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         300,
		}))
		r.Post("/rsvp", public.Submit)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(auth.BasicAuth(cfg.Admin, log))
		r.Get("/", admin.ListResponses)
		r.Get("/edit/{id}", admin.EditForm)
		r.Post("/edit/{id}", admin.SaveEdit)
		r.Post("/delete/{id}", admin.DeleteResponse)
		r.Get("/export.xlsx", admin.ExportXLSX)
		r.Get("/qr.png", admin.InvitationQR)
	})

	return r
}

func requestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.LogAPI(r.Method, r.URL.Path, strconv.Itoa(status), fmt.Sprint(time.Since(start).Round(time.Microsecond)))
		})
	}
}
