package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"outlet_margin/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/quote", func(r chi.Router) {
				r.Post("/", handler(s.postV1Quote))
			})
			r.Route("/history", func(r chi.Router) {
				r.Get("/", handler(s.getV1History))
				r.Post("/", handler(s.postV1History))
				r.Delete("/{id}", handler(s.deleteV1History))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
