package notifications

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Source is the toast queue of one caller.
type Source interface {
	ListToasts() ([]Toast, error)
	DismissToast(id string) (bool, error)
}

// Resolver returns the Source belonging to the caller of r. It may set
// headers on w, such as a session cookie.
type Resolver func(w http.ResponseWriter, r *http.Request) (Source, error)

// RegisterRoutes mounts toast endpoints under /api/toasts on the given router.
// status maps resolver and source errors to HTTP statuses; nil answers 500.
func RegisterRoutes(r chi.Router, resolve Resolver, status func(error) int) {
	if status == nil {
		status = func(error) int { return http.StatusInternalServerError }
	}
	r.Route("/api/toasts", func(r chi.Router) {
		r.Get("/", handleList(resolve, status))
		r.Post("/{id}/dismiss", handleDismiss(resolve, status))
	})
}

func handleList(resolve Resolver, status func(error) int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		src, err := resolve(w, r)
		if err != nil {
			http.Error(w, err.Error(), status(err))
			return
		}

		toasts, err := src.ListToasts()
		if err != nil {
			http.Error(w, err.Error(), status(err))
			return
		}
		writeJSON(w, http.StatusOK, toasts)
	}
}

func handleDismiss(resolve Resolver, status func(error) int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		src, err := resolve(w, r)
		if err != nil {
			http.Error(w, err.Error(), status(err))
			return
		}

		id := chi.URLParam(r, "id")
		ok, err := src.DismissToast(id)
		if err != nil {
			http.Error(w, err.Error(), status(err))
			return
		}
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "dismissed"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
