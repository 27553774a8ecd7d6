package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"groupevents/internal/delivery/http/controllers"
	"groupevents/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes.
// requireAuth wraps a handler with Bearer token validation.
func NewRouter(sc *controllers.StatusController, requireAuth func(http.HandlerFunc) http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("GET /groups/{groupID}/status", requireAuth(sc.GetGroupStatus))
	mux.HandleFunc("POST /groups/{groupID}/events", requireAuth(sc.RecordEvent))
	mux.HandleFunc("GET /groups/{groupID}/events", requireAuth(sc.ListGroupEvents))
	mux.HandleFunc("DELETE /events/{eventID}", requireAuth(sc.DeleteEvent))

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
