package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/oakfield/london-property-agent/backend/internal/handler/chat"
	"github.com/oakfield/london-property-agent/backend/internal/handler/leads"
	middlewarePkg "github.com/oakfield/london-property-agent/backend/internal/middleware"
	"github.com/oakfield/london-property-agent/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(chatHandler *chat.Handler, leadsHandler *leads.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		leadsHandler.RegisterRoutes(api)
		api.Get("/health", handleHealth)
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "London Property Agent",
	})
}
