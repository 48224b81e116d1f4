package leads

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oakfield/london-property-agent/backend/pkg/utils"
)

// Lister reads back the stored leads.
type Lister interface {
	List() ([]map[string]string, int, error)
}

// Handler exposes the captured-lead listing.
type Handler struct {
	store Lister
}

// New creates the leads handler.
func New(store Lister) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the listing endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/leads", h.handleList)
}

type listResponse struct {
	Leads []map[string]string `json:"leads"`
	Total int                 `json:"total"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	leads, total, err := h.store.List()
	if err != nil {
		log.Printf("[leads] failed to read store: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to read leads")
		return
	}

	utils.RespondJSON(w, http.StatusOK, listResponse{Leads: leads, Total: total})
}
