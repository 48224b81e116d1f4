package chat

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/oakfield/london-property-agent/backend/internal/model/lead"
	leadservice "github.com/oakfield/london-property-agent/backend/internal/service/lead"
	"github.com/oakfield/london-property-agent/backend/internal/service/notify"
	"github.com/oakfield/london-property-agent/backend/pkg/utils"
)

// notifyTimeout bounds the fire-and-forget notification call so a stuck
// SMTP relay cannot leak goroutines.
const notifyTimeout = 15 * time.Second

// Responder produces the model's reply for a transcript plus new message.
type Responder interface {
	Reply(ctx context.Context, history []lead.Turn, message string) (string, error)
}

// Recorder persists captured leads.
type Recorder interface {
	Append(rec lead.Record) error
}

// Handler orchestrates one chat turn: relay the transcript, extract and
// validate any lead block, record it, and return the cleaned reply.
type Handler struct {
	responder Responder
	store     Recorder
	notifier  notify.Notifier
}

// New creates the chat handler.
func New(responder Responder, store Recorder, notifier notify.Notifier) *Handler {
	return &Handler{
		responder: responder,
		store:     store,
		notifier:  notifier,
	}
}

// RegisterRoutes mounts the chat endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

type chatRequest struct {
	Message             string      `json:"message"`
	ConversationHistory []lead.Turn `json:"conversation_history"`
}

type chatResponse struct {
	Response         string            `json:"response"`
	LeadCaptured     bool              `json:"lead_captured"`
	LeadData         map[string]string `json:"lead_data,omitempty"`
	ValidationErrors []string          `json:"validation_errors,omitempty"`
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.responder.Reply(r.Context(), payload.ConversationHistory, payload.Message)
	if err != nil {
		log.Printf("[chat] model invocation failed: %v", err)
		utils.RespondError(w, http.StatusBadGateway, "model invocation failed")
		return
	}

	resp := chatResponse{Response: leadservice.CleanDisplay(reply)}

	if fields, ok := leadservice.Extract(reply); ok {
		captured := lead.FromFields(fields)
		validation := leadservice.Validate(captured)
		ref := uuid.NewString()

		record := lead.Record{
			Lead:          captured,
			CapturedAt:    time.Now().UTC(),
			EmailValid:    validation.EmailValid,
			PostcodeValid: validation.PostcodeValid,
		}

		// Invalid leads are stored too; losing one silently is the only
		// unacceptable outcome, so a store failure fails the request.
		if err := h.store.Append(record); err != nil {
			log.Printf("[chat] failed to record lead %s: %v", ref, err)
			utils.RespondError(w, http.StatusInternalServerError, "failed to record lead")
			return
		}

		resp.LeadCaptured = true
		resp.LeadData = fields
		resp.ValidationErrors = validation.Reasons

		if !validation.OK() {
			log.Printf("[chat] lead %s recorded with warnings: %v", ref, validation.Reasons)
		} else {
			log.Printf("[chat] lead %s recorded", ref)
		}

		if h.notifier != nil {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
				defer cancel()
				if err := h.notifier.Notify(ctx, ref, captured); err != nil {
					log.Printf("[notify] lead notification %s failed: %v", ref, err)
				}
			}()
		}
	}

	utils.RespondJSON(w, http.StatusOK, resp)
}
