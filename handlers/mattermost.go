package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/slack-go/slack"

	"mmjira/appctx"
	"mmjira/core"
	"mmjira/models"
	"mmjira/usecases/webhook"
)

type MattermostWebhookHandler struct {
	webhookUseCase *webhook.WebhookUseCase
}

func NewMattermostWebhookHandler(webhookUseCase *webhook.WebhookUseCase) *MattermostWebhookHandler {
	return &MattermostWebhookHandler{webhookUseCase: webhookUseCase}
}

// SetupEndpoints registers the webhook endpoint with the router
func (h *MattermostWebhookHandler) SetupEndpoints(router *mux.Router) {
	router.HandleFunc("/mattermost/commands", h.HandleCommand).Methods("POST")
}

// HandleCommand processes one Mattermost outgoing webhook request. It always
// responds 200 with a JSON payload - Mattermost renders logical failures from
// the payload body, not from HTTP status codes.
func (h *MattermostWebhookHandler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	requestID := core.NewRequestID()
	ctx := appctx.SetRequestID(r.Context(), requestID)
	log.Printf("⚡ [%s] Mattermost command received from %s", requestID, r.RemoteAddr)

	// Mattermost posts the Slack-compatible slash command form fields
	// (token, channel_name, user_name, user_id, text).
	command, err := slack.SlashCommandParse(r)

	var payload *models.ResponsePayload
	if err != nil {
		log.Printf("❌ [%s] Failed to parse webhook form: %v", requestID, err)
		payload = h.webhookUseCase.ProcessMalformedRequest(ctx, commandFromForm(r.PostForm))
	} else {
		cmd := models.IncomingCommand{
			Channel:  command.ChannelName,
			UserName: command.UserName,
			UserID:   command.UserID,
			Text:     command.Text,
			Token:    command.Token,
		}
		payload = h.webhookUseCase.ProcessCommand(ctx, cmd)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ [%s] Failed to write response: %v", requestID, err)
	}
}

// commandFromForm salvages whatever fields survived a failed form parse so
// the error payload can still name the channel and user. Absent fields
// default to empty strings. Reading a nil url.Values is safe.
func commandFromForm(form url.Values) models.IncomingCommand {
	return models.IncomingCommand{
		Channel:  form.Get("channel_name"),
		UserName: form.Get("user_name"),
		UserID:   form.Get("user_id"),
		Text:     form.Get("text"),
		Token:    form.Get("token"),
	}
}
