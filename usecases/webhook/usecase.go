package webhook

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"mmjira/appctx"
	"mmjira/config"
	"mmjira/models"
	"mmjira/services"
	"mmjira/utils"
)

// WebhookUseCase runs the slash-command pipeline: token check, reference
// extraction, link rewriting, ticket fetching and payload assembly. It is
// stateless across requests; every field is fixed at construction.
type WebhookUseCase struct {
	ticketsService services.TicketsService

	ticketPattern     *regexp.Regexp
	jiraBaseURL       string
	jiraHTTPBaseURL   string
	jiraHTTPSBaseURL  string
	mattermostBaseURL string
	mattermostToken   string
	errorColor        string
}

// NewWebhookUseCase creates a new instance of WebhookUseCase
func NewWebhookUseCase(ticketsService services.TicketsService, cfg *config.AppConfig) (*WebhookUseCase, error) {
	pattern, err := regexp.Compile(cfg.TicketRegexp)
	if err != nil {
		return nil, fmt.Errorf("failed to compile ticket regexp %q: %w", cfg.TicketRegexp, err)
	}

	jiraBaseURL := cfg.JiraConfig.BaseURL
	return &WebhookUseCase{
		ticketsService:    ticketsService,
		ticketPattern:     pattern,
		jiraBaseURL:       jiraBaseURL,
		jiraHTTPBaseURL:   strings.Replace(jiraBaseURL, "https://", "http://", 1),
		jiraHTTPSBaseURL:  strings.Replace(jiraBaseURL, "http://", "https://", 1),
		mattermostBaseURL: cfg.MattermostConfig.BaseURL,
		mattermostToken:   cfg.MattermostConfig.Token,
		errorColor:        cfg.ErrorColor,
	}, nil
}

// ProcessCommand runs one webhook request through the pipeline. It always
// returns a payload: logical failures become an ephemeral error envelope,
// never a raw HTTP error.
func (u *WebhookUseCase) ProcessCommand(ctx context.Context, cmd models.IncomingCommand) *models.ResponsePayload {
	requestID, _ := appctx.GetRequestID(ctx)
	iconURL := u.avatarURL(cmd.UserID)

	if u.mattermostToken != "" && cmd.Token != u.mattermostToken {
		log.Printf("❌ [%s] Received wrong token [%s]", requestID, cmd.Token)
		return u.buildErrorPayload(cmd, iconURL, ReasonTokenNotValid)
	}

	ids := utils.ExtractTicketIDs(cmd.Text, u.ticketPattern)
	if len(ids) == 0 {
		log.Printf("⚠️ [%s] No ticket reference found in text", requestID)
		return u.buildErrorPayload(cmd, iconURL, ReasonNoTicketID)
	}

	// The same unique set drives both the link rewrite and the fetch: a
	// ticket mentioned twice is linked twice but fetched once.
	uniqueIDs := utils.UniqueTicketIDs(ids)
	log.Printf("📋 [%s] Found %d reference(s), %d unique: %v", requestID, len(ids), len(uniqueIDs), uniqueIDs)

	rewritten := utils.RewriteTicketLinks(cmd.Text, uniqueIDs, u.jiraHTTPBaseURL, u.jiraHTTPSBaseURL, u.jiraBaseURL)

	summaries, err := u.ticketsService.FetchAll(ctx, uniqueIDs)
	if err != nil {
		log.Printf("❌ [%s] Ticket fetch failed: %v", requestID, err)
		return u.buildErrorPayload(cmd, iconURL, fetchErrorReason(err))
	}

	log.Printf("✅ [%s] Built in-channel response with %d attachment(s)", requestID, len(summaries))
	return u.buildSuccessPayload(cmd, iconURL, rewritten, summaries)
}

// ProcessMalformedRequest builds a best-effort error payload for a request
// whose form could not be parsed, using whatever fields were salvageable.
func (u *WebhookUseCase) ProcessMalformedRequest(ctx context.Context, cmd models.IncomingCommand) *models.ResponsePayload {
	requestID, _ := appctx.GetRequestID(ctx)
	log.Printf("❌ [%s] Malformed webhook request, returning setup error", requestID)
	return u.buildErrorPayload(cmd, u.avatarURL(cmd.UserID), ReasonTokenNotValid)
}
