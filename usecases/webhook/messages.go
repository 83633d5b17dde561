package webhook

import (
	"fmt"

	"github.com/slack-go/slack"

	"mmjira/models"
)

const (
	// ReasonTokenNotValid is returned on a token mismatch or a malformed request.
	ReasonTokenNotValid = "The integration is not correctly set up. Token not valid."
	// ReasonNoTicketID is returned when the text contains no ticket reference.
	ReasonNoTicketID = "Could not identify a Jira issue ID."

	successFallback = "Jira issue posted."
	errorFallback   = "There was a problem with the Jira bot."
	errorText       = "The message has not been sent."
	errorUsername   = "Jira Issue"
)

// buildSuccessPayload assembles the in-channel response: the rewritten text
// plus one attachment per fetched ticket, in fetch order.
func (u *WebhookUseCase) buildSuccessPayload(
	cmd models.IncomingCommand,
	iconURL string,
	rewrittenText string,
	summaries []*models.TicketSummary,
) *models.ResponsePayload {
	attachments := make([]slack.Attachment, 0, len(summaries))
	for _, summary := range summaries {
		attachments = append(attachments, attachmentForSummary(summary))
	}

	return &models.ResponsePayload{
		ResponseType: models.ResponseTypeInChannel,
		Channel:      cmd.Channel,
		Text:         rewrittenText,
		Username:     cmd.UserName,
		IconURL:      iconURL,
		Attachments:  attachments,
	}
}

// buildErrorPayload assembles the ephemeral error envelope: the original
// unmodified text plus a single attachment carrying the reason.
func (u *WebhookUseCase) buildErrorPayload(
	cmd models.IncomingCommand,
	iconURL string,
	reason string,
) *models.ResponsePayload {
	return &models.ResponsePayload{
		ResponseType: models.ResponseTypeEphemeral,
		Channel:      cmd.Channel,
		Text:         errorText,
		Username:     errorUsername,
		IconURL:      iconURL,
		Attachments: []slack.Attachment{
			{
				Fallback: errorFallback,
				Color:    u.errorColor,
				Text:     cmd.Text,
				Fields: []slack.AttachmentField{
					{Title: "Reason:", Value: reason, Short: false},
				},
			},
		},
	}
}

// attachmentForSummary renders one ticket as a rich attachment: a heading
// line linking the ID and summary, the description underneath, and the
// Type/Status/Assignee field grid.
func attachmentForSummary(summary *models.TicketSummary) slack.Attachment {
	title := fmt.Sprintf("#### ![](%s) [%s &nbsp;&nbsp;&nbsp; %s](%s \"%s\") ####",
		summary.TypeIconURL, summary.ID, summary.Title, summary.URL, summary.ID)

	return slack.Attachment{
		Fallback: successFallback,
		Color:    summary.StatusColor,
		Text:     title + "\n" + summary.Description,
		Fields: []slack.AttachmentField{
			{Title: "Type", Value: iconLabel(summary.TypeIconURL, summary.TypeLabel), Short: true},
			{Title: "Status", Value: iconLabel(summary.StatusIconURL, summary.StatusLabel), Short: true},
			{Title: "Assignee", Value: summary.Assignee, Short: false},
		},
	}
}

// iconLabel renders an icon and its label in Mattermost markdown.
func iconLabel(iconURL, name string) string {
	return "![](" + iconURL + ") " + name
}
