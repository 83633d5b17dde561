package models

import "github.com/slack-go/slack"

// ResponseType controls who sees the response in Mattermost.
type ResponseType string

const (
	// ResponseTypeInChannel makes the response visible to the whole channel.
	ResponseTypeInChannel ResponseType = "in_channel"
	// ResponseTypeEphemeral makes the response visible only to the requester.
	ResponseTypeEphemeral ResponseType = "ephemeral"
)

// ResponsePayload is the JSON body returned to Mattermost. Attachments use
// the Slack attachment schema, which Mattermost renders natively.
type ResponsePayload struct {
	ResponseType ResponseType       `json:"response_type"`
	Channel      string             `json:"channel"`
	Text         string             `json:"text"`
	Username     string             `json:"username"`
	IconURL      string             `json:"icon_url,omitempty"`
	Attachments  []slack.Attachment `json:"attachments"`
}
