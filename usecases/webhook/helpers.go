package webhook

import (
	"errors"
	"fmt"

	"mmjira/core"
)

// avatarURL builds the Mattermost profile image URL for the requesting user.
func (u *WebhookUseCase) avatarURL(userID string) string {
	if userID == "" {
		return ""
	}
	return fmt.Sprintf("%s/api/v4/users/%s/image", u.mattermostBaseURL, userID)
}

// fetchErrorReason maps a fetch failure onto the user-facing reason string
// shown in the ephemeral error attachment.
func fetchErrorReason(err error) string {
	var fetchErr *core.FetchError
	if !errors.As(err, &fetchErr) {
		return "There was an exception when searching for the issue in Jira."
	}

	switch {
	case errors.Is(err, core.ErrTicketNotFound):
		return fmt.Sprintf("Could not find a matching ticket for %s", fetchErr.TicketID)
	case errors.Is(err, core.ErrTrackerQuery):
		return "Search on Jira failed.\nError message: " + fetchErr.TrackerMessage
	default:
		return "Could not connect to Jira."
	}
}
