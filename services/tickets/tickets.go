package tickets

import (
	"context"
	"errors"
	"log"

	"mmjira/clients"
	"mmjira/core"
	"mmjira/models"
	"mmjira/utils"
)

const (
	// UnassignedLabel is rendered when an issue has no assignee.
	UnassignedLabel = "Nobody"
	// NoDescriptionPlaceholder is rendered when an issue has no description.
	NoDescriptionPlaceholder = "_~ No description for this issue ~_"
)

type TicketsService struct {
	jiraClient   clients.JiraClient
	jiraBaseURL  string
	statusColors map[string]string
}

func NewTicketsService(jiraClient clients.JiraClient, jiraBaseURL string, statusColors map[string]string) *TicketsService {
	return &TicketsService{
		jiraClient:   jiraClient,
		jiraBaseURL:  jiraBaseURL,
		statusColors: statusColors,
	}
}

// FetchAll resolves each unique ticket ID into a TicketSummary. Lookups run
// sequentially in slice order, so the first failure encountered is also the
// first failing ID in that order - the batch aborts there and no summaries
// are returned.
func (s *TicketsService) FetchAll(ctx context.Context, ids []string) ([]*models.TicketSummary, error) {
	log.Printf("📋 Starting to fetch %d ticket(s) from Jira", len(ids))

	summaries := make([]*models.TicketSummary, 0, len(ids))
	for _, id := range ids {
		maybeIssue, err := s.jiraClient.SearchIssueByKey(ctx, id)
		if err != nil {
			var fetchErr *core.FetchError
			if errors.As(err, &fetchErr) {
				fetchErr.TicketID = id
				return nil, fetchErr
			}
			return nil, &core.FetchError{Err: core.ErrTrackerConnect, TicketID: id, TrackerMessage: err.Error()}
		}
		if !maybeIssue.IsPresent() {
			return nil, &core.FetchError{Err: core.ErrTicketNotFound, TicketID: id}
		}
		summaries = append(summaries, s.summarize(id, maybeIssue.MustGet()))
	}

	log.Printf("📋 Completed successfully - fetched %d ticket(s)", len(summaries))
	return summaries, nil
}

// summarize maps Jira's wire representation into the internal summary value,
// filling the unassigned and empty-description fallbacks.
func (s *TicketsService) summarize(id string, issue clients.JiraIssue) *models.TicketSummary {
	assignee := UnassignedLabel
	if issue.Fields.Assignee != nil {
		assignee = issue.Fields.Assignee.DisplayName
	}

	description := issue.Fields.Description
	if description == "" {
		description = NoDescriptionPlaceholder
	}

	// An unmapped status yields an empty color, which Mattermost renders
	// as an attachment without a color bar. Not an error.
	color := s.statusColors[issue.Fields.Status.Name]

	return &models.TicketSummary{
		ID:            id,
		Title:         issue.Fields.Summary,
		URL:           utils.BrowseURL(s.jiraBaseURL, id),
		TypeLabel:     issue.Fields.IssueType.Name,
		TypeIconURL:   issue.Fields.IssueType.IconURL,
		StatusLabel:   issue.Fields.Status.Name,
		StatusIconURL: issue.Fields.Status.IconURL,
		StatusColor:   color,
		Assignee:      assignee,
		Description:   description,
	}
}
