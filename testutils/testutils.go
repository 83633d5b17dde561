package testutils

import (
	"mmjira/clients"
	"mmjira/config"
)

// MakeIssue builds a fully-populated Jira issue fixture.
func MakeIssue(key, summary string) clients.JiraIssue {
	return clients.JiraIssue{
		Key: key,
		Fields: clients.JiraFields{
			Summary:     summary,
			Description: "Description of " + key,
			Assignee:    &clients.JiraUser{DisplayName: "Jane Doe"},
			IssueType: clients.JiraIssueType{
				Name:    "Bug",
				IconURL: "https://jira.example.com/icons/bug.png",
			},
			Status: clients.JiraStatus{
				Name:    "In Progress",
				IconURL: "https://jira.example.com/icons/inprogress.png",
			},
		},
	}
}

// MakeBareIssue builds an issue fixture with no assignee and no description.
func MakeBareIssue(key, summary string) clients.JiraIssue {
	issue := MakeIssue(key, summary)
	issue.Fields.Assignee = nil
	issue.Fields.Description = ""
	return issue
}

// TestConfig returns a config value with the fields the pipeline reads.
func TestConfig() *config.AppConfig {
	return &config.AppConfig{
		Port:         "8080",
		Environment:  "test",
		TicketRegexp: `[A-Z][A-Z0-9]+-[0-9]+`,
		ErrorColor:   "#ff0000",
		JiraConfig: config.JiraConfig{
			BaseURL:        "https://jira.example.com",
			Username:       "bot",
			Password:       "secret",
			TimeoutSeconds: 10,
			StatusColors: map[string]string{
				"In Progress": "#0000aa",
				"Done":        "#00aa00",
			},
		},
		MattermostConfig: config.MattermostConfig{
			BaseURL: "https://chat.example.com",
			Token:   "webhook-token",
		},
	}
}
