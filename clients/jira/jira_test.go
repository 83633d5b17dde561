package jira

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mmjira/core"
)

func TestSearchIssueByKey(t *testing.T) {
	t.Run("Success_SingleIssue", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rest/api/2/search", r.URL.Path)
			assert.Equal(t, "key=PROJ-1", r.URL.Query().Get("jql"))

			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "bot", user)
			assert.Equal(t, "secret", pass)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"total": 1,
				"issues": [{
					"key": "PROJ-1",
					"fields": {
						"summary": "Broken login",
						"description": "Steps to reproduce",
						"assignee": {"displayName": "Jane Doe"},
						"issuetype": {"name": "Bug", "iconUrl": "https://jira/icons/bug.png"},
						"status": {"name": "Open", "iconUrl": "https://jira/icons/open.png"}
					}
				}]
			}`))
		}))
		defer server.Close()

		client := NewJiraClient(server.URL, "bot", "secret", 5*time.Second)
		maybeIssue, err := client.SearchIssueByKey(context.Background(), "PROJ-1")

		require.NoError(t, err)
		require.True(t, maybeIssue.IsPresent())
		issue := maybeIssue.MustGet()
		assert.Equal(t, "PROJ-1", issue.Key)
		assert.Equal(t, "Broken login", issue.Fields.Summary)
		assert.Equal(t, "Jane Doe", issue.Fields.Assignee.DisplayName)
		assert.Equal(t, "Bug", issue.Fields.IssueType.Name)
		assert.Equal(t, "Open", issue.Fields.Status.Name)
	})

	t.Run("Success_NullAssigneeAndDescription", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{
				"total": 1,
				"issues": [{
					"key": "PROJ-2",
					"fields": {
						"summary": "Orphaned issue",
						"description": null,
						"assignee": null,
						"issuetype": {"name": "Task", "iconUrl": ""},
						"status": {"name": "Open", "iconUrl": ""}
					}
				}]
			}`))
		}))
		defer server.Close()

		client := NewJiraClient(server.URL, "bot", "secret", 5*time.Second)
		maybeIssue, err := client.SearchIssueByKey(context.Background(), "PROJ-2")

		require.NoError(t, err)
		require.True(t, maybeIssue.IsPresent())
		issue := maybeIssue.MustGet()
		assert.Nil(t, issue.Fields.Assignee)
		assert.Equal(t, "", issue.Fields.Description)
	})

	t.Run("Success_ZeroIssuesIsNone", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"total": 0, "issues": []}`))
		}))
		defer server.Close()

		client := NewJiraClient(server.URL, "bot", "secret", 5*time.Second)
		maybeIssue, err := client.SearchIssueByKey(context.Background(), "PROJ-9")

		require.NoError(t, err)
		assert.False(t, maybeIssue.IsPresent())
	})

	t.Run("Error_UnauthorizedIsConnectFailure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := NewJiraClient(server.URL, "bot", "wrong", 5*time.Second)
		_, err := client.SearchIssueByKey(context.Background(), "PROJ-1")

		assert.ErrorIs(t, err, core.ErrTrackerConnect)
	})

	t.Run("Error_ServerErrorIsQueryFailureWithMessage", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errorMessages": ["The value 'PROJ!' is invalid for field 'key'"]}`))
		}))
		defer server.Close()

		client := NewJiraClient(server.URL, "bot", "secret", 5*time.Second)
		_, err := client.SearchIssueByKey(context.Background(), "PROJ!")

		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrTrackerQuery)

		var fetchErr *core.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, "The value 'PROJ!' is invalid for field 'key'", fetchErr.TrackerMessage)
	})

	t.Run("Error_NonJSONErrorBodyFallsBackToStatus", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`<html>upstream unhappy</html>`))
		}))
		defer server.Close()

		client := NewJiraClient(server.URL, "bot", "secret", 5*time.Second)
		_, err := client.SearchIssueByKey(context.Background(), "PROJ-1")

		var fetchErr *core.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, "HTTP 502", fetchErr.TrackerMessage)
	})

	t.Run("Error_UnreachableServerIsConnectFailure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // shut down before the request

		client := NewJiraClient(server.URL, "bot", "secret", time.Second)
		_, err := client.SearchIssueByKey(context.Background(), "PROJ-1")

		assert.ErrorIs(t, err, core.ErrTrackerConnect)
	})
}
