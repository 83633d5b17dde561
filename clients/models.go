package clients

// JiraIssue represents one issue in a Jira search response
type JiraIssue struct {
	Key    string     `json:"key"`
	Fields JiraFields `json:"fields"`
}

// JiraFields represents the fields block of a Jira issue
type JiraFields struct {
	Summary     string        `json:"summary"`
	Description string        `json:"description"`
	Assignee    *JiraUser     `json:"assignee"`
	IssueType   JiraIssueType `json:"issuetype"`
	Status      JiraStatus    `json:"status"`
}

// JiraUser represents a Jira user reference
type JiraUser struct {
	DisplayName string `json:"displayName"`
}

// JiraIssueType represents the type of a Jira issue
type JiraIssueType struct {
	Name    string `json:"name"`
	IconURL string `json:"iconUrl"`
}

// JiraStatus represents the workflow status of a Jira issue
type JiraStatus struct {
	Name    string `json:"name"`
	IconURL string `json:"iconUrl"`
}

// JiraSearchResponse represents the response of the Jira search endpoint
type JiraSearchResponse struct {
	StartAt    int         `json:"startAt"`
	MaxResults int         `json:"maxResults"`
	Total      int         `json:"total"`
	Issues     []JiraIssue `json:"issues"`
}

// JiraErrorResponse represents the error body Jira returns on a failed search
type JiraErrorResponse struct {
	ErrorMessages []string `json:"errorMessages"`
}
