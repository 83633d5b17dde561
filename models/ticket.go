package models

// TicketSummary is the internal representation of a Jira issue after the
// tracker's wire format has been mapped into it. Built once per successful
// lookup; never mutated after construction.
type TicketSummary struct {
	ID            string
	Title         string
	URL           string
	TypeLabel     string
	TypeIconURL   string
	StatusLabel   string
	StatusIconURL string
	// StatusColor is empty when the status has no configured color mapping.
	StatusColor string
	// Assignee is the display name, or "Nobody" when the issue is unassigned.
	Assignee string
	// Description carries a placeholder when the issue has no description.
	Description string
}
