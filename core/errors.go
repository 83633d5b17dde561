package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for the tracker failure taxonomy.
var (
	// ErrTrackerConnect covers connection, auth and timeout failures reaching Jira.
	ErrTrackerConnect = errors.New("tracker connection failed")
	// ErrTrackerQuery covers failures reported by Jira while executing a search.
	ErrTrackerQuery = errors.New("tracker query failed")
	// ErrTicketNotFound means the search by key returned zero issues.
	ErrTicketNotFound = errors.New("ticket not found")
)

// FetchError describes a failed ticket lookup. It wraps one of the sentinel
// errors above so callers can branch with errors.Is while still getting the
// failing ticket ID and any tracker-reported message.
type FetchError struct {
	Err            error
	TicketID       string
	TrackerMessage string
}

func (e *FetchError) Error() string {
	if e.TicketID != "" {
		return fmt.Sprintf("%v: %s", e.Err, e.TicketID)
	}
	return e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
