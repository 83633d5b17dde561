package clients

import (
	"context"

	"github.com/samber/mo"
)

// JiraClient defines the interface for querying the issue tracker
type JiraClient interface {
	// SearchIssueByKey looks up the single issue whose key exactly equals key.
	// Returns None when the tracker reports zero matches. Errors wrap the
	// core tracker sentinels (connect vs query).
	SearchIssueByKey(ctx context.Context, key string) (mo.Option[JiraIssue], error)
}
