package utils

import (
	"regexp"
	"strings"
)

// RewriteTicketLinks replaces every occurrence of each ticket ID in text with
// a markdown link to its issue page. Users sometimes paste a full issue URL
// instead of the bare ID, so for each ID three token forms are handled, in
// this order of precedence:
//
//  1. An existing markdown link for the ID is kept as-is.
//  2. A bare issue URL (http or https base variant) collapses to one link.
//  3. A bare ID becomes a link.
//
// Matching the already-linked form first is what makes the rewrite idempotent
// and is what prevents a pasted URL from being wrapped into a nested link.
// IDs are processed independently in slice order; callers pass the sorted
// unique set so output is deterministic. When one ID is a literal substring
// of another ID's linked text the replacement outcome is undefined - a known
// limitation, inherited rather than papered over.
func RewriteTicketLinks(text string, ids []string, httpBaseURL, httpsBaseURL, canonicalBaseURL string) string {
	for _, id := range ids {
		link := "[" + id + "](" + BrowseURL(canonicalBaseURL, id) + ")"

		pattern := regexp.MustCompile(
			`\[` + regexp.QuoteMeta(id) + `\]\([^)]*\)` +
				`|` + regexp.QuoteMeta(BrowseURL(httpBaseURL, id)) +
				`|` + regexp.QuoteMeta(BrowseURL(httpsBaseURL, id)) +
				`|` + regexp.QuoteMeta(id),
		)

		text = pattern.ReplaceAllStringFunc(text, func(match string) string {
			if strings.HasPrefix(match, "[") {
				return match
			}
			return link
		})
	}
	return text
}
