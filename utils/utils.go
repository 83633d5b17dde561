package utils

import (
	"regexp"
	"sort"
)

func AssertInvariant(condition bool, message string) {
	if !condition {
		panic("invariant violated - " + message)
	}
}

// ExtractTicketIDs returns every non-overlapping match of the ticket pattern
// in text, left to right, duplicates included. An empty result means the text
// contains no recognizable ticket reference.
func ExtractTicketIDs(text string, pattern *regexp.Regexp) []string {
	return pattern.FindAllString(text, -1)
}

// UniqueTicketIDs deduplicates the raw matches. The result is sorted so that
// every downstream consumer iterates the same set in the same order.
func UniqueTicketIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	sort.Strings(unique)
	return unique
}

// BrowseURL returns the canonical issue page URL for a ticket ID.
func BrowseURL(baseURL, id string) string {
	return baseURL + "/browse/" + id
}
