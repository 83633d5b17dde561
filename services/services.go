package services

import (
	"context"

	"mmjira/models"
)

// TicketsService defines the interface for ticket lookup operations
type TicketsService interface {
	// FetchAll looks up every ID exactly once and returns one summary per ID,
	// in the same order. Any single failure aborts the whole batch: the error
	// is a *core.FetchError for the first failing ID in slice order, and no
	// partial summary list is ever returned.
	FetchAll(ctx context.Context, ids []string) ([]*models.TicketSummary, error)
}
