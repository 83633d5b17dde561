package tickets

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mmjira/models"
)

// MockTicketsService is a mock implementation of the TicketsService interface
type MockTicketsService struct {
	mock.Mock
}

func (m *MockTicketsService) FetchAll(ctx context.Context, ids []string) ([]*models.TicketSummary, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TicketSummary), args.Error(1)
}
