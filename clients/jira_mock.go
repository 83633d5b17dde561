package clients

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"
)

// MockJiraClient is a mock implementation of the JiraClient interface
type MockJiraClient struct {
	mock.Mock
}

func (m *MockJiraClient) SearchIssueByKey(ctx context.Context, key string) (mo.Option[JiraIssue], error) {
	args := m.Called(ctx, key)
	return args.Get(0).(mo.Option[JiraIssue]), args.Error(1)
}
