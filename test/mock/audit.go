// test/mock/audit.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/scoutdesk/backoffice/audit"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogChange(ctx context.Context, log audit.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditService) QueryLogs(ctx context.Context, from, to time.Time, operatorID, resourceID string) ([]audit.AuditLog, error) {
	args := m.Called(ctx, from, to, operatorID, resourceID)
	return args.Get(0).([]audit.AuditLog), args.Error(1)
}
