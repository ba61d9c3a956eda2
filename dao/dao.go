// dao/dao.go
package dao

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/scoutdesk/backoffice/audit"
	logger "github.com/scoutdesk/backoffice/logging"
	helper_util "github.com/scoutdesk/backoffice/util/helper"
)

// operatorKey is the context key the auth middleware stores the operator
// identity under. Background jobs fall back to "system".
const operatorKey = "operatorID"

func operatorFromContext(ctx context.Context) string {
	if operator, ok := ctx.Value(operatorKey).(string); ok && operator != "" {
		return operator
	}
	return "system"
}

func logAudit(ctx context.Context, auditService audit.Service, action, resourceType, resourceID string, details any) {
	var raw json.RawMessage
	if details != nil {
		if data, err := json.Marshal(details); err == nil {
			raw = data
		}
	}
	entry := audit.AuditLog{
		Timestamp:     time.Now(),
		OperatorID:    operatorFromContext(ctx),
		Action:        action,
		ResourceType:  resourceType,
		ResourceID:    resourceID,
		Succeeded:     true,
		ChangeDetails: raw,
	}
	if err := auditService.LogChange(ctx, entry); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err), zap.String("action", action))
	}
}

func nodeTime(props map[string]any, key string) time.Time {
	raw, ok := props[key].(string)
	if !ok {
		return time.Time{}
	}
	parsed, err := helper_util.ParseTime(raw)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func nodeString(props map[string]any, key string) string {
	value, _ := props[key].(string)
	return value
}

func nodeBool(props map[string]any, key string) bool {
	value, _ := props[key].(bool)
	return value
}
