// audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

type AuditLog struct {
	Timestamp     time.Time       `json:"timestamp"`
	OperatorID    string          `json:"operator_id"`
	Action        string          `json:"action"`
	ResourceType  string          `json:"resource_type"`
	ResourceID    string          `json:"resource_id"`
	Succeeded     bool            `json:"succeeded"`
	ChangeDetails json.RawMessage `json:"change_details,omitempty"`
}
