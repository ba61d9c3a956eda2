// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/scoutdesk/backoffice/logging"
	"github.com/scoutdesk/backoffice/model"
)

// NotificationService is the seam to the external notification collaborator.
// Delivery internals are out of scope; this side only emits the intent.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyAttributeChange(ctx context.Context, changeType string, attribute model.Attribute) error {
	switch changeType {
	case "created", "updated", "deleted":
		logger.Info("NOTIFICATION: Attribute "+changeType,
			zap.String("slug", attribute.Slug),
			zap.String("name", attribute.Name))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) NotifyUserTypeChange(ctx context.Context, changeType string, userType model.UserTypeConfig) error {
	switch changeType {
	case "created", "updated", "deleted":
		logger.Info("NOTIFICATION: User type "+changeType,
			zap.String("slug", userType.Slug),
			zap.String("name", userType.Name))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) NotifyProfileChange(ctx context.Context, changeType string, profile model.Profile) error {
	switch changeType {
	case "created", "updated", "deleted":
		logger.Info("NOTIFICATION: Profile "+changeType,
			zap.String("profileID", profile.ID))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) SendEmail(ctx context.Context, recipient, subject, body string) error {
	// Delivery happens in the external email collaborator.
	logger.Info("Sending email",
		zap.String("recipient", recipient),
		zap.String("subject", subject))
	return nil
}
