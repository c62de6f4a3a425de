package email

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"skaters_backend/internal/models"
)

// Notifier tells skaters about changes to their registration.
type Notifier interface {
	NotifyApproval(ctx context.Context, skater *models.Skater) error
}

// NoopNotifier is used when no mail server is configured.
type NoopNotifier struct{}

func (NoopNotifier) NotifyApproval(context.Context, *models.Skater) error {
	return nil
}

var approvalTemplate = template.Must(template.New("approval").Parse(
	`<p>Hi {{.Name}},</p>
<p>Your registration in the skater directory has been approved. Your profile is now listed publicly.</p>`))

func renderApproval(skater *models.Skater) (string, error) {
	var b strings.Builder
	if err := approvalTemplate.Execute(&b, skater); err != nil {
		return "", fmt.Errorf("render approval mail: %w", err)
	}
	return b.String(), nil
}
