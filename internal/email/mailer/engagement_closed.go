// internal/email/mailer/engagement_closed.go
package mailer

import (
	"fmt"

	"github.com/dangerclosesec/redline/internal/email"
)

// EngagementClosedTemplateData contains data for the engagement-closed
// notification template.
type EngagementClosedTemplateData struct {
	EngagementName  string
	ApplicationName string
	ClosedAt        string
	Duration        string
}

// SendEngagementClosedEmail notifies the configured mailbox that an
// engagement finished.
func SendEngagementClosedEmail(s *email.Service, to string, data EngagementClosedTemplateData) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "Redline",
		Subject:      fmt.Sprintf("Engagement closed: %s", data.EngagementName),
		TemplateName: "engagement_closed",
		TemplateData: data,
	}

	return s.SendEmail(emailData)
}
