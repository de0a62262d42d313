package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/blackos-labs/agency-backoffice/internal/leads"
	"github.com/blackos-labs/agency-backoffice/pkg/logging"
)

// Service emails the team when a new lead lands. It is strictly
// best-effort; failures are logged and never surface to the caller.
type Service struct {
	email  EmailSender
	to     string
	logger *logging.Logger
}

// NewService creates a notification service. A nil sender or empty
// recipient disables notifications entirely.
func NewService(email EmailSender, notifyEmail string, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{email: email, to: notifyEmail, logger: logger}
}

// LeadCreated sends a summary of the freshly captured lead.
func (s *Service) LeadCreated(ctx context.Context, lead *leads.Lead) {
	if s == nil || s.email == nil || s.to == "" || lead == nil {
		return
	}

	subject := fmt.Sprintf("New lead: %s", lead.Name)
	body := buildLeadBody(lead)

	if err := s.email.Send(ctx, EmailMessage{
		To:      s.to,
		Subject: subject,
		Body:    body,
	}); err != nil {
		s.logger.Error("lead notification failed", "error", err, "lead_id", lead.ID)
		return
	}
	s.logger.Info("lead notification sent", "lead_id", lead.ID, "to", s.to)
}

func buildLeadBody(lead *leads.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", lead.Name)
	fmt.Fprintf(&b, "Phone: %s\n", lead.Phone)
	if lead.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n", lead.Source)
	}
	if lead.Handler != "" {
		fmt.Fprintf(&b, "Handler: %s\n", lead.Handler)
	}
	if lead.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", lead.Description)
	}
	if lead.MeetingSchedule != nil {
		fmt.Fprintf(&b, "Meeting: %s\n", lead.MeetingSchedule.Format("Monday, January 2 at 3:04 PM"))
	}
	return b.String()
}
