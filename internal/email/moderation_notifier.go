package email

import (
	"fmt"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
)

// ModerationNotifier mails the configured admin address when a posting
// enters the moderation queue. Other lifecycle events are not mailed; the
// websocket feed covers them.
type ModerationNotifier struct {
	provider   Provider
	adminEmail string
}

func NewModerationNotifier(provider Provider, adminEmail string) *ModerationNotifier {
	return &ModerationNotifier{provider: provider, adminEmail: adminEmail}
}

func (n *ModerationNotifier) NotifyModeration(event string, posting *models.Posting) {
	if event != services.EventPostingSubmitted || n.adminEmail == "" {
		return
	}

	msg := &Message{
		To:      []string{n.adminEmail},
		Subject: fmt.Sprintf("New %s posting pending review: %s", posting.Type, posting.Title),
		Body: fmt.Sprintf(
			"A new %s posting was submitted and is awaiting moderation.\n\nTitle: %s\nCompany: %s\nPosting ID: %s\n",
			posting.Type, posting.Title, posting.Company, posting.ID,
		),
	}

	// Delivery failure must never fail the submission.
	go func() {
		if err := n.provider.Send(msg); err != nil {
			logger.WithError(err).Warn("failed to send moderation notification", "posting_id", posting.ID)
		}
	}()
}
