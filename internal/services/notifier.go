package services

import "jobboard_backend/internal/models"

// Moderation event names carried to admin channels (email, websocket feed).
const (
	EventPostingSubmitted = "posting.submitted"
	EventPostingApproved  = "posting.approved"
	EventPostingRejected  = "posting.rejected"
	EventPostingDeleted   = "posting.deleted"
)

// ModerationNotifier receives lifecycle events. Implementations must not
// block the calling mutation; delivery failures are logged, never surfaced.
type ModerationNotifier interface {
	NotifyModeration(event string, posting *models.Posting)
}

// MultiNotifier fans events out to several sinks.
type MultiNotifier []ModerationNotifier

func (m MultiNotifier) NotifyModeration(event string, posting *models.Posting) {
	for _, n := range m {
		n.NotifyModeration(event, posting)
	}
}
