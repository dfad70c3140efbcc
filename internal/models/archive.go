package models

import "time"

// ArchivedPosting is the soft-deleted copy of a Posting, kept for audit and
// restore. A posting and its archive row never coexist: deletion moves the
// record, restore moves it back under a new id, purge drops it for good.
type ArchivedPosting struct {
	BaseModel
	OriginalID        string      `gorm:"index" json:"original_id"`
	OriginalCreatedAt time.Time   `json:"original_created_at"`
	Type              PostingType `gorm:"type:varchar(20);not null;index" json:"type"`

	Title        string `json:"title"`
	Company      string `json:"company"`
	Industry     string `json:"industry"`
	Location     string `json:"location"`
	Description  string `gorm:"type:text" json:"description"`
	Requirements string `gorm:"type:text" json:"requirements"`
	Skills       string `json:"skills"`
	ContactEmail string `json:"contact_email"`
	Duration     string `json:"duration"`
	PostedBy     string `json:"posted_by,omitempty"`

	RemovedAt     time.Time `gorm:"not null" json:"removed_at"`
	RemovedBy     string    `json:"removed_by,omitempty"` // email of the actor
	RemovalReason string    `json:"removal_reason,omitempty"`
}
