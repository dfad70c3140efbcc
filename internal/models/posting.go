package models

// Posting is a job, internship or course submission moving through the
// moderation lifecycle. The three types share one shape; type-specific
// required fields are enforced at submission.
type Posting struct {
	BaseModel
	Type         PostingType `gorm:"type:varchar(20);not null;index" json:"type"`
	Title        string      `gorm:"not null" json:"title"`
	Company      string      `json:"company"`    // company, or instructor for courses
	Industry     string      `json:"industry"`   // free text
	Location     string      `json:"location"`   // free text
	Description  string      `gorm:"type:text" json:"description"`
	Requirements string      `gorm:"type:text" json:"requirements"`
	Skills       string      `json:"skills"` // comma-joined free text
	ContactEmail string      `json:"contact_email"`
	Duration     string      `json:"duration"` // internships and courses

	Status     PostingStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	IsApproved bool          `gorm:"default:false" json:"is_approved"`
	IsActive   bool          `gorm:"default:true" json:"is_active"`

	// PostedBy is the submitter's email when the submission came from a
	// logged-in resident. Public submissions leave it empty.
	PostedBy string `gorm:"index" json:"posted_by,omitempty"`
}

// Visible reports whether ordinary users may see the posting.
func (p *Posting) Visible() bool {
	return p.IsActive && p.IsApproved
}
