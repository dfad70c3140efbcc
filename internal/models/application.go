package models

import "gorm.io/datatypes"

// Application links an applicant to exactly one posting: a job or an
// internship, never both. Status is mutated only by admins.
type Application struct {
	BaseModel
	JobID          *string `gorm:"index" json:"job_id,omitempty"`
	InternshipID   *string `gorm:"index" json:"internship_id,omitempty"`
	ApplicantName  string  `gorm:"not null" json:"applicant_name"`
	ApplicantEmail string  `gorm:"not null;index" json:"applicant_email"`
	CVID           string  `gorm:"index" json:"cv_id,omitempty"`

	Status ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Notes  string            `gorm:"type:text" json:"notes,omitempty"`

	// Answers holds posting-specific questionnaire responses as submitted.
	Answers datatypes.JSON `json:"answers,omitempty"`
}
