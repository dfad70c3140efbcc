package models

import "github.com/lib/pq"

// CV is a resident's showcase entry. Owned by the submitting email; editable
// by that resident or an admin.
type CV struct {
	BaseModel
	Name              string         `gorm:"not null" json:"name"`
	Email             string         `gorm:"not null;index" json:"email"`
	Title             string         `json:"title"`
	Section           string         `json:"section"` // one of CVSections, or free text
	Bio               string         `gorm:"type:text" json:"bio"`
	Skills            string         `json:"skills"` // comma-joined free text
	Experience        string         `gorm:"type:text" json:"experience"`
	Education         string         `gorm:"type:text" json:"education"`
	YearsOfExperience int            `json:"years_of_experience"`
	Languages         pq.StringArray `gorm:"type:text[]" json:"languages,omitempty"`
	LinkedinURL       string         `json:"linkedin_url,omitempty"`

	// FileID references an Upload holding the CV document. Empty when no
	// file was attached; a dangling reference surfaces at read time as a
	// missing-file condition.
	FileID string `gorm:"index" json:"file_id,omitempty"`
}
