package models

// WhitelistEntry gates ordinary login: an email absent from this set cannot
// obtain a session. Emails are stored lower-cased and matched exactly.
type WhitelistEntry struct {
	BaseModel
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Name     string `json:"name"`
	Unit     string `json:"unit"`
	Phone    string `json:"phone"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}
