package models

// User is the identity record behind a session. Ordinary users are created
// lazily on first whitelisted login; the admin user is seeded at boot.
type User struct {
	BaseModel
	Email string   `gorm:"uniqueIndex;not null" json:"email"`
	Name  string   `json:"name"`
	Role  UserRole `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
