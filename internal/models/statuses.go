package models

type PostingType string
type PostingStatus string
type ApplicationStatus string
type UserRole string

const (
	PostingTypeJob        PostingType = "job"
	PostingTypeInternship PostingType = "internship"
	PostingTypeCourse     PostingType = "course"

	PostingStatusPending  PostingStatus = "pending"
	PostingStatusApproved PostingStatus = "approved"
	PostingStatusRejected PostingStatus = "rejected"
	PostingStatusActive   PostingStatus = "active"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
	// UserRoleRecruiter exists in the schema but carries no differentiated
	// behavior yet.
	UserRoleRecruiter UserRole = "recruiter"
)

// CVSections is the fixed set of professional categories a CV may declare.
// Anything else is stored verbatim as a free-text "Other" section.
var CVSections = []string{
	"Engineering",
	"Information Technology",
	"Finance & Accounting",
	"Human Resources",
	"Marketing & Sales",
	"Administration",
	"Education & Training",
	"Healthcare",
	"Legal",
	"Logistics & Supply Chain",
}
