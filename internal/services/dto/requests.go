package dto

import (
	"encoding/json"

	"jobboard_backend/internal/models"
)

// --- Postings ---

type SubmitPostingRequest struct {
	Type         models.PostingType `json:"type" validate:"required,oneof=job internship course"`
	Title        string             `json:"title" validate:"required"`
	Company      string             `json:"company"`
	Industry     string             `json:"industry"`
	Location     string             `json:"location"`
	Description  string             `json:"description"`
	Requirements string             `json:"requirements"`
	Skills       string             `json:"skills"`
	ContactEmail string             `json:"contact_email" validate:"omitempty,email"`
	Duration     string             `json:"duration"`
}

type DeletePostingRequest struct {
	Reason string `json:"reason"`
}

// ScoredJob is a visible job posting carrying its display match score.
type ScoredJob struct {
	models.Posting
	Score int `json:"score"`
}

// --- Auth ---

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// --- Whitelist ---

type WhitelistAddRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Unit  string `json:"unit"`
	Phone string `json:"phone"`
}

// --- CVs ---

type CVRequest struct {
	Name              string   `json:"name" validate:"required"`
	Email             string   `json:"email" validate:"omitempty,email"`
	Title             string   `json:"title"`
	Section           string   `json:"section"`
	Bio               string   `json:"bio"`
	Skills            string   `json:"skills"`
	Experience        string   `json:"experience"`
	Education         string   `json:"education"`
	YearsOfExperience int      `json:"years_of_experience" validate:"gte=0"`
	Languages         []string `json:"languages"`
	LinkedinURL       string   `json:"linkedin_url" validate:"omitempty,url"`
}

// --- Applications ---

type SubmitApplicationRequest struct {
	JobID          *string         `json:"job_id"`
	InternshipID   *string         `json:"internship_id"`
	ApplicantName  string          `json:"applicant_name" validate:"required"`
	ApplicantEmail string          `json:"applicant_email" validate:"required,email"`
	CVID           string          `json:"cv_id"`
	Notes          string          `json:"notes"`
	Answers        json.RawMessage `json:"answers"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,oneof=pending approved rejected"`
	Notes  string                   `json:"notes"`
}

// --- Uploads ---

type CreateUploadRequest struct {
	FileName    string `json:"file_name" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
}

type CreateUploadResponse struct {
	UploadID  string `json:"upload_id"`
	UploadURL string `json:"upload_url"`
}

type AttachFileRequest struct {
	UploadID string `json:"upload_id" validate:"required"`
	SHA256   string `json:"sha256" validate:"required,len=64,hexadecimal"`
}
