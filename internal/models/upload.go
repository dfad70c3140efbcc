package models

// Upload records a file reference in the external blob store. The core never
// streams file bytes itself: the client uploads directly via a capability
// URL and then attaches the finished upload to a CV.
type Upload struct {
	BaseModel
	Key         string `gorm:"uniqueIndex;not null" json:"key"` // storage object key
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Attached    bool   `gorm:"default:false" json:"attached"`
}

// FileHash is the persisted content-hash registry used for duplicate-CV-file
// detection. Keyed by sha256 so the check survives restarts and replicas.
type FileHash struct {
	Hash      string `gorm:"primaryKey;size:64" json:"hash"`
	CVID      string `gorm:"not null;index" json:"cv_id"`
	UploadID  string `gorm:"not null" json:"upload_id"`
	CreatedAt int64  `gorm:"autoCreateTime" json:"created_at"`
}
