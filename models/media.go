package models

import "time"

// MediaFile is the authoritative metadata record of an uploaded file. The
// uploads directory is only a blob store keyed by Filename.
type MediaFile struct {
	ID           int64     `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimetype"`
	Size         int64     `json:"size"`
	Path         string    `json:"path"`
	URL          string    `json:"url"`
	UploadedBy   *int64    `json:"uploadedBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the MediaFile model.
func (m MediaFile) TableName() string {
	return "media_files"
}
