package models

import "time"

// SiteContent is one CMS page document keyed by its content type string
// ("about", "homepage", ...). The whole document is replaced on every write.
type SiteContent struct {
	Type      string    `json:"type"`
	Document  Document  `json:"document"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the SiteContent model.
func (c SiteContent) TableName() string {
	return "site_content"
}
