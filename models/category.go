package models

import "time"

// Category groups products by a display name. Name uniqueness is enforced
// case-insensitively at write time.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// ProductCount is computed on listing: the number of visible products
	// currently carrying this category's label. Not a stored column.
	ProductCount int `json:"productCount"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}
