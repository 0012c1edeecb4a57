package models

import "time"

// Product is a single catalog entry. Visible controls storefront inclusion;
// Featured is a storefront badge only — homepage curation is driven by the
// homepage document's featuredProductIds list, not by this flag.
type Product struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`

	// CategoryID references the categories table; Category is the
	// denormalized display label, kept in sync on category rename.
	CategoryID *int64 `json:"categoryId,omitempty"`
	Category   string `json:"category"`

	// Price is a display string ("€12,400", "on request"), not a numeric.
	Price string `json:"price"`

	Images   StringList `json:"images"`
	Specs    SpecList   `json:"specs"`
	Tags     StringList `json:"tags"`
	Featured bool       `json:"featured"`
	Visible  bool       `json:"visible"`
	Rating   float64    `json:"rating"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// ProductUpdate carries a partial product update. Nil fields are left
// untouched by the repository's dynamically built UPDATE.
type ProductUpdate struct {
	ID          int64       `json:"-"`
	Name        *string     `json:"name"`
	Description *string     `json:"description"`
	CategoryID  *int64      `json:"categoryId"`
	Category    *string     `json:"category"`
	Price       *string     `json:"price"`
	Images      *StringList `json:"images"`
	Specs       *SpecList   `json:"specs"`
	Tags        *StringList `json:"tags"`
	Featured    *bool       `json:"featured"`
	Visible     *bool       `json:"visible"`
	Rating      *float64    `json:"rating"`
}
