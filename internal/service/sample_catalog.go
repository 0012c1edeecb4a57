package service

import (
	"time"

	"github.com/heavymart/backend/models"
)

// sampleProducts returns the built-in catalog served under the "sample"
// fallback policy when the database is unreachable. IDs are stable so that
// detail links from a sample listing keep resolving.
func sampleProducts() []models.Product {
	seeded := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	return []models.Product{
		{
			ID:          1,
			Name:        "Hydraulic press HP-300",
			Description: "300-tonne four-column hydraulic press for deep drawing and forming.",
			Category:    "Presses",
			Price:       "€84,500",
			Images:      models.StringList{"/uploads/sample-hp-300.jpg"},
			Specs: models.SpecList{
				{Key: "Pressing force", Value: "300 t"},
				{Key: "Table size", Value: "1600 × 1200 mm"},
				{Key: "Motor power", Value: "45 kW"},
			},
			Tags:      models.StringList{"forming", "hydraulic"},
			Featured:  true,
			Visible:   true,
			Rating:    4.7,
			CreatedAt: seeded,
			UpdatedAt: seeded,
		},
		{
			ID:          2,
			Name:        "CNC lathe TL-420",
			Description: "Slant-bed CNC lathe with 12-station turret and live tooling.",
			Category:    "Machining",
			Price:       "€126,000",
			Images:      models.StringList{"/uploads/sample-tl-420.jpg"},
			Specs: models.SpecList{
				{Key: "Swing over bed", Value: "420 mm"},
				{Key: "Spindle speed", Value: "4500 rpm"},
				{Key: "Bar capacity", Value: "65 mm"},
			},
			Tags:      models.StringList{"cnc", "turning"},
			Featured:  true,
			Visible:   true,
			Rating:    4.5,
			CreatedAt: seeded,
			UpdatedAt: seeded,
		},
		{
			ID:          3,
			Name:        "Belt conveyor BC-12",
			Description: "Modular 12-metre belt conveyor for intralogistics lines.",
			Category:    "Material handling",
			Price:       "on request",
			Images:      models.StringList{"/uploads/sample-bc-12.jpg"},
			Specs: models.SpecList{
				{Key: "Length", Value: "12 m"},
				{Key: "Belt width", Value: "600 mm"},
				{Key: "Load capacity", Value: "80 kg/m"},
			},
			Tags:      models.StringList{"conveyor", "logistics"},
			Visible:   true,
			Rating:    4.2,
			CreatedAt: seeded,
			UpdatedAt: seeded,
		},
	}
}

// sampleProductByID resolves one product from the sample set.
func sampleProductByID(id int64) (models.Product, bool) {
	for _, p := range sampleProducts() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
