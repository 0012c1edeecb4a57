package service

import "github.com/heavymart/backend/models"

// Content types recognised by the content layer. Everything else is a 404.
const (
	ContentAbout      = "about"
	ContentContact    = "contact"
	ContentFooter     = "footer"
	ContentHeader     = "header"
	ContentCategories = "categories"
	ContentHomepage   = "homepage"
	ContentTheme      = "theme"
	ContentSettings   = "settings"
	ContentEmail      = "email"
)

var knownContentTypes = map[string]bool{
	ContentAbout:      true,
	ContentContact:    true,
	ContentFooter:     true,
	ContentHeader:     true,
	ContentCategories: true,
	ContentHomepage:   true,
	ContentTheme:      true,
	ContentSettings:   true,
	ContentEmail:      true,
}

// IsKnownContentType reports whether the content layer manages documents of
// the given type.
func IsKnownContentType(contentType string) bool {
	return knownContentTypes[contentType]
}

// defaultContent returns the built-in document materialized on the first Get
// of a content type that has never been written.
func defaultContent(contentType string) models.Document {
	switch contentType {
	case ContentAbout:
		return models.Document{
			"title": "About HeavyMart",
			"body":  "HeavyMart supplies industrial equipment to manufacturers across Europe.",
		}
	case ContentContact:
		return models.Document{
			"email":   "sales@heavymart.example",
			"phone":   "",
			"address": "",
		}
	case ContentFooter:
		return models.Document{
			"text":  "© HeavyMart",
			"links": []any{},
		}
	case ContentHeader:
		return models.Document{
			"title":      "HeavyMart",
			"navigation": []any{},
		}
	case ContentCategories:
		return models.Document{
			"title":    "Categories",
			"subtitle": "",
		}
	case ContentHomepage:
		return models.Document{
			"heroTitle":          "Industrial equipment that keeps lines running",
			"heroSubtitle":       "",
			"featuredProductIds": []any{},
		}
	case ContentTheme:
		return models.Document{
			"primaryColor":   "#1a3c6e",
			"secondaryColor": "#f0a500",
		}
	case ContentSettings:
		return models.Document{
			"siteName":        "HeavyMart",
			"maintenanceMode": false,
		}
	case ContentEmail:
		return models.Document{
			"fromName":  "HeavyMart",
			"replyTo":   "",
			"signature": "",
		}
	default:
		return models.Document{}
	}
}
