// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// PostViewModel holds presentation-ready data for the featured post page.
type PostViewModel struct {
	Title        string
	PermalinkURL string
	ImageURL     string
	HasImage     bool
	SelftextHTML string // Sanitized HTML; empty when the post has no body.
}
