package model

// RedditSiteURL is the public site root that post permalinks are relative to.
const RedditSiteURL = "https://www.reddit.com"

// Post is the featured Reddit post shown on the home page.
// Title and Permalink are always set on a Post returned by a PostSource.
type Post struct {
	Title     string
	Permalink string // Path relative to RedditSiteURL, e.g. "/r/x/comments/1/".
	URL       string // Direct media link; empty when the post has none.
	Selftext  string // Markdown body of a text post; usually empty for image posts.
}

// HasMedia reports whether the post carries a direct media link.
func (p Post) HasMedia() bool {
	return p.URL != ""
}

// PermalinkURL returns the absolute link to the post on reddit.com.
func (p Post) PermalinkURL() string {
	return RedditSiteURL + p.Permalink
}
