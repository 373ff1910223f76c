package reddit

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ericfisherdev/hotmeme/internal/domain/model"
)

// Subreddit is the community the featured post is drawn from.
const Subreddit = "wholesomememes"

// FeaturedListingLimit is the number of hot posts requested per fetch. The
// featured post is the last one returned, i.e. the second hottest, so the
// single most popular post is never the one shown.
const FeaturedListingLimit = 2

// listing mirrors the subset of Reddit's Listing envelope that is read.
type listing struct {
	Data struct {
		Children []listingChild `json:"children"`
	} `json:"data"`
}

type listingChild struct {
	Data listingPost `json:"data"`
}

type listingPost struct {
	Title     string  `json:"title"`
	Permalink string  `json:"permalink"`
	URL       *string `json:"url"`
	Selftext  string  `json:"selftext"`
	IsSelf    bool    `json:"is_self"`
}

// FetchFeaturedPost retrieves the hot listing for Subreddit and returns the
// post chosen by selectFeatured. Every call re-queries Reddit.
func (c *Client) FetchFeaturedPost(ctx context.Context, token model.AccessToken) (model.Post, error) {
	endpoint := c.apiBaseURL + "/r/" + url.PathEscape(Subreddit) + "/hot.json"
	query := url.Values{"limit": {strconv.Itoa(FeaturedListingLimit)}}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return model.Post{}, fmt.Errorf("creating listing request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+string(token))

	var l listing
	if err := c.do(req, "hot listing", &l); err != nil {
		return model.Post{}, err
	}

	raw, ok := selectFeatured(l.Data.Children)
	if !ok {
		return model.Post{}, fmt.Errorf("%w: r/%s hot listing is empty", model.ErrEmptyResult, Subreddit)
	}

	post, err := mapPost(raw)
	if err != nil {
		return model.Post{}, err
	}

	c.logger.Debug("featured post selected",
		"permalink", post.Permalink,
		"candidates", len(l.Data.Children),
		"has_media", post.HasMedia(),
	)

	return post, nil
}

// selectFeatured returns the last child of the listing. Reddit orders hot
// listings most prominent first.
func selectFeatured(children []listingChild) (listingPost, bool) {
	if len(children) == 0 {
		return listingPost{}, false
	}
	return children[len(children)-1].Data, true
}

// mapPost converts a listing entry to a domain Post. Reddit entity-encodes
// '&', '<' and '>' in text fields, so they are decoded here and escaped once
// on render.
func mapPost(p listingPost) (model.Post, error) {
	if p.Title == "" || p.Permalink == "" {
		return model.Post{}, fmt.Errorf("%w: listing entry missing title or permalink", model.ErrProtocol)
	}

	var mediaURL string
	// Self posts point url back at their own comments page.
	if p.URL != nil && !p.IsSelf {
		mediaURL = html.UnescapeString(*p.URL)
	}

	return model.Post{
		Title:     html.UnescapeString(p.Title),
		Permalink: p.Permalink,
		URL:       mediaURL,
		Selftext:  html.UnescapeString(p.Selftext),
	}, nil
}
