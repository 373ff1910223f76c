package web

import (
	"github.com/ericfisherdev/hotmeme/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/hotmeme/internal/domain/model"
)

// toPostViewModel converts a domain Post to its presentation form.
func toPostViewModel(post model.Post) viewmodel.PostViewModel {
	return viewmodel.PostViewModel{
		Title:        post.Title,
		PermalinkURL: post.PermalinkURL(),
		ImageURL:     post.URL,
		HasImage:     post.HasMedia(),
		SelftextHTML: RenderMarkdown(post.Selftext),
	}
}
