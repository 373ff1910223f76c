package driven

import (
	"context"

	"github.com/ericfisherdev/hotmeme/internal/domain/model"
)

// TokenSource defines the driven port for exchanging client credentials for
// a bearer token. Errors wrap model.ErrNetwork or model.ErrProtocol.
type TokenSource interface {
	FetchAccessToken(ctx context.Context, creds model.Credentials) (model.AccessToken, error)
}

// PostSource defines the driven port for retrieving the featured post.
// Errors wrap model.ErrNetwork, model.ErrProtocol or model.ErrEmptyResult.
type PostSource interface {
	FetchFeaturedPost(ctx context.Context, token model.AccessToken) (model.Post, error)
}
