package application

import (
	"context"
	"fmt"

	"github.com/ericfisherdev/hotmeme/internal/domain/model"
	"github.com/ericfisherdev/hotmeme/internal/domain/port/driven"
)

// Stage identifies which step of the fetch pipeline failed.
type Stage string

const (
	StageToken   Stage = "token"
	StageContent Stage = "content"
)

// FetchError tags a pipeline failure with the stage that produced it. The
// wrapped error still matches model.ErrNetwork, model.ErrProtocol or
// model.ErrEmptyResult via errors.Is.
type FetchError struct {
	Stage Stage
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// MemeService runs the per-request fetch pipeline: access token, then the
// featured post. It holds only immutable dependencies and is shared by all
// concurrent requests.
type MemeService struct {
	tokens driven.TokenSource
	posts  driven.PostSource
	creds  model.Credentials
}

// NewMemeService creates a MemeService with the required dependencies.
func NewMemeService(tokens driven.TokenSource, posts driven.PostSource, creds model.Credentials) *MemeService {
	return &MemeService{
		tokens: tokens,
		posts:  posts,
		creds:  creds,
	}
}

// Featured acquires a fresh access token and uses it to fetch the featured
// post. It stops at the first failing stage and returns a *FetchError.
func (s *MemeService) Featured(ctx context.Context) (model.Post, error) {
	token, err := s.tokens.FetchAccessToken(ctx, s.creds)
	if err != nil {
		return model.Post{}, &FetchError{Stage: StageToken, Err: err}
	}

	post, err := s.posts.FetchFeaturedPost(ctx, token)
	if err != nil {
		return model.Post{}, &FetchError{Stage: StageContent, Err: err}
	}

	return post, nil
}
