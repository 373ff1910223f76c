package reddit

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/ericfisherdev/hotmeme/internal/domain/model"
)

// accessTokenResponse is the body returned by the token endpoint.
type accessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
}

// FetchAccessToken exchanges the application's client credentials for a
// bearer token using the client_credentials grant. The token is not cached.
func (c *Client) FetchAccessToken(ctx context.Context, creds model.Credentials) (model.AccessToken, error) {
	body, contentType, err := clientCredentialsForm()
	if err != nil {
		return "", fmt.Errorf("building token request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, body)
	if err != nil {
		return "", fmt.Errorf("creating token request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.SetBasicAuth(creds.ClientID, creds.ClientSecret)

	var tok accessTokenResponse
	if err := c.do(req, "access token", &tok); err != nil {
		return "", err
	}

	if tok.AccessToken == "" {
		return "", fmt.Errorf("%w: token response has no access_token", model.ErrProtocol)
	}

	token := model.AccessToken(tok.AccessToken)
	c.logger.Debug("reddit access token acquired",
		"token", token,
		"token_type", tok.TokenType,
		"expires_in", tok.ExpiresIn,
	)

	return token, nil
}

// clientCredentialsForm encodes the multipart body carrying the grant type.
func clientCredentialsForm() (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("grant_type", "client_credentials"); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}
