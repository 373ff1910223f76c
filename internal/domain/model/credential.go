package model

import (
	"fmt"
	"log/slog"
)

// Credentials holds the Reddit application's client-credential pair. It is
// loaded once at startup and never mutated afterwards.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// String implements fmt.Stringer with the secret redacted.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{ClientID: %s, ClientSecret: %s}", c.ClientID, redact(c.ClientSecret))
}

// LogValue implements slog.LogValuer so credentials never reach a log sink in cleartext.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("client_id", c.ClientID),
		slog.String("client_secret", redact(c.ClientSecret)),
	)
}

// AccessToken is an opaque OAuth bearer token. A fresh one is requested for
// every inbound request and discarded once that request completes.
type AccessToken string

// String implements fmt.Stringer with the token redacted.
func (t AccessToken) String() string {
	return redact(string(t))
}

// LogValue reveals only the token length.
func (t AccessToken) LogValue() slog.Value {
	return slog.GroupValue(slog.Int("length", len(t)))
}

func redact(s string) string {
	if s == "" {
		return "<empty>"
	}
	return "<redacted>"
}
