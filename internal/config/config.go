// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ericfisherdev/hotmeme/internal/domain/model"
)

const (
	defaultPort            = 3000
	defaultUserAgent       = "hotmeme/1.0 (by hotmeme)"
	defaultUpstreamTimeout = 10 * time.Second
)

var (
	// ErrMissing is wrapped by an *Error for a required variable that is unset or empty.
	ErrMissing = errors.New("missing")
	// ErrInvalid is wrapped by an *Error for a variable that fails to parse or validate.
	ErrInvalid = errors.New("invalid")
)

// Error reports a configuration problem with a single environment variable.
// Configuration errors are fatal: the process exits before binding a socket.
type Error struct {
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Credentials     model.Credentials
	Port            uint16
	UserAgent       string
	UpstreamTimeout time.Duration
}

// ListenAddr returns the address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort("0.0.0.0", strconv.FormatUint(uint64(c.Port), 10))
}

// LoadDotEnv loads variables from a .env file at path into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from environment variables and returns a validated Config.
// REDDIT_CLIENT_ID and REDDIT_CLIENT_SECRET are required.
// Optional variables with defaults: PORT (3000), REDDIT_USER_AGENT
// (hotmeme/1.0), UPSTREAM_TIMEOUT (10s).
func Load() (*Config, error) {
	clientID, err := required("REDDIT_CLIENT_ID")
	if err != nil {
		return nil, err
	}

	clientSecret, err := required("REDDIT_CLIENT_SECRET")
	if err != nil {
		return nil, err
	}

	port := uint16(defaultPort)
	if v, ok := os.LookupEnv("PORT"); ok {
		parsed, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return nil, &Error{Key: "PORT", Err: fmt.Errorf("%w: %q is not a port number: %w", ErrInvalid, v, err)}
		}
		port = uint16(parsed)
	}

	userAgent := defaultUserAgent
	if v, ok := os.LookupEnv("REDDIT_USER_AGENT"); ok {
		if v == "" {
			return nil, &Error{Key: "REDDIT_USER_AGENT", Err: fmt.Errorf("%w: must not be empty", ErrInvalid)}
		}
		userAgent = v
	}

	timeout := defaultUpstreamTimeout
	if v, ok := os.LookupEnv("UPSTREAM_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, &Error{Key: "UPSTREAM_TIMEOUT", Err: fmt.Errorf("%w: invalid duration %q: %w", ErrInvalid, v, err)}
		}
		if parsed <= 0 {
			return nil, &Error{Key: "UPSTREAM_TIMEOUT", Err: fmt.Errorf("%w: must be positive, got %s", ErrInvalid, parsed)}
		}
		timeout = parsed
	}

	return &Config{
		Credentials: model.Credentials{
			ClientID:     clientID,
			ClientSecret: clientSecret,
		},
		Port:            port,
		UserAgent:       userAgent,
		UpstreamTimeout: timeout,
	}, nil
}

func required(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", &Error{Key: key, Err: ErrMissing}
	}
	return v, nil
}
