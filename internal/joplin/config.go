package joplin

import (
	"errors"
	"time"

	"github.com/roivaz/joplin-mcp/internal/config"
)

const (
	// CharacterLimit bounds the rendered size of markdown tool responses.
	CharacterLimit = 25000

	requestTimeout = 30 * time.Second
	pingTimeout    = 2 * time.Second

	launchWait       = 2 * time.Second
	maxLaunchRetries = 1

	// ReadyTimeout bounds the ensure-running readiness wait. AppImage cold
	// starts can take a while.
	ReadyTimeout      = 25 * time.Second
	readyPollInterval = time.Second

	serverPageMax = 100
	maxPages      = 50
)

// ErrMissingToken is the fatal configuration error for any API-calling
// operation.
var ErrMissingToken = errors.New(
	"JOPLIN_TOKEN environment variable not set. " +
		"Get your token from: Joplin -> Tools -> Options -> Web Clipper")

// Config is the environment-derived configuration of a single operation.
// It is resolved fresh at the start of every call so token, port and
// auto-launch changes take effect without a restart.
type Config struct {
	BaseURL    string
	Token      string
	AutoLaunch bool
}

func LoadConfig() (Config, error) {
	token := config.Token()
	if token == "" {
		return Config{}, ErrMissingToken
	}
	return Config{
		BaseURL:    config.BaseURL(),
		Token:      token,
		AutoLaunch: config.AutoLaunch(),
	}, nil
}
