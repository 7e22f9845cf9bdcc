package config

import (
	"time"

	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/logger"
)

// PlaceholderBackendURL is the value shipped in the example config. A backend
// section still carrying it is treated as unconfigured.
const PlaceholderBackendURL = "https://your-project.example.com"

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Backend holds the connection parameters that select between the real
// gateway and the mock fallback.
type Backend struct {
	URL    string // endpoint url of the hosted backend
	APIKey string // public api key
}

// Configured reports whether both connection parameters are present and the
// URL is not the shipped placeholder.
func (b Backend) Configured() bool {
	return b.URL != "" && b.APIKey != "" && b.URL != PlaceholderBackendURL
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Backend   Backend
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	Port         int     // listening port for the webserver
	ShutDownTime int     // wait time for shutdown
	URL          string  // base url for the webserver
	Session      Session // session settings
}
