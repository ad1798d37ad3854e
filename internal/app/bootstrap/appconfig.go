// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging, request limits);
// AppConfig is everything specific to ScrimHub.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Bearer token configuration
	TokenSecret string        // HS256 signing secret (must be strong in production)
	TokenTTL    time.Duration // Token validity from issuance

	// CORS configuration
	CORSOrigins string // Comma-separated allowed origins; "*" allows any

	// Admin bootstrap: email of the user to promote to admin on startup
	AdminEmail string
}
