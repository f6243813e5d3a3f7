package models

import "github.com/carevan/carevan/internal/pkg/fare"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	APIKey   APIKeyConfig
	Google   GoogleConfig
	Pricing  PricingConfig
	Logger   LoggerConfig
	Fare     fare.Config
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	NSQDAddress      string
	LookupdAddresses []string
	QuoteTopic       string
	InvoiceChannel   string
}

// JWTConfig contains JWT authentication configuration. Tokens are issued by
// the dispatch auth layer; this service only validates them.
type JWTConfig struct {
	Secret string
	Issuer string
}

// APIKeyConfig holds keys for service-to-service calls
type APIKeyConfig struct {
	DispatchKey string
	BillingKey  string
}

// GoogleConfig contains Google Maps API configuration for the county
// geocoder
type GoogleConfig struct {
	MapsAPIKey string
}

// PricingConfig contains pricing-service behavior outside the rate card
type PricingConfig struct {
	// FallbackDistanceMiles is priced when a request arrives without a
	// resolved distance and coordinates are unavailable. The resulting
	// quote is flagged as estimated.
	FallbackDistanceMiles float64
	// RoadFactor scales straight-line distance into an estimated driving
	// distance when only coordinates are known.
	RoadFactor float64
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
