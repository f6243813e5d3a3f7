package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/carevan/carevan/internal/pkg/models"
)

// InitConfig loads configuration for a service. Local environments read the
// given env file first; everything else comes straight from the process
// environment.
func InitConfig(configPath string) *models.Config {
	if GetEnv("APP_ENV", "local") == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 0)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NSQ config
	configs.NSQ.NSQDAddress = GetEnv("NSQ_NSQD_ADDRESS", "localhost:4150")
	configs.NSQ.LookupdAddresses = GetEnvAsSlice("NSQ_LOOKUPD_ADDRESSES", nil)
	configs.NSQ.QuoteTopic = GetEnv("NSQ_QUOTE_TOPIC", "quotes.created")
	configs.NSQ.InvoiceChannel = GetEnv("NSQ_INVOICE_CHANNEL", "invoice-service")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// API key config
	configs.APIKey.DispatchKey = GetEnv("DISPATCH_API_KEY", "")
	configs.APIKey.BillingKey = GetEnv("BILLING_API_KEY", "")

	// Google Maps config
	configs.Google.MapsAPIKey = GetEnv("GOOGLE_MAPS_API_KEY", "")

	// Pricing service config
	configs.Pricing.FallbackDistanceMiles = GetEnvAsFloat("PRICING_FALLBACK_DISTANCE_MILES", 15.0)
	configs.Pricing.RoadFactor = GetEnvAsFloat("PRICING_ROAD_FACTOR", 1.3)

	// Fare rate card
	configs.Fare.BaseFareCents = GetEnvAsInt64("FARE_BASE_CENTS", 5000)
	configs.Fare.HomeMileRateCents = GetEnvAsInt64("FARE_HOME_MILE_RATE_CENTS", 300)
	configs.Fare.CrossMileRateCents = GetEnvAsInt64("FARE_CROSS_MILE_RATE_CENTS", 400)
	configs.Fare.CountyCrossingFeeCents = GetEnvAsInt64("FARE_COUNTY_CROSSING_FEE_CENTS", 5000)
	configs.Fare.OffHoursFeeCents = GetEnvAsInt64("FARE_OFF_HOURS_FEE_CENTS", 4000)
	configs.Fare.EmergencyFeeCents = GetEnvAsInt64("FARE_EMERGENCY_FEE_CENTS", 4000)
	configs.Fare.WheelchairRentalFeeCents = GetEnvAsInt64("FARE_WHEELCHAIR_RENTAL_FEE_CENTS", 2500)
	configs.Fare.VeteranDiscountPercent = GetEnvAsInt64("FARE_VETERAN_DISCOUNT_PERCENT", 20)
	configs.Fare.HomeCounty = GetEnv("FARE_HOME_COUNTY", "Franklin")
	configs.Fare.OfficeOpenHour = GetEnvAsInt("FARE_OFFICE_OPEN_HOUR", 8)
	configs.Fare.OfficeCloseHour = GetEnvAsInt("FARE_OFFICE_CLOSE_HOUR", 18)
	configs.Fare.WaiveWheelchairFeeForFacilities = GetEnvAsBool("FARE_WAIVE_WHEELCHAIR_FEE_FOR_FACILITIES", true)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
