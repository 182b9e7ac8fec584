package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// InitConfig loads configuration from the environment, reading a .env file
// first when running locally.
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
	configs.App.Name = GetEnv("APP_NAME", "travelcar-api")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")
	configs.App.BaseURL = GetEnv("APP_BASE_URL", "http://localhost:8080")
	configs.App.CORSOrigin = GetEnv("APP_CORS_ORIGIN", "https://travelcar.vn")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "travelcar")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 5)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 720)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "travelcar")

	// Admin config
	configs.Admin.APIKey = GetEnv("ADMIN_API_KEY", "")

	// Booking config
	configs.Booking.RateLimitPerHour = GetEnvAsInt("BOOKING_RATE_LIMIT_PER_HOUR", 5)
	configs.Booking.RegistrationsPerDay = GetEnvAsInt("DRIVER_REGISTRATIONS_PER_DAY", 3)
	configs.Booking.MatchTimeoutMinutes = GetEnvAsInt("MATCH_TIMEOUT_MINUTES", 5)
	configs.Booking.SweepIntervalSeconds = GetEnvAsInt("SWEEP_INTERVAL_SECONDS", 60)
	configs.Booking.CommissionPercent = GetEnvAsFloat("COMMISSION_PERCENT", 0.10)

	// OTP config
	configs.OTP.ExpiryMinutes = GetEnvAsInt("OTP_EXPIRY_MINUTES", 5)
	configs.OTP.RequestsPerHour = GetEnvAsInt("OTP_REQUESTS_PER_HOUR", 3)

	// SMS config
	configs.SMS.APIKey = GetEnv("ESMS_API_KEY", "")
	configs.SMS.SecretKey = GetEnv("ESMS_SECRET_KEY", "")
	configs.SMS.BrandName = GetEnv("ESMS_BRAND_NAME", "TravelCar")
	configs.SMS.Endpoint = GetEnv("ESMS_ENDPOINT", "https://rest.esms.vn/MainService.svc/json/SendMultipleMessage_V4_post_json/")

	// Maps config
	configs.Maps.APIKey = GetEnv("GOOGLE_MAPS_API_KEY", "")
	configs.Maps.CacheTTLHours = GetEnvAsInt("DISTANCE_CACHE_TTL_HOURS", 24)

	// Payment provider config
	configs.Momo.PartnerCode = GetEnv("MOMO_PARTNER_CODE", "")
	configs.Momo.AccessKey = GetEnv("MOMO_ACCESS_KEY", "")
	configs.Momo.SecretKey = GetEnv("MOMO_SECRET_KEY", "")
	configs.Momo.Endpoint = GetEnv("MOMO_ENDPOINT", "https://payment.momo.vn/v2/gateway/api/create")

	configs.VNPay.TmnCode = GetEnv("VNPAY_TMN_CODE", "")
	configs.VNPay.HashSecret = GetEnv("VNPAY_HASH_SECRET", "")
	configs.VNPay.PayURL = GetEnv("VNPAY_URL", "https://pay.vnpay.vn/vpcpay.html")

	configs.ZaloPay.AppID = GetEnv("ZALOPAY_APP_ID", "")
	configs.ZaloPay.Key1 = GetEnv("ZALOPAY_KEY1", "")
	configs.ZaloPay.Key2 = GetEnv("ZALOPAY_KEY2", "")
	configs.ZaloPay.Endpoint = GetEnv("ZALOPAY_ENDPOINT", "https://openapi.zalopay.vn/v2/create")

	// Notification config
	configs.Notification.ReturnURL = GetEnv("PAYMENT_RETURN_URL", "https://travelcar.vn/payment-result.html")
	configs.Notification.NotifyURL = GetEnv("PAYMENT_NOTIFY_URL", configs.App.BaseURL+"/payments/callback")

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
