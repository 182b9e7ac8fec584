package models

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Admin        AdminConfig
	Booking      BookingConfig
	OTP          OTPConfig
	SMS          SMSConfig
	Maps         MapsConfig
	Momo         MomoConfig
	VNPay        VNPayConfig
	ZaloPay      ZaloPayConfig
	Notification NotificationConfig
	Logger       LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
	BaseURL     string
	CORSOrigin  string
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

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// AdminConfig guards internal endpoints (reports, sweeps, driver approval)
type AdminConfig struct {
	APIKey string
}

// BookingConfig contains booking lifecycle configuration
type BookingConfig struct {
	RateLimitPerHour     int // booking submissions per phone per hour
	RegistrationsPerDay  int // driver registrations per phone per day
	MatchTimeoutMinutes  int // matched-but-unconfirmed window before reassignment
	SweepIntervalSeconds int
	CommissionPercent    float64
}

// OTPConfig contains OTP issuance configuration
type OTPConfig struct {
	ExpiryMinutes   int
	RequestsPerHour int
}

// SMSConfig contains eSMS provider credentials
type SMSConfig struct {
	APIKey    string
	SecretKey string
	BrandName string
	Endpoint  string
}

// MapsConfig contains the Google Maps distance provider configuration
type MapsConfig struct {
	APIKey        string
	CacheTTLHours int
}

// MomoConfig contains Momo payment gateway credentials
type MomoConfig struct {
	PartnerCode string
	AccessKey   string
	SecretKey   string
	Endpoint    string
}

// VNPayConfig contains VNPay payment gateway credentials
type VNPayConfig struct {
	TmnCode    string
	HashSecret string
	PayURL     string
}

// ZaloPayConfig contains ZaloPay payment gateway credentials
type ZaloPayConfig struct {
	AppID    string
	Key1     string
	Key2     string
	Endpoint string
}

// NotificationConfig contains payment/notification return URLs
type NotificationConfig struct {
	ReturnURL string
	NotifyURL string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
