package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, retry budgets, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Upstream UpstreamConfig
	Notify   NotifyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	ServiceTokenDuration string `envconfig:"JWT_SERVICE_TOKEN_DURATION" default:"1h"`
}

// UpstreamConfig holds the base URLs of the collaborating services the
// orchestrator calls while running a notification workflow.
type UpstreamConfig struct {
	GroupServiceURL           string        `envconfig:"GROUP_SERVICE_URL" required:"true"`
	UserServiceURL            string        `envconfig:"USER_SERVICE_URL" required:"true"`
	NotificationServiceURL    string        `envconfig:"NOTIFICATION_SERVICE_URL" required:"true"`
	NotificationV11ServiceURL string        `envconfig:"NOTIFICATION_V1_1_SERVICE_URL" required:"true"`
	RequestTimeout            time.Duration `envconfig:"UPSTREAM_REQUEST_TIMEOUT" default:"10s"`
}

type NotifyConfig struct {
	// MaxAttempts is the total number of tries on the primary delivery
	// path (initial attempt included) before the fallback runs.
	MaxAttempts int    `envconfig:"NOTIFY_MAX_ATTEMPTS" default:"3"`
	FireHour    int    `envconfig:"NOTIFY_FIRE_HOUR" default:"8"`
	TimeZone    string `envconfig:"NOTIFY_TIMEZONE" default:"Local"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:               "test-secret",
			ServiceTokenDuration: "1h",
		},
		Upstream: UpstreamConfig{
			GroupServiceURL:           "http://localhost:9081/groups",
			UserServiceURL:            "http://localhost:9082/users",
			NotificationServiceURL:    "http://localhost:9083/notifications",
			NotificationV11ServiceURL: "http://localhost:9084/notifications",
			RequestTimeout:            10 * time.Second,
		},
		Notify: NotifyConfig{
			MaxAttempts: 3,
			FireHour:    8,
			TimeZone:    "Local",
		},
	}
}
