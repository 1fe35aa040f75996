package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config represents the application configuration structure.
// Provider credentials are only read from the environment and have no yaml
// representation.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout bounds one submission, both provider calls included
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"90s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigin is returned in Access-Control-Allow-Origin
		AllowedOrigin string `env:"HTTP_ALLOWED_ORIGIN" env-default:"*" yaml:"allowedOrigin"`
	} `yaml:"http"`

	// Search configures the web search provider
	Search struct {
		Endpoint string `env:"SEARCH_ENDPOINT" env-default:"https://api.bing.microsoft.com/v7.0/search" yaml:"endpoint"`
		APIKey   string `env:"SEARCH_API_KEY" yaml:"-"`
		// Count is the maximum number of results requested
		Count          int           `env:"SEARCH_COUNT" env-default:"10" yaml:"count"`
		ResponseFilter string        `env:"SEARCH_RESPONSE_FILTER" env-default:"WebPages" yaml:"responseFilter"`
		Timeout        time.Duration `env:"SEARCH_TIMEOUT" env-default:"30s" yaml:"timeout"`
	} `yaml:"search"`

	// LLM configures the language model provider
	LLM struct {
		// Provider is either "openai" or "ollama"
		Provider string `env:"LLM_PROVIDER" env-default:"openai" yaml:"provider"`
		// BaseURL is left empty to use the provider's public endpoint
		BaseURL string        `env:"LLM_BASE_URL" yaml:"baseUrl"`
		APIKey  string        `env:"LLM_API_KEY" yaml:"-"`
		Model   string        `env:"LLM_MODEL" env-default:"gpt-4o-mini" yaml:"model"`
		Timeout time.Duration `env:"LLM_TIMEOUT" env-default:"60s" yaml:"timeout"`
	} `yaml:"llm"`

	Area struct {
		SuperBuiltUpMultiplier float64 `env:"AREA_SUPER_BUILT_UP_MULTIPLIER" env-default:"1.5" yaml:"superBuiltUpMultiplier"`
	} `yaml:"area"`

	// Bounds limits what the requirement form accepts
	Bounds struct {
		MinFamilySize int     `env:"BOUNDS_MIN_FAMILY_SIZE" env-default:"1" yaml:"minFamilySize"`
		MinBudget     int64   `env:"BOUNDS_MIN_BUDGET" env-default:"1000000" yaml:"minBudget"`
		BudgetStep    int64   `env:"BOUNDS_BUDGET_STEP" env-default:"50000" yaml:"budgetStep"`
		MaxRooms      int     `env:"BOUNDS_MAX_ROOMS" env-default:"10" yaml:"maxRooms"`
		MinBedroom    float64 `env:"BOUNDS_MIN_BEDROOM" env-default:"100" yaml:"minBedroom"`
		MaxBedroom    float64 `env:"BOUNDS_MAX_BEDROOM" env-default:"250" yaml:"maxBedroom"`
		MinBathroom   float64 `env:"BOUNDS_MIN_BATHROOM" env-default:"50" yaml:"minBathroom"`
		MaxBathroom   float64 `env:"BOUNDS_MAX_BATHROOM" env-default:"150" yaml:"maxBathroom"`
		MinKitchen    float64 `env:"BOUNDS_MIN_KITCHEN" env-default:"100" yaml:"minKitchen"`
		MaxKitchen    float64 `env:"BOUNDS_MAX_KITCHEN" env-default:"250" yaml:"maxKitchen"`
		MinLiving     float64 `env:"BOUNDS_MIN_LIVING" env-default:"100" yaml:"minLiving"`
		MaxLiving     float64 `env:"BOUNDS_MAX_LIVING" env-default:"450" yaml:"maxLiving"`
		MinOther      float64 `env:"BOUNDS_MIN_OTHER" env-default:"0" yaml:"minOther"`
		MaxOther      float64 `env:"BOUNDS_MAX_OTHER" env-default:"500" yaml:"maxOther"`
	} `yaml:"bounds"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// ErrMissingCredentials is returned by ValidateCredentials.
var ErrMissingCredentials = errors.New("missing provider credentials")

// Load loads an optional .env file, then reads the yaml file at configPath
// with environment overrides. A missing yaml file is not an error; the
// configuration is then built from the environment and defaults alone.
func Load(configPath string) (*Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env: %w", err)
	}

	var cfg Config
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read env: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// ValidateCredentials reports which provider credentials are missing. The
// ollama provider runs without a key.
func (c *Config) ValidateCredentials() error {
	var missing []string
	if c.Search.APIKey == "" {
		missing = append(missing, "SEARCH_API_KEY")
	}
	if c.LLM.APIKey == "" && c.LLM.Provider != "ollama" {
		missing = append(missing, "LLM_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingCredentials, missing)
	}

	return nil
}
