package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix for every environment variable read by Load.
const EnvPrefix = "SCPULSE"

// Data source kinds
const (
	SourceSheets = "sheets"
	SourceCSV    = "csv"
	SourceXLSX   = "xlsx"
)

// Config represents the complete application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server" envconfig:"SERVER"`
	Security   SecurityConfig   `yaml:"security" envconfig:"SECURITY"`
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	DataSource DataSourceConfig `yaml:"datasource" envconfig:"DATASOURCE"`
	Telemetry  TelemetryConfig  `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	MaxHeaderBytes  int           `yaml:"max_header_bytes" envconfig:"MAX_HEADER_BYTES" default:"1048576"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" envconfig:"REQUEST_TIMEOUT" default:"25s"`
}

// SecurityConfig contains CORS and rate limiting configuration
type SecurityConfig struct {
	AllowedOrigins []string        `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000"`
	EnableCORS     bool            `yaml:"enable_cors" envconfig:"ENABLE_CORS" default:"true"`
	RateLimit      RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" default:"50"`
	Burst   int     `yaml:"burst" envconfig:"BURST" default:"25"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/scpulse.log"`
}

// DataSourceConfig selects and parameterizes the supply-chain record source.
// Kind picks the loader strategy; the remaining fields are read by the
// strategy that needs them.
type DataSourceConfig struct {
	Kind string `yaml:"kind" envconfig:"KIND" default:"csv"`

	// Remote spreadsheet
	SheetID         string        `yaml:"sheet_id" envconfig:"SHEET_ID"`
	WorksheetName   string        `yaml:"worksheet_name" envconfig:"WORKSHEET_NAME" default:"Sheet1"`
	CredentialsJSON string        `yaml:"-" envconfig:"CREDENTIALS_JSON"`
	CredentialsFile string        `yaml:"credentials_file" envconfig:"CREDENTIALS_FILE"`
	FetchTimeout    time.Duration `yaml:"fetch_timeout" envconfig:"FETCH_TIMEOUT" default:"10s"`

	// Local file
	FilePath  string `yaml:"file_path" envconfig:"FILE_PATH" default:"data/supply_chain_data.csv"`
	SheetName string `yaml:"sheet_name" envconfig:"SHEET_NAME"`

	// Retry of transient fetch failures
	RetryAttempts  int           `yaml:"retry_attempts" envconfig:"RETRY_ATTEMPTS" default:"3"`
	RetryBaseDelay time.Duration `yaml:"retry_base_delay" envconfig:"RETRY_BASE_DELAY" default:"500ms"`
	RetryMaxDelay  time.Duration `yaml:"retry_max_delay" envconfig:"RETRY_MAX_DELAY" default:"5s"`
}

// TelemetryConfig controls OpenTelemetry exporters
type TelemetryConfig struct {
	Environment   string  `yaml:"environment" envconfig:"ENVIRONMENT" default:"development"`
	EnableMetrics bool    `yaml:"enable_metrics" envconfig:"ENABLE_METRICS" default:"true"`
	EnableTracing bool    `yaml:"enable_tracing" envconfig:"ENABLE_TRACING" default:"false"`
	TraceExporter string  `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER" default:"stdout"`
	SampleRatio   float64 `yaml:"sample_ratio" envconfig:"SAMPLE_RATIO" default:"1.0"`
}

// Load loads configuration from environment variables and, when present,
// a YAML config file. Environment values take precedence.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile := getConfigFilePath(); configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs fills values from the file config where the environment did
// not set them explicitly. envconfig applies defaults, so a value is treated
// as unset when the matching environment variable is absent.
func mergeConfigs(fileConfig, envConfig Config) Config {
	pick := func(key string, apply func()) {
		if _, ok := os.LookupEnv(EnvPrefix + "_" + key); !ok {
			apply()
		}
	}

	if fileConfig.Server.Port != 0 {
		pick("SERVER_PORT", func() { envConfig.Server.Port = fileConfig.Server.Port })
	}
	if fileConfig.Server.ReadTimeout != 0 {
		pick("SERVER_READ_TIMEOUT", func() { envConfig.Server.ReadTimeout = fileConfig.Server.ReadTimeout })
	}
	if fileConfig.Server.WriteTimeout != 0 {
		pick("SERVER_WRITE_TIMEOUT", func() { envConfig.Server.WriteTimeout = fileConfig.Server.WriteTimeout })
	}
	if fileConfig.Server.RequestTimeout != 0 {
		pick("SERVER_REQUEST_TIMEOUT", func() { envConfig.Server.RequestTimeout = fileConfig.Server.RequestTimeout })
	}
	if len(fileConfig.Security.AllowedOrigins) > 0 {
		pick("SECURITY_ALLOWED_ORIGINS", func() { envConfig.Security.AllowedOrigins = fileConfig.Security.AllowedOrigins })
	}
	if fileConfig.Logging.Level != "" {
		pick("LOGGING_LEVEL", func() { envConfig.Logging.Level = fileConfig.Logging.Level })
	}
	if fileConfig.Logging.Output != "" {
		pick("LOGGING_OUTPUT", func() { envConfig.Logging.Output = fileConfig.Logging.Output })
	}

	ds := fileConfig.DataSource
	if ds.Kind != "" {
		pick("DATASOURCE_KIND", func() { envConfig.DataSource.Kind = ds.Kind })
	}
	if ds.SheetID != "" {
		pick("DATASOURCE_SHEET_ID", func() { envConfig.DataSource.SheetID = ds.SheetID })
	}
	if ds.WorksheetName != "" {
		pick("DATASOURCE_WORKSHEET_NAME", func() { envConfig.DataSource.WorksheetName = ds.WorksheetName })
	}
	if ds.CredentialsFile != "" {
		pick("DATASOURCE_CREDENTIALS_FILE", func() { envConfig.DataSource.CredentialsFile = ds.CredentialsFile })
	}
	if ds.FilePath != "" {
		pick("DATASOURCE_FILE_PATH", func() { envConfig.DataSource.FilePath = ds.FilePath })
	}
	if ds.SheetName != "" {
		pick("DATASOURCE_SHEET_NAME", func() { envConfig.DataSource.SheetName = ds.SheetName })
	}
	if ds.RetryAttempts != 0 {
		pick("DATASOURCE_RETRY_ATTEMPTS", func() { envConfig.DataSource.RetryAttempts = ds.RetryAttempts })
	}

	return envConfig
}

// validate validates the configuration
func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server read timeout must be positive")
	}

	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server write timeout must be positive")
	}

	if c.Security.EnableCORS && len(c.Security.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one allowed origin must be specified when CORS is enabled")
	}

	switch strings.ToLower(c.Logging.Output) {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid logging output: %s", c.Logging.Output)
	}

	return c.DataSource.Validate()
}

// Validate checks the keys required by the selected source kind.
func (d *DataSourceConfig) Validate() error {
	d.Kind = strings.ToLower(strings.TrimSpace(d.Kind))

	switch d.Kind {
	case SourceSheets:
		if d.SheetID == "" {
			return fmt.Errorf("datasource sheet_id is required for kind %q", d.Kind)
		}
		if d.WorksheetName == "" {
			return fmt.Errorf("datasource worksheet_name is required for kind %q", d.Kind)
		}
	case SourceCSV, SourceXLSX:
		if d.FilePath == "" {
			return fmt.Errorf("datasource file_path is required for kind %q", d.Kind)
		}
	default:
		return fmt.Errorf("unsupported datasource kind: %q", d.Kind)
	}

	if d.RetryAttempts < 1 {
		return fmt.Errorf("datasource retry_attempts must be at least 1")
	}

	return nil
}

// getConfigFilePath returns the path to the config file, or "" when none exists
func getConfigFilePath() string {
	if explicit := os.Getenv(EnvPrefix + "_CONFIG_FILE"); explicit != "" {
		return explicit
	}

	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			MaxHeaderBytes:  1 << 20,
			ShutdownTimeout: 30 * time.Second,
			RequestTimeout:  25 * time.Second,
		},
		Security: SecurityConfig{
			AllowedOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
			EnableCORS:     true,
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     50,
				Burst:   25,
			},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/scpulse.log",
		},
		DataSource: DataSourceConfig{
			Kind:           SourceCSV,
			WorksheetName:  DefaultWorksheet,
			FetchTimeout:   10 * time.Second,
			FilePath:       "data/supply_chain_data.csv",
			RetryAttempts:  3,
			RetryBaseDelay: 500 * time.Millisecond,
			RetryMaxDelay:  5 * time.Second,
		},
		Telemetry: TelemetryConfig{
			Environment:   "development",
			EnableMetrics: true,
			TraceExporter: "stdout",
			SampleRatio:   1.0,
		},
	}
}
