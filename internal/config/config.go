package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server    Server    `yaml:"server"`
	Sheets    Sheets    `yaml:"sheets"`
	Dashboard Dashboard `yaml:"dashboard"`
	Refresher Refresher `yaml:"refresher"`
	Logging   Logging   `yaml:"logging"`
}

// Server holds HTTP server configuration
type Server struct {
	Host         string        `yaml:"host" env:"SERVER_HOST" env-default:"0.0.0.0"`
	Port         string        `yaml:"port" env:"SERVER_PORT" env-default:"3001"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" env-default:"60s"`
}

// Address returns the full server address
func (s Server) Address() string {
	return s.Host + ":" + s.Port
}

// Sheets holds Google Sheets API configuration
type Sheets struct {
	BaseURL       string `yaml:"base_url" env:"SHEETS_BASE_URL" env-default:"https://sheets.googleapis.com"`
	APIKey        string `yaml:"api_key" env:"SHEETS_API_KEY"`
	SpreadsheetID string `yaml:"spreadsheet_id" env:"SPREADSHEET_ID"`
	CommentsRange string `yaml:"comments_range" env:"SHEETS_COMMENTS_RANGE" env-default:"Comentários!A:Z"`
	MentionsRange string `yaml:"mentions_range" env:"SHEETS_MENTIONS_RANGE" env-default:"Menção Storie!A:Z"`
}

// Dashboard holds aggregation settings for the dashboard payload
type Dashboard struct {
	// Timezone is the IANA location used for day bucketing ("Local" follows the server clock)
	Timezone        string `yaml:"timezone" env:"DASHBOARD_TIMEZONE" env-default:"Local"`
	TrendDays       int    `yaml:"trend_days" env:"DASHBOARD_TREND_DAYS" env-default:"7"`
	RecentPerBucket int    `yaml:"recent_per_bucket" env:"DASHBOARD_RECENT_PER_BUCKET" env-default:"6"`
	RecentComments  int    `yaml:"recent_comments" env:"DASHBOARD_RECENT_COMMENTS" env-default:"20"`
	TopEngagers     int    `yaml:"top_engagers" env:"DASHBOARD_TOP_ENGAGERS" env-default:"5"`
	// TextFallback scores the comment text when the sentiment label cell is unrecognized
	TextFallback bool `yaml:"text_fallback" env:"DASHBOARD_TEXT_FALLBACK" env-default:"false"`
}

// Refresher holds snapshot refresher configuration
type Refresher struct {
	Enabled  bool          `yaml:"enabled" env:"REFRESHER_ENABLED" env-default:"false"`
	Interval time.Duration `yaml:"interval" env:"REFRESHER_INTERVAL" env-default:"30s"`
}

// Logging holds logger configuration
type Logging struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MustLoad loads configuration from environment and panics on error
func MustLoad() Config {
	// Load .env file if exists (for development)
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	return cfg
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
