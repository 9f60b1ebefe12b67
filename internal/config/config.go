package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string   `yaml:"port" env:"SERVER_PORT"`
		Mode            string   `yaml:"mode" env:"SERVER_MODE"`
		AllowedOrigins  []string `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS"`
		ShutdownTimeout string   `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Auth struct {
		JWTSecret             string `yaml:"jwt_secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
		LoginDelay            string `yaml:"login_delay" env:"AUTH_LOGIN_DELAY"`
		BcryptCost            int    `yaml:"bcrypt_cost" env:"AUTH_BCRYPT_COST"`
	} `yaml:"auth"`

	Session struct {
		Store         string `yaml:"store" env:"SESSION_STORE"`
		TTL           string `yaml:"ttl" env:"SESSION_TTL"`
		CookieName    string `yaml:"cookie_name" env:"SESSION_COOKIE_NAME"`
		CookieSecret  string `yaml:"cookie_secret" env:"SESSION_COOKIE_SECRET"`
		RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR"`
		RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
		RedisDB       int    `yaml:"redis_db" env:"REDIS_DB"`
	} `yaml:"session"`

	Storage struct {
		Path string `yaml:"path" env:"STORAGE_PATH"`
	} `yaml:"storage"`

	Seed struct {
		RandomSeed int64 `yaml:"random_seed" env:"SEED_RANDOM_SEED"`
	} `yaml:"seed"`

	SMTP struct {
		Host      string `yaml:"host" env:"SMTP_HOST"`
		Port      int    `yaml:"port" env:"SMTP_PORT"`
		Username  string `yaml:"username" env:"SMTP_USERNAME"`
		Password  string `yaml:"password" env:"SMTP_PASSWORD"`
		FromName  string `yaml:"from_name" env:"SMTP_FROM_NAME"`
		FromEmail string `yaml:"from_email" env:"SMTP_FROM_EMAIL"`
		UseTLS    bool   `yaml:"use_tls" env:"SMTP_USE_TLS"`
	} `yaml:"smtp"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	// Display settings surfaced by the system configuration view.
	General struct {
		InstitutionName string `yaml:"institution_name" env:"INSTITUTION_NAME"`
		AcademicYear    string `yaml:"academic_year" env:"ACADEMIC_YEAR"`
		Timezone        string `yaml:"timezone" env:"TIMEZONE"`
		DateFormat      string `yaml:"date_format"`
		Language        string `yaml:"language"`
	} `yaml:"general"`

	Timetable struct {
		WorkingDays        []string `yaml:"working_days"`
		StartTime          string   `yaml:"start_time"`
		EndTime            string   `yaml:"end_time"`
		SlotDurationMin    int      `yaml:"slot_duration_minutes"`
		BreakDurationMin   int      `yaml:"break_duration_minutes"`
		LunchBreakStart    string   `yaml:"lunch_break_start"`
		LunchBreakDuration int      `yaml:"lunch_break_duration_minutes"`
		MaxClassesPerDay   int      `yaml:"max_classes_per_day"`
		AutoScheduling     bool     `yaml:"auto_scheduling" env:"TIMETABLE_AUTO_SCHEDULING"`
	} `yaml:"timetable"`

	Notifications struct {
		Email              bool `yaml:"email"`
		SMS                bool `yaml:"sms"`
		Push               bool `yaml:"push"`
		ScheduleChanges    bool `yaml:"schedule_changes"`
		LeaveRequests      bool `yaml:"leave_requests"`
		SystemMaintenance  bool `yaml:"system_maintenance"`
		ReminderBeforeMins int  `yaml:"reminder_before_minutes"`
	} `yaml:"notifications"`

	Security struct {
		PasswordMinLength   int  `yaml:"password_min_length"`
		RequireSpecialChars bool `yaml:"require_special_chars"`
		MaxLoginAttempts    int  `yaml:"max_login_attempts"`
		TwoFactorAuth       bool `yaml:"two_factor_auth"`
		AuditLogging        bool `yaml:"audit_logging"`
	} `yaml:"security"`
}

// LoadConfig loads configuration from a file, an optional .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// A missing .env is normal outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.AllowedOrigins = []string{"http://localhost:3000"}
	config.Server.ShutdownTimeout = "10s"

	config.Auth.AccessTokenExpiration = "30m"
	config.Auth.Issuer = "schedulocity.app"
	config.Auth.LoginDelay = "1s"
	config.Auth.BcryptCost = 10

	config.Session.Store = "memory"
	config.Session.TTL = "30m"
	config.Session.CookieName = "schedulocity_session"
	config.Session.RedisAddr = "localhost:6379"

	config.Storage.Path = "./backups"
	config.Seed.RandomSeed = 2024

	config.SMTP.Port = 587
	config.SMTP.FromName = "Schedulocity"
	config.SMTP.FromEmail = "no-reply@university.edu"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.General.InstitutionName = "University of Technology"
	config.General.AcademicYear = "2024-2025"
	config.General.Timezone = "America/New_York"
	config.General.DateFormat = "MM/DD/YYYY"
	config.General.Language = "en"

	config.Timetable.WorkingDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	config.Timetable.StartTime = "09:00"
	config.Timetable.EndTime = "17:15"
	config.Timetable.SlotDurationMin = 60
	config.Timetable.BreakDurationMin = 15
	config.Timetable.LunchBreakStart = "13:15"
	config.Timetable.LunchBreakDuration = 45
	config.Timetable.MaxClassesPerDay = 6

	config.Notifications.Email = true
	config.Notifications.Push = true
	config.Notifications.ScheduleChanges = true
	config.Notifications.LeaveRequests = true
	config.Notifications.SystemMaintenance = true
	config.Notifications.ReminderBeforeMins = 15

	config.Security.PasswordMinLength = 8
	config.Security.RequireSpecialChars = true
	config.Security.MaxLoginAttempts = 5
	config.Security.AuditLogging = true
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if config.Session.CookieSecret == "" {
		return fmt.Errorf("session cookie secret is required")
	}

	for name, value := range map[string]string{
		"access token expiration": config.Auth.AccessTokenExpiration,
		"login delay":             config.Auth.LoginDelay,
		"session ttl":             config.Session.TTL,
		"shutdown timeout":        config.Server.ShutdownTimeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	switch strings.ToLower(config.Session.Store) {
	case "memory":
	case "redis":
		if config.Session.RedisAddr == "" {
			return fmt.Errorf("redis address is required for the redis session store")
		}
	default:
		return fmt.Errorf("unsupported session store %q", config.Session.Store)
	}

	if config.Auth.BcryptCost < 4 || config.Auth.BcryptCost > 31 {
		return fmt.Errorf("bcrypt cost must be between 4 and 31")
	}

	return nil
}
