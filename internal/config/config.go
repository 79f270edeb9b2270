// Package config provides application configuration management with support
// for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Sheet   SheetConfig
	Chat    ChatConfig
	Engine  EngineConfig
	Server  ServerConfig
	Auth    AuthConfig
	Rosters RosterConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// SheetConfig holds the spreadsheet backing-store configuration.
type SheetConfig struct {
	// SpreadsheetID identifies the workbook holding every worksheet.
	SpreadsheetID string
	// CredentialsFile is the path to the Google service-account JSON key.
	// The key only needs the read-only spreadsheet scope.
	CredentialsFile string
	// CacheTTL is how long a fetched worksheet stays fresh (default: 300s).
	CacheTTL time.Duration
	// Worksheet names inside the workbook.
	WorksheetUSA       string
	WorksheetUK        string
	WorksheetAudiobook string
	WorksheetPrinting  string
	WorksheetCopyright string
}

// ChatConfig holds the Slack delivery configuration.
type ChatConfig struct {
	// Token is the bot credential used for lookups, DMs, and channel posts.
	Token string
	// ChannelUSA and ChannelUK are the regional delivery channel IDs.
	ChannelUSA string
	ChannelUK  string
	// AdminNotifyEmail receives a confirmation DM after every successful send.
	AdminNotifyEmail string
}

// EngineConfig holds review-engine tunables.
type EngineConfig struct {
	// BulkPace is the fixed pause between bulk-send attempts (default: 10s).
	BulkPace time.Duration
	// BookTitleTruncate is the rune budget for book titles in message
	// tables before an ellipsis is applied (default: 20).
	BookTitleTruncate int
	// CopyrightUnitCost is the flat cost per copyright submission (default: 65).
	CopyrightUnitCost float64
	// IncludeSent controls whether reminder bodies list Sent rows alongside
	// Pending ones. Sent rows always count in the retention denominator.
	IncludeSent bool
	// MinYear is the dashboard's year input floor.
	MinYear int
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// AuthConfig holds dashboard authentication configuration.
type AuthConfig struct {
	// TokenKeyHex is the PASETO v4 symmetric key (32 bytes as hex).
	TokenKeyHex string
	// AccessTokenDuration is the dashboard session lifetime.
	AccessTokenDuration time.Duration
	// OperatorsFile is the JSON roster of dashboard operators.
	OperatorsFile string
}

// RosterConfig holds PM roster and directory sources.
type RosterConfig struct {
	// File is a JSON document mapping regions to {pm name -> email}.
	File string
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")

	spreadsheetID := flag.String("spreadsheet-id", "", "Workbook ID of the operations spreadsheet")
	credentialsFile := flag.String("google-credentials", "", "Path to Google service-account JSON key")
	cacheTTL := flag.String("cache-ttl", "", "Worksheet cache TTL (default: 300s)")

	slackToken := flag.String("slack-token", "", "Slack bot token")
	channelUSA := flag.String("channel-usa", "", "Slack channel ID for USA reminders")
	channelUK := flag.String("channel-uk", "", "Slack channel ID for UK reminders")
	adminEmail := flag.String("admin-notify-email", "", "Administrator e-mail for confirmation DMs")

	bulkPace := flag.String("bulk-pace", "", "Pause between bulk-send attempts (default: 10s)")
	titleTruncate := flag.String("book-title-truncate", "", "Book title rune budget in messages (default: 20)")
	copyrightUnitCost := flag.String("copyright-unit-cost", "", "Flat cost per copyright submission (default: 65)")
	includeSent := flag.String("include-sent", "", "Include Sent rows in reminder bodies (default: true)")

	serverPort := flag.String("port", "", "Server port (default: 8080)")
	readTimeout := flag.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := flag.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := flag.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")

	tokenKey := flag.String("auth-token-key", "", "PASETO v4 symmetric key (64 hex chars)")
	accessTokenDuration := flag.String("access-token-duration", "", "Dashboard session lifetime (e.g., 12h)")
	operatorsFile := flag.String("operators-file", "", "Path to the dashboard operator roster JSON")
	rosterFile := flag.String("roster-file", "", "Path to the PM roster JSON")

	envFile := flag.String("env-file", ".env", "Path to .env file")

	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Sheet: SheetConfig{
			SpreadsheetID:      getConfigValue(*spreadsheetID, "SPREADSHEET_ID", ""),
			CredentialsFile:    getConfigValue(*credentialsFile, "GOOGLE_CREDENTIALS_FILE", "credentials.json"),
			WorksheetUSA:       getConfigValue("", "WORKSHEET_USA", "USA"),
			WorksheetUK:        getConfigValue("", "WORKSHEET_UK", "UK"),
			WorksheetAudiobook: getConfigValue("", "WORKSHEET_AUDIOBOOKS", "Audiobooks"),
			WorksheetPrinting:  getConfigValue("", "WORKSHEET_PRINTING", "Printing"),
			WorksheetCopyright: getConfigValue("", "WORKSHEET_COPYRIGHT", "Copyright"),
		},
		Chat: ChatConfig{
			Token:            getConfigValue(*slackToken, "SLACK_TOKEN", ""),
			ChannelUSA:       getConfigValue(*channelUSA, "CHANNEL_USA", ""),
			ChannelUK:        getConfigValue(*channelUK, "CHANNEL_UK", ""),
			AdminNotifyEmail: getConfigValue(*adminEmail, "ADMIN_NOTIFY_EMAIL", ""),
		},
		Engine: EngineConfig{
			BookTitleTruncate: getIntConfigValue(*titleTruncate, "BOOK_TITLE_TRUNCATE", 20),
			CopyrightUnitCost: getFloatConfigValue(*copyrightUnitCost, "COPYRIGHT_UNIT_COST", 65),
			IncludeSent:       getBoolConfigValue(*includeSent, "INCLUDE_SENT", true),
			MinYear:           getIntConfigValue("", "MIN_YEAR", 2025),
		},
		Server: ServerConfig{
			Port: getConfigValue(*serverPort, "SERVER_PORT", "8080"),
		},
		Auth: AuthConfig{
			TokenKeyHex:   getConfigValue(*tokenKey, "AUTH_TOKEN_KEY", ""),
			OperatorsFile: getConfigValue(*operatorsFile, "OPERATORS_FILE", "operators.json"),
		},
		Rosters: RosterConfig{
			File: getConfigValue(*rosterFile, "ROSTER_FILE", "rosters.json"),
		},
	}

	var err error
	if cfg.Sheet.CacheTTL, err = parseDurationValue(*cacheTTL, "CACHE_TTL_SECONDS", 300*time.Second); err != nil {
		return nil, fmt.Errorf("invalid cache TTL: %w", err)
	}
	if cfg.Engine.BulkPace, err = parseDurationValue(*bulkPace, "BULK_PACE_SECONDS", 10*time.Second); err != nil {
		return nil, fmt.Errorf("invalid bulk pace: %w", err)
	}
	if cfg.Auth.AccessTokenDuration, err = parseDurationValue(*accessTokenDuration, "ACCESS_TOKEN_DURATION", 12*time.Hour); err != nil {
		return nil, fmt.Errorf("invalid access token duration: %w", err)
	}
	if cfg.Server.ReadTimeout, err = parseDurationValue(*readTimeout, "SERVER_READ_TIMEOUT", 15*time.Second); err != nil {
		return nil, fmt.Errorf("invalid read timeout: %w", err)
	}
	if cfg.Server.WriteTimeout, err = parseDurationValue(*writeTimeout, "SERVER_WRITE_TIMEOUT", 15*time.Second); err != nil {
		return nil, fmt.Errorf("invalid write timeout: %w", err)
	}
	if cfg.Server.IdleTimeout, err = parseDurationValue(*idleTimeout, "SERVER_IDLE_TIMEOUT", 60*time.Second); err != nil {
		return nil, fmt.Errorf("invalid idle timeout: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Sheet.SpreadsheetID == "" {
		return errors.New("SPREADSHEET_ID is required")
	}
	if c.Chat.Token == "" {
		return errors.New("SLACK_TOKEN is required")
	}
	if c.Sheet.CacheTTL <= 0 {
		return errors.New("cache TTL must be positive")
	}
	if c.Engine.BulkPace < 0 {
		return errors.New("bulk pace cannot be negative")
	}
	if c.Engine.BookTitleTruncate <= 0 {
		return errors.New("book title truncate must be positive")
	}
	if c.Engine.CopyrightUnitCost < 0 {
		return errors.New("copyright unit cost cannot be negative")
	}

	return nil
}

// Channel returns the configured delivery channel for a region name
// ("USA" or "UK"); empty when unknown.
func (c *Config) Channel(region string) string {
	switch strings.ToUpper(region) {
	case "USA", "US":
		return c.Chat.ChannelUSA
	case "UK":
		return c.Chat.ChannelUK
	default:
		return ""
	}
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getBoolConfigValue returns a bool from flag, env var, or default.
// Accepts: "true", "1", "yes" (case-insensitive) as true; "false", "0",
// "no" as false; anything else keeps the default.
func getBoolConfigValue(flagValue, envKey string, defaultValue bool) bool {
	strValue := strings.ToLower(getConfigValue(flagValue, envKey, ""))
	switch strValue {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}

// getIntConfigValue returns an int from flag, env var, or default.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	var result int
	if _, err := fmt.Sscanf(strValue, "%d", &result); err != nil {
		return defaultValue
	}
	return result
}

// getFloatConfigValue returns a float64 from flag, env var, or default.
func getFloatConfigValue(flagValue, envKey string, defaultValue float64) float64 {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	var result float64
	if _, err := fmt.Sscanf(strValue, "%g", &result); err != nil {
		return defaultValue
	}
	return result
}

// parseDurationValue resolves a duration option. Bare integers are treated
// as seconds, matching the *_SECONDS environment variable names.
func parseDurationValue(flagValue, envKey string, defaultValue time.Duration) (time.Duration, error) {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue, nil
	}
	var secs int
	if _, err := fmt.Sscanf(strValue, "%d", &secs); err == nil && fmt.Sprintf("%d", secs) == strValue {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(strValue)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", envKey, err)
	}
	return d, nil
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)

		// Env vars take precedence over the .env file.
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
