package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type JiraConfig struct {
	BaseURL        string
	Username       string
	Password       string
	TimeoutSeconds int
	StatusColors   map[string]string
}

// IsConfigured returns true if all required Jira configuration is present
func (c JiraConfig) IsConfigured() bool {
	return c.BaseURL != "" &&
		c.Username != "" &&
		c.Password != ""
	// Note: StatusColors and TimeoutSeconds are optional
}

type MattermostConfig struct {
	BaseURL string
	Token   string
}

// IsConfigured returns true if all required Mattermost configuration is present
func (c MattermostConfig) IsConfigured() bool {
	return c.BaseURL != ""
	// Note: Token is optional - when empty the token check is skipped
}

type AppConfig struct {
	// Core configuration
	Port               string // Optional with default "8080"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string
	AlertWebhookURL    string
	UseStrictConfig    bool // If true, error when an integration is not fully configured

	// Pipeline configuration
	TicketRegexp string
	ErrorColor   string

	// Integration configurations (grouped)
	JiraConfig       JiraConfig
	MattermostConfig MattermostConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	// Core required configuration
	jiraURL, err := getEnvRequired("JIRA_URL")
	if err != nil {
		return nil, err
	}

	mattermostURL, err := getEnvRequired("MATTERMOST_URL")
	if err != nil {
		return nil, err
	}

	timeoutSeconds, err := strconv.Atoi(getEnvWithDefault("JIRA_TIMEOUT_SECONDS", "10"))
	if err != nil {
		return nil, fmt.Errorf("JIRA_TIMEOUT_SECONDS must be an integer: %w", err)
	}

	statusColors, err := ParseStatusColors(os.Getenv("JIRA_STATUS_COLORS"))
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		// Core configuration
		Port:               getEnvWithDefault("PORT", "8080"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),
		AlertWebhookURL:    getEnvWithDefault("ALERT_WEBHOOK_URL", ""),
		UseStrictConfig:    getEnvWithDefault("USE_STRICT_CONFIG", "true") == "true",

		// Pipeline configuration
		TicketRegexp: getEnvWithDefault("TICKET_REGEXP", `[A-Z][A-Z0-9]+-[0-9]+`),
		ErrorColor:   getEnvWithDefault("ERROR_COLOR", "#ff0000"),

		// Jira configuration
		JiraConfig: JiraConfig{
			BaseURL:        strings.TrimRight(jiraURL, "/"),
			Username:       os.Getenv("JIRA_USER"),
			Password:       os.Getenv("JIRA_PASS"),
			TimeoutSeconds: timeoutSeconds,
			StatusColors:   statusColors,
		},

		// Mattermost configuration (token optional)
		MattermostConfig: MattermostConfig{
			BaseURL: strings.TrimRight(mattermostURL, "/"),
			Token:   os.Getenv("MATTERMOST_TOKEN"),
		},
	}

	// Log which integrations are configured
	if config.JiraConfig.IsConfigured() {
		log.Printf("✅ Jira integration configured")
	} else {
		log.Printf("⚠️ Jira integration not configured - lookups will fail without credentials")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("jira integration is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	if config.MattermostConfig.Token != "" {
		log.Printf("✅ Mattermost token configured")
	} else {
		log.Printf("⚠️ Mattermost token not configured - webhook token check will be skipped")
	}

	return config, nil
}

// ParseStatusColors parses a comma-separated list of Name=#hex pairs, e.g.
// "Done=#00aa00,In Progress=#0000aa". An empty input yields an empty map.
func ParseStatusColors(raw string) (map[string]string, error) {
	colors := make(map[string]string)
	if strings.TrimSpace(raw) == "" {
		return colors, nil
	}

	for _, pair := range strings.Split(raw, ",") {
		name, color, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(name) == "" || strings.TrimSpace(color) == "" {
			return nil, fmt.Errorf("invalid JIRA_STATUS_COLORS entry: %q", pair)
		}
		colors[strings.TrimSpace(name)] = strings.TrimSpace(color)
	}
	return colors, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
