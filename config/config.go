package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Grassroots Tasks specifics
	GitHub GitHubConfig
	Roster RosterConfig
	Relay  RelayConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GitHubConfig points the remote store client at one owner/repo pair.
// The token is optional: anonymous reads work, mutations need the
// caller's own credential anyway.
type GitHubConfig struct {
	Owner      string
	Repo       string
	Token      string
	APIBaseURL string
	RawBaseURL string
}

// RosterConfig tunes the document parser.
type RosterConfig struct {
	// StrictSectionMatch makes the people parser return nothing when
	// the members section is missing instead of scanning the whole
	// document.
	StrictSectionMatch bool
}

// RelayConfig configures the CORS relay binary.
type RelayConfig struct {
	Port            int
	Mode            string
	UpstreamURL     string
	AllowedOrigins  []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// GitHub store
	cfg.GitHub.Owner = viper.GetString("github.owner")
	cfg.GitHub.Repo = viper.GetString("github.repo")
	cfg.GitHub.Token = viper.GetString("github.token")
	cfg.GitHub.APIBaseURL = viper.GetString("github.api_base_url")
	cfg.GitHub.RawBaseURL = viper.GetString("github.raw_base_url")
	if token := viper.GetString("github_token"); token != "" {
		cfg.GitHub.Token = token
	}
	if cfg.GitHub.Owner == "" || cfg.GitHub.Repo == "" {
		return nil, fmt.Errorf("github.owner and github.repo are required")
	}

	// Roster
	cfg.Roster.StrictSectionMatch = viper.GetBool("roster.strict_section_match")

	// Relay
	cfg.Relay.Port = viper.GetInt("relay.port")
	cfg.Relay.Mode = viper.GetString("relay.mode")
	cfg.Relay.UpstreamURL = viper.GetString("relay.upstream_url")
	cfg.Relay.RateLimitPerMin = viper.GetInt("relay.rate_limit_per_min")

	// Split allowed origins since viper might not parse array seamlessly from env
	var origins []string
	if raw := viper.GetString("relay.allowed_origins"); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	cfg.Relay.AllowedOrigins = origins

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("github.api_base_url", "https://api.github.com")
	viper.SetDefault("github.raw_base_url", "https://raw.githubusercontent.com")
	viper.SetDefault("roster.strict_section_match", false)
	viper.SetDefault("relay.port", 8787)
	viper.SetDefault("relay.mode", "release")
	viper.SetDefault("relay.upstream_url", "https://api.kimi.com/coding/v1/chat/completions")
	viper.SetDefault("relay.rate_limit_per_min", 60)
}
