package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tansive/hecate/internal/accessor"
	"github.com/tansive/hecate/internal/authrules"
)

// DefaultConfigFile is the default name of the config file
const DefaultConfigFile = "config.yaml"

// ConfigFormatVersion is written to new config files.
const ConfigFormatVersion = "0.1.0"

// Environment variables that override the config file.
const (
	EnvURL      = "HECATE_URL"
	EnvUsername = "HECATE_USERNAME"
	EnvPassword = "HECATE_PASSWORD"
)

// Config represents the configuration for the hecate CLI.
type Config struct {
	// Version of the configuration file format
	Version string `yaml:"version"`
	// ServerURL is the root address of the hecate server
	ServerURL string `yaml:"server_url" validate:"required,url,startswith=http"`
	// Username and Password are sent as basic auth when both are known
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	// AuthRules overrides the rules published by the server at /api/auth
	AuthRules map[string]any `yaml:"auth_rules,omitempty"`
}

var validate = validator.New()

// GetDefaultConfigPath returns the default path for the config file
// It uses the OS-specific config directory (e.g., ~/.config/hecate on Linux)
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "hecate", DefaultConfigFile), nil
}

// ReadConfig reads a config file without validating it.
func ReadConfig(file string) (*Config, error) {
	yamlStr, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	var c Config
	if err = yaml.Unmarshal(yamlStr, &c); err != nil {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}
	return &c, nil
}

// WriteConfig writes the configuration to the specified file
func (cfg *Config) WriteConfig(file string) error {
	if file == "" {
		return errors.New("file path cannot be empty")
	}

	err := os.MkdirAll(filepath.Dir(file), 0700)
	if err != nil {
		return fmt.Errorf("unable to create config directory: %w", err)
	}

	yamlStr, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("unable to generate configuration: %w", err)
	}

	err = os.WriteFile(file, yamlStr, os.FileMode(0600))
	if err != nil {
		return fmt.Errorf("unable to write config file: %w", err)
	}

	return nil
}

// ValidateConfig checks for required fields and proper formatting
func (cfg *Config) ValidateConfig() error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid server_url %q: must be an http(s) URL", cfg.ServerURL)
		}
		return err
	}
	return nil
}

// MorphServer ensures the server URL is properly formatted
// Adds http:// prefix if missing and removes trailing slashes
func MorphServer(server string) string {
	server = strings.TrimSpace(server)
	if server == "" {
		return server
	}

	server = strings.TrimRight(server, "/")

	if !strings.HasPrefix(server, "http://") && !strings.HasPrefix(server, "https://") {
		server = "http://" + server
	}

	return server
}

// applyEnv overrides config values from the environment. A .env file in the
// working directory is loaded first if present; real environment variables
// take precedence over it.
func (cfg *Config) applyEnv() {
	_ = godotenv.Load()
	if v := os.Getenv(EnvURL); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv(EnvUsername); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv(EnvPassword); v != "" {
		cfg.Password = v
	}
}

// applyFlags overrides config values from persistent flags.
func (cfg *Config) applyFlags(g *globalOptions) {
	if g.url != "" {
		cfg.ServerURL = g.url
	}
	if g.username != "" {
		cfg.Username = g.username
	}
	if g.password != "" {
		cfg.Password = g.password
	}
}

// loadConfig builds the effective configuration: config file, then
// environment, then flags. A missing config file is only an error when
// nothing else supplies the server URL.
func loadConfig(g *globalOptions) (*Config, error) {
	file := g.configFile
	if file == "" {
		var err error
		file, err = GetDefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := ReadConfig(file)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}
	cfg.applyEnv()
	cfg.applyFlags(g)

	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("no server configured: run \"hecate config --server <url>\" or pass --url")
	}
	cfg.ServerURL = MorphServer(cfg.ServerURL)
	if err := cfg.ValidateConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Connection creates the connection context shared by the server commands.
// Credentials are only set when a username is configured.
func (cfg *Config) Connection() (*accessor.ConnectionContext, error) {
	conn := &accessor.ConnectionContext{BaseURL: cfg.ServerURL}
	if cfg.Username != "" {
		conn.Credentials = &accessor.Credentials{
			Username: cfg.Username,
			Password: cfg.Password,
		}
	}
	if len(cfg.AuthRules) > 0 {
		rules, err := authrules.FromMap(cfg.AuthRules)
		if err != nil {
			return nil, err
		}
		conn.Rules = rules
	}
	return conn, nil
}

func newConfigCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long: `Manage CLI configuration settings like the server address and credentials.

Example:
  hecate config --server localhost:8000 --username ingalls`,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, _ := cmd.Flags().GetString("server")
			if server == "" {
				return cmd.Help()
			}
			username, _ := cmd.Flags().GetString("user")
			return setServerConfig(cmd, g, server, username)
		},
	}
	cmd.Flags().String("server", "", "Set the server URL (e.g., localhost:8000)")
	cmd.Flags().String("user", "", "Username stored alongside the server")

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			shown := *cfg
			if shown.Password != "" {
				shown.Password = "********"
			}
			out, err := yaml.Marshal(&shown)
			if err != nil {
				return fmt.Errorf("unable to format configuration: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	})
	return cmd
}

// setServerConfig writes a fresh config file for server.
func setServerConfig(cmd *cobra.Command, g *globalOptions, server, username string) error {
	configPath := g.configFile
	if configPath == "" {
		var err error
		configPath, err = GetDefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get default config path: %w", err)
		}
	}

	cfg := &Config{
		Version:   ConfigFormatVersion,
		ServerURL: MorphServer(server),
		Username:  username,
	}
	if err := cfg.ValidateConfig(); err != nil {
		return err
	}

	if err := cfg.WriteConfig(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	okLabel.Fprintf(cmd.ErrOrStderr(), "Server configured: %s\n", cfg.ServerURL)
	cmd.PrintErrf("Config file: %s\n", configPath)
	return nil
}
