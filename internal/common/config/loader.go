// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"toxiscan/internal/common/httpx"
)

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like USDA_API_KEY
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay, ignored when absent
	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = viper.MergeInConfig()

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// Direct override if config values are still empty after expansion.
func overrideEmptyConfig(cfg *Config) {
	if cfg.Providers.Composition.APIKey == "" {
		if val := os.Getenv("USDA_API_KEY"); val != "" {
			cfg.Providers.Composition.APIKey = val
		}
	}
}

// applyDefaults sets default values for optional configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "toxiscan"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10000
	}

	if cfg.Providers.UserAgent == "" {
		cfg.Providers.UserAgent = httpx.DefaultUserAgent
	}

	if cfg.Providers.Registry.BaseURL == "" {
		cfg.Providers.Registry.BaseURL = "https://world.openfoodfacts.org/api/v2"
	}
	if cfg.Providers.Registry.TaxonomyURL == "" {
		cfg.Providers.Registry.TaxonomyURL = "https://static.openfoodfacts.org/data/taxonomies/additives.json"
	}
	if cfg.Providers.Registry.Timeout == 0 {
		cfg.Providers.Registry.Timeout = 15000
	}
	if cfg.Providers.Registry.PageSize == 0 {
		cfg.Providers.Registry.PageSize = 3
	}

	if cfg.Providers.Encyclopedia.BaseURL == "" {
		cfg.Providers.Encyclopedia.BaseURL = "https://en.wikipedia.org/api/rest_v1/page/summary"
	}
	if cfg.Providers.Encyclopedia.Timeout == 0 {
		cfg.Providers.Encyclopedia.Timeout = 20000
	}

	if cfg.Providers.Composition.SearchURL == "" {
		cfg.Providers.Composition.SearchURL = "https://api.nal.usda.gov/fdc/v1/foods/search"
	}
	if cfg.Providers.Composition.Timeout == 0 {
		cfg.Providers.Composition.Timeout = 20000
	}

	if cfg.Providers.Structure.BaseURL == "" {
		cfg.Providers.Structure.BaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"
	}
	if cfg.Providers.Structure.Timeout == 0 {
		cfg.Providers.Structure.Timeout = 20000
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}

// validateConfig validates critical configuration fields.
func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if cfg.Providers.Registry.BaseURL == "" {
		return fmt.Errorf("providers.registry.base_url is required")
	}
	if cfg.Providers.Registry.TaxonomyURL == "" {
		return fmt.Errorf("providers.registry.taxonomy_url is required")
	}
	if cfg.Providers.Encyclopedia.BaseURL == "" {
		return fmt.Errorf("providers.encyclopedia.base_url is required")
	}
	if cfg.Providers.Composition.SearchURL == "" {
		return fmt.Errorf("providers.composition.search_url is required")
	}
	if cfg.Providers.Structure.BaseURL == "" {
		return fmt.Errorf("providers.structure.base_url is required")
	}
	return nil
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
