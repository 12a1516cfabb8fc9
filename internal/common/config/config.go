// internal/common/config/config.go
package config

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Providers ProvidersConfig `mapstructure:"providers"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // milliseconds
}

// ProvidersConfig holds settings for every upstream data source. Timeouts are
// in milliseconds; each adapter gets a single attempt per request.
type ProvidersConfig struct {
	UserAgent    string             `mapstructure:"user_agent"`
	Registry     RegistryConfig     `mapstructure:"registry"`
	Encyclopedia EncyclopediaConfig `mapstructure:"encyclopedia"`
	Composition  CompositionConfig  `mapstructure:"composition"`
	Structure    StructureConfig    `mapstructure:"structure"`
}

type RegistryConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	TaxonomyURL string `mapstructure:"taxonomy_url"`
	// SnapshotPath, when set, builds the taxonomy index from a local file
	// written by the taxonomy-snapshot tool instead of fetching at startup.
	SnapshotPath string `mapstructure:"snapshot_path"`
	Timeout      int    `mapstructure:"timeout"`
	PageSize     int    `mapstructure:"page_size"`
}

type EncyclopediaConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"`
}

type CompositionConfig struct {
	SearchURL string `mapstructure:"search_url"`
	APIKey    string `mapstructure:"api_key"`
	Timeout   int    `mapstructure:"timeout"`
}

type StructureConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
