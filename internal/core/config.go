package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	Scrape  ScrapeConfig  `mapstructure:"scrape"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// ScrapeConfig controls the extraction pipeline.
type ScrapeConfig struct {
	CatalogURL string `mapstructure:"catalog_url"` // prop catalog landing view
	Games      int    `mapstructure:"games"`       // recent games per average
	MaxWorkers int    `mapstructure:"max_workers"` // parallel category sessions (1-4)
	Headless   bool   `mapstructure:"headless"`
}

// LoggingConfig mirrors the logger setup.
type LoggingConfig struct {
	Level    string         `mapstructure:"level"`
	LogDir   string         `mapstructure:"log_dir"`
	Rotation RotationConfig `mapstructure:"rotation"`
}

// RotationConfig controls log rotation.
type RotationConfig struct {
	MaxSize    int  `mapstructure:"max_size"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAge     int  `mapstructure:"max_age"`
	Compress   bool `mapstructure:"compress"`
}

// OutputConfig controls where per-category CSV files land.
type OutputConfig struct {
	BaseDir string `mapstructure:"base_dir"`
}

// LoadConfig reads configuration from the given file, or from the default
// search paths when none is given. Missing files fall back to defaults.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".mlbscraper"))
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("scrape.catalog_url", "https://www.bettingpros.com/mlb/props/")
	v.SetDefault("scrape.games", 5)
	v.SetDefault("scrape.max_workers", 2)
	v.SetDefault("scrape.headless", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.log_dir", "logs")
	v.SetDefault("logging.rotation.max_size", 10)
	v.SetDefault("logging.rotation.max_backups", 3)
	v.SetDefault("logging.rotation.max_age", 28)
	v.SetDefault("logging.rotation.compress", true)

	v.SetDefault("output.base_dir", "output")
}

// Validate checks the scrape section.
func (c *ScrapeConfig) Validate() error {
	if c.CatalogURL == "" {
		return fmt.Errorf("catalog URL must not be empty")
	}
	if c.Games < 1 || c.Games > 162 {
		return fmt.Errorf("games must be between 1 and 162, got %d", c.Games)
	}
	if c.MaxWorkers < 1 || c.MaxWorkers > 4 {
		return fmt.Errorf("max workers must be between 1 and 4, got %d", c.MaxWorkers)
	}
	return nil
}
