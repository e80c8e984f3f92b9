package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/smartmatch/jobmatcher/internal/catalog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "jobmatcher"
)

type Config struct {
	Catalog *CatalogConfig `mapstructure:"catalog"`
	Server  *ServerConfig  `mapstructure:"server"`
}

type CatalogConfig struct {
	// Driver selects the catalog backend: "file" (JSON array) or "sqlite".
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "jobmatcher recommends jobs from a catalog by scoring them against candidate preferences in any JSON shape",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is jobmatcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	viper.SetDefault("catalog.driver", "file")
	viper.SetDefault("catalog.path", "data/jobs.json")
	viper.SetDefault("server.address", ":8080")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// A missing default config file is fine: flag and built-in defaults
	// still apply. An explicitly requested or unparsable file is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// loadCatalog opens the configured catalog backend and reads it fully into
// memory. The returned catalog is immutable for the process lifetime.
func loadCatalog(config *Config) (*catalog.Catalog, error) {
	if config == nil || config.Catalog == nil {
		return nil, fmt.Errorf("catalog configuration is required")
	}

	switch config.Catalog.Driver {
	case "", "file":
		return catalog.FromFile(config.Catalog.Path)
	case "sqlite":
		return catalog.FromSQLite(config.Catalog.Path)
	default:
		return nil, fmt.Errorf("unknown catalog driver %q", config.Catalog.Driver)
	}
}
