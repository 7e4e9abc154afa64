package store

import (
	"log"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the catalog the configurator mounts from.
type Config interface {
	BasePath() string
	CatalogFile() string
	ShowPrices() bool
}

// LoadConfig reads `.ride` from $RIDE_CONFIG_PATH or the working directory,
// with RIDE_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.ride.db")
	viper.SetDefault("catalog", "")
	viper.SetDefault("prices", true)
	viper.SetConfigName(".ride") // .yaml is implicit
	viper.SetEnvPrefix("RIDE")
	viper.AutomaticEnv()

	if override := os.Getenv("RIDE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	catalogFile, err := homedir.Expand(viper.GetString("catalog"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:    path,
		Catalog: catalogFile,
		Prices:  viper.GetBool("prices"),
	}, nil
}

// StaticConfig is a Config with fixed values.
type StaticConfig struct {
	Path    string
	Catalog string
	Prices  bool
}

// BasePath implements Config.
func (s StaticConfig) BasePath() string { return s.Path }

// CatalogFile implements Config.
func (s StaticConfig) CatalogFile() string { return s.Catalog }

// ShowPrices implements Config.
func (s StaticConfig) ShowPrices() bool { return s.Prices }

type fileConfig struct {
	Path    string `json:"path"`
	Catalog string `json:"catalog,omitempty"`
	Prices  bool   `json:"prices"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) CatalogFile() string {
	return f.Catalog
}

func (f *fileConfig) ShowPrices() bool {
	return f.Prices
}
