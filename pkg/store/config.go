package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

func LoadConfig() (Config, error) {
	// Walk the file tree from here backwards looking for a .shelf file.
	viper.SetDefault("path", "~/.shelf.db")
	viper.SetConfigName(".shelf") // .yaml is implicit
	viper.SetEnvPrefix("SHELF")
	viper.AutomaticEnv()

	if override := os.Getenv("SHELF_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	return &fileConfig{Path: viper.GetString("path")}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	path, err := homedir.Expand(f.Path)
	if err != nil {
		return f.Path
	}
	return path
}
