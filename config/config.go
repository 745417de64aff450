// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of settings
// available in the environment and those from the command line
type Config struct {
	// Location is the directory holding the germline databases.
	// An empty Location means the default (~/.abstar)
	Location string `mapstructure:"location"`

	// Bin is the directory holding the makeblastdb binaries.
	// An empty Bin means makeblastdb is resolved from PATH
	Bin string `mapstructure:"bin"`

	// Debug prints the captured makeblastdb output after each segment
	Debug bool `mapstructure:"debug"`
}

// New returns a new Config struct populated by Viper settings
// (from the environment and/or command line arguments)
func New() *Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return &c
}
