package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the Baloney Sandwich server
type Config struct {
	loaded bool
	Listen string `yaml:"listen" envconfig:"listen"`
	Log    struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Game struct {
		// Players is the number of participants a game waits for before dealing
		Players int `yaml:"players"`

		MaxHealth int `yaml:"maxHealth" envconfig:"max_health"`

		// ChallengeDamage is the health lost per pile card when a challenge resolves
		ChallengeDamage int `yaml:"challengeDamage" envconfig:"challenge_damage"`

		// AttackDamage is the health the next player loses per card played
		AttackDamage int `yaml:"attackDamage" envconfig:"attack_damage"`
	} `yaml:"game"`
}

var config Config

// DefaultConfig returns the built-in configuration
func DefaultConfig() Config {
	var c Config
	c.Listen = ":5000"
	c.Game.Players = 4
	c.Game.MaxHealth = 200
	c.Game.ChallengeDamage = 4
	c.Game.AttackDamage = 3

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the defaults are used instead.
func Load() error {
	config = DefaultConfig()

	configFile := os.Getenv("BS_CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("bs", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
