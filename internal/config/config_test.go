package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	clear := setEnv("BS_CONFIG_FILE", "does-not-exist.yaml")
	defer clear()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal(":5000", cfg.Listen)
	a.Equal(4, cfg.Game.Players)
	a.Equal(200, cfg.Game.MaxHealth)
	a.Equal(4, cfg.Game.ChallengeDamage)
	a.Equal(3, cfg.Game.AttackDamage)
}

func TestLoad_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "listen: \":6000\"\ngame:\n  players: 2\n  maxHealth: 50\n"
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0600))

	clear := setEnv("BS_CONFIG_FILE", path)
	defer clear()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal(":6000", cfg.Listen)
	a.Equal(2, cfg.Game.Players)
	a.Equal(50, cfg.Game.MaxHealth)

	// unset keys keep their defaults
	a.Equal(4, cfg.Game.ChallengeDamage)
}

func TestLoad_env(t *testing.T) {
	clear1 := setEnv("BS_CONFIG_FILE", "does-not-exist.yaml")
	defer clear1()
	clear2 := setEnv("BS_LISTEN", ":7000")
	defer clear2()

	assert.NoError(t, Load())
	assert.Equal(t, ":7000", Instance().Listen)
}

func setEnv(key, val string) func() {
	orig := os.Getenv(key)
	_ = os.Setenv(key, val)
	return func() {
		if orig == "" {
			_ = os.Unsetenv(key)
		} else {
			_ = os.Setenv(key, orig)
		}
	}
}
