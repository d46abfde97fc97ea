package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "KUSA_BLOCKS"

// Keys shared by flags, env vars (KUSA_BLOCKS_<KEY>) and config files.
const (
	KeySpeed   = "speed"
	KeySeed    = "seed"
	KeyDebug   = "debug"
	KeyLogFile = "log-file"
	KeyConfig  = "config"
)

const DefaultLogFile = "kusa-blocks-debug.log"

type Config struct {
	Speed   float64
	Seed    uint64 // 0 means derive from the clock
	Debug   bool
	LogFile string
}

// Load resolves configuration with precedence flag > env > config file > default.
// A missing .env file is not an error.
func Load(flags *pflag.FlagSet) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeySpeed, 1.0)
	v.SetDefault(KeySeed, uint64(0))
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogFile, DefaultLogFile)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %q: %w", path, err)
		}
	}

	cfg := Config{
		Speed:   v.GetFloat64(KeySpeed),
		Seed:    v.GetUint64(KeySeed),
		Debug:   v.GetBool(KeyDebug),
		LogFile: v.GetString(KeyLogFile),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Speed <= 0 {
		return fmt.Errorf("--speed must be > 0")
	}
	if c.Debug && c.LogFile == "" {
		return fmt.Errorf("--log-file must be set when --debug is on")
	}
	return nil
}
