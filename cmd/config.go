package cmd

import (
	"flag"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of the environment variables read by wlt.
const EnvPrefix = "WLT"

// Config holds the global options of wlt.
// Each option is a global flag, its default comes from the environment.
type Config struct {
	HoldingsFile string `envconfig:"HOLDINGS_FILE"`
	HoldingsPath string `envconfig:"HOLDINGS_PATH" default:"$"`
	Currency     string `envconfig:"CURRENCY" default:"USD"`
	Style        string `envconfig:"STYLE" default:"auto"`
	LogFile      string `envconfig:"LOG_FILE"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"warn"`
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use a global variable.
var cfg Config

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var c Config
	if err := envconfig.Process(EnvPrefix, &c); err != nil {
		return Config{}, fmt.Errorf("failed to process config: %w", err)
	}
	return c, nil
}

// SetFlags loads the configuration from the environment and declares the global flags on f.
func SetFlags(f *flag.FlagSet) error {
	c, err := LoadConfig()
	if err != nil {
		return err
	}
	cfg = c
	f.StringVar(&cfg.HoldingsFile, "holdings-file", c.HoldingsFile, "JSON file of the holdings, the built-in sample if empty")
	f.StringVar(&cfg.HoldingsPath, "holdings-path", c.HoldingsPath, "JSONPath of the holdings array in the holdings file")
	f.StringVar(&cfg.Currency, "currency", c.Currency, "currency of the holding values")
	f.StringVar(&cfg.Style, "style", c.Style, "terminal style (auto, dark, light, notty, ...)")
	f.StringVar(&cfg.LogFile, "log-file", c.LogFile, "file to write logs to, stderr if empty")
	f.StringVar(&cfg.LogLevel, "log-level", c.LogLevel, "minimum level of logs (debug, info, warn, error)")
	return nil
}
