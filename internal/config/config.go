package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"pkg.jsn.cam/salondata/pkg/salondata"
)

// Config holds everything a generation run needs. Values come from an
// optional JSON config file, overridden by SALONDATA_* environment variables;
// command-line flags override both.
type Config struct {
	Customers      int     `json:"customers" mapstructure:"customers"`
	MinAge         int     `json:"min-age" mapstructure:"min-age"`
	MaxAge         int     `json:"max-age" mapstructure:"max-age"`
	WhitespaceProb float64 `json:"whitespace-prob" mapstructure:"whitespace-prob"`
	OrdersPerDay   int     `json:"orders-per-day" mapstructure:"orders-per-day"`
	StartDate      string  `json:"start-date" mapstructure:"start-date"`
	EndDate        string  `json:"end-date" mapstructure:"end-date"`
	Seed           string  `json:"seed" mapstructure:"seed"`
	Output         string  `json:"output" mapstructure:"output"`
	LogLevel       string  `json:"log-level" mapstructure:"log-level"`
}

// Defaults mirror the walkthrough dataset: a full year of 2024 at twenty
// orders a day over a five-thousand-customer base.
var defaults = map[string]any{
	"customers":       5000,
	"min-age":         12,
	"max-age":         80,
	"whitespace-prob": 0.05,
	"orders-per-day":  20,
	"start-date":      "2024-01-01",
	"end-date":        "2024-12-31",
	"seed":            "",
	"output":          "var/salondata.txt",
	"log-level":       "INFO",
}

// Load reads the run configuration. An empty path skips the config file and
// resolves from environment variables and defaults only.
func Load(path string) (*Config, error) {
	v := viper.New()

	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	v.SetEnvPrefix("salondata")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}
	return &cfg, nil
}

// CustomerSpec converts the loaded values into a generator spec.
func (c *Config) CustomerSpec() salondata.CustomerSpec {
	return salondata.CustomerSpec{
		Count:          c.Customers,
		MinAge:         c.MinAge,
		MaxAge:         c.MaxAge,
		WhitespaceProb: c.WhitespaceProb,
	}
}

// OrderSpec parses the date bounds into a generator spec.
func (c *Config) OrderSpec() (salondata.OrderSpec, error) {
	start, err := time.ParseInLocation(time.DateOnly, c.StartDate, time.UTC)
	if err != nil {
		return salondata.OrderSpec{}, fmt.Errorf("bad start-date %q: %w", c.StartDate, err)
	}
	end, err := time.ParseInLocation(time.DateOnly, c.EndDate, time.UTC)
	if err != nil {
		return salondata.OrderSpec{}, fmt.Errorf("bad end-date %q: %w", c.EndDate, err)
	}
	return salondata.OrderSpec{
		OrdersPerDay: c.OrdersPerDay,
		Start:        start,
		End:          end,
	}, nil
}
