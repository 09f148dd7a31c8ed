package expiring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the construction parameters shared by every container.
//
// TTL is in the clock's TTL units (seconds for the default clock).
// MaxLength bounds Counter, Sum and List; zero or negative means unbounded,
// and Dict and Set ignore it.
//
// TimeFunc and TimeScale override the clock. They are meant to be set as a
// pair: a TimeFunc without a TimeScale gets a scale of 1, because nothing is
// known about the units of a custom source. A TimeScale without a TimeFunc
// rescales the default monotonic source.
type Config struct {
	TTL       float64  `yaml:"ttl"`
	MaxLength int      `yaml:"max_length"`
	TimeFunc  TimeFunc `yaml:"-"`
	TimeScale int64    `yaml:"time_scale"`
}

// NewConfig returns a Config with the given TTL, no length bound and the
// default monotonic clock.
func NewConfig(ttl float64) Config {
	return Config{TTL: ttl}
}

// WithClock returns a copy of c that reads clock.
func (c Config) WithClock(clock Clock) Config {
	c.TimeFunc = clock.now
	c.TimeScale = clock.scale
	return c
}

// Build normalizes c and resolves its clock. It is called by every
// constructor; calling it directly is only useful to inspect the result.
func (c Config) Build() (Config, Clock) {
	if c.TTL < 0 {
		c.TTL = 0
	}
	if c.MaxLength < 0 {
		c.MaxLength = 0
	}

	var clock Clock
	switch {
	case c.TimeFunc != nil:
		clock = NewClock(c.TimeFunc, c.TimeScale)
	case c.TimeScale > 0:
		clock = MonotonicClock()
		clock.scale = c.TimeScale
	default:
		clock = MonotonicClock()
	}
	c.TimeFunc = clock.now
	c.TimeScale = clock.scale
	return c, clock
}

// LoadConfig reads a Config from a YAML file. The clock cannot be described
// in YAML; a time_scale in the file applies to the default monotonic source.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(b)
}

// ParseConfig decodes a Config from YAML.
func ParseConfig(b []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	if cfg.TTL < 0 {
		return Config{}, fmt.Errorf("parse yaml: ttl must not be negative, got %v", cfg.TTL)
	}
	return cfg, nil
}
