package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/jonwraymond/toolcheck/observe"
)

// DefaultTimeout bounds a single acquisition when Timeout is unset.
const DefaultTimeout = 10 * time.Second

var (
	// ErrDuplicateDimension indicates two dimensions share a name.
	ErrDuplicateDimension = errors.New("config: duplicate dimension name")

	// ErrMissingDimensionName indicates a dimension without a name.
	ErrMissingDimensionName = errors.New("config: dimension name is required")

	// ErrInvalidTimeout indicates an unparsable or non-positive timeout.
	ErrInvalidTimeout = errors.New("config: invalid timeout")

	// ErrInvalidRetries indicates a negative retry count.
	ErrInvalidRetries = errors.New("config: retries must not be negative")

	// ErrInvalidBound indicates a level that is not finite or does not fit
	// the dimension's value type.
	ErrInvalidBound = errors.New("config: invalid level")

	// ErrMissingDirection indicates a dimension with levels but no direction.
	ErrMissingDirection = errors.New("config: direction is required when levels are set")
)

// Levels configures one levels checker. Omitted bounds are not checked.
type Levels struct {
	Direction string   `yaml:"direction"` // upper|lower
	Warn      *float64 `yaml:"warn"`
	Crit      *float64 `yaml:"crit"`
}

// Certificate configures the certificate checks. Validity bounds are in days.
type Certificate struct {
	Validity           *Levels `yaml:"validity"`
	Subject            *string `yaml:"subject"`
	Issuer             *string `yaml:"issuer"`
	Serial             *string `yaml:"serial"`
	SignatureAlgorithm *string `yaml:"signature_algorithm"`
}

// Dimension configures a free-form metric evaluated by name.
type Dimension struct {
	Name       string   `yaml:"name"`
	Label      string   `yaml:"label"` // defaults to Name
	Unit       string   `yaml:"unit"`
	Direction  string   `yaml:"direction"` // upper|lower, required with warn or crit
	Warn       *float64 `yaml:"warn"`
	Crit       *float64 `yaml:"crit"`
	AlwaysEmit bool     `yaml:"always_emit"`
}

// Config is the decoded configuration file.
type Config struct {
	// ResponseTime bounds are in seconds.
	ResponseTime *Levels      `yaml:"response_time"`
	Certificate  *Certificate `yaml:"certificate"`
	Dimensions   []Dimension  `yaml:"dimensions"`

	// Targets are host:port pairs checked by the server.
	Targets []string `yaml:"targets"`

	// Timeout bounds one acquisition, e.g. "5s".
	Timeout string `yaml:"timeout"`

	// Retries is the number of extra dials after a transient connection failure.
	Retries int `yaml:"retries"`

	Observe observe.Config `yaml:"observe"`
}

// Default returns the configuration used when no file exists: nothing is
// checked against levels and only metrics are reported.
func Default() *Config {
	return &Config{
		Observe: observe.Config{
			ServiceName: "toolcheck",
			Logging:     observe.LoggingConfig{Enabled: true, Level: "info"},
		},
	}
}

// Load reads, expands and decodes the file at path. A missing file yields
// Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse expands environment references in data and decodes it strictly:
// unknown keys are errors.
func Parse(data []byte) (*Config, error) {
	expanded, err := ExpandEnvStrict(string(data))
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.UnmarshalStrict([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks structural constraints. Level values are checked by Build.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Dimensions))
	for _, d := range c.Dimensions {
		if d.Name == "" {
			return ErrMissingDimensionName
		}
		if seen[d.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateDimension, d.Name)
		}
		seen[d.Name] = true
	}

	if _, err := c.AcquireTimeout(); err != nil {
		return err
	}
	if c.Retries < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRetries, c.Retries)
	}

	return c.Observe.Validate()
}

// AcquireTimeout returns the parsed Timeout, or DefaultTimeout when unset.
func (c *Config) AcquireTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, c.Timeout)
	}
	return d, nil
}
