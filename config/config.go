// Package config loads planner settings: defaults, then an optional YAML
// file, then ROADNET_* environment overrides, validated as a whole.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roadnet/loader"
	"github.com/katalvlaran/roadnet/mst"
	"github.com/katalvlaran/roadnet/weight"
)

// ErrInvalidConfig indicates a configuration that failed parsing or validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Layout kinds.
const (
	LayoutRandom = "random"
	LayoutCircle = "circle"
)

// Config holds every setting of a planning run.
type Config struct {
	Planning struct {
		Mode   string `yaml:"mode" validate:"oneof=ratio cost distance"`
		Method string `yaml:"method" validate:"oneof=kruskal prim"`
	} `yaml:"planning"`
	Report struct {
		Currency string `yaml:"currency" validate:"required,alpha,len=3"`
	} `yaml:"report"`
	Layout struct {
		Kind   string  `yaml:"kind" validate:"oneof=random circle"`
		Seed   int64   `yaml:"seed"`
		Radius float64 `yaml:"radius" validate:"gt=0"`
	} `yaml:"layout"`
	Logging struct {
		Level  string `yaml:"level" validate:"oneof=trace debug info warn error disabled"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
	Columns loader.Columns `yaml:"columns"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the built-in settings.
func Default() Config {
	var c Config
	c.Planning.Mode = string(weight.DefaultMode)
	c.Planning.Method = mst.MethodKruskal
	c.Report.Currency = "IDR"
	c.Layout.Kind = LayoutRandom
	c.Layout.Seed = 42
	c.Layout.Radius = 40
	c.Logging.Level = "info"
	c.Logging.Pretty = false
	c.Columns = loader.DefaultColumns()

	return c
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decode(b, &c); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&c); err != nil {
		return Config{}, err
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Parse overlays YAML data on the defaults and validates the result.
// The environment is not consulted.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := decode(data, &c); err != nil {
		return Config{}, err
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// WeightMode returns the planning mode as a weight.Mode.
func (c Config) WeightMode() (weight.Mode, error) {
	return weight.ParseMode(c.Planning.Mode)
}

// decode reads YAML strictly: unknown keys are errors, empty input is fine.
func decode(data []byte, c *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: yaml: %w", ErrInvalidConfig, err)
	}
	// Empty column names in the file mean "keep the default".
	def := loader.DefaultColumns()
	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&c.Columns.Origin, def.Origin)
	fill(&c.Columns.Destination, def.Destination)
	fill(&c.Columns.Distance, def.Distance)
	fill(&c.Columns.Cost, def.Cost)
	fill(&c.Columns.Benefit, def.Benefit)

	return nil
}

func applyEnv(c *Config) error {
	if v := os.Getenv("ROADNET_MODE"); v != "" {
		c.Planning.Mode = v
	}
	if v := os.Getenv("ROADNET_METHOD"); v != "" {
		c.Planning.Method = v
	}
	if v := os.Getenv("ROADNET_CURRENCY"); v != "" {
		c.Report.Currency = v
	}
	if v := os.Getenv("ROADNET_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ROADNET_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: ROADNET_SEED: %w", ErrInvalidConfig, err)
		}
		c.Layout.Seed = seed
	}

	return nil
}

// normalize lower-cases the enumerated fields and upper-cases the currency.
func (c *Config) normalize() {
	c.Planning.Mode = strings.ToLower(strings.TrimSpace(c.Planning.Mode))
	c.Planning.Method = strings.ToLower(strings.TrimSpace(c.Planning.Method))
	c.Layout.Kind = strings.ToLower(strings.TrimSpace(c.Layout.Kind))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Report.Currency = strings.ToUpper(strings.TrimSpace(c.Report.Currency))
}
