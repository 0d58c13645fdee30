// Package config holds the demo scenarios and logging settings.
//
// Defaults live in an embedded YAML document; an optional file on disk is
// decoded over them, so it only needs the keys it wants to change.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config aggregates every demo's inputs.
type Config struct {
	Logging       Logging               `yaml:"logging"`
	Arithmetic    ArithmeticScenario    `yaml:"arithmetic"`
	Accounts      AccountScenario       `yaml:"accounts"`
	Encapsulation EncapsulationScenario `yaml:"encapsulation"`
	Validation    ValidationScenario    `yaml:"validation"`
	Files         FileScenario          `yaml:"files"`
}

// Logging controls structured logging settings.
type Logging struct {
	Level     string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format    string `yaml:"format" validate:"omitempty,oneof=text json"`
	AddSource bool   `yaml:"add_source"`
}

// Division is one numerator/denominator pair handed to PerformDivision.
type Division struct {
	Numerator   int `yaml:"numerator"`
	Denominator int `yaml:"denominator"`
}

// ArithmeticScenario lists the divisions the divide demo performs in order.
type ArithmeticScenario struct {
	Divisions []Division `yaml:"divisions" validate:"min=1"`
}

// AccountScenario drives the bank demo: one account opened with Initial,
// then the deposits and withdrawals in order, then an opening that must fail.
type AccountScenario struct {
	Owner          string            `yaml:"owner" validate:"required"`
	Initial        decimal.Decimal   `yaml:"initial"`
	Deposits       []decimal.Decimal `yaml:"deposits"`
	Withdrawals    []decimal.Decimal `yaml:"withdrawals"`
	InvalidOwner   string            `yaml:"invalid_owner" validate:"required"`
	InvalidInitial decimal.Decimal   `yaml:"invalid_initial"`
}

// EncapsulationScenario drives the lenient account demo.
type EncapsulationScenario struct {
	Initial     decimal.Decimal   `yaml:"initial"`
	Deposits    []decimal.Decimal `yaml:"deposits"`
	Withdrawals []decimal.Decimal `yaml:"withdrawals"`
}

// ValidationScenario lists the ages the validate demo checks.
type ValidationScenario struct {
	// Sequence is validated in order and stops at the first failure.
	Sequence []int `yaml:"sequence" validate:"min=1"`
	// Separate ages are each validated on their own.
	Separate []int `yaml:"separate"`
}

// FileScenario names the sample files the file demos create and read.
type FileScenario struct {
	// WorkDir is where sample files are created. Empty means a private
	// directory under the OS temp dir, removed when the demo ends.
	WorkDir       string `yaml:"work_dir"`
	FirstCharFile string `yaml:"first_char_file" validate:"required"`
	LinesFile     string `yaml:"lines_file" validate:"required"`
	LinesContent  string `yaml:"lines_content"`
	MissingFile   string `yaml:"missing_file" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the embedded scenarios.
func Default() (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode defaults: %w", err)
	}
	return cfg, nil
}

// Load returns the defaults with the file at path decoded over them.
// An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the struct tags of every section.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
