package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Safety  SafetyConfig  `yaml:"safety" envconfig:"SAFETY"`
	Solver  SolverConfig  `yaml:"solver" envconfig:"SOLVER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// SafetyConfig carries the numeric safety layer's policy constants.
// These are policy cutoffs, not IEEE-754 limits: the calculation range
// bound keeps chained multiplications away from float overflow, and the
// exponent bound rejects exponents too large to be meaningful in
// financial formulas.
type SafetyConfig struct {
	MaxCalculationRange float64 `yaml:"max_calculation_range" envconfig:"MAX_CALCULATION_RANGE"`
	MaxExponent         float64 `yaml:"max_exponent" envconfig:"MAX_EXPONENT"`
	ModeKeyDigits       int     `yaml:"mode_key_digits" envconfig:"MODE_KEY_DIGITS"`
}

// SolverConfig contains iterative solver configuration
type SolverConfig struct {
	IRRTolerance     float64 `yaml:"irr_tolerance" envconfig:"IRR_TOLERANCE"`
	IRRMaxIterations int     `yaml:"irr_max_iterations" envconfig:"IRR_MAX_ITERATIONS"`
	IRRInitialGuess  float64 `yaml:"irr_initial_guess" envconfig:"IRR_INITIAL_GUESS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Load loads configuration from environment variables and an optional
// config file. Environment variables take precedence over file values,
// which take precedence over defaults.
func Load(configFile string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("FINCALC", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileConfig, err := loadFromFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
			cfg = mergeConfigs(*fileConfig, cfg)
		}
	}

	cfg = mergeConfigs(*Default(), cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration with all defaults applied and no
// environment or file overrides.
func Default() *Config {
	return &Config{
		Safety: SafetyConfig{
			MaxCalculationRange: 1e15,
			MaxExponent:         100,
			ModeKeyDigits:       10,
		},
		Solver: SolverConfig{
			IRRTolerance:     1e-7,
			IRRMaxIterations: 1000,
			IRRInitialGuess:  0.1,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "stderr",
			FilePath: "fincalc.log",
		},
	}
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Safety.MaxCalculationRange == 0 {
		envConfig.Safety.MaxCalculationRange = fileConfig.Safety.MaxCalculationRange
	}
	if envConfig.Safety.MaxExponent == 0 {
		envConfig.Safety.MaxExponent = fileConfig.Safety.MaxExponent
	}
	if envConfig.Safety.ModeKeyDigits == 0 {
		envConfig.Safety.ModeKeyDigits = fileConfig.Safety.ModeKeyDigits
	}
	if envConfig.Solver.IRRTolerance == 0 {
		envConfig.Solver.IRRTolerance = fileConfig.Solver.IRRTolerance
	}
	if envConfig.Solver.IRRMaxIterations == 0 {
		envConfig.Solver.IRRMaxIterations = fileConfig.Solver.IRRMaxIterations
	}
	if envConfig.Solver.IRRInitialGuess == 0 {
		envConfig.Solver.IRRInitialGuess = fileConfig.Solver.IRRInitialGuess
	}
	if envConfig.Logging.Level == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Format == "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if envConfig.Logging.Output == "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}

	return envConfig
}

// validate checks configuration values for consistency
func (c *Config) validate() error {
	if c.Safety.MaxCalculationRange <= 0 {
		return fmt.Errorf("safety.max_calculation_range must be positive, got %g", c.Safety.MaxCalculationRange)
	}
	if c.Safety.MaxExponent <= 0 {
		return fmt.Errorf("safety.max_exponent must be positive, got %g", c.Safety.MaxExponent)
	}
	if c.Safety.ModeKeyDigits < 1 || c.Safety.ModeKeyDigits > 17 {
		return fmt.Errorf("safety.mode_key_digits must be between 1 and 17, got %d", c.Safety.ModeKeyDigits)
	}
	if c.Solver.IRRTolerance <= 0 {
		return fmt.Errorf("solver.irr_tolerance must be positive, got %g", c.Solver.IRRTolerance)
	}
	if c.Solver.IRRMaxIterations <= 0 {
		return fmt.Errorf("solver.irr_max_iterations must be positive, got %d", c.Solver.IRRMaxIterations)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}

	return nil
}
