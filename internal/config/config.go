// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Reach   ReachConfig   `yaml:"reach" mapstructure:"reach"`
	Justice JusticeConfig `yaml:"justice" mapstructure:"justice"`
	Input   InputConfig   `yaml:"input" mapstructure:"input"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// ReachConfig configures the Reach Centrality search.
type ReachConfig struct {
	OverallThreshold float64 `yaml:"overall_threshold" mapstructure:"overall_threshold"`
	WalkThreshold    float64 `yaml:"walk_threshold" mapstructure:"walk_threshold"`
	Weight           string  `yaml:"weight" mapstructure:"weight"`
	StreetWeight     string  `yaml:"street_weight" mapstructure:"street_weight"`
	SegmentAttr      string  `yaml:"segment_attr" mapstructure:"segment_attr"`
	StreetTag        string  `yaml:"street_tag" mapstructure:"street_tag"`
	Workers          int     `yaml:"workers" mapstructure:"workers"`
	Column           string  `yaml:"column" mapstructure:"column"`
}

// JusticeConfig configures the distribution analysis.
type JusticeConfig struct {
	PopulationColumn    string            `yaml:"population_column" mapstructure:"population_column"`
	VulnerabilityColumn string            `yaml:"vulnerability_column" mapstructure:"vulnerability_column"`
	Normalise           []string          `yaml:"normalise" mapstructure:"normalise"`
	Rename              map[string]string `yaml:"rename" mapstructure:"rename"`
	Indicators          []string          `yaml:"indicators" mapstructure:"indicators"`
}

// InputConfig locates the input files.
type InputConfig struct {
	Edges    string `yaml:"edges" mapstructure:"edges"`
	Vertices string `yaml:"vertices" mapstructure:"vertices"`
	Groups   string `yaml:"groups" mapstructure:"groups"`
	Targets  string `yaml:"targets" mapstructure:"targets"`
	Units    string `yaml:"units" mapstructure:"units"`
	UnitKey  string `yaml:"unit_key" mapstructure:"unit_key"`
	Sheet    int    `yaml:"sheet" mapstructure:"sheet"`
	Directed bool   `yaml:"directed" mapstructure:"directed"`
}

// OutputConfig locates the output files.
type OutputConfig struct {
	Table     string `yaml:"table" mapstructure:"table"`
	Summaries string `yaml:"summaries" mapstructure:"summaries"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SPATIALJUSTICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("reach.overall_threshold", 30.0)
	v.SetDefault("reach.walk_threshold", 10.0)
	v.SetDefault("reach.weight", "time_cost")
	v.SetDefault("reach.segment_attr", "segment_type")
	v.SetDefault("reach.street_tag", "street")
	v.SetDefault("reach.workers", 4)
	v.SetDefault("reach.column", "reach")
	v.SetDefault("justice.population_column", "population")
	v.SetDefault("justice.vulnerability_column", "vul_prop")
	v.SetDefault("input.unit_key", "id")
	v.SetDefault("output.table", "units_out.csv")
	v.SetDefault("output.summaries", "summaries.yaml")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a command depends on. mode is one of
// "reach", "distribute" or "run"; "run" needs both.
func (c *Config) Validate(mode string) error {
	var problems []string
	need := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	if mode == "reach" || mode == "run" {
		need(c.Reach.OverallThreshold >= 0, "reach.overall_threshold must be >= 0")
		need(c.Reach.WalkThreshold >= 0, "reach.walk_threshold must be >= 0")
		need(c.Reach.Weight != "", "reach.weight is required")
		need(c.Reach.Workers >= 1, "reach.workers must be >= 1")
		need(c.Input.Edges != "", "input.edges is required")
		need(c.Input.Targets != "", "input.targets is required")
		need(c.Input.Groups != "" || c.Input.Units != "", "input.groups or input.units is required")
	}
	if mode == "distribute" || mode == "run" {
		need(c.Reach.Column != "", "reach.column is required")
		need(c.Justice.PopulationColumn != "", "justice.population_column is required")
		need(c.Input.Units != "", "input.units is required")
	}

	if len(problems) > 0 {
		return eris.New(fmt.Sprintf("config: %s", strings.Join(problems, "; ")))
	}

	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
