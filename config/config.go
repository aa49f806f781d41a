// SPDX-License-Identifier: MIT

// Package config loads campusnav settings from an optional YAML file and
// CAMPUSNAV_* environment variables.
package config

import (
	"math"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/engine"
	"github.com/katalvlaran/campusnav/ranking"
)

const (
	// EnvPrefix marks the environment variables read by Load.
	EnvPrefix = "CAMPUSNAV_"

	// EnvNesting separates nested keys in variable names:
	// CAMPUSNAV_ROUTING__MAX_ROUTES sets routing.max_routes.
	EnvNesting = "__"

	defaultMaxRoutes = 5
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full campusnav configuration.
type Config struct {
	Log     Log                `koanf:"log"`
	Routing Routing            `koanf:"routing"`
	Data    Data               `koanf:"data"`
	Speeds  map[string]float64 `koanf:"speeds"`
}

// Log selects the log level and handler format.
type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Routing holds planner defaults.
type Routing struct {
	Engine          engine.Kind     `koanf:"engine"`
	HeuristicWeight float64         `koanf:"heuristic_weight"`
	MaxRoutes       int             `koanf:"max_routes"`
	Weights         ranking.Weights `koanf:"weights"`
	Sort            Sort            `koanf:"sort"`
}

// Sort is the default route ordering.
type Sort struct {
	Criterion ranking.Criterion `koanf:"criterion"`
	Family    ranking.Family    `koanf:"family"`
}

// Data locates the campus. Source is a directory of CSV files, a .yaml
// campus file, or empty for the built-in sample.
type Data struct {
	Source string `koanf:"source"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		Log: Log{Level: "info", Format: "text"},
		Routing: Routing{
			Engine:          engine.Dijkstra,
			HeuristicWeight: 1,
			MaxRoutes:       defaultMaxRoutes,
			Weights:         ranking.DefaultWeights(),
			Sort:            Sort{Criterion: ranking.CriterionMulti, Family: ranking.FamilyMerge},
		},
	}
}

// Load reads path (skipped when empty), applies CAMPUSNAV_* overrides on top
// of Default and validates the result.
func Load(path string) (*Config, error) {
	return load(path, os.Environ)
}

func load(path string, environ func() []string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, "config file %s", path)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read config %s failed", path)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envKey,
		EnvironFunc:   environ,
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config failed")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envKey maps CAMPUSNAV_ROUTING__WEIGHTS__TIME to routing.weights.time.
func envKey(k, v string) (string, any) {
	key := strings.ToLower(strings.TrimPrefix(k, EnvPrefix))

	return strings.ReplaceAll(key, strings.ToLower(EnvNesting), "."), v
}

// Validate checks ranges and normalizes the sort names.
func (c *Config) Validate() error {
	r := &c.Routing
	if !r.Engine.Valid() {
		return errors.Wrapf(ErrInvalid, "routing.engine %d", int(r.Engine))
	}
	if r.HeuristicWeight < 0 || math.IsNaN(r.HeuristicWeight) || math.IsInf(r.HeuristicWeight, 0) {
		return errors.Wrapf(ErrInvalid, "routing.heuristic_weight %v", r.HeuristicWeight)
	}
	if r.MaxRoutes < 1 {
		return errors.Wrapf(ErrInvalid, "routing.max_routes %d", r.MaxRoutes)
	}
	if err := r.Weights.Validate(); err != nil {
		return errors.Wrapf(ErrInvalid, "routing.weights: %v", err)
	}
	crit, err := ranking.ParseCriterion(string(r.Sort.Criterion))
	if err != nil {
		return errors.Wrapf(ErrInvalid, "routing.sort.criterion: %v", err)
	}
	fam, err := ranking.ParseFamily(string(r.Sort.Family))
	if err != nil {
		return errors.Wrapf(ErrInvalid, "routing.sort.family: %v", err)
	}
	r.Sort = Sort{Criterion: crit, Family: fam}
	for pt, kmh := range c.Speeds {
		if kmh <= 0 || math.IsNaN(kmh) || math.IsInf(kmh, 0) {
			return errors.Wrapf(ErrInvalid, "speeds.%s %v", pt, kmh)
		}
	}

	return nil
}

// SpeedTable returns the built-in speeds with the configured overrides.
func (c *Config) SpeedTable() core.SpeedTable {
	return core.DefaultSpeeds().Merge(c.Speeds)
}
