// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/engine"
	"github.com/katalvlaran/campusnav/ranking"
)

func environ(vars ...string) func() []string {
	return func() []string { return vars }
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "campusnav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load("", environ())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, engine.Dijkstra, cfg.Routing.Engine)
	assert.Equal(t, 5, cfg.Routing.MaxRoutes)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
  format: json
routing:
  engine: a*
  heuristic_weight: 1.5
  max_routes: 3
  weights:
    distance: 0.5
    time: 0.5
    landmarks: 0
  sort:
    criterion: Time
data:
  source: ./campus
speeds:
  road: 25
`)
	cfg, err := load(path, environ())
	require.NoError(t, err)

	assert.Equal(t, Log{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, engine.AStar, cfg.Routing.Engine)
	assert.InDelta(t, 1.5, cfg.Routing.HeuristicWeight, 1e-12)
	assert.Equal(t, 3, cfg.Routing.MaxRoutes)
	assert.Equal(t, ranking.Weights{Distance: 0.5, Time: 0.5}, cfg.Routing.Weights)
	assert.Equal(t, Sort{Criterion: ranking.CriterionTime, Family: ranking.FamilyMerge}, cfg.Routing.Sort,
		"criterion normalized, family kept from defaults")
	assert.Equal(t, "./campus", cfg.Data.Source)
	assert.InDelta(t, 25, cfg.SpeedTable().Speed(core.PathRoad), 1e-12)
	assert.InDelta(t, core.CyclingSpeed, cfg.SpeedTable().Speed(core.PathBike), 1e-12)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "routing:\n  max_routes: 3\n  engine: dijkstra\n")
	cfg, err := load(path, environ(
		"CAMPUSNAV_ROUTING__MAX_ROUTES=7",
		"CAMPUSNAV_ROUTING__ENGINE=floyd",
		"CAMPUSNAV_ROUTING__WEIGHTS__TIME=0.9",
		"CAMPUSNAV_LOG__LEVEL=warn",
		"CAMPUSNAV_SPEEDS__STAIRS=2",
		"OTHER_ROUTING__MAX_ROUTES=99",
	))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Routing.MaxRoutes)
	assert.Equal(t, engine.FloydWarshall, cfg.Routing.Engine)
	assert.InDelta(t, 0.9, cfg.Routing.Weights.Time, 1e-12)
	assert.InDelta(t, 0.4, cfg.Routing.Weights.Distance, 1e-12)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.InDelta(t, 2, cfg.SpeedTable().Speed(core.PathStairs), 1e-12)
}

func TestLoad_Errors(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "missing.yaml"), environ())
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = load(writeFile(t, "routing: [unclosed"), environ())
	assert.Error(t, err)

	_, err = load("", environ("CAMPUSNAV_ROUTING__ENGINE=bellman-ford"))
	assert.ErrorContains(t, err, "unknown engine")

	tests := map[string]string{
		"max routes":  "CAMPUSNAV_ROUTING__MAX_ROUTES=0",
		"heuristic":   "CAMPUSNAV_ROUTING__HEURISTIC_WEIGHT=-1",
		"criterion":   "CAMPUSNAV_ROUTING__SORT__CRITERION=scenic",
		"family":      "CAMPUSNAV_ROUTING__SORT__FAMILY=heap",
		"speed":       "CAMPUSNAV_SPEEDS__ROAD=0",
		"zero weight": "CAMPUSNAV_ROUTING__WEIGHTS__DISTANCE=0",
	}
	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			vars := []string{kv}
			if name == "zero weight" {
				vars = append(vars, "CAMPUSNAV_ROUTING__WEIGHTS__TIME=0", "CAMPUSNAV_ROUTING__WEIGHTS__LANDMARKS=0")
			}
			_, err := load("", environ(vars...))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestEnvKey(t *testing.T) {
	k, v := envKey("CAMPUSNAV_ROUTING__HEURISTIC_WEIGHT", "2")
	assert.Equal(t, "routing.heuristic_weight", k)
	assert.Equal(t, "2", v)
}
