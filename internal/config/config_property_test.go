package config

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"yqhp/minbench/pkg/types"
)

// TestValidateRunProperty: a run is accepted exactly when the worker count
// is in [1, max_workers] and the method is 0, 1 or 2.
func TestValidateRunProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	cfg := DefaultConfig()

	properties.Property("accepts exactly the valid range", prop.ForAll(
		func(method int, workers int) bool {
			err := cfg.ValidateRun(types.Strategy(method), workers)
			valid := method >= 0 && method <= 2 && workers >= 1 && workers <= 1024
			return (err == nil) == valid
		},
		gen.IntRange(-3, 6),
		gen.IntRange(-10, 1100),
	))

	properties.TestingRun(t)
}
