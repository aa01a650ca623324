// Package emission provides the bundled meal emission prediction model.
package emission

import (
	"strings"

	"goeco/config"
	"goeco/internal/domain/service"
)

// servingEmissions maps a normalized meal type to its emission in kgCO2e
// for one standard serving. The figures follow common life-cycle
// assessment averages per serving.
var servingEmissions = map[string]float64{
	"beef":       6.61,
	"lamb":       5.84,
	"pork":       1.72,
	"chicken":    1.26,
	"fish":       1.34,
	"eggs":       0.96,
	"dairy":      1.12,
	"vegetarian": 0.66,
	"vegan":      0.39,
}

type tablePredictor struct {
	enabled bool
}

// NewTablePredictor builds the lookup-table predictor. When the predictor
// is disabled through configuration every lookup reports an unknown type,
// which makes callers fall back to the catalog factor.
func NewTablePredictor(cfg *config.Config) service.EmissionPredictor {
	enabled := false
	if cfg != nil && cfg.Emission != nil {
		enabled = cfg.Emission.PredictorEnabled
	}

	return &tablePredictor{enabled: enabled}
}

func (p *tablePredictor) PredictMeal(typeName string) (float64, bool) {
	if !p.enabled {
		return 0, false
	}

	emission, ok := servingEmissions[strings.ToLower(strings.TrimSpace(typeName))]

	return emission, ok
}
