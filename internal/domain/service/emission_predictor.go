package service

// EmissionPredictor resolves a meal emission value from the bundled
// prediction model instead of the static catalog factor. The model is a
// deterministic lookup table evaluated per standard serving, so the same
// type always yields the same value.
type EmissionPredictor interface {
	// PredictMeal returns the emission in kgCO2e for one standard serving
	// of the given meal type. ok is false when the model does not know the
	// type.
	PredictMeal(typeName string) (emission float64, ok bool)
}
