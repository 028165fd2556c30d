package training

import "math"

// Build resolves a sensor package code and constructs the matching workout
// record from its raw readings. Readings are ordered as the sensor sends them:
// action, duration, weight, then the kind-specific extras.
func Build(code string, data []float64) (Training, error) {
	kind, ok := ParseKind(code)
	if !ok {
		return nil, &UnknownKindError{Code: code}
	}
	if len(data) != kind.Arity() {
		return nil, &ArgumentCountError{Kind: kind, Expected: kind.Arity(), Got: len(data)}
	}

	action, err := actionCount(kind, data[0])
	if err != nil {
		return nil, err
	}
	duration, weight := data[1], data[2]

	var t Training
	switch kind {
	case KindRunning:
		t, err = NewRunning(action, duration, weight)
	case KindSportsWalking:
		t, err = NewSportsWalking(action, duration, weight, data[3])
	case KindSwimming:
		t, err = NewSwimming(action, duration, weight, data[3], data[4])
	default:
		return nil, &UnknownKindError{Code: code}
	}
	if err != nil {
		return nil, err
	}
	if err := checkFinite(t); err != nil {
		return nil, err
	}
	return t, nil
}

// checkFinite rejects records whose readings are each valid but combine into
// an infinite or undefined statistic, e.g. a duration close to zero.
func checkFinite(t Training) error {
	metrics := []struct {
		field string
		value float64
	}{
		{"distance", t.Distance()},
		{"mean_speed", t.MeanSpeed()},
		{"spent_calories", t.SpentCalories()},
	}
	for _, m := range metrics {
		if math.IsNaN(m.value) || math.IsInf(m.value, 0) {
			return &ArgumentError{Kind: t.Kind(), Field: m.field, Value: m.value, Reason: "is not finite"}
		}
	}
	return nil
}

// actionCount converts the first reading to a whole number of steps or strokes.
func actionCount(kind Kind, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, &ArgumentError{Kind: kind, Field: "action", Value: v, Reason: "must be a whole number"}
	}
	if v < 0 || v > math.MaxInt32 {
		return 0, &ArgumentError{Kind: kind, Field: "action", Value: v, Reason: "out of range"}
	}
	return int(v), nil
}
