package training

import "math"

// Training is a workout record built from one sensor package.
// The set of implementations is closed to this package.
type Training interface {
	// Kind reports the workout variant.
	Kind() Kind
	// Hours is the workout duration in hours.
	Hours() float64
	// Distance is the covered distance in km.
	Distance() float64
	// MeanSpeed is the average speed in km/h over the whole duration.
	MeanSpeed() float64
	// SpentCalories is the energy burned in kcal.
	SpentCalories() float64

	sealed()
}

// base holds the readings shared by every workout kind.
type base struct {
	Action   int
	Duration float64
	Weight   float64
}

func (b base) Hours() float64 { return b.Duration }
func (base) sealed()          {}

// Running is a running workout; Action counts steps.
type Running struct {
	base
}

// NewRunning validates the readings and builds a Running record.
func NewRunning(action int, duration, weight float64) (Running, error) {
	b, err := newBase(KindRunning, action, duration, weight)
	if err != nil {
		return Running{}, err
	}
	return Running{base: b}, nil
}

func (Running) Kind() Kind { return KindRunning }

func (r Running) Distance() float64 { return Distance(r.Action, lenStep) }

func (r Running) MeanSpeed() float64 { return MeanSpeed(r.Distance(), r.Duration) }

func (r Running) SpentCalories() float64 {
	return RunningCalories(r.MeanSpeed(), r.Weight, r.Duration)
}

// SportsWalking is a race walking workout; Action counts steps.
type SportsWalking struct {
	base
	Height float64 // cm
}

// NewSportsWalking validates the readings and builds a SportsWalking record.
func NewSportsWalking(action int, duration, weight, height float64) (SportsWalking, error) {
	b, err := newBase(KindSportsWalking, action, duration, weight)
	if err != nil {
		return SportsWalking{}, err
	}
	if !(height > 0) || math.IsInf(height, 0) {
		return SportsWalking{}, &ArgumentError{Kind: KindSportsWalking, Field: "height", Value: height, Reason: "must be positive"}
	}
	return SportsWalking{base: b, Height: height}, nil
}

func (SportsWalking) Kind() Kind { return KindSportsWalking }

func (w SportsWalking) Distance() float64 { return Distance(w.Action, lenStep) }

func (w SportsWalking) MeanSpeed() float64 { return MeanSpeed(w.Distance(), w.Duration) }

func (w SportsWalking) SpentCalories() float64 {
	return WalkingCalories(w.MeanSpeed(), w.Weight, w.Height, w.Duration)
}

// Swimming is a pool workout; Action counts strokes. Speed comes from pool
// geometry, distance from strokes.
type Swimming struct {
	base
	LengthPool float64 // m
	CountPool  float64 // laps
}

// NewSwimming validates the readings and builds a Swimming record.
func NewSwimming(action int, duration, weight, lengthPool, countPool float64) (Swimming, error) {
	b, err := newBase(KindSwimming, action, duration, weight)
	if err != nil {
		return Swimming{}, err
	}
	if !(lengthPool >= 0) || math.IsInf(lengthPool, 0) {
		return Swimming{}, &ArgumentError{Kind: KindSwimming, Field: "length_pool", Value: lengthPool, Reason: "must not be negative"}
	}
	if !(countPool >= 0) || math.IsInf(countPool, 0) {
		return Swimming{}, &ArgumentError{Kind: KindSwimming, Field: "count_pool", Value: countPool, Reason: "must not be negative"}
	}
	return Swimming{base: b, LengthPool: lengthPool, CountPool: countPool}, nil
}

func (Swimming) Kind() Kind { return KindSwimming }

func (s Swimming) Distance() float64 { return Distance(s.Action, swimLenStep) }

func (s Swimming) MeanSpeed() float64 { return PoolSpeed(s.LengthPool, s.CountPool, s.Duration) }

func (s Swimming) SpentCalories() float64 {
	return SwimmingCalories(s.MeanSpeed(), s.Weight, s.Duration)
}

// newBase checks the readings every kind shares. NaN fails every comparison
// below and is rejected with the rest.
func newBase(kind Kind, action int, duration, weight float64) (base, error) {
	if action < 0 {
		return base{}, &ArgumentError{Kind: kind, Field: "action", Value: float64(action), Reason: "must not be negative"}
	}
	if !(duration > 0) || math.IsInf(duration, 0) {
		return base{}, &ArgumentError{Kind: kind, Field: "duration", Value: duration, Reason: "must be positive"}
	}
	if !(weight > 0) || math.IsInf(weight, 0) {
		return base{}, &ArgumentError{Kind: kind, Field: "weight", Value: weight, Reason: "must be positive"}
	}
	return base{Action: action, Duration: duration, Weight: weight}, nil
}
