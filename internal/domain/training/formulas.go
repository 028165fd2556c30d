package training

// Unit conversions.
const (
	mInKm     = 1000
	minInH    = 60
	kmhInMsec = 0.278
	cmInM     = 100
)

// Step lengths in meters per action.
const (
	lenStep     = 0.65
	swimLenStep = 1.38
)

// Running calorie coefficients.
const (
	runCaloriesSpeedMultiplier = 18
	runCaloriesSpeedShift      = 1.79
)

// Sports walking calorie coefficients.
const (
	walkCaloriesWeightMultiplier      = 0.035
	walkCaloriesSpeedHeightMultiplier = 0.029
)

// Swimming calorie coefficients.
const (
	swimCaloriesSpeedShift       = 1.1
	swimCaloriesWeightMultiplier = 2
)

// Distance returns the distance in km covered by action units of stepLen meters.
func Distance(action int, stepLen float64) float64 {
	return float64(action) * stepLen / mInKm
}

// MeanSpeed returns km/h for distance km covered in duration hours.
func MeanSpeed(distance, duration float64) float64 {
	return distance / duration
}

// PoolSpeed returns km/h derived from pool geometry rather than stroke count.
func PoolSpeed(lengthPool, countPool, duration float64) float64 {
	return lengthPool * countPool / mInKm / duration
}

// RunningCalories returns kcal burned running at speed km/h.
func RunningCalories(speed, weight, duration float64) float64 {
	return (runCaloriesSpeedMultiplier*speed + runCaloriesSpeedShift) *
		weight / mInKm * (duration * minInH)
}

// WalkingCalories returns kcal burned walking at speed km/h for a walker height cm tall.
func WalkingCalories(speed, weight, height, duration float64) float64 {
	msec := speed * kmhInMsec
	return (walkCaloriesWeightMultiplier*weight +
		msec*msec/(height/cmInM)*walkCaloriesSpeedHeightMultiplier*weight) *
		(duration * minInH)
}

// SwimmingCalories returns kcal burned swimming at speed km/h.
func SwimmingCalories(speed, weight, duration float64) float64 {
	return (speed + swimCaloriesSpeedShift) * swimCaloriesWeightMultiplier * weight * duration
}
