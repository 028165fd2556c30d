// Package training models workout records and the formulas that derive
// distance, mean speed and spent calories from raw sensor readings.
package training

// Kind identifies a workout variant.
type Kind int

// Supported workout kinds.
const (
	KindRunning Kind = iota + 1
	KindSportsWalking
	KindSwimming
)

// Sensor package codes.
const (
	CodeRunning       = "RUN"
	CodeSportsWalking = "WLK"
	CodeSwimming      = "SWM"
)

// Kinds lists every supported workout kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindRunning, KindSportsWalking, KindSwimming}
}

// ParseKind resolves a sensor package code.
func ParseKind(code string) (Kind, bool) {
	switch code {
	case CodeRunning:
		return KindRunning, true
	case CodeSportsWalking:
		return KindSportsWalking, true
	case CodeSwimming:
		return KindSwimming, true
	default:
		return 0, false
	}
}

// String returns the label printed in summaries.
func (k Kind) String() string {
	switch k {
	case KindRunning:
		return "Running"
	case KindSportsWalking:
		return "SportsWalking"
	case KindSwimming:
		return "Swimming"
	default:
		return "Unknown"
	}
}

// Code returns the sensor package code for k.
func (k Kind) Code() string {
	switch k {
	case KindRunning:
		return CodeRunning
	case KindSportsWalking:
		return CodeSportsWalking
	case KindSwimming:
		return CodeSwimming
	default:
		return ""
	}
}

// Arity is the number of raw readings a package of this kind carries.
func (k Kind) Arity() int {
	switch k {
	case KindRunning:
		return 3
	case KindSportsWalking:
		return 4
	case KindSwimming:
		return 5
	default:
		return 0
	}
}
