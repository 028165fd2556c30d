package service

import (
	"fmt"
	"strings"
)

// ErrorPolicy decides what a rejected package does to the rest of its batch.
type ErrorPolicy string

const (
	// PolicyHalt stops the batch at the first rejected package.
	PolicyHalt ErrorPolicy = "halt"
	// PolicySkip logs the rejected package and carries on.
	PolicySkip ErrorPolicy = "skip"
)

// ParseErrorPolicy parses a policy name (case-insensitive). An empty name
// yields PolicyHalt.
func ParseErrorPolicy(name string) (ErrorPolicy, error) {
	switch ErrorPolicy(strings.ToLower(strings.TrimSpace(name))) {
	case "", PolicyHalt:
		return PolicyHalt, nil
	case PolicySkip:
		return PolicySkip, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

func (p ErrorPolicy) String() string { return string(p) }
