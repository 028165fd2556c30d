// Package model contains domain models passed between layers.
package model

import "github.com/google/uuid"

// Package is one batch of readings sent by a fitness sensor.
type Package struct {
	// ID is supplied by the sensor and may be empty.
	ID string `koanf:"id" json:"id,omitempty"`
	// Code selects the workout kind, e.g. "RUN" or "SWM".
	Code string `koanf:"code" json:"code"`
	// Data holds the readings in sensor order.
	Data []float64 `koanf:"data" json:"data"`
}

// NewPackage returns a package with a generated id.
func NewPackage(code string, data ...float64) Package {
	return Package{ID: uuid.NewString(), Code: code, Data: data}
}

// WithID returns p, generating an id when the sensor did not send one.
func (p Package) WithID() Package {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return p
}

// DefaultBatch is the reference batch: one package of every workout kind.
func DefaultBatch() []Package {
	return []Package{
		{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}
