package structs

import "healthtrack-api/models"

type BodyMeasurementPayload struct {
	Date              *string            `json:"date"`
	Chest             *float64           `json:"chest"`
	Waist             *float64           `json:"waist"`
	Hips              *float64           `json:"hips"`
	Arms              *float64           `json:"arms"`
	Legs              *float64           `json:"legs"`
	OtherMeasurements map[string]float64 `json:"other_measurements"`
	Notes             *string            `json:"notes"`
}

func (p *BodyMeasurementPayload) ValidateCreate() error {
	return requireDate("date", p.Date)
}

func (p *BodyMeasurementPayload) ValidateUpdate() error {
	return checkDate("date", p.Date)
}

// ApplyTo overwrites only the fields present in the payload.
func (p *BodyMeasurementPayload) ApplyTo(m *models.BodyMeasurement) {
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.Chest != nil {
		m.Chest = p.Chest
	}
	if p.Waist != nil {
		m.Waist = p.Waist
	}
	if p.Hips != nil {
		m.Hips = p.Hips
	}
	if p.Arms != nil {
		m.Arms = p.Arms
	}
	if p.Legs != nil {
		m.Legs = p.Legs
	}
	if p.OtherMeasurements != nil {
		m.OtherMeasurements = p.OtherMeasurements
	}
	if p.Notes != nil {
		m.Notes = p.Notes
	}
}
