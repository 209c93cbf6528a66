package structs

import "healthtrack-api/models"

// BodyCompositionPayload is the client-settable subset of a body
// composition record. Every field is a pointer so an absent field can
// be told apart from a zero value during the sparse merge.
type BodyCompositionPayload struct {
	Date              *string  `json:"date"`
	Weight            *float64 `json:"weight"`
	BodyFatPercentage *float64 `json:"body_fat_percentage"`
	MuscleMass        *float64 `json:"muscle_mass"`
	WaterPercentage   *float64 `json:"water_percentage"`
	BoneMass          *float64 `json:"bone_mass"`
	BMI               *float64 `json:"bmi"`
	Notes             *string  `json:"notes"`
}

func (p *BodyCompositionPayload) ValidateCreate() error {
	if err := requireDate("date", p.Date); err != nil {
		return err
	}
	return required("weight", p.Weight != nil)
}

func (p *BodyCompositionPayload) ValidateUpdate() error {
	return checkDate("date", p.Date)
}

// ApplyTo overwrites only the fields present in the payload.
func (p *BodyCompositionPayload) ApplyTo(m *models.BodyComposition) {
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.Weight != nil {
		m.Weight = *p.Weight
	}
	if p.BodyFatPercentage != nil {
		m.BodyFatPercentage = p.BodyFatPercentage
	}
	if p.MuscleMass != nil {
		m.MuscleMass = p.MuscleMass
	}
	if p.WaterPercentage != nil {
		m.WaterPercentage = p.WaterPercentage
	}
	if p.BoneMass != nil {
		m.BoneMass = p.BoneMass
	}
	if p.BMI != nil {
		m.BMI = p.BMI
	}
	if p.Notes != nil {
		m.Notes = p.Notes
	}
}
