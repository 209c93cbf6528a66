package structs

import "healthtrack-api/models"

type SupplementPayload struct {
	Name      *string          `json:"name"`
	Dosage    *string          `json:"dosage"`
	Unit      *string          `json:"unit"`
	Schedule  *models.Schedule `json:"schedule"`
	Notes     *string          `json:"notes"`
	StartDate *string          `json:"start_date"`
	EndDate   *string          `json:"end_date"`
}

func (p *SupplementPayload) ValidateCreate() error {
	if err := required("name", p.Name != nil); err != nil {
		return err
	}
	if err := required("dosage", p.Dosage != nil); err != nil {
		return err
	}
	if err := required("unit", p.Unit != nil); err != nil {
		return err
	}
	if err := required("schedule", p.Schedule != nil); err != nil {
		return err
	}
	return p.ValidateUpdate()
}

func (p *SupplementPayload) ValidateUpdate() error {
	if p.Schedule != nil {
		if err := p.Schedule.Validate(); err != nil {
			return err
		}
	}
	if err := checkDate("start_date", p.StartDate); err != nil {
		return err
	}
	return checkDate("end_date", p.EndDate)
}

// ApplyTo overwrites only the fields present in the payload. A
// schedule present in the payload replaces the stored one wholesale.
func (p *SupplementPayload) ApplyTo(m *models.Supplement) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Dosage != nil {
		m.Dosage = *p.Dosage
	}
	if p.Unit != nil {
		m.Unit = *p.Unit
	}
	if p.Schedule != nil {
		m.Schedule = *p.Schedule
	}
	if p.Notes != nil {
		m.Notes = p.Notes
	}
	if p.StartDate != nil {
		m.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		m.EndDate = p.EndDate
	}
}
