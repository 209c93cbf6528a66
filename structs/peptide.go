package structs

import "healthtrack-api/models"

// PeptidePayload deliberately has no calculated_iu field: the derived
// value is computed server-side and never accepted from the client.
type PeptidePayload struct {
	Name                *string          `json:"name"`
	VialAmountMg        *float64         `json:"vial_amount_mg"`
	BacWaterMl          *float64         `json:"bac_water_ml"`
	DoseMcg             *float64         `json:"dose_mcg"`
	InjectionNeedleSize *string          `json:"injection_needle_size"`
	Schedule            *models.Schedule `json:"schedule"`
	Notes               *string          `json:"notes"`
	StartDate           *string          `json:"start_date"`
	EndDate             *string          `json:"end_date"`
}

func (p *PeptidePayload) ValidateCreate() error {
	if err := required("name", p.Name != nil); err != nil {
		return err
	}
	if err := required("vial_amount_mg", p.VialAmountMg != nil); err != nil {
		return err
	}
	if err := required("bac_water_ml", p.BacWaterMl != nil); err != nil {
		return err
	}
	if err := required("dose_mcg", p.DoseMcg != nil); err != nil {
		return err
	}
	if err := required("injection_needle_size", p.InjectionNeedleSize != nil); err != nil {
		return err
	}
	if err := required("schedule", p.Schedule != nil); err != nil {
		return err
	}
	return p.ValidateUpdate()
}

func (p *PeptidePayload) ValidateUpdate() error {
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

// ApplyTo overwrites only the fields present in the payload. The
// caller recomputes calculated_iu from the merged triple afterwards.
func (p *PeptidePayload) ApplyTo(m *models.Peptide) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.VialAmountMg != nil {
		m.VialAmountMg = *p.VialAmountMg
	}
	if p.BacWaterMl != nil {
		m.BacWaterMl = *p.BacWaterMl
	}
	if p.DoseMcg != nil {
		m.DoseMcg = *p.DoseMcg
	}
	if p.InjectionNeedleSize != nil {
		m.InjectionNeedleSize = *p.InjectionNeedleSize
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
