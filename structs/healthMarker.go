package structs

import (
	"fmt"

	"healthtrack-api/models"
)

type HealthMarkerPayload struct {
	Date          *string                `json:"date"`
	BloodPressure *models.BloodPressure  `json:"blood_pressure"`
	LipidPanel    *models.LipidPanel     `json:"lipid_panel"`
	CBCPanel      *models.CBCPanel       `json:"cbc_panel"`
	OtherMarkers  map[string]interface{} `json:"other_markers"`
	Notes         *string                `json:"notes"`
}

func (p *HealthMarkerPayload) ValidateCreate() error {
	if err := requireDate("date", p.Date); err != nil {
		return err
	}
	return p.validatePanels()
}

func (p *HealthMarkerPayload) ValidateUpdate() error {
	if err := checkDate("date", p.Date); err != nil {
		return err
	}
	return p.validatePanels()
}

// validatePanels checks the required readings of whichever panels the
// client sent. Panels are independently optional but a present panel
// must be complete.
func (p *HealthMarkerPayload) validatePanels() error {
	if bp := p.BloodPressure; bp != nil {
		if bp.Systolic <= 0 {
			return fmt.Errorf("blood_pressure.systolic is required")
		}
		if bp.Diastolic <= 0 {
			return fmt.Errorf("blood_pressure.diastolic is required")
		}
	}
	if lp := p.LipidPanel; lp != nil {
		if lp.TotalCholesterol <= 0 {
			return fmt.Errorf("lipid_panel.total_cholesterol is required")
		}
		if lp.HDL <= 0 {
			return fmt.Errorf("lipid_panel.hdl is required")
		}
		if lp.LDL <= 0 {
			return fmt.Errorf("lipid_panel.ldl is required")
		}
		if lp.Triglycerides <= 0 {
			return fmt.Errorf("lipid_panel.triglycerides is required")
		}
	}
	if cbc := p.CBCPanel; cbc != nil {
		if cbc.WBC <= 0 {
			return fmt.Errorf("cbc_panel.wbc is required")
		}
		if cbc.RBC <= 0 {
			return fmt.Errorf("cbc_panel.rbc is required")
		}
		if cbc.Hemoglobin <= 0 {
			return fmt.Errorf("cbc_panel.hemoglobin is required")
		}
		if cbc.Hematocrit <= 0 {
			return fmt.Errorf("cbc_panel.hematocrit is required")
		}
		if cbc.Platelets <= 0 {
			return fmt.Errorf("cbc_panel.platelets is required")
		}
	}
	return nil
}

// ApplyTo overwrites only the fields present in the payload. A panel
// present in the payload replaces the stored panel wholesale.
func (p *HealthMarkerPayload) ApplyTo(m *models.HealthMarker) {
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.BloodPressure != nil {
		m.BloodPressure = p.BloodPressure
	}
	if p.LipidPanel != nil {
		m.LipidPanel = p.LipidPanel
	}
	if p.CBCPanel != nil {
		m.CBCPanel = p.CBCPanel
	}
	if p.OtherMarkers != nil {
		m.OtherMarkers = p.OtherMarkers
	}
	if p.Notes != nil {
		m.Notes = p.Notes
	}
}
