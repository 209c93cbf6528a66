package models

type BloodPressure struct {
	Systolic  int  `json:"systolic" bson:"systolic"`
	Diastolic int  `json:"diastolic" bson:"diastolic"`
	Pulse     *int `json:"pulse" bson:"pulse"`
}

type LipidPanel struct {
	TotalCholesterol         float64  `json:"total_cholesterol" bson:"total_cholesterol"`
	HDL                      float64  `json:"hdl" bson:"hdl"`
	LDL                      float64  `json:"ldl" bson:"ldl"`
	Triglycerides            float64  `json:"triglycerides" bson:"triglycerides"`
	TotalCholesterolHDLRatio *float64 `json:"total_cholesterol_hdl_ratio" bson:"total_cholesterol_hdl_ratio"`
}

type CBCPanel struct {
	WBC         float64                `json:"wbc" bson:"wbc"`
	RBC         float64                `json:"rbc" bson:"rbc"`
	Hemoglobin  float64                `json:"hemoglobin" bson:"hemoglobin"`
	Hematocrit  float64                `json:"hematocrit" bson:"hematocrit"`
	Platelets   float64                `json:"platelets" bson:"platelets"`
	OtherValues map[string]interface{} `json:"other_values" bson:"other_values"`
}

// HealthMarker groups lab and vitals readings for one date. Each
// panel is independently optional; any subset may be present.
type HealthMarker struct {
	Base          `bson:",inline"`
	Date          string                 `json:"date" bson:"date"`
	BloodPressure *BloodPressure         `json:"blood_pressure" bson:"blood_pressure"`
	LipidPanel    *LipidPanel            `json:"lipid_panel" bson:"lipid_panel"`
	CBCPanel      *CBCPanel              `json:"cbc_panel" bson:"cbc_panel"`
	OtherMarkers  map[string]interface{} `json:"other_markers" bson:"other_markers"`
	Notes         *string                `json:"notes" bson:"notes"`
}

// CollectionName sets the mongo collection for this struct type
func (m *HealthMarker) CollectionName() string {
	return "health_markers"
}
