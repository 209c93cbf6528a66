package models

// Peptide stores the dosing setup for one compound. CalculatedIU is
// derived server-side from the vial/water/dose triple and is never
// taken from the client; it is recomputed on every update so it can
// not go stale.
type Peptide struct {
	Base                `bson:",inline"`
	Name                string   `json:"name" bson:"name"`
	VialAmountMg        float64  `json:"vial_amount_mg" bson:"vial_amount_mg"`
	BacWaterMl          float64  `json:"bac_water_ml" bson:"bac_water_ml"`
	DoseMcg             float64  `json:"dose_mcg" bson:"dose_mcg"`
	InjectionNeedleSize string   `json:"injection_needle_size" bson:"injection_needle_size"`
	CalculatedIU        float64  `json:"calculated_iu" bson:"calculated_iu"`
	Schedule            Schedule `json:"schedule" bson:"schedule"`
	Notes               *string  `json:"notes" bson:"notes"`
	StartDate           *string  `json:"start_date" bson:"start_date"`
	EndDate             *string  `json:"end_date" bson:"end_date"`
}

// CollectionName sets the mongo collection for this struct type
func (m *Peptide) CollectionName() string {
	return "peptides"
}
