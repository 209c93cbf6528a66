package models

// BodyComposition is one scale reading for a given day. Duplicate
// dates are allowed; there is no uniqueness constraint beyond id.
type BodyComposition struct {
	Base              `bson:",inline"`
	Date              string   `json:"date" bson:"date"`
	Weight            float64  `json:"weight" bson:"weight"`
	BodyFatPercentage *float64 `json:"body_fat_percentage" bson:"body_fat_percentage"`
	MuscleMass        *float64 `json:"muscle_mass" bson:"muscle_mass"`
	WaterPercentage   *float64 `json:"water_percentage" bson:"water_percentage"`
	BoneMass          *float64 `json:"bone_mass" bson:"bone_mass"`
	BMI               *float64 `json:"bmi" bson:"bmi"`
	Notes             *string  `json:"notes" bson:"notes"`
}

// CollectionName sets the mongo collection for this struct type
func (m *BodyComposition) CollectionName() string {
	return "body_compositions"
}
