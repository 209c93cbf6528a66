package models

type BodyMeasurement struct {
	Base              `bson:",inline"`
	Date              string             `json:"date" bson:"date"`
	Chest             *float64           `json:"chest" bson:"chest"`
	Waist             *float64           `json:"waist" bson:"waist"`
	Hips              *float64           `json:"hips" bson:"hips"`
	Arms              *float64           `json:"arms" bson:"arms"`
	Legs              *float64           `json:"legs" bson:"legs"`
	OtherMeasurements map[string]float64 `json:"other_measurements" bson:"other_measurements"`
	Notes             *string            `json:"notes" bson:"notes"`
}

// CollectionName sets the mongo collection for this struct type
func (m *BodyMeasurement) CollectionName() string {
	return "body_measurements"
}
