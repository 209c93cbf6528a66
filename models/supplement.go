package models

// Supplement is a catalog entry; dosage stays a free-form string
// ("500", "1/2 scoop") with the unit held separately.
type Supplement struct {
	Base      `bson:",inline"`
	Name      string   `json:"name" bson:"name"`
	Dosage    string   `json:"dosage" bson:"dosage"`
	Unit      string   `json:"unit" bson:"unit"`
	Schedule  Schedule `json:"schedule" bson:"schedule"`
	Notes     *string  `json:"notes" bson:"notes"`
	StartDate *string  `json:"start_date" bson:"start_date"`
	EndDate   *string  `json:"end_date" bson:"end_date"`
}

// CollectionName sets the mongo collection for this struct type
func (m *Supplement) CollectionName() string {
	return "supplements"
}
