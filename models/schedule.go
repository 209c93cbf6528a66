package models

import "fmt"

const (
	FrequencyDaily        = "daily"
	FrequencyWeekly       = "weekly"
	FrequencyCustom       = "custom"
	FrequencyMondayFriday = "monday-friday"
)

// Schedule describes when a supplement or peptide is taken. It is
// stored data only and never evaluated against the clock.
type Schedule struct {
	Frequency     string   `json:"frequency" bson:"frequency"`
	TimesPerDay   int      `json:"times_per_day" bson:"times_per_day"`
	TimeOfDay     []string `json:"time_of_day" bson:"time_of_day"`
	CycleWeeksOn  *int     `json:"cycle_weeks_on" bson:"cycle_weeks_on"`
	CycleWeeksOff *int     `json:"cycle_weeks_off" bson:"cycle_weeks_off"`
	CustomDays    []string `json:"custom_days" bson:"custom_days"`
	CustomTimes   []string `json:"custom_times" bson:"custom_times"`
}

func (s *Schedule) Validate() error {
	switch s.Frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyCustom, FrequencyMondayFriday:
	default:
		return fmt.Errorf("schedule.frequency must be one of daily, weekly, custom, monday-friday")
	}
	if s.TimesPerDay < 1 {
		return fmt.Errorf("schedule.times_per_day must be at least 1")
	}
	if s.TimeOfDay == nil {
		return fmt.Errorf("schedule.time_of_day is required")
	}
	return nil
}
