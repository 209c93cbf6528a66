package structs

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

func checkDate(field string, v *string) error {
	if v == nil {
		return nil
	}
	if _, err := time.Parse(dateLayout, *v); err != nil {
		return fmt.Errorf("%s must be a YYYY-MM-DD date", field)
	}
	return nil
}

func requireDate(field string, v *string) error {
	if v == nil {
		return fmt.Errorf("%s is required", field)
	}
	return checkDate(field, v)
}

func required(field string, present bool) error {
	if !present {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}
