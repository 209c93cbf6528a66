package structs

import (
	"strings"
	"testing"

	"healthtrack-api/models"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func validSchedule() *models.Schedule {
	return &models.Schedule{
		Frequency:   models.FrequencyDaily,
		TimesPerDay: 2,
		TimeOfDay:   []string{"morning", "evening"},
	}
}

func TestBodyCompositionValidateCreate(t *testing.T) {
	p := BodyCompositionPayload{}
	if err := p.ValidateCreate(); err == nil || !strings.Contains(err.Error(), "date") {
		t.Errorf("expected missing date error, got %v", err)
	}

	p.Date = strPtr("2026-08-01")
	if err := p.ValidateCreate(); err == nil || !strings.Contains(err.Error(), "weight") {
		t.Errorf("expected missing weight error, got %v", err)
	}

	p.Weight = floatPtr(82.5)
	if err := p.ValidateCreate(); err != nil {
		t.Errorf("expected valid payload, got %v", err)
	}

	p.Date = strPtr("01/08/2026")
	if err := p.ValidateCreate(); err == nil {
		t.Error("expected rejection of non ISO date")
	}
}

func TestBodyCompositionSparseMerge(t *testing.T) {
	entity := models.BodyComposition{
		Base:              models.NewBase(),
		Date:              "2026-08-01",
		Weight:            82.5,
		BodyFatPercentage: floatPtr(18.2),
		Notes:             strPtr("morning weigh-in"),
	}

	// only weight in the payload: everything else must survive
	p := BodyCompositionPayload{Weight: floatPtr(81.9)}
	if err := p.ValidateUpdate(); err != nil {
		t.Fatalf("ValidateUpdate failed: %v", err)
	}
	p.ApplyTo(&entity)

	if entity.Weight != 81.9 {
		t.Errorf("expected weight 81.9, got %v", entity.Weight)
	}
	if entity.Date != "2026-08-01" {
		t.Errorf("date changed to %s", entity.Date)
	}
	if entity.BodyFatPercentage == nil || *entity.BodyFatPercentage != 18.2 {
		t.Error("body_fat_percentage should be untouched")
	}
	if entity.Notes == nil || *entity.Notes != "morning weigh-in" {
		t.Error("notes should be untouched")
	}
}

func TestHealthMarkerPanelValidation(t *testing.T) {
	p := HealthMarkerPayload{
		Date:          strPtr("2026-08-01"),
		BloodPressure: &models.BloodPressure{Systolic: 120},
	}
	if err := p.ValidateCreate(); err == nil || !strings.Contains(err.Error(), "diastolic") {
		t.Errorf("expected incomplete blood pressure error, got %v", err)
	}

	p.BloodPressure.Diastolic = 80
	p.BloodPressure.Pulse = intPtr(58)
	if err := p.ValidateCreate(); err != nil {
		t.Errorf("expected valid payload, got %v", err)
	}

	// panels are independently optional: lipid panel alone is fine
	p = HealthMarkerPayload{
		Date: strPtr("2026-08-01"),
		LipidPanel: &models.LipidPanel{
			TotalCholesterol: 185,
			HDL:              62,
			LDL:              101,
			Triglycerides:    88,
		},
	}
	if err := p.ValidateCreate(); err != nil {
		t.Errorf("expected valid payload, got %v", err)
	}
}

func TestHealthMarkerMergeReplacesPanelWholesale(t *testing.T) {
	entity := models.HealthMarker{
		Base:          models.NewBase(),
		Date:          "2026-08-01",
		BloodPressure: &models.BloodPressure{Systolic: 120, Diastolic: 80},
		OtherMarkers:  map[string]interface{}{"vitamin_d": 42.0},
	}

	p := HealthMarkerPayload{
		BloodPressure: &models.BloodPressure{Systolic: 118, Diastolic: 76},
	}
	p.ApplyTo(&entity)

	if entity.BloodPressure.Systolic != 118 || entity.BloodPressure.Diastolic != 76 {
		t.Errorf("blood pressure not replaced: %+v", entity.BloodPressure)
	}
	if entity.OtherMarkers["vitamin_d"] != 42.0 {
		t.Error("other_markers should be untouched")
	}
	if entity.Date != "2026-08-01" {
		t.Errorf("date changed to %s", entity.Date)
	}
}

func TestSupplementValidateCreate(t *testing.T) {
	p := SupplementPayload{
		Name:   strPtr("Magnesium Glycinate"),
		Dosage: strPtr("400"),
		Unit:   strPtr("mg"),
	}
	if err := p.ValidateCreate(); err == nil || !strings.Contains(err.Error(), "schedule") {
		t.Errorf("expected missing schedule error, got %v", err)
	}

	p.Schedule = validSchedule()
	if err := p.ValidateCreate(); err != nil {
		t.Errorf("expected valid payload, got %v", err)
	}

	p.Schedule.Frequency = "hourly"
	if err := p.ValidateCreate(); err == nil || !strings.Contains(err.Error(), "frequency") {
		t.Errorf("expected frequency error, got %v", err)
	}

	p.Schedule = validSchedule()
	p.Schedule.TimesPerDay = 0
	if err := p.ValidateCreate(); err == nil || !strings.Contains(err.Error(), "times_per_day") {
		t.Errorf("expected times_per_day error, got %v", err)
	}

	p.Schedule = validSchedule()
	p.EndDate = strPtr("not-a-date")
	if err := p.ValidateCreate(); err == nil || !strings.Contains(err.Error(), "end_date") {
		t.Errorf("expected end_date format error, got %v", err)
	}
}

func TestPeptideValidateCreate(t *testing.T) {
	p := PeptidePayload{
		Name:                strPtr("BPC-157"),
		VialAmountMg:        floatPtr(5),
		BacWaterMl:          floatPtr(2),
		DoseMcg:             floatPtr(250),
		InjectionNeedleSize: strPtr("31G 5/16"),
		Schedule:            validSchedule(),
	}
	if err := p.ValidateCreate(); err != nil {
		t.Errorf("expected valid payload, got %v", err)
	}

	p.DoseMcg = nil
	if err := p.ValidateCreate(); err == nil || !strings.Contains(err.Error(), "dose_mcg") {
		t.Errorf("expected missing dose_mcg error, got %v", err)
	}
}

func TestPeptideSparseMerge(t *testing.T) {
	entity := models.Peptide{
		Base:                models.NewBase(),
		Name:                "BPC-157",
		VialAmountMg:        5,
		BacWaterMl:          2,
		DoseMcg:             250,
		InjectionNeedleSize: "31G 5/16",
		CalculatedIU:        10,
		Schedule:            *validSchedule(),
	}

	// notes-only update keeps the dosing triple intact
	p := PeptidePayload{Notes: strPtr("rotate injection site")}
	p.ApplyTo(&entity)

	if entity.VialAmountMg != 5 || entity.BacWaterMl != 2 || entity.DoseMcg != 250 {
		t.Errorf("dosing triple changed: %v/%v/%v", entity.VialAmountMg, entity.BacWaterMl, entity.DoseMcg)
	}
	if entity.Notes == nil || *entity.Notes != "rotate injection site" {
		t.Error("notes not applied")
	}

	p = PeptidePayload{DoseMcg: floatPtr(500)}
	p.ApplyTo(&entity)
	if entity.DoseMcg != 500 {
		t.Errorf("expected dose_mcg 500, got %v", entity.DoseMcg)
	}
	if entity.Name != "BPC-157" {
		t.Errorf("name changed to %s", entity.Name)
	}
}

func TestParsePagination(t *testing.T) {
	page, err := ParsePagination("100", "0")
	if err != nil {
		t.Fatalf("ParsePagination failed: %v", err)
	}
	if page.Limit != 100 || page.Skip != 0 {
		t.Errorf("expected limit 100 skip 0, got %d %d", page.Limit, page.Skip)
	}

	if _, err := ParsePagination("ten", "0"); err == nil {
		t.Error("expected rejection of non numeric limit")
	}
	if _, err := ParsePagination("100", "-5"); err == nil {
		t.Error("expected rejection of negative skip")
	}
}
