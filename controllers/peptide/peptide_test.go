package peptide

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"healthtrack-api/models"
	"healthtrack-api/services/calculator"
	"healthtrack-api/structs"

	"github.com/gin-gonic/gin"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	route := gin.New()
	// validation paths never reach the store
	ctl := NewController(nil)
	route.POST("/api/peptides/calculate-iu", ctl.CalculateIU)
	route.POST("/api/peptides", ctl.Create)
	return route
}

func TestCalculateIUEndpoint(t *testing.T) {
	route := newTestRouter()

	body := `{"vial_amount_mg": 5, "bac_water_ml": 2, "dose_mcg": 250}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/peptides/calculate-iu", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	route.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var result calculator.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if result.IU != 10.00 {
		t.Errorf("expected iu 10.00, got %v", result.IU)
	}
	if result.Details.VialAmountMcg != 5000 || result.Details.ConcentrationMcgMl != 2500 || result.Details.VolumeMl != 0.1 {
		t.Errorf("unexpected details: %+v", result.Details)
	}
}

func TestCalculateIUEndpointRejectsZeroWater(t *testing.T) {
	route := newTestRouter()

	body := `{"vial_amount_mg": 5, "bac_water_ml": 0, "dose_mcg": 250}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/peptides/calculate-iu", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	route.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "bac_water_ml") {
		t.Errorf("error should name the offending field: %s", w.Body.String())
	}
}

func TestMergeRecalculatesOnNotesOnlyUpdate(t *testing.T) {
	entity := models.Peptide{
		Name:         "BPC-157",
		VialAmountMg: 5,
		BacWaterMl:   2,
		DoseMcg:      250,
		CalculatedIU: 0, // stale on purpose
	}
	payload := structs.PeptidePayload{Notes: strPtr("before breakfast")}

	if err := mergeAndRecalculate(&payload, &entity); err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if entity.CalculatedIU != 10.00 {
		t.Errorf("expected calculated_iu 10.00, got %v", entity.CalculatedIU)
	}
	if entity.Notes == nil || *entity.Notes != "before breakfast" {
		t.Errorf("notes not applied: %+v", entity.Notes)
	}
	if entity.VialAmountMg != 5 || entity.BacWaterMl != 2 || entity.DoseMcg != 250 {
		t.Errorf("dosing triple must survive a notes-only update: %+v", entity)
	}
}

func TestMergeRecalculatesWhenDoseChanges(t *testing.T) {
	entity := models.Peptide{
		Name:         "BPC-157",
		VialAmountMg: 5,
		BacWaterMl:   2,
		DoseMcg:      250,
		CalculatedIU: 10.00,
	}
	payload := structs.PeptidePayload{DoseMcg: floatPtr(500)}

	if err := mergeAndRecalculate(&payload, &entity); err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if entity.CalculatedIU != 20.00 {
		t.Errorf("expected calculated_iu 20.00, got %v", entity.CalculatedIU)
	}
}

func TestMergeRejectsZeroedInput(t *testing.T) {
	entity := models.Peptide{VialAmountMg: 5, BacWaterMl: 2, DoseMcg: 250}
	payload := structs.PeptidePayload{BacWaterMl: floatPtr(0)}

	if err := mergeAndRecalculate(&payload, &entity); err == nil {
		t.Fatal("expected an error for a zero bac_water_ml")
	}
}

func TestCreateRejectsIncompletePayload(t *testing.T) {
	route := newTestRouter()

	// missing the dosing triple entirely
	body := `{"name": "BPC-157", "injection_needle_size": "31G 5/16"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/peptides", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	route.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
