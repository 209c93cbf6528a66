package calculator

import (
	"fmt"
	"math"
)

// Input is the vial/dilution/dose triple the conversion runs on.
type Input struct {
	VialAmountMg float64 `json:"vial_amount_mg"`
	BacWaterMl   float64 `json:"bac_water_ml"`
	DoseMcg      float64 `json:"dose_mcg"`
}

// Details carries the intermediate values for UI display. They are
// rounded independently of the IU result.
type Details struct {
	VialAmountMcg      float64 `json:"vial_amount_mcg"`
	ConcentrationMcgMl float64 `json:"concentration_mcg_ml"`
	VolumeMl           float64 `json:"volume_ml"`
}

type Result struct {
	IU      float64 `json:"iu"`
	Details Details `json:"details"`
}

// ValidationError names the first non-positive input field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be greater than 0", e.Field)
}

// Validate rejects zero and negative inputs before any arithmetic
// runs; a zero bac_water_ml would otherwise divide by zero.
func Validate(in Input) error {
	if in.VialAmountMg <= 0 {
		return &ValidationError{Field: "vial_amount_mg"}
	}
	if in.BacWaterMl <= 0 {
		return &ValidationError{Field: "bac_water_ml"}
	}
	if in.DoseMcg <= 0 {
		return &ValidationError{Field: "dose_mcg"}
	}
	return nil
}

// Calculate converts the dosing triple into an injectable volume in
// IU on a U-100 syringe (1 ml = 100 IU):
//
//	vial_amount_mcg = vial_amount_mg * 1000
//	concentration   = vial_amount_mcg / bac_water_ml
//	volume_ml       = dose_mcg / concentration
//	iu              = volume_ml * 100, rounded to 2 decimals
//
// Rounding is half-away-from-zero (math.Round). The IU value rounds
// the unrounded volume; the details round separately.
func Calculate(in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}

	vialAmountMcg := in.VialAmountMg * 1000
	concentration := vialAmountMcg / in.BacWaterMl
	volumeMl := in.DoseMcg / concentration
	iu := round(volumeMl*100, 2)

	return Result{
		IU: iu,
		Details: Details{
			VialAmountMcg:      vialAmountMcg,
			ConcentrationMcgMl: round(concentration, 2),
			VolumeMl:           round(volumeMl, 4),
		},
	}, nil
}

func round(x float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(x*shift) / shift
}
