package product

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// UnitType describes how a product is measured. The distinction drives the
// packing workflow: weight-type lines must be physically weighed and
// portioned before they can be placed into containers, piece-type lines are
// considered packed the moment an order is created.
type UnitType int

const (
	// UnknownUnitType represents an invalid or undefined unit type.
	// This value (0) helps catch uninitialized UnitType values.
	UnknownUnitType UnitType = iota

	// Piece marks products measured by discrete count.
	Piece

	// Weight marks products measured by continuous quantity, e.g. kilograms.
	Weight
)

// getUnitTypeStrings returns a map of UnitType values to their string representations.
func getUnitTypeStrings() map[UnitType]string {
	return map[UnitType]string{
		UnknownUnitType: "Unknown",
		Piece:           "Piece",
		Weight:          "Weight",
	}
}

// getValidUnitTypeStrings returns a map of only valid UnitType values.
func getValidUnitTypeStrings() map[UnitType]string {
	//nolint:exhaustive // UnknownUnitType is intentionally excluded as it's invalid
	return map[UnitType]string{
		Piece:  "Piece",
		Weight: "Weight",
	}
}

// Validate checks if the UnitType value is valid.
// Valid unit types are Piece and Weight.
func (u UnitType) Validate() error {
	if _, ok := getValidUnitTypeStrings()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit type is invalid",
			fmt.Errorf("%d is not a valid unit type", u),
		)
	}
	return nil
}

// String returns the human-readable name of the unit type.
// It implements the fmt.Stringer interface and is safe to call on any value.
func (u UnitType) String() string {
	if str, ok := getUnitTypeStrings()[u]; ok {
		return str
	}
	return "Unknown"
}

// IsWeight reports whether the unit type requires a packing step.
func (u UnitType) IsWeight() bool {
	return u == Weight
}
