// Package product provides the catalog read model consumed by the fulfillment core.
//
// The package includes:
//   - Product: Name, unit type, and current price of an orderable product
//   - UnitType: Piece vs Weight measurement, which drives the packing workflow
//
// Weight-type products are ordered in fractional quantities and must be
// weighed and portioned (packed) before a sorter may place them into
// containers. Piece-type products skip that step entirely.
package product
