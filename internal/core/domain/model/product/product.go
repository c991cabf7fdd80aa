package product

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrProductIsNotConstructed is returned when a Product instance was not created
	// through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is the catalog view the fulfillment core needs: a name to display
// on order lines, a unit type deciding the packing workflow, and the current
// price that gets snapshotted onto order lines at order creation.
//
// Catalog management itself (categories, matrices, stock) lives outside the
// core; this entity is read-only from the core's perspective.
type Product struct {
	id       kernel.UUID
	name     string
	unitType UnitType
	price    kernel.Money

	guard kernel.ConstructorGuard
}

// NewProduct creates a new Product with validation.
//
// Parameters:
//   - id: Unique identifier of the product (must be valid UUID)
//   - name: Display name (must not be empty)
//   - unitType: Piece or Weight
//   - price: Current price per unit
func NewProduct(id kernel.UUID, name string, unitType UnitType, price kernel.Money) (*Product, error) {
	product := &Product{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setUnitType(unitType),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// UnitType returns how the product is measured.
func (p *Product) UnitType() UnitType {
	return p.unitType
}

// IsWeightType reports whether order lines for this product require an
// explicit packing step before containerization.
func (p *Product) IsWeightType() bool {
	return p.unitType.IsWeight()
}

// Price returns the current price per unit.
func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setUnitType(unitType UnitType) error {
	if err := unitType.Validate(); err != nil {
		return err
	}
	p.unitType = unitType
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
