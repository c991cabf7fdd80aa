package cart

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrLineIsNotConstructed is returned when a Line was not created via NewLine.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

	// ErrProductNameIsRequired is returned when a cart line has no product name.
	ErrProductNameIsRequired = errs.NewValueIsRequiredError("product name")

	// ErrQuantityIsRequired is returned when a cart line quantity is zero.
	ErrQuantityIsRequired = errs.NewValueIsRequiredError("quantity")
)

// Line is a value object describing one product in a cart: identity and name
// of the product, whether it is weight-type, the price snapshot, and the
// desired quantity.
type Line struct { //nolint:recvcheck //using for validation
	productID    kernel.UUID
	productName  string
	isWeightType bool
	price        kernel.Money
	quantity     kernel.Quantity

	guard kernel.ConstructorGuard
}

// NewLine creates a cart line with validation. Quantity must be positive.
func NewLine(
	productID kernel.UUID,
	productName string,
	isWeightType bool,
	price kernel.Money,
	quantity kernel.Quantity,
) (Line, error) {
	line := Line{
		isWeightType: isWeightType,
		guard:        kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setProductName(productName),
		line.setPrice(price),
		line.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line was created through the constructor.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ProductID returns the identifier of the product.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// ProductName returns the display name snapshotted at add time.
func (l Line) ProductName() string {
	return l.productName
}

// IsWeightType reports whether the product requires packing before containerization.
func (l Line) IsWeightType() bool {
	return l.isWeightType
}

// Price returns the price snapshot taken when the product was added.
func (l Line) Price() kernel.Money {
	return l.price
}

// Quantity returns the desired quantity.
func (l Line) Quantity() kernel.Quantity {
	return l.quantity
}

// TotalPrice returns round(price * quantity, 2) for the line.
func (l Line) TotalPrice() kernel.Money {
	return l.price.MulQuantity(l.quantity)
}

// withQuantity returns a copy of the line with a different quantity.
func (l Line) withQuantity(quantity kernel.Quantity) (Line, error) {
	out := l
	if err := out.setQuantity(quantity); err != nil {
		return Line{}, err
	}
	return out, nil
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setProductName(productName string) error {
	if productName == "" {
		return ErrProductNameIsRequired
	}
	l.productName = productName
	return nil
}

func (l *Line) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	l.price = price
	return nil
}

func (l *Line) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	if quantity.IsZero() {
		return ErrQuantityIsRequired
	}
	l.quantity = quantity
	return nil
}
