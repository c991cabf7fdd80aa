package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrProductNameIsRequired is returned when an order line has no product name.
	ErrProductNameIsRequired = errs.NewValueIsRequiredError("product name")

	// ErrOrderedQuantityIsRequired is returned when an order line quantity is zero.
	ErrOrderedQuantityIsRequired = errs.NewValueIsRequiredError("ordered quantity")

	// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was not
	// created through one of the constructor functions.
	ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem or RestoreOrderItem")
)

// OrderItem represents one line of an order: a product, the price snapshot
// taken at order creation, the ordered quantity, the packed flag, and the
// containers the quantity has been physically placed into.
//
// OrderItem is the keeper of the central overflow invariant: the sum of its
// containers' quantities never exceeds the ordered quantity. Every container
// mutation re-validates that invariant before writing.
//
// The line is immutable after creation except for the packed flag and the
// container set. Piece-type lines are born packed (no weighing step);
// weight-type lines are born unpacked and must be marked packed before a
// sorter may containerize them.
type OrderItem struct {
	id           kernel.UUID
	productID    kernel.UUID
	productName  string
	isWeightType bool
	price        kernel.Money
	quantity     kernel.Quantity
	packed       bool
	containers   []*Container

	guard kernel.ConstructorGuard
}

// NewOrderItem creates a new order line. The packed flag is derived from the
// unit type: piece-type lines start packed, weight-type lines do not.
func NewOrderItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	isWeightType bool,
	price kernel.Money,
	quantity kernel.Quantity,
) (*OrderItem, error) {
	item := &OrderItem{
		isWeightType: isWeightType,
		packed:       !isWeightType,
		guard:        kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setProductName(productName),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreOrderItem reconstructs an order line from persistent storage,
// including its packed flag and containers.
func RestoreOrderItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	isWeightType bool,
	price kernel.Money,
	quantity kernel.Quantity,
	packed bool,
	containers []*Container,
) (*OrderItem, error) {
	item, err := NewOrderItem(id, productID, productName, isWeightType, price, quantity)
	if err != nil {
		return nil, err
	}

	for _, container := range containers {
		if err = container.Validate(); err != nil {
			return nil, err
		}
	}

	item.packed = packed
	item.containers = containers
	return item, nil
}

// Validate ensures the OrderItem was properly constructed.
func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// IsEqual compares two order lines by their unique identifiers.
func (i *OrderItem) IsEqual(other *OrderItem) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the line's unique identifier.
func (i *OrderItem) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the ordered product.
func (i *OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name snapshotted at order creation.
func (i *OrderItem) ProductName() string {
	return i.productName
}

// IsWeightType reports whether the line requires packing before containerization.
func (i *OrderItem) IsWeightType() bool {
	return i.isWeightType
}

// Price returns the per-unit price snapshot taken at order creation.
func (i *OrderItem) Price() kernel.Money {
	return i.price
}

// Quantity returns the ordered quantity.
func (i *OrderItem) Quantity() kernel.Quantity {
	return i.quantity
}

// IsPacked reports whether the physical weighing/portioning step is complete.
func (i *OrderItem) IsPacked() bool {
	return i.packed
}

// Containers returns a copy of the line's containers.
func (i *OrderItem) Containers() []*Container {
	out := make([]*Container, len(i.containers))
	copy(out, i.containers)
	return out
}

// TotalPlaced returns the sum of the containers' quantities, at two decimal
// places. This is the quantity-ledger side of the overflow invariant.
func (i *OrderItem) TotalPlaced() kernel.Quantity {
	total := kernel.ZeroQuantity()
	for _, container := range i.containers {
		total = total.Add(container.Quantity())
	}
	return total
}

// Missing returns how much of the ordered quantity is still outside
// containers. Never negative while the overflow invariant holds.
func (i *OrderItem) Missing() kernel.Quantity {
	return i.quantity.Sub(i.TotalPlaced())
}

// Cost returns round(price * quantity, 2) for the line.
func (i *OrderItem) Cost() kernel.Money {
	return i.price.MulQuantity(i.quantity)
}

// IsFullyAssembled reports whether the containerized quantity equals the
// ordered quantity exactly, at two-decimal precision.
func (i *OrderItem) IsFullyAssembled() bool {
	return i.TotalPlaced().IsEqual(i.quantity)
}

// MarkPacked flips the packed flag on. Idempotent.
func (i *OrderItem) MarkPacked() {
	i.packed = true
}

// MarkUnpacked flips the packed flag off. Idempotent.
func (i *OrderItem) MarkUnpacked() {
	i.packed = false
}

// PlaceInContainer places quantity of the line into the container with the
// given number, creating the container if the line has no container with
// that number yet and incrementing it otherwise.
//
// Business rules:
//   - The line must be packed (ErrItemNotPacked otherwise)
//   - quantity must not exceed Missing() (ErrContainerOverflow otherwise)
//
// On any error the container set is left unchanged.
func (i *OrderItem) PlaceInContainer(number string, quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}

	if !i.packed {
		return ErrItemNotPacked
	}

	if quantity.GreaterThan(i.Missing()) {
		return ErrContainerOverflow
	}

	if existing := i.findContainerByNumber(number); existing != nil {
		return existing.addQuantity(quantity)
	}

	container, err := newContainer(kernel.NewUUID(), number, quantity)
	if err != nil {
		return err
	}

	i.containers = append(i.containers, container)
	return nil
}

// ChangeContainerQuantity replaces the quantity held by the container with
// an absolute new value (not an increment).
//
// The overflow rule accounts for the quantity the container already holds:
// the new value must not exceed Missing() plus the container's current
// quantity. On any error the container is left unchanged.
func (i *OrderItem) ChangeContainerQuantity(containerID kernel.UUID, quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}

	container := i.findContainerByID(containerID)
	if container == nil {
		return ErrContainerNotFound
	}

	if quantity.GreaterThan(i.Missing().Add(container.Quantity())) {
		return ErrContainerOverflow
	}

	return container.setQuantity(quantity)
}

// RemoveContainer deletes the container from the line, freeing its quantity.
func (i *OrderItem) RemoveContainer(containerID kernel.UUID) error {
	for idx, container := range i.containers {
		if container.ID().IsEqual(containerID) {
			i.containers = append(i.containers[:idx], i.containers[idx+1:]...)
			return nil
		}
	}
	return ErrContainerNotFound
}

// hasContainer reports whether a container with the given ID belongs to this line.
func (i *OrderItem) hasContainer(containerID kernel.UUID) bool {
	return i.findContainerByID(containerID) != nil
}

func (i *OrderItem) findContainerByNumber(number string) *Container {
	for _, container := range i.containers {
		if container.Number() == number {
			return container
		}
	}
	return nil
}

func (i *OrderItem) findContainerByID(containerID kernel.UUID) *Container {
	for _, container := range i.containers {
		if container.ID().IsEqual(containerID) {
			return container
		}
	}
	return nil
}

func (i *OrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *OrderItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *OrderItem) setProductName(productName string) error {
	if productName == "" {
		return ErrProductNameIsRequired
	}
	i.productName = productName
	return nil
}

func (i *OrderItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *OrderItem) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	if quantity.IsZero() {
		return ErrOrderedQuantityIsRequired
	}
	i.quantity = quantity
	return nil
}
