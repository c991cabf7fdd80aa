package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the fulfillment workflow. It owns its lines
// and, through them, their containers, and derives its status from the
// aggregate container state.
//
// Order follows these invariants:
//   - Has at least one line (orders are never created from an empty cart)
//   - For every line, containerized quantity ≤ ordered quantity
//   - Status is a pure function of the lines' container state, except for
//     the explicit advance to Shipped
//   - No container or packing mutation is possible once Shipped
//
// All mutations are methods on the aggregate; callers never touch lines or
// containers directly. After every container mutation the aggregate
// recomputes its assembly state synchronously (no implicit event
// subscription), so status and assembledAt are always consistent with the
// container set when the aggregate is persisted.
type Order struct {
	id          kernel.UUID
	shopUserID  kernel.UUID
	createdAt   time.Time
	assembledAt *time.Time
	shippedAt   *time.Time
	status      Status
	items       []*OrderItem

	guard kernel.ConstructorGuard
}

// NewOrder creates an order from the lines of a checked-out cart.
//
// One OrderItem is created per cart line, snapshotting the line's price and
// name. Piece-type lines start packed, weight-type lines unpacked. The order
// starts in New status with createdAt = now.
//
// Returns ErrCartIsEmpty when lines is empty.
func NewOrder(id kernel.UUID, shopUserID kernel.UUID, lines []cart.Line, now time.Time) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrCartIsEmpty
	}

	order := &Order{
		createdAt: now,
		status:    New,
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setShopUserID(shopUserID),
	); err != nil {
		return nil, err
	}

	for _, line := range lines {
		item, err := NewOrderItem(
			kernel.NewUUID(),
			line.ProductID(),
			line.ProductName(),
			line.IsWeightType(),
			line.Price(),
			line.Quantity(),
		)
		if err != nil {
			return nil, err
		}
		order.items = append(order.items, item)
	}

	return order, nil
}

// RestoreOrder reconstructs an order aggregate from persistent storage.
func RestoreOrder(
	id kernel.UUID,
	shopUserID kernel.UUID,
	createdAt time.Time,
	assembledAt *time.Time,
	shippedAt *time.Time,
	status Status,
	items []*OrderItem,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartIsEmpty
	}

	order := &Order{
		createdAt:   createdAt,
		assembledAt: assembledAt,
		shippedAt:   shippedAt,
		status:      status,
		guard:       kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setShopUserID(shopUserID),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	order.items = items

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ShopUserID returns the shop user the order belongs to.
func (o *Order) ShopUserID() kernel.UUID {
	return o.shopUserID
}

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssembledAt returns when the order last became fully assembled,
// or nil while it is not.
func (o *Order) AssembledAt() *time.Time {
	return o.assembledAt
}

// ShippedAt returns when the order was shipped, or nil before shipment.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order's lines.
func (o *Order) Items() []*OrderItem {
	out := make([]*OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

// Item returns the line with the given ID, or ErrOrderItemNotFound.
func (o *Order) Item(itemID kernel.UUID) (*OrderItem, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, ErrOrderItemNotFound
}

// TotalCost returns the rounded sum of the line costs.
func (o *Order) TotalCost() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Cost())
	}
	return total
}

// IsFullyAssembled reports whether every line's containerized quantity equals
// its ordered quantity. Orders always have at least one line, so there is no
// vacuous-truth edge case in practice.
func (o *Order) IsFullyAssembled() bool {
	for _, item := range o.items {
		if !item.IsFullyAssembled() {
			return false
		}
	}
	return true
}

// HasUnpackedItems reports whether any line still awaits packing.
func (o *Order) HasUnpackedItems() bool {
	for _, item := range o.items {
		if !item.IsPacked() {
			return true
		}
	}
	return false
}

// PlaceContainer places quantity of the given line into the container with
// the given number (get-or-increment semantics), then recomputes the order's
// assembly state.
//
// Fails with ErrOrderAlreadyShipped on shipped orders, ErrOrderItemNotFound
// for unknown lines, and the line's own ErrItemNotPacked or
// ErrContainerOverflow. On error no state changes.
func (o *Order) PlaceContainer(itemID kernel.UUID, number string, quantity kernel.Quantity, now time.Time) error {
	if o.status.IsTerminal() {
		return ErrOrderAlreadyShipped
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}

	if err = item.PlaceInContainer(number, quantity); err != nil {
		return err
	}

	return o.refreshAssemblyState(now)
}

// ChangeContainerQuantity replaces a container's quantity with an absolute
// new value, then recomputes the order's assembly state.
func (o *Order) ChangeContainerQuantity(containerID kernel.UUID, quantity kernel.Quantity, now time.Time) error {
	if o.status.IsTerminal() {
		return ErrOrderAlreadyShipped
	}

	item := o.itemByContainer(containerID)
	if item == nil {
		return ErrContainerNotFound
	}

	if err := item.ChangeContainerQuantity(containerID, quantity); err != nil {
		return err
	}

	return o.refreshAssemblyState(now)
}

// RemoveContainer deletes a container from its line, freeing capacity, then
// recomputes the order's assembly state. Removing a container from a fully
// assembled order reverts it to Processed.
func (o *Order) RemoveContainer(containerID kernel.UUID, now time.Time) error {
	if o.status.IsTerminal() {
		return ErrOrderAlreadyShipped
	}

	item := o.itemByContainer(containerID)
	if item == nil {
		return ErrContainerNotFound
	}

	if err := item.RemoveContainer(containerID); err != nil {
		return err
	}

	return o.refreshAssemblyState(now)
}

// ApplyContainerToAllItems places the entire remaining missing quantity of
// every packed, not-yet-complete line into the container with the given
// number, then recomputes the order's assembly state once.
//
// Lines that are already fully containerized are reported in the first
// returned list; unpacked lines are reported in the second and never
// silently containerized. Both lists carry product names for caller-side
// messaging.
func (o *Order) ApplyContainerToAllItems(number string, now time.Time) (assembled []string, skipped []string, err error) {
	if o.status.IsTerminal() {
		return nil, nil, ErrOrderAlreadyShipped
	}

	for _, item := range o.items {
		if !item.IsPacked() {
			skipped = append(skipped, item.ProductName())
			continue
		}

		missing := item.Missing()
		if missing.IsZero() {
			assembled = append(assembled, item.ProductName())
			continue
		}

		if err = item.PlaceInContainer(number, missing); err != nil {
			return nil, nil, err
		}
	}

	if err = o.refreshAssemblyState(now); err != nil {
		return nil, nil, err
	}

	return assembled, skipped, nil
}

// MarkItemPacked marks one line as packed. Idempotent.
func (o *Order) MarkItemPacked(itemID kernel.UUID) error {
	if o.status.IsTerminal() {
		return ErrOrderAlreadyShipped
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}

	item.MarkPacked()
	return nil
}

// MarkItemUnpacked marks one line as not packed. Idempotent.
func (o *Order) MarkItemUnpacked(itemID kernel.UUID) error {
	if o.status.IsTerminal() {
		return ErrOrderAlreadyShipped
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}

	item.MarkUnpacked()
	return nil
}

// MarkAllItemsPacked marks every currently-unpacked line as packed.
// Used when a packer finishes all weight-type lines of an order at once.
// Already-packed lines are untouched.
func (o *Order) MarkAllItemsPacked() error {
	if o.status.IsTerminal() {
		return ErrOrderAlreadyShipped
	}

	for _, item := range o.items {
		if !item.IsPacked() {
			item.MarkPacked()
		}
	}
	return nil
}

// Ship advances the order to the terminal Shipped state and stamps shippedAt.
//
// Fails with ErrOrderNotAssembled while the order is Processed (outstanding
// containers). Calling Ship on an already shipped order is a no-op.
func (o *Order) Ship(now time.Time) error {
	if o.status == Shipped {
		return nil
	}

	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.shippedAt = &now
	return nil
}

// refreshAssemblyState is the explicit post-mutation hook invoked at the end
// of every container operation. It derives the status from the aggregate
// assembly state: fully assembled orders advance to Assembled (stamping
// assembledAt on the transition only), anything else falls to Processed
// with assembledAt cleared.
func (o *Order) refreshAssemblyState(now time.Time) error {
	fullyAssembled := o.IsFullyAssembled()

	newStatus, err := o.status.Recompute(fullyAssembled)
	if err != nil {
		return err
	}

	if newStatus == Assembled && o.status != Assembled {
		o.assembledAt = &now
	}
	if newStatus == Processed {
		o.assembledAt = nil
	}

	o.status = newStatus
	return nil
}

func (o *Order) itemByContainer(containerID kernel.UUID) *OrderItem {
	for _, item := range o.items {
		if item.hasContainer(containerID) {
			return item
		}
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setShopUserID(shopUserID kernel.UUID) error {
	if err := shopUserID.Validate(); err != nil {
		return err
	}
	o.shopUserID = shopUserID
	return nil
}
