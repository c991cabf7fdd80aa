package http

import "time"

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddCartItemRequest adds a product to a shop user's cart.
type AddCartItemRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Quantity  string `json:"quantity"`
}

// CreateOrderRequest checks out a shop user's cart. The client supplies the
// order id so a retried request cannot create a second order.
type CreateOrderRequest struct {
	OrderID string `json:"orderId"`
	UserID  string `json:"userId"`
}

// PlaceContainerRequest places part of an order line into a container.
type PlaceContainerRequest struct {
	Number   string `json:"number"`
	Quantity string `json:"quantity"`
}

// ChangeContainerRequest replaces a container's quantity with a new value.
type ChangeContainerRequest struct {
	Quantity string `json:"quantity"`
}

// BulkPlaceContainerRequest places every remaining packed line of an order
// into one container.
type BulkPlaceContainerRequest struct {
	Number string `json:"number"`
}

// BulkPlaceContainerResponse reports the lines the bulk placement could not
// act on: lines that were already fully containerized and lines that still
// await packing.
type BulkPlaceContainerResponse struct {
	AlreadyAssembled []string `json:"alreadyAssembled"`
	Skipped          []string `json:"skipped"`
}

// PackerOrder is one row of the packer worklist.
type PackerOrder struct {
	ID            string    `json:"id"`
	ShopName      string    `json:"shopName"`
	CreatedAt     time.Time `json:"createdAt"`
	UnpackedItems int       `json:"unpackedItems"`
}

// SorterOrder is one row of the sorter worklist.
type SorterOrder struct {
	ID        string    `json:"id"`
	ShopName  string    `json:"shopName"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ShopUserOrder is one row of a shop user's order history.
type ShopUserOrder struct {
	ID        string     `json:"id"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	ShippedAt *time.Time `json:"shippedAt,omitempty"`
	TotalCost string     `json:"totalCost"`
}
