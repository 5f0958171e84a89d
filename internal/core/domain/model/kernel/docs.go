// Package kernel provides the shared value objects of the logistics domain.
//
// The package includes:
//   - UUID: identifier of delivery jobs and addresses
//   - Money: a USD amount with two decimal places, backed by shopspring/decimal
//   - DeliverySlot: the time window a delivery is expected in
//
// Values are immutable once constructed. Zero values are rejected by Validate
// so that a forgotten constructor call is caught before anything is persisted.
package kernel
