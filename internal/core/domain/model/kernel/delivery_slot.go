package kernel

import (
	"errors"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrDeliverySlotIsNotConstructed = errors.New("DeliverySlot must be created via NewDeliverySlot")

// DeliverySlot is the window a delivery is scheduled for. Both bounds are
// required. Their order is left to the caller and completion times are never
// checked against the window.
type DeliverySlot struct {
	startsAt time.Time
	endsAt   time.Time
	guard    guard.ConstructorGuard
}

// NewDeliverySlot keeps both timestamps exactly as given, including their location.
func NewDeliverySlot(startsAt, endsAt time.Time) (DeliverySlot, error) {
	var errList []error
	if startsAt.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("delivery_slot_starts_at"))
	}
	if endsAt.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("delivery_slot_ends_at"))
	}
	if err := errors.Join(errList...); err != nil {
		return DeliverySlot{}, err
	}

	return DeliverySlot{
		startsAt: startsAt,
		endsAt:   endsAt,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (s DeliverySlot) Validate() error {
	return s.guard.Validate(ErrDeliverySlotIsNotConstructed)
}

func (s DeliverySlot) StartsAt() time.Time {
	return s.startsAt
}

func (s DeliverySlot) EndsAt() time.Time {
	return s.endsAt
}

// IsEqual compares both bounds as instants.
func (s DeliverySlot) IsEqual(other DeliverySlot) bool {
	return s.startsAt.Equal(other.startsAt) && s.endsAt.Equal(other.endsAt)
}
