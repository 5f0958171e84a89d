package vehicle

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// MaxRegistrationLength matches the varchar(10) primary key column.
const MaxRegistrationLength = 10

var ErrRegistrationIsNotConstructed = errors.New("Registration must be created via NewRegistration")

// Registration is the vehicle's registration number and primary identifier.
type Registration struct {
	value string
	guard guard.ConstructorGuard
}

// NewRegistration trims surrounding whitespace and checks the length.
// Case is preserved: "abc123" and "ABC123" are different vehicles.
func NewRegistration(value string) (Registration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Registration{}, errs.NewValueIsRequiredError("registration")
	}
	if n := utf8.RuneCountInString(value); n > MaxRegistrationLength {
		return Registration{}, errs.NewValueIsInvalidErrorWithCause(
			"registration",
			fmt.Errorf("%d characters exceed the limit of %d", n, MaxRegistrationLength),
		)
	}

	return Registration{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (r Registration) Validate() error {
	return r.guard.Validate(ErrRegistrationIsNotConstructed)
}

func (r Registration) String() string {
	return r.value
}

func (r Registration) IsEqual(other Registration) bool {
	return r.value == other.value
}
