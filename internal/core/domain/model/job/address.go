package job

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// AddressFields carries the user supplied parts of a US delivery address.
type AddressFields struct {
	Recipient      string
	StreetAddress  string
	StreetAddress2 string
	City           string
	State          string
	ZipCode        string
}

// Address is a delivery destination. It is immutable and owned by exactly one job.
type Address struct {
	id     kernel.UUID
	fields AddressFields

	isConstructed bool
}

// NewAddress validates and trims fields. StreetAddress2 is optional; State
// must be a two-letter code.
//
// Example:
//
//	addr, err := job.NewAddress(kernel.NewUUID(), job.AddressFields{
//	    Recipient:     "Jane Doe",
//	    StreetAddress: "1901 W Madison St",
//	    City:          "Phoenix",
//	    State:         "AZ",
//	    ZipCode:       "85009",
//	})
func NewAddress(id kernel.UUID, fields AddressFields) (Address, error) {
	fields = AddressFields{
		Recipient:      strings.TrimSpace(fields.Recipient),
		StreetAddress:  strings.TrimSpace(fields.StreetAddress),
		StreetAddress2: strings.TrimSpace(fields.StreetAddress2),
		City:           strings.TrimSpace(fields.City),
		State:          strings.TrimSpace(fields.State),
		ZipCode:        strings.TrimSpace(fields.ZipCode),
	}

	if err := errors.Join(
		id.Validate(),
		requiredText("recipient", fields.Recipient, 100),
		requiredText("street_address", fields.StreetAddress, 100),
		optionalText("street_address_2", fields.StreetAddress2, 100),
		requiredText("city", fields.City, 50),
		validateState(fields.State),
		requiredText("zip_code", fields.ZipCode, 10),
	); err != nil {
		return Address{}, err
	}

	return Address{id: id, fields: fields, isConstructed: true}, nil
}

func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

func (a Address) ID() kernel.UUID {
	return a.id
}

func (a Address) Fields() AddressFields {
	return a.fields
}

func (a Address) Recipient() string {
	return a.fields.Recipient
}

func (a Address) StreetAddress() string {
	return a.fields.StreetAddress
}

func (a Address) StreetAddress2() string {
	return a.fields.StreetAddress2
}

func (a Address) City() string {
	return a.fields.City
}

func (a Address) State() string {
	return a.fields.State
}

func (a Address) ZipCode() string {
	return a.fields.ZipCode
}

func (a Address) String() string {
	return a.fields.StreetAddress
}

func requiredText(name, value string, maxLen int) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return optionalText(name, value, maxLen)
}

func optionalText(name, value string, maxLen int) error {
	if n := utf8.RuneCountInString(value); n > maxLen {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d characters exceed the limit of %d", n, maxLen))
	}
	return nil
}

func validateState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	if utf8.RuneCountInString(state) != 2 {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a two-letter code", state))
	}
	return nil
}
