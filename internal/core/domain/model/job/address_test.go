package job_test

import (
	"strings"
	"testing"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddressFields() job.AddressFields {
	return job.AddressFields{
		Recipient:     "Jane Doe",
		StreetAddress: "1901 W Madison St",
		City:          "Phoenix",
		State:         "AZ",
		ZipCode:       "85009",
	}
}

func TestNewAddress(t *testing.T) {
	t.Run("should create address and trim fields", func(t *testing.T) {
		id := kernel.NewUUID()
		fields := validAddressFields()
		fields.Recipient = "  Jane Doe "
		fields.StreetAddress2 = " Suite 4 "

		addr, err := job.NewAddress(id, fields)

		require.NoError(t, err)
		require.NoError(t, addr.Validate())
		assert.True(t, addr.ID().IsEqual(id))
		assert.Equal(t, "Jane Doe", addr.Recipient())
		assert.Equal(t, "1901 W Madison St", addr.StreetAddress())
		assert.Equal(t, "Suite 4", addr.StreetAddress2())
		assert.Equal(t, "Phoenix", addr.City())
		assert.Equal(t, "AZ", addr.State())
		assert.Equal(t, "85009", addr.ZipCode())
	})

	t.Run("should accept empty second street line", func(t *testing.T) {
		addr, err := job.NewAddress(kernel.NewUUID(), validAddressFields())

		require.NoError(t, err)
		assert.Empty(t, addr.StreetAddress2())
	})

	t.Run("should report every missing field", func(t *testing.T) {
		_, err := job.NewAddress(kernel.NewUUID(), job.AddressFields{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, name := range []string{"recipient", "street_address", "city", "state", "zip_code"} {
			assert.Contains(t, err.Error(), "value is required: "+name)
		}
	})

	t.Run("should reject state that is not two letters", func(t *testing.T) {
		fields := validAddressFields()
		fields.State = "ARZ"

		_, err := job.NewAddress(kernel.NewUUID(), fields)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "not a two-letter code")
	})

	t.Run("should reject overlong fields", func(t *testing.T) {
		fields := validAddressFields()
		fields.City = strings.Repeat("a", 51)
		fields.ZipCode = "12345678901"

		_, err := job.NewAddress(kernel.NewUUID(), fields)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "value is invalid: city")
		assert.Contains(t, err.Error(), "value is invalid: zip_code")
	})

	t.Run("should fail with zero UUID", func(t *testing.T) {
		_, err := job.NewAddress(kernel.UUID{}, validAddressFields())

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestAddress_Validate(t *testing.T) {
	var addr job.Address

	require.ErrorIs(t, addr.Validate(), job.ErrAddressIsNotConstructed)
}
