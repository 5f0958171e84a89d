package http

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Node type names embedded in global IDs.
const (
	DeliveryJobType = "DeliveryJobType"
	VehicleType     = "VehicleType"
	AddressType     = "AddressType"
)

var errMalformedGlobalID = errors.New("malformed global id")

// ToGlobalID returns the opaque identifier base64("<typeName>:<key>").
func ToGlobalID(typeName, key string) string {
	return base64.StdEncoding.EncodeToString([]byte(typeName + ":" + key))
}

// FromGlobalID splits a global ID into its type name and key. URL-safe
// base64 is accepted too since standard base64 may contain '/'.
func FromGlobalID(globalID string) (string, string, error) {
	raw, err := base64.StdEncoding.DecodeString(globalID)
	if err != nil {
		raw, err = base64.URLEncoding.DecodeString(globalID)
	}
	if err != nil {
		return "", "", errMalformedGlobalID
	}

	typeName, key, ok := strings.Cut(string(raw), ":")
	if !ok || typeName == "" || key == "" {
		return "", "", errMalformedGlobalID
	}

	return typeName, key, nil
}

// jobIDFromGlobalID decodes a DeliveryJobType global ID.
func jobIDFromGlobalID(paramName, globalID string) (kernel.UUID, error) {
	typeName, key, err := FromGlobalID(globalID)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	if typeName != DeliveryJobType {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("expected a %s id, got %s", DeliveryJobType, typeName),
		)
	}

	id, err := kernel.UUIDFromString(key)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}
