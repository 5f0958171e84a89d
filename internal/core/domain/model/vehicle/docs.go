// Package vehicle provides the Vehicle aggregate of the logistics domain.
//
// A vehicle is identified solely by its registration number. It has no other
// attributes and is never modified after creation; delivery jobs reference it
// by registration.
//
// Key business rules:
//   - Registrations are 1 to 10 characters after trimming surrounding spaces
//   - Registrations are unique (enforced by the repository as a primary key)
//   - Deleting a vehicle deletes every delivery job assigned to it
package vehicle
