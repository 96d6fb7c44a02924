// Package uuid wraps google/uuid so that UUIDs can be bound from URI and
// query parameters with gin.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID embeds google/uuid's UUID to add parameter binding.
type UUID struct {
	google_uuid.UUID
}

// Nil is the zero UUID.
var Nil UUID

// New returns a random UUID.
func New() UUID {
	return UUID{google_uuid.New()}
}

// UnmarshalParam binds a URI or query parameter. An unset parameter binds
// to the Nil UUID so that an empty filter value does not error.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
