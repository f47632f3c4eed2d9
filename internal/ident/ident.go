// Package ident generates and formats the random UUIDs used to identify
// machines, tables and other engine objects.
package ident

import "github.com/google/uuid"

// New returns a fresh random (version 4) UUID.
func New() uuid.UUID {
	return uuid.New()
}

// ToString renders a UUID in the canonical hyphenated form.
func ToString(id uuid.UUID) string {
	return id.String()
}

// FromString parses a UUID from its canonical textual form.
func FromString(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
