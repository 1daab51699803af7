package pkguid

import "github.com/google/uuid"

// StringID generates opaque string identifiers.
type StringID interface {
	Generate() string
}

type uuidID struct{}

func NewUUID() StringID {
	return uuidID{}
}

func (uuidID) Generate() string {
	return uuid.NewString()
}
