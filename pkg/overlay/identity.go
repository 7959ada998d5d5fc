package overlay

import "github.com/google/uuid"

// Identity is an opaque key naming one attached dialog. Identities are
// allocated at attach time, are stable for the life of the Modal handle,
// and are never reused.
type Identity string

// NewIdentity returns a fresh collision-resistant identity.
func NewIdentity() Identity {
	return Identity(uuid.NewString())
}
