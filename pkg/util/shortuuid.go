package util

import (
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// NewUUID returns a new base58 encoded UUID.
// Entity IDs are built from it with a type prefix, e.g. ent_, ak_, sess_,
// vrf_, doc_ and whk_.
func NewUUID() string {
	id := uuid.New()
	return base58.Encode(id[:])
}
