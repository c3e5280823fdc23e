// pkg/entity/entity.go
package entity

import "sync/atomic"

// ID is a unique identifier for an entity
type ID uint64

var lastID atomic.Uint64

// GenerateID returns a process-unique, non-zero ID.
func GenerateID() ID {
	return ID(lastID.Add(1))
}
