package recordstore

import (
	"context"
	"fmt"
)

// Collection keys. These must stay bit-exact: deployments migrated from
// the browser build of the portal carry data under these names.
const (
	KeyUsers      = "hr_nexus_users"
	KeyCandidates = "hr_nexus_candidates"
	KeyCVs        = "hr_nexus_cvs"
	KeyActivity   = "hr_nexus_activity"
	KeySession    = "current_user"
)

// Store is durable, synchronous, string-keyed storage of JSON-serialized
// collections. Read and Write move whole collections; there is no partial
// update and no locking. Callers serialize their own read-modify-write
// sequences.
type Store interface {
	// Read decodes the value stored under key into out. An absent key
	// leaves out untouched (an empty collection). Unparseable stored
	// text is returned as an error, never silently discarded.
	Read(ctx context.Context, key string, out interface{}) error

	// Write replaces the value under key with the JSON encoding of
	// records. The replacement is atomic from the caller's perspective.
	Write(ctx context.Context, key string, records interface{}) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Config holds record store configuration.
type Config struct {
	Type     string // local, database, memory
	BasePath string // for local storage
	DSN      string // for database storage (postgres or mysql)
}

// NewStore creates a store instance based on configuration.
func NewStore(cfg Config) (Store, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStore(cfg)
	case "database":
		return NewDatabaseStore(cfg)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported store type: %s", cfg.Type)
	}
}
