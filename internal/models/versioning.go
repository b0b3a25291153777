package models

import (
	"encoding/json"
	"time"
)

// Versioning is an immutable snapshot of an object's state. Versions are
// integers assigned per object with no gaps; (ObjectID, Version) is unique.
type Versioning struct {
	ID        int             `json:"id"`
	ObjectID  int             `json:"object_id"`
	Version   int             `json:"version"`
	Snapshot  json.RawMessage `json:"snapshot"`
	CreatedAt time.Time       `json:"created_at"`
}
