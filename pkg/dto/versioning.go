package dto

import (
	"encoding/json"
	"time"
)

type CreateVersioningRequest struct {
	ObjectID int             `json:"object_id"`
	Version  int             `json:"version"`
	Snapshot json.RawMessage `json:"snapshot,omitempty"`
}

type UpdateVersioningRequest struct {
	Snapshot json.RawMessage `json:"snapshot"`
}

// CreateNextVersionRequest asks the server to assign the next version
// number for the object.
type CreateNextVersionRequest struct {
	Snapshot json.RawMessage `json:"snapshot,omitempty"`
}

type VersioningResponse struct {
	ID        int             `json:"id"`
	ObjectID  int             `json:"object_id"`
	Version   int             `json:"version"`
	Snapshot  json.RawMessage `json:"snapshot"`
	CreatedAt time.Time       `json:"created_at"`
}
