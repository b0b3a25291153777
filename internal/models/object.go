package models

import (
	"time"

	"github.com/google/uuid"
)

// Object is a node in the hierarchical dataset. Identifiers are integers
// assigned by the database; the type reference is a UUID.
type Object struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Version   int       `json:"version"`
	TypeID    uuid.UUID `json:"type_id"`
	CreatedOn time.Time `json:"created_on"`
	CreatedBy string    `json:"created_by"`
}
