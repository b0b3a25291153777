package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateObjectRequest struct {
	Name   string    `json:"name"`
	TypeID uuid.UUID `json:"type_id"`
	// CreatedBy defaults to the authenticated user when auth is enabled.
	CreatedBy string `json:"created_by,omitempty"`
}

type UpdateObjectRequest struct {
	Name      *string    `json:"name,omitempty"`
	TypeID    *uuid.UUID `json:"type_id,omitempty"`
	CreatedBy *string    `json:"created_by,omitempty"`
}

type ObjectResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Version   int       `json:"version"`
	TypeID    uuid.UUID `json:"type_id"`
	CreatedOn time.Time `json:"created_on"`
	CreatedBy string    `json:"created_by"`
}
