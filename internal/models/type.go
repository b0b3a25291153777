package models

import (
	"github.com/google/uuid"
)

type Type struct {
	ID          uuid.UUID `json:"id"`
	TypeName    string    `json:"type_name"`
	Description *string   `json:"description,omitempty"`
}
