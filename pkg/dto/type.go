package dto

import (
	"github.com/google/uuid"
)

type CreateTypeRequest struct {
	TypeName    string  `json:"type_name"`
	Description *string `json:"description,omitempty"`
}

type UpdateTypeRequest struct {
	TypeName    *string `json:"type_name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type TypeResponse struct {
	ID          uuid.UUID `json:"id"`
	TypeName    string    `json:"type_name"`
	Description *string   `json:"description,omitempty"`
}
