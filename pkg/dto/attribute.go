package dto

import (
	"time"
)

type SetAttributeRequest struct {
	ObjectID int    `json:"object_id"`
	Name     string `json:"name"`
	Value    string `json:"value"`
}

type UpdateAttributeRequest struct {
	Value string `json:"value"`
}

type AttributeResponse struct {
	ID        int       `json:"id"`
	ObjectID  int       `json:"object_id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}
