package models

import (
	"time"
)

// Attribute is a named value attached to an object. (ObjectID, Name) is
// unique; setting an existing name overwrites the value.
type Attribute struct {
	ID        int       `json:"id"`
	ObjectID  int       `json:"object_id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}
