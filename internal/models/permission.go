package models

type Permission struct {
	ID              int    `json:"id"`
	ObjectID        int    `json:"object_id"`
	User            string `json:"user"`
	PermissionLevel string `json:"permission_level"`
}

// PermissionCheck is the result of a permission lookup. A missing grant is
// not an error: Granted is false and Level is empty.
type PermissionCheck struct {
	ObjectID int    `json:"object_id"`
	User     string `json:"user"`
	Granted  bool   `json:"granted"`
	Level    string `json:"permission_level,omitempty"`
}
