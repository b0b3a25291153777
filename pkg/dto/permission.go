package dto

type CreatePermissionRequest struct {
	ObjectID        int    `json:"object_id"`
	User            string `json:"user"`
	PermissionLevel string `json:"permission_level"`
}

type UpdatePermissionRequest struct {
	PermissionLevel string `json:"permission_level"`
}

type PermissionResponse struct {
	ID              int    `json:"id"`
	ObjectID        int    `json:"object_id"`
	User            string `json:"user"`
	PermissionLevel string `json:"permission_level"`
}

type PermissionCheckResponse struct {
	ObjectID        int    `json:"object_id"`
	User            string `json:"user"`
	Granted         bool   `json:"granted"`
	PermissionLevel string `json:"permission_level,omitempty"`
}
