package dto

type CreateLinkRequest struct {
	ParentID int    `json:"parent_id"`
	ChildID  int    `json:"child_id"`
	RName    string `json:"r_name"`
}

type UpdateLinkRequest struct {
	RName string `json:"r_name"`
}

type LinkResponse struct {
	ID         int    `json:"id"`
	ParentID   int    `json:"parent_id"`
	ParentType string `json:"parent_type"`
	ChildType  string `json:"child_type"`
	RName      string `json:"r_name"`
	ChildID    int    `json:"child_id"`
}
