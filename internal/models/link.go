package models

// Link is a directed, labeled parent-child edge between two objects.
// ParentType and ChildType are denormalized type names of the endpoints,
// resolved when the link is created.
type Link struct {
	ID         int    `json:"id"`
	ParentID   int    `json:"parent_id"`
	ParentType string `json:"parent_type"`
	ChildType  string `json:"child_type"`
	RName      string `json:"r_name"`
	ChildID    int    `json:"child_id"`
}
