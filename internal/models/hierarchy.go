package models

// HierarchyNode is one node of an expanded hierarchy tree. Cycle is set
// when the object was already visited on the path from the root; such a
// node is not expanded further.
type HierarchyNode struct {
	Object   Object          `json:"object"`
	RName    string          `json:"r_name,omitempty"`
	Cycle    bool            `json:"cycle,omitempty"`
	Children []HierarchyNode `json:"children,omitempty"`
}
