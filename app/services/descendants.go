package services

import (
	"goshop/app/models"
)

// DescendantIDs computes every category id reachable from rootID by
// following parent_id edges, excluding rootID itself. The adjacency map
// is built once from the snapshot, so a call costs O(N) in the number of
// nodes regardless of tree depth. Ids already visited are skipped, so
// the walk terminates even if stored data somehow contains a cycle.
func DescendantIDs(rootID string, nodes []models.CategoryNode) map[string]bool {
	children := make(map[string][]string, len(nodes))
	for _, n := range nodes {
		if n.ParentID == nil {
			continue
		}
		children[*n.ParentID] = append(children[*n.ParentID], n.ID)
	}

	descendants := make(map[string]bool)
	queue := append([]string(nil), children[rootID]...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if id == rootID || descendants[id] {
			continue
		}
		descendants[id] = true
		queue = append(queue, children[id]...)
	}
	return descendants
}
