package store

import (
	"fmt"

	"demo-api/internal/model"
)

// TagsNotFoundError reports the exact subset of supplied tag identifiers
// that did not resolve to existing tags. The operation that raised it
// persisted nothing.
type TagsNotFoundError struct {
	Missing []uint
}

func (e *TagsNotFoundError) Error() string {
	return fmt.Sprintf("tags not found: %v", e.Missing)
}

// missingTagIDs returns the ids from want that are absent from got, in
// input order, without duplicates.
func missingTagIDs(want []uint, got []model.Tag) []uint {
	found := make(map[uint]bool, len(got))
	for _, t := range got {
		found[t.ID] = true
	}
	var missing []uint
	seen := make(map[uint]bool, len(want))
	for _, id := range want {
		if !found[id] && !seen[id] {
			missing = append(missing, id)
			seen[id] = true
		}
	}
	return missing
}
