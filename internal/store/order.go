package store

import "resumeforge/pkg/models"

// DefaultSectionOrder returns the default ordered sequence of reorderable
// section ids. Basics is always rendered first and is not part of the
// sequence.
func DefaultSectionOrder() []models.SectionID {
	order := make([]models.SectionID, len(models.ReorderableSections))
	copy(order, models.ReorderableSections)
	return order
}

// Reorder removes `from` from its current position and reinserts it at the
// position currently occupied by `to` (array-move semantics, not a swap).
// It is a no-op when from == to or either id is absent. The returned slice is
// a new copy; the input is never mutated.
func Reorder(order []models.SectionID, from, to models.SectionID) []models.SectionID {
	result := make([]models.SectionID, len(order))
	copy(result, order)

	if from == to {
		return result
	}

	fromIdx, toIdx := -1, -1
	for i, id := range result {
		if id == from {
			fromIdx = i
		}
		if id == to {
			toIdx = i
		}
	}
	if fromIdx < 0 || toIdx < 0 {
		return result
	}

	// Remove, then reinsert so the moved id ends up at the slot `to`
	// occupied before the operation
	moved := result[fromIdx]
	result = append(result[:fromIdx], result[fromIdx+1:]...)

	insertIdx := toIdx
	result = append(result, "")
	copy(result[insertIdx+1:], result[insertIdx:])
	result[insertIdx] = moved

	return result
}

// ValidOrder reports whether the sequence is a permutation of exactly the
// reorderable section ids: no duplicates, no omissions, nothing foreign.
func ValidOrder(order []models.SectionID) bool {
	if len(order) != len(models.ReorderableSections) {
		return false
	}

	seen := make(map[models.SectionID]bool, len(order))
	for _, id := range order {
		if !models.IsReorderable(id) || seen[id] {
			return false
		}
		seen[id] = true
	}
	return true
}

// NormalizeOrder repairs an imported order sequence: foreign ids and
// duplicates are dropped, missing section ids are appended in default order.
func NormalizeOrder(order []models.SectionID) []models.SectionID {
	result := make([]models.SectionID, 0, len(models.ReorderableSections))
	seen := make(map[models.SectionID]bool, len(models.ReorderableSections))

	for _, id := range order {
		if models.IsReorderable(id) && !seen[id] {
			result = append(result, id)
			seen[id] = true
		}
	}
	for _, id := range models.ReorderableSections {
		if !seen[id] {
			result = append(result, id)
		}
	}
	return result
}
