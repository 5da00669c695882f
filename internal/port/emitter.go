package port

import "gasplit/internal/domain"

// Emitter serializes per-category units to output artifacts. Only
// categories with at least one unit produce an artifact.
type Emitter interface {
	Emit(categories []domain.CategoryUnits) ([]domain.ModuleCount, error)
}
