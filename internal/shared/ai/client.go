package ai

import "context"

// Fallback values returned when the content service is unreachable.
// Mutations proceed with these; a collaborator failure is never fatal.
const (
	FallbackDescription = "Could not generate description automatically."
	FallbackTips        = "Maintenance tips unavailable."
	FallbackImageURL    = "https://images.unsplash.com/photo-1592601249767-a2f0a82753a6?q=80&w=600&auto=format&fit=crop"
)

// Generator produces best-effort marketplace content. Implementations
// must return a usable fallback instead of an error for every method.
type Generator interface {
	// JobDescription writes a short job description for a work type at
	// a location.
	JobDescription(ctx context.Context, workType, location string) string

	// MaintenanceTips returns short maintenance tips for a piece of
	// farming equipment.
	MaintenanceTips(ctx context.Context, equipmentName string) string

	// EquipmentImage returns an image reference for a piece of
	// equipment.
	EquipmentImage(ctx context.Context, equipmentType, name string) string
}
