package ai

import "context"

type static struct{}

// NewStatic returns a Generator that always answers with the fallback
// content. Used when no API key is configured, and in tests.
func NewStatic() Generator {
	return static{}
}

func (static) JobDescription(ctx context.Context, workType, location string) string {
	return FallbackDescription
}

func (static) MaintenanceTips(ctx context.Context, equipmentName string) string {
	return FallbackTips
}

func (static) EquipmentImage(ctx context.Context, equipmentType, name string) string {
	return FallbackImageURL
}
