package validation

import (
	"errors"
	"fmt"
)

// ValidateCoordinates validates latitude and longitude values
func ValidateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return errors.New("latitude must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

// ValidateRole validates that a role is one of the allowed values
func ValidateRole(role string) error {
	validRoles := []string{"FARMER", "WORKER", "PROVIDER"}
	for _, validRole := range validRoles {
		if role == validRole {
			return nil
		}
	}
	return fmt.Errorf("invalid role: must be one of %v", validRoles)
}

// ValidateJobStatus validates that a status is a known value. Any
// transition between known statuses is allowed.
func ValidateJobStatus(status string) error {
	validStatuses := []string{"OPEN", "FILLED", "COMPLETED", "CANCELLED"}
	for _, validStatus := range validStatuses {
		if status == validStatus {
			return nil
		}
	}
	return fmt.Errorf("invalid job status: must be one of %v", validStatuses)
}

// ValidateEquipmentType validates that an equipment type is one of the
// known labels.
func ValidateEquipmentType(equipType string) error {
	validTypes := []string{"TRACTOR", "HARVESTER", "SEEDER", "SPRAYER", "DRONE"}
	for _, validType := range validTypes {
		if equipType == validType {
			return nil
		}
	}
	return fmt.Errorf("invalid equipment type: must be one of %v", validTypes)
}

// ValidatePositiveInt validates that an int is positive
func ValidatePositiveInt(value int, fieldName string) error {
	if value <= 0 {
		return fmt.Errorf("%s must be positive", fieldName)
	}
	return nil
}

// ValidateNonNegativeFloat validates that a float is non-negative
func ValidateNonNegativeFloat(value float64, fieldName string) error {
	if value < 0 {
		return fmt.Errorf("%s must be non-negative", fieldName)
	}
	return nil
}

// ValidateStringNotEmpty validates that a string is not empty
func ValidateStringNotEmpty(value, fieldName string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}
