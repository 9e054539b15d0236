package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCoordinates(t *testing.T) {
	assert.NoError(t, ValidateCoordinates(0, 0))
	assert.NoError(t, ValidateCoordinates(-90, 180))
	assert.NoError(t, ValidateCoordinates(90, -180))
	assert.Error(t, ValidateCoordinates(90.1, 0))
	assert.Error(t, ValidateCoordinates(0, -180.1))
}

func TestValidateRole(t *testing.T) {
	for _, role := range []string{"FARMER", "WORKER", "PROVIDER"} {
		assert.NoError(t, ValidateRole(role))
	}
	assert.Error(t, ValidateRole("farmer"))
	assert.Error(t, ValidateRole(""))
}

func TestValidateJobStatus(t *testing.T) {
	for _, status := range []string{"OPEN", "FILLED", "COMPLETED", "CANCELLED"} {
		assert.NoError(t, ValidateJobStatus(status))
	}
	assert.Error(t, ValidateJobStatus("PAUSED"))
}

func TestValidateEquipmentType(t *testing.T) {
	for _, equipType := range []string{"TRACTOR", "HARVESTER", "SEEDER", "SPRAYER", "DRONE"} {
		assert.NoError(t, ValidateEquipmentType(equipType))
	}
	assert.Error(t, ValidateEquipmentType("tractor"))
	assert.Error(t, ValidateEquipmentType("SUBMARINE"))
}

func TestValidatePositiveInt(t *testing.T) {
	assert.NoError(t, ValidatePositiveInt(1, "wage"))
	assert.Error(t, ValidatePositiveInt(0, "wage"))
	assert.Error(t, ValidatePositiveInt(-5, "wage"))
}

func TestValidateNonNegativeFloat(t *testing.T) {
	assert.NoError(t, ValidateNonNegativeFloat(0, "rentPerDay"))
	assert.NoError(t, ValidateNonNegativeFloat(12.5, "rentPerDay"))
	assert.Error(t, ValidateNonNegativeFloat(-0.1, "rentPerDay"))
}

func TestValidateStringNotEmpty(t *testing.T) {
	assert.NoError(t, ValidateStringNotEmpty("x", "name"))
	assert.Error(t, ValidateStringNotEmpty("", "name"))
}
