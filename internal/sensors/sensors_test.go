package sensors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThermalZoneSensorGetValue(t *testing.T) {
	// GIVEN
	input := filepath.Join(t.TempDir(), "temp")
	err := os.WriteFile(input, []byte("45000\n"), 0644)
	assert.NoError(t, err)

	sensor := NewThermalZoneSensor("cpu", input)

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 45.0, value)
}

func TestThermalZoneSensorMovingAvg(t *testing.T) {
	// GIVEN
	input := filepath.Join(t.TempDir(), "temp")
	sensor := NewThermalZoneSensor("cpu", input)

	// WHEN
	for _, milliDegrees := range []string{"40000", "50000", "60000"} {
		err := os.WriteFile(input, []byte(milliDegrees), 0644)
		assert.NoError(t, err)
		_, err = sensor.GetValue()
		assert.NoError(t, err)
	}

	// THEN
	assert.Equal(t, 50.0, sensor.GetMovingAvg())
}

func TestThermalZoneSensorReadFailure(t *testing.T) {
	// GIVEN
	sensor := NewThermalZoneSensor("cpu", filepath.Join(t.TempDir(), "missing"))

	// WHEN
	_, err := sensor.GetValue()

	// THEN
	assert.Error(t, err)
}

func TestFileSensorGetValue(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "temperature")
	err := os.WriteFile(path, []byte("52500"), 0644)
	assert.NoError(t, err)

	sensor := NewFileSensor("file", path)

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 52.5, value)
}
