package thermal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func createSysfs(t *testing.T) string {
	root := t.TempDir()

	fanDir := filepath.Join(root, "cooling_device0")
	assert.NoError(t, os.MkdirAll(fanDir, 0755))
	assert.NoError(t, os.WriteFile(filepath.Join(fanDir, "type"), []byte("pwm-fan\n"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(fanDir, "cur_state"), []byte("1\n"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(fanDir, "max_state"), []byte("4\n"), 0644))

	otherDir := filepath.Join(root, "cooling_device1")
	assert.NoError(t, os.MkdirAll(otherDir, 0755))
	assert.NoError(t, os.WriteFile(filepath.Join(otherDir, "type"), []byte("Processor\n"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(otherDir, "cur_state"), []byte("0\n"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(otherDir, "max_state"), []byte("3\n"), 0644))

	zoneDir := filepath.Join(root, "thermal_zone0")
	assert.NoError(t, os.MkdirAll(zoneDir, 0755))
	assert.NoError(t, os.WriteFile(filepath.Join(zoneDir, "type"), []byte("cpu-thermal\n"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(zoneDir, "temp"), []byte("45000\n"), 0644))

	// zone without a readable temperature must be skipped
	brokenZoneDir := filepath.Join(root, "thermal_zone1")
	assert.NoError(t, os.MkdirAll(brokenZoneDir, 0755))
	assert.NoError(t, os.WriteFile(filepath.Join(brokenZoneDir, "temp"), []byte("invalid\n"), 0644))

	return root
}

func TestFindCoolingDevices(t *testing.T) {
	// GIVEN
	root := createSysfs(t)

	// WHEN
	devices := FindCoolingDevices(root)

	// THEN
	assert.Len(t, devices, 2)
	assert.Equal(t, "cooling_device0", devices[0].Name)
	assert.Equal(t, "pwm-fan", devices[0].Type)
	assert.Equal(t, 1, devices[0].CurState)
	assert.Equal(t, 4, devices[0].MaxState)
}

func TestFindPwmFanDevice(t *testing.T) {
	// GIVEN
	root := createSysfs(t)

	// WHEN
	path, err := FindPwmFanDevice(root)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "cooling_device0"), path)
}

func TestFindPwmFanDeviceMissing(t *testing.T) {
	// WHEN
	_, err := FindPwmFanDevice(t.TempDir())

	// THEN
	assert.Error(t, err)
}

func TestFindThermalZones(t *testing.T) {
	// GIVEN
	root := createSysfs(t)

	// WHEN
	zones := FindThermalZones(root)

	// THEN
	assert.Len(t, zones, 1)
	assert.Equal(t, "thermal_zone0", zones[0].Name)
	assert.Equal(t, "cpu-thermal", zones[0].Type)
	assert.Equal(t, 45.0, zones[0].Temperature)
}

func TestFindTempInput(t *testing.T) {
	// GIVEN
	root := createSysfs(t)

	// WHEN
	input, err := FindTempInput(root)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "thermal_zone0", "temp"), input)
}

func TestFindTempInputMissing(t *testing.T) {
	// WHEN
	_, err := FindTempInput(t.TempDir())

	// THEN
	assert.Error(t, err)
}
