package thermal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pwmfand/pwmfand/internal/util"
)

const (
	// SysfsPath is where the kernel exposes thermal zones and cooling devices.
	SysfsPath = "/sys/class/thermal"

	CoolingDevicePrefix = "cooling_device"
	ThermalZonePrefix   = "thermal_zone"

	// cooling device type of the 5V PWM fan header on supported boards
	PwmFanType = "pwm-fan"
)

// CoolingDevice describes a /sys/class/thermal cooling_device* entry.
type CoolingDevice struct {
	Name string
	Type string
	Path string

	CurState int
	MaxState int
}

// ThermalZone describes a /sys/class/thermal thermal_zone* entry.
type ThermalZone struct {
	Name string
	Type string
	Path string

	// Input is the path of the milli-degree temp attribute.
	Input string

	// Temperature is the reading taken at discovery time, in °C.
	Temperature float64
}

// FindCoolingDevices lists all cooling devices below the given sysfs root.
func FindCoolingDevices(root string) []CoolingDevice {
	var devices []CoolingDevice

	entries, err := os.ReadDir(root)
	if err != nil {
		return devices
	}

	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), CoolingDevicePrefix) {
			continue
		}
		path := filepath.Join(root, entry.Name())

		deviceType, err := readTrimmedString(filepath.Join(path, "type"))
		if err != nil {
			continue
		}

		curState, _ := util.ReadIntFromFile(filepath.Join(path, "cur_state"))
		maxState, _ := util.ReadIntFromFile(filepath.Join(path, "max_state"))

		devices = append(devices, CoolingDevice{
			Name:     entry.Name(),
			Type:     deviceType,
			Path:     path,
			CurState: curState,
			MaxState: maxState,
		})
	}

	return devices
}

// FindPwmFanDevice returns the path of the first cooling device of type
// pwm-fan below the given sysfs root.
func FindPwmFanDevice(root string) (string, error) {
	for _, device := range FindCoolingDevices(root) {
		if device.Type == PwmFanType {
			return device.Path, nil
		}
	}
	return "", fmt.Errorf("no cooling device of type %s found in %s", PwmFanType, root)
}

// FindThermalZones lists all thermal zones with a readable temperature
// below the given sysfs root.
func FindThermalZones(root string) []ThermalZone {
	var zones []ThermalZone

	entries, err := os.ReadDir(root)
	if err != nil {
		return zones
	}

	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), ThermalZonePrefix) {
			continue
		}
		path := filepath.Join(root, entry.Name())

		input := filepath.Join(path, "temp")
		milliDegrees, err := util.ReadIntFromFile(input)
		if err != nil {
			continue
		}

		zoneType, _ := readTrimmedString(filepath.Join(path, "type"))

		zones = append(zones, ThermalZone{
			Name:        entry.Name(),
			Type:        zoneType,
			Path:        path,
			Input:       input,
			Temperature: float64(milliDegrees) / 1000.0,
		})
	}

	return zones
}

// FindTempInput returns the temp attribute path of the first thermal zone
// with a readable temperature below the given sysfs root.
func FindTempInput(root string) (string, error) {
	zones := FindThermalZones(root)
	if len(zones) <= 0 {
		return "", fmt.Errorf("no valid thermal zone found in %s", root)
	}
	return zones[0].Input, nil
}

func readTrimmedString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
