package sensors

import (
	"github.com/asecurityteam/rolling"
	"github.com/pwmfand/pwmfand/internal/util"
)

// ThermalZoneSensor reads a /sys/class/thermal/thermal_zone*/temp file,
// which reports milli-degrees celsius.
type ThermalZoneSensor struct {
	ID    string
	Input string

	window *rolling.PointPolicy
}

func NewThermalZoneSensor(id string, input string) *ThermalZoneSensor {
	return &ThermalZoneSensor{
		ID:     id,
		Input:  input,
		window: util.CreateRollingWindow(MovingWindowSize),
	}
}

func (sensor *ThermalZoneSensor) GetId() string {
	return sensor.ID
}

func (sensor *ThermalZoneSensor) GetValue() (float64, error) {
	integer, err := util.ReadIntFromFile(sensor.Input)
	if err != nil {
		return 0, err
	}
	value := float64(integer) / 1000.0
	sensor.window.Append(value)
	return value, nil
}

func (sensor *ThermalZoneSensor) GetMovingAvg() float64 {
	return util.GetWindowAvg(sensor.window)
}
