package sensors

import (
	cmap "github.com/orcaman/concurrent-map/v2"
)

// size of the moving window kept by sensors for informational averaging
const MovingWindowSize = 10

var (
	SensorMap = cmap.New[Sensor]()
)

type Sensor interface {
	GetId() string

	// GetValue returns a fresh temperature reading in °C
	GetValue() (float64, error)

	// GetMovingAvg returns the average of the last readings. The control
	// decision always uses the fresh value; the average is informational.
	GetMovingAvg() float64
}
