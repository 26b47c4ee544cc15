package curve

import (
	"github.com/pwmfand/pwmfand/internal/configuration"
)

// LevelSlot pairs a fan level with the temperature at which it engages.
type LevelSlot struct {
	Level       int
	Temperature float64
}

// LevelCurve maps a temperature reading onto a discrete fan level by
// quantizing the [MinThreshold, MaxThreshold] interval into equally
// spaced slots.
//
// Below MinThreshold the fan idles at MinState; with the default
// MIN_STATE=0 that means it is switched off entirely. At or above
// MaxThreshold the fan runs at MaxState.
//
// There is no hysteresis: a temperature hovering around a slot edge can
// flip between adjacent levels on consecutive ticks. The actuator-side
// write memoization keeps the cost of that down to one device write per
// flip, but the oscillation itself is accepted behavior.
type LevelCurve struct {
	minState int
	maxState int
	slots    []LevelSlot
}

// NewLevelCurve computes the slot table for the given configuration.
// MaxState must already be resolved (>= 0).
func NewLevelCurve(config configuration.Configuration) *LevelCurve {
	return &LevelCurve{
		minState: config.MinState,
		maxState: config.MaxState,
		slots:    calculateSlots(config),
	}
}

func calculateSlots(config configuration.Configuration) []LevelSlot {
	numSlots := config.MaxState - config.MinState
	if numSlots <= 0 {
		// degenerate table: everything at/above MinThreshold runs at MaxState
		return []LevelSlot{
			{Level: config.MaxState, Temperature: config.MinThreshold},
		}
	}

	step := 0.0
	if numSlots > 1 {
		step = (config.MaxThreshold - config.MinThreshold) / float64(numSlots-1)
	}

	slots := make([]LevelSlot, 0, numSlots)
	for i := 0; i < numSlots; i++ {
		slots = append(slots, LevelSlot{
			Level:       config.MinState + i + 1,
			Temperature: config.MinThreshold + float64(i)*step,
		})
	}
	return slots
}

// LevelForTemperature returns the fan level for the given temperature.
// The result is monotone in the temperature and always within
// [MinState, MaxState]. Temperatures exactly on a slot edge engage that
// slot's level.
func (c *LevelCurve) LevelForTemperature(temperature float64) int {
	level := c.minState
	for _, slot := range c.slots {
		if slot.Temperature > temperature {
			break
		}
		level = slot.Level
	}
	return level
}

// Slots returns the computed slot table.
func (c *LevelCurve) Slots() []LevelSlot {
	return c.slots
}
