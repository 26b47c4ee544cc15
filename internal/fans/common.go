package fans

import (
	"fmt"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/pwmfand/pwmfand/internal/configuration"
)

var (
	FanMap = cmap.New[Fan]()
)

type Fan interface {
	GetId() string

	// GetMaxState returns the highest speed level supported by the device
	GetMaxState() (int, error)

	// GetState returns the speed level currently applied to the device
	GetState() (int, error)

	// SetState applies the given speed level to the device
	SetState(level int) error
}

// checkLevel rejects levels outside the range the device vocabulary allows.
func checkLevel(level int) error {
	if level < configuration.MinFanState || level > configuration.MaxFanState {
		return fmt.Errorf("fan level out of range [%d..%d]: %d",
			configuration.MinFanState, configuration.MaxFanState, level)
	}
	return nil
}
