package sensors

import (
	"os/user"
	"path/filepath"
	"strings"

	"github.com/asecurityteam/rolling"
	"github.com/pwmfand/pwmfand/internal/util"
)

// FileSensor reads the temperature from an arbitrary file using the same
// milli-degree format as the sysfs thermal zones.
type FileSensor struct {
	ID   string
	Path string

	window *rolling.PointPolicy
}

func NewFileSensor(id string, path string) *FileSensor {
	return &FileSensor{
		ID:     id,
		Path:   path,
		window: util.CreateRollingWindow(MovingWindowSize),
	}
}

func (sensor *FileSensor) GetId() string {
	return sensor.ID
}

func (sensor *FileSensor) GetValue() (float64, error) {
	filePath := sensor.Path
	// resolve home dir path
	if strings.HasPrefix(filePath, "~") {
		currentUser, err := user.Current()
		if err != nil {
			return 0, err
		}

		filePath = filepath.Join(currentUser.HomeDir, filePath[1:])
	}

	integer, err := util.ReadIntFromFile(filePath)
	if err != nil {
		return 0, err
	}
	value := float64(integer) / 1000.0
	sensor.window.Append(value)
	return value, nil
}

func (sensor *FileSensor) GetMovingAvg() float64 {
	return util.GetWindowAvg(sensor.window)
}
